// Package domain contains the core domain model and resolution logic for
// the project configuration: positioned values, the entity model, the
// validation error taxonomy, and the subproject dependency graph.
package domain

import (
	"iter"
	"strings"

	"go.trai.ch/zerr"
)

// Graph is the directed dependency graph over subproject names. Nodes and
// adjacency lists keep declaration order, so traversal and the resulting
// build order are deterministic for a fixed input order.
type Graph struct {
	nodes      map[string][]string
	order      []string
	buildOrder []string
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string][]string),
	}
}

// AddNode adds a subproject and the subproject names it references.
// It returns an error if the name was already added.
func (g *Graph) AddNode(name string, deps []string) error {
	if _, exists := g.nodes[name]; exists {
		return zerr.With(ErrNodeAlreadyExists, "node", name)
	}
	g.nodes[name] = deps
	g.order = append(g.order, name)
	return nil
}

// CycleError reports a circular subproject reference discovered by Validate.
type CycleError struct {
	// Node is the subproject whose traversal re-entered the recursion
	// stack.
	Node string
	// Path is the cycle from the first occurrence of the re-entered node,
	// joined with " -> ".
	Path string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return "circular dependency: " + e.Path
}

// Validate checks for cycles using a three-color depth-first traversal and,
// when none exist, records the build order: every dependency precedes its
// dependents, ties broken by declaration order.
func (g *Graph) Validate() error {
	g.buildOrder = make([]string, 0, len(g.nodes))
	visited := make(map[string]int) // 0: unvisited, 1: on stack, 2: done
	var path []string

	var visit func(u string) error
	visit = func(u string) error {
		visited[u] = 1
		path = append(path, u)

		deps, exists := g.nodes[u]
		if !exists {
			return zerr.With(ErrUnknownNode, "node", u)
		}

		for _, dep := range deps {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.buildOrder = append(g.buildOrder, u)
		return nil
	}

	// Roots are taken in insertion order so disconnected components land
	// in a stable position in the build order.
	for _, name := range g.order {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs a CycleError from the traversal path and the
// stack-resident node that closed the cycle.
func (g *Graph) buildCycleError(path []string, dep string) error {
	startIdx := 0
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}

	var b strings.Builder
	for i := startIdx; i < len(path); i++ {
		b.WriteString(path[i])
		b.WriteString(" -> ")
	}
	b.WriteString(dep)

	return &CycleError{
		Node: path[len(path)-1],
		Path: b.String(),
	}
}

// Walk returns an iterator that yields subproject names in build order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range g.buildOrder {
			if !yield(name) {
				return
			}
		}
	}
}
