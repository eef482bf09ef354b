package verify

import (
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// resolveSubprojects validates subproject declarations and resolves their
// dependency graph into a build order. Three ordered phases: name
// uniqueness, reference resolution, cycle detection. The returned slice is
// the input permuted so every dependency precedes its dependents, ties
// broken by declaration order.
func (v *Verifier) resolveSubprojects(
	vtx ports.Vertex,
	subprojects []domain.Subproject,
	deps *domain.Dependencies,
) ([]domain.Subproject, *domain.Error) {
	names := make(map[string]domain.Span, len(subprojects))
	linkable := make(map[string]struct{}, len(subprojects))
	for _, sp := range subprojects {
		if prev, ok := names[sp.Name.Value()]; ok {
			return nil, domain.NewError(domain.DuplicateSubprojectName, "Duplicate subproject name").
				WithSpan(sp.Name.Span()).
				WithSecondary(prev, previouslyDefined)
		}
		names[sp.Name.Value()] = sp.Name.Span()
		if sp.Kind.Value().Linkable() {
			linkable[sp.Name.Value()] = struct{}{}
		}
	}

	// A reference resolves against the declared dependencies or against a
	// linkable sibling. Binaries are never referenceable.
	for _, sp := range subprojects {
		for _, ref := range sp.Dependencies {
			// TODO: filter detailed references against the dependency's
			// import list once fetched dependencies expose their exports.
			if deps.Has(ref.Name.Value()) {
				continue
			}
			if _, ok := linkable[ref.Name.Value()]; ok {
				continue
			}
			return nil, domain.NewError(domain.InvalidSubprojectDependency, "Subproject dependency not found").
				WithSpan(ref.Name.Span())
		}
	}

	graph := domain.NewGraph()
	for _, sp := range subprojects {
		var edges []string
		for _, ref := range sp.Dependencies {
			// Only sibling references become graph edges; external
			// dependencies have no build position.
			if _, ok := names[ref.Name.Value()]; ok {
				edges = append(edges, ref.Name.Value())
			}
		}
		// Duplicate names were rejected above, AddNode cannot fail.
		_ = graph.AddNode(sp.Name.Value(), edges)
	}
	if err := graph.Validate(); err != nil {
		return nil, cycleToError(err, names)
	}

	byName := make(map[string]domain.Subproject, len(subprojects))
	for _, sp := range subprojects {
		byName[sp.Name.Value()] = sp
	}
	ordered := make([]domain.Subproject, 0, len(subprojects))
	for name := range graph.Walk() {
		ordered = append(ordered, byName[name])
	}
	if len(ordered) > 0 {
		fmt.Fprintf(vtx.Stdout(), "build order: %s\n", joinNames(ordered))
	}
	return ordered, nil
}

// cycleToError maps a traversal failure onto the diagnostic model. Edges
// are filtered through the subproject name set before traversal, so the
// only reachable failure is a cycle: the primary span points at the
// subproject whose traversal closed the cycle, the secondary at the first
// node on the cycle path.
func cycleToError(err error, names map[string]domain.Span) *domain.Error {
	derr := domain.NewError(domain.CircularDependency, "Circular dependency detected")
	var cycle *domain.CycleError
	if !errors.As(err, &cycle) {
		return derr
	}
	derr = derr.WithSpan(names[cycle.Node])
	if first, _, ok := strings.Cut(cycle.Path, " -> "); ok {
		derr = derr.WithSecondary(names[first], cycle.Path)
	}
	return derr
}

func joinNames(subprojects []domain.Subproject) string {
	parts := make([]string, len(subprojects))
	for i, sp := range subprojects {
		parts[i] = sp.Name.Value()
	}
	return strings.Join(parts, " -> ")
}
