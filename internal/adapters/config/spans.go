package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2/unstable"
	"go.trai.ch/forge/internal/core/domain"
)

// spanIndex maps dotted key paths to the byte range their value occupies in
// the document. Array elements carry bracketed indices ("subprojects[1].name");
// container paths hold the extent of everything beneath them, including the
// table header, so whole-entry diagnostics can underline a full declaration.
// Array-of-tables and inline-array spellings produce identical paths.
type spanIndex struct {
	spans map[string]domain.Span
}

// buildSpanIndex parses the document a second time, recording a span for
// every key path. A syntax error surfaces as a TomlParseError positioned at
// the parser's highlight range.
func buildSpanIndex(data []byte) (*spanIndex, error) {
	ix := &spanIndex{spans: make(map[string]domain.Span)}

	parser := &unstable.Parser{}
	parser.Reset(data)

	prefix := ""
	elements := make(map[string]int)

	for parser.NextExpression() {
		expr := parser.Expression()

		switch expr.Kind {
		case unstable.Table:
			parts, header := headerKey(expr)
			prefix = strings.Join(parts, ".")
			ix.grow(prefix, header)
		case unstable.ArrayTable:
			parts, header := headerKey(expr)
			base := strings.Join(parts, ".")
			prefix = fmt.Sprintf("%s[%d]", base, elements[base])
			elements[base]++
			ix.grow(prefix, header)
		case unstable.KeyValue:
			ext := ix.walkKeyValue(prefix, expr)
			if prefix != "" {
				ix.grow(prefix, ext)
			}
		}
	}

	if err := parser.Error(); err != nil {
		return nil, parseError(parser, err)
	}
	return ix, nil
}

// span returns the recorded span for a path, or the zero span when the path
// never appeared in the document.
func (ix *spanIndex) span(path string) domain.Span {
	return ix.spans[path]
}

func (ix *spanIndex) grow(path string, s domain.Span) {
	if s.IsZero() {
		return
	}
	ix.spans[path] = unionSpan(ix.spans[path], s)
}

// walkKeyValue records the value's span under prefix plus the dotted key and
// returns the extent of the whole key-value pair.
func (ix *spanIndex) walkKeyValue(prefix string, kv *unstable.Node) domain.Span {
	var parts []string
	var ext domain.Span
	for it := kv.Key(); it.Next(); {
		part := it.Node()
		parts = append(parts, string(part.Data))
		ext = unionSpan(ext, rawSpan(part.Raw))
	}

	path := strings.Join(parts, ".")
	if prefix != "" {
		path = prefix + "." + path
	}
	return unionSpan(ext, ix.walkValue(path, kv.Value()))
}

func (ix *spanIndex) walkValue(path string, n *unstable.Node) domain.Span {
	switch n.Kind {
	case unstable.Array:
		var ext domain.Span
		i := 0
		for it := n.Children(); it.Next(); {
			ext = unionSpan(ext, ix.walkValue(fmt.Sprintf("%s[%d]", path, i), it.Node()))
			i++
		}
		ix.grow(path, ext)
		return ext
	case unstable.InlineTable:
		var ext domain.Span
		for it := n.Children(); it.Next(); {
			ext = unionSpan(ext, ix.walkKeyValue(path, it.Node()))
		}
		ix.grow(path, ext)
		return ext
	default:
		span := rawSpan(n.Raw)
		ix.grow(path, span)
		return span
	}
}

// headerKey collects the dotted key parts of a table or array-table header
// together with their extent.
func headerKey(expr *unstable.Node) ([]string, domain.Span) {
	var parts []string
	var ext domain.Span
	for it := expr.Key(); it.Next(); {
		part := it.Node()
		parts = append(parts, string(part.Data))
		ext = unionSpan(ext, rawSpan(part.Raw))
	}
	return parts, ext
}

func rawSpan(r unstable.Range) domain.Span {
	return domain.NewSpan(int(r.Offset), int(r.Offset)+int(r.Length))
}

func unionSpan(a, b domain.Span) domain.Span {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	return domain.NewSpan(min(a.Start, b.Start), max(a.End, b.End))
}

func parseError(parser *unstable.Parser, err error) error {
	e := domain.NewError(domain.TomlParseError, err.Error())
	var perr *unstable.ParserError
	if errors.As(err, &perr) {
		e = e.WithSpan(rawSpan(parser.Range(perr.Highlight)))
	}
	return e
}
