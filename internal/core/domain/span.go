package domain

// Span is a half-open byte range [Start, End) into the configuration source
// text. Spans exist for diagnostics only; validation logic never branches on
// them.
type Span struct {
	Start int
	End   int
}

// NewSpan creates a Span covering [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// IsZero reports whether the span carries no position information.
func (s Span) IsZero() bool {
	return s.Start == 0 && s.End == 0
}
