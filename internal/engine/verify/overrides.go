package verify

import "go.trai.ch/forge/internal/core/domain"

// verifyOverrides checks override declarations in order: each name must be
// unique and must match a declared subproject. Both conditions report
// OverrideNameConflict; only the duplicate carries a secondary span.
func (v *Verifier) verifyOverrides(overrides []domain.Override, subprojects []domain.Subproject) *domain.Error {
	known := make(map[string]struct{}, len(subprojects))
	for _, sp := range subprojects {
		known[sp.Name.Value()] = struct{}{}
	}

	seen := make(map[string]domain.Span, len(overrides))
	for _, o := range overrides {
		if prev, ok := seen[o.Name.Value()]; ok {
			return domain.NewError(domain.OverrideNameConflict, "Duplicate override name").
				WithSpan(o.Name.Span()).
				WithSecondary(prev, previouslyDefined)
		}
		seen[o.Name.Value()] = o.Name.Span()

		if _, ok := known[o.Name.Value()]; !ok {
			return domain.NewError(domain.OverrideNameConflict, "Override name does not match any subproject").
				WithSpan(o.Name.Span())
		}
	}
	return nil
}
