package verify

import "go.trai.ch/forge/internal/core/domain"

// verifyRules checks custom build rule names for uniqueness. Directory
// existence is not checked here; rules may target paths that the build
// creates.
func (v *Verifier) verifyRules(rules []domain.CustomBuildRule) *domain.Error {
	seen := make(map[string]domain.Span, len(rules))
	for _, r := range rules {
		if prev, ok := seen[r.Name.Value()]; ok {
			return domain.NewError(domain.DuplicateCustomBuildRuleName, "Duplicate custom build rule name "+r.Name.Value()).
				WithSpan(r.Name.Span()).
				WithSecondary(prev, "Previous definition")
		}
		seen[r.Name.Value()] = r.Name.Span()
	}
	return nil
}
