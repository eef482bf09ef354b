package domain

import "go.trai.ch/zerr"

// RebuildPolicy decides when a custom build rule re-runs.
type RebuildPolicy string

const (
	// PolicyOnChange re-runs the rule when a trigger file changed.
	PolicyOnChange RebuildPolicy = "on-change"
	// PolicyAlways re-runs the rule on every build.
	PolicyAlways RebuildPolicy = "always"
	// PolicyOnTrigger re-runs the rule only when explicitly triggered.
	PolicyOnTrigger RebuildPolicy = "on-trigger"
)

// ParseRebuildPolicy parses the textual form of a RebuildPolicy.
func ParseRebuildPolicy(s string) (RebuildPolicy, error) {
	switch p := RebuildPolicy(s); p {
	case PolicyOnChange, PolicyAlways, PolicyOnTrigger:
		return p, nil
	}
	return "", zerr.With(ErrUnknownRebuildPolicy, "policy", s)
}

// CustomBuildRule describes how auxiliary assets (shaders, generated
// sources, resources) are transformed during a build.
type CustomBuildRule struct {
	Name        Spanned[string]
	Description string
	SrcDir      Spanned[string]
	OutDir      Spanned[string]
	TriggerExts []string
	OutputExt   string
	Command     Spanned[string]
	Policy      Spanned[RebuildPolicy]
}
