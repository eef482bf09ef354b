package domain

// Override replaces selected build settings for a single subproject. Which
// fields an override may replace mirrors BuildSettings; unset fields leave
// the global value in effect.
type Override struct {
	Name      Spanned[string]
	Compiler  *Spanned[string]
	CStandard *Spanned[string]
	Flags     []string
	Jobs      int
}
