// Package config provides the forge.toml configuration loader.
//
// Loading is two-pass: a typed decode producing the raw document, and a
// span-index pass over the same bytes so every diagnostic-destined value
// knows where it came from. Malformed documents surface as TomlParseError
// diagnostics; only I/O failures are reported as plain errors.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultFilename is the configuration file forge looks for when no
// explicit path is given.
const DefaultFilename = "forge.toml"

// Loader implements ports.ConfigLoader for forge.toml files.
type Loader struct {
	log ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads the configuration file at the given path.
func (l *Loader) Load(path string) (*domain.BuildConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	l.log.Info(fmt.Sprintf("loaded %s (fingerprint %s)", path, cfg.Fingerprint))
	return cfg, nil
}

// document mirrors the forge.toml schema. Pointer fields distinguish an
// omitted key from an empty value.
type document struct {
	Build            buildDTO        `toml:"build"`
	Dependencies     dependenciesDTO `toml:"dependencies"`
	Subprojects      []subprojectDTO `toml:"subprojects"`
	Overrides        []overrideDTO   `toml:"overrides"`
	CustomBuildRules []ruleDTO       `toml:"custom_build_rules"`
}

type buildDTO struct {
	Version      string   `toml:"version"`
	Compiler     string   `toml:"compiler"`
	CStandard    string   `toml:"c_standard"`
	Flags        []string `toml:"flags"`
	ParallelJobs int      `toml:"parallel_jobs"`
}

type dependenciesDTO struct {
	Remote    []remoteDTO    `toml:"remote"`
	PkgConfig []pkgConfigDTO `toml:"pkg_config"`
	Manual    []manualDTO    `toml:"manual"`
}

type remoteDTO struct {
	Name         string   `toml:"name"`
	Version      *string  `toml:"version"`
	Source       string   `toml:"source"`
	IncludeName  *string  `toml:"include_name"`
	IncludeDirs  []string `toml:"include_dirs"`
	BuildMethod  *string  `toml:"build_method"`
	BuildCommand *string  `toml:"build_command"`
	BuildOutput  *string  `toml:"build_output"`
	Imports      []string `toml:"imports"`
}

type pkgConfigDTO struct {
	Name  string `toml:"name"`
	Query string `toml:"pkg_config_query"`
}

type manualDTO struct {
	Name    string   `toml:"name"`
	CFlags  []string `toml:"cflags"`
	LdFlags []string `toml:"ldflags"`
}

type subprojectDTO struct {
	Name         string   `toml:"name"`
	Type         string   `toml:"type"`
	SrcDir       *string  `toml:"src_dir"`
	IncludeDirs  []string `toml:"include_dirs"`
	Dependencies []any    `toml:"dependencies"`
}

type overrideDTO struct {
	Name         string   `toml:"name"`
	Compiler     *string  `toml:"compiler"`
	CStandard    *string  `toml:"c_standard"`
	Flags        []string `toml:"flags"`
	ParallelJobs int      `toml:"parallel_jobs"`
}

type ruleDTO struct {
	Name              string   `toml:"name"`
	Description       string   `toml:"description"`
	SrcDir            string   `toml:"src_dir"`
	OutputDir         string   `toml:"output_dir"`
	TriggerExtensions []string `toml:"trigger_extensions"`
	OutputExtension   string   `toml:"output_extension"`
	Command           string   `toml:"command"`
	RebuildPolicy     string   `toml:"rebuild_policy"`
}

// Parse turns raw configuration text into a BuildConfig with every
// diagnostic-destined leaf positioned.
func Parse(data []byte) (*domain.BuildConfig, error) {
	ix, err := buildSpanIndex(data)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, decodeError(data, err)
	}

	cfg := &domain.BuildConfig{
		Source:      data,
		Fingerprint: fmt.Sprintf("%016x", xxhash.Sum64(data)),
	}

	if cfg.Settings, err = settingsFromDTO(doc.Build, ix); err != nil {
		return nil, err
	}
	if cfg.Dependencies, err = dependenciesFromDTO(doc.Dependencies, ix); err != nil {
		return nil, err
	}
	for i, dto := range doc.Subprojects {
		sub, err := subprojectFromDTO(dto, fmt.Sprintf("subprojects[%d]", i), ix)
		if err != nil {
			return nil, err
		}
		cfg.Subprojects = append(cfg.Subprojects, sub)
	}
	for i, dto := range doc.Overrides {
		ov, err := overrideFromDTO(dto, fmt.Sprintf("overrides[%d]", i), ix)
		if err != nil {
			return nil, err
		}
		cfg.Overrides = append(cfg.Overrides, ov)
	}
	for i, dto := range doc.CustomBuildRules {
		rule, err := ruleFromDTO(dto, fmt.Sprintf("custom_build_rules[%d]", i), ix)
		if err != nil {
			return nil, err
		}
		cfg.Rules = append(cfg.Rules, rule)
	}

	return cfg, nil
}

func settingsFromDTO(dto buildDTO, ix *spanIndex) (domain.BuildSettings, error) {
	if dto.Version == "" {
		return domain.BuildSettings{}, missingKey(ix, "build", "version")
	}
	if dto.CStandard == "" {
		return domain.BuildSettings{}, missingKey(ix, "build", "c_standard")
	}
	if dto.Compiler == "" {
		return domain.BuildSettings{}, missingKey(ix, "build", "compiler")
	}
	return domain.BuildSettings{
		Compiler:  spannedAt(ix, "build.compiler", dto.Compiler),
		CStandard: spannedAt(ix, "build.c_standard", dto.CStandard),
		Version:   dto.Version,
		Flags:     dto.Flags,
		Jobs:      dto.ParallelJobs,
	}, nil
}

func dependenciesFromDTO(dto dependenciesDTO, ix *spanIndex) (domain.Dependencies, error) {
	var deps domain.Dependencies
	for i, r := range dto.Remote {
		remote, err := remoteFromDTO(r, fmt.Sprintf("dependencies.remote[%d]", i), ix)
		if err != nil {
			return domain.Dependencies{}, err
		}
		deps.Remote = append(deps.Remote, remote)
	}
	for i, p := range dto.PkgConfig {
		base := fmt.Sprintf("dependencies.pkg_config[%d]", i)
		if p.Name == "" {
			return domain.Dependencies{}, missingKey(ix, base, "name")
		}
		if p.Query == "" {
			return domain.Dependencies{}, missingKey(ix, base, "pkg_config_query")
		}
		deps.PkgConfig = append(deps.PkgConfig, domain.PkgConfig{
			Name:  spannedAt(ix, base+".name", p.Name),
			Query: spannedAt(ix, base+".pkg_config_query", p.Query),
		})
	}
	for i, m := range dto.Manual {
		base := fmt.Sprintf("dependencies.manual[%d]", i)
		if m.Name == "" {
			return domain.Dependencies{}, missingKey(ix, base, "name")
		}
		deps.Manual = append(deps.Manual, domain.Manual{
			Name:          spannedAt(ix, base+".name", m.Name),
			CompilerFlags: m.CFlags,
			LinkerFlags:   m.LdFlags,
		})
	}
	return deps, nil
}

func remoteFromDTO(dto remoteDTO, base string, ix *spanIndex) (domain.Remote, error) {
	if dto.Name == "" {
		return domain.Remote{}, missingKey(ix, base, "name")
	}
	if dto.Source == "" {
		return domain.Remote{}, missingKey(ix, base, "source")
	}
	if dto.IncludeDirs == nil {
		return domain.Remote{}, missingKey(ix, base, "include_dirs")
	}

	method := domain.MethodDefault
	if dto.BuildMethod != nil {
		m, err := domain.ParseBuildMethod(*dto.BuildMethod)
		if err != nil {
			return domain.Remote{}, badEnum(ix, base+".build_method", "build method", *dto.BuildMethod)
		}
		method = m
	}

	return domain.Remote{
		Name:         spannedAt(ix, base+".name", dto.Name),
		Version:      optionalAt(ix, base+".version", dto.Version),
		Source:       spannedAt(ix, base+".source", dto.Source),
		IncludeName:  optionalAt(ix, base+".include_name", dto.IncludeName),
		IncludeDirs:  dto.IncludeDirs,
		Method:       spannedAt(ix, base+".build_method", method),
		BuildCommand: optionalAt(ix, base+".build_command", dto.BuildCommand),
		BuildOutput:  optionalAt(ix, base+".build_output", dto.BuildOutput),
		Imports:      dto.Imports,
		EntrySpan:    ix.span(base),
	}, nil
}

func subprojectFromDTO(dto subprojectDTO, base string, ix *spanIndex) (domain.Subproject, error) {
	if dto.Name == "" {
		return domain.Subproject{}, missingKey(ix, base, "name")
	}
	if dto.Type == "" {
		return domain.Subproject{}, missingKey(ix, base, "type")
	}
	kind, err := domain.ParseSubprojectKind(dto.Type)
	if err != nil {
		return domain.Subproject{}, badEnum(ix, base+".type", "subproject type", dto.Type)
	}

	refs, err := refsFromDTO(dto.Dependencies, base, ix)
	if err != nil {
		return domain.Subproject{}, err
	}

	return domain.Subproject{
		Name:         spannedAt(ix, base+".name", dto.Name),
		Kind:         spannedAt(ix, base+".type", kind),
		SrcDir:       optionalAt(ix, base+".src_dir", dto.SrcDir),
		IncludeDirs:  dto.IncludeDirs,
		Dependencies: refs,
	}, nil
}

// refsFromDTO converts the mixed dependency array of a subproject: a plain
// string is a bare reference, an inline table the detailed form.
func refsFromDTO(raw []any, base string, ix *spanIndex) ([]domain.DependencyRef, error) {
	var refs []domain.DependencyRef
	for i, elem := range raw {
		path := fmt.Sprintf("%s.dependencies[%d]", base, i)
		switch v := elem.(type) {
		case string:
			refs = append(refs, domain.DependencyRef{
				Name: spannedAt(ix, path, v),
			})
		case map[string]any:
			name, _ := v["name"].(string)
			if name == "" {
				return nil, missingKey(ix, path, "name")
			}
			imports, err := stringsFromAny(ix, v["imports"], path+".imports")
			if err != nil {
				return nil, err
			}
			refs = append(refs, domain.DependencyRef{
				Name:     spannedAt(ix, path+".name", name),
				Imports:  imports,
				Detailed: true,
			})
		default:
			return nil, domain.NewError(domain.TomlParseError,
				"subproject dependency must be a string or a table").
				WithSpan(ix.span(path))
		}
	}
	return refs, nil
}

func overrideFromDTO(dto overrideDTO, base string, ix *spanIndex) (domain.Override, error) {
	if dto.Name == "" {
		return domain.Override{}, missingKey(ix, base, "name")
	}
	return domain.Override{
		Name:      spannedAt(ix, base+".name", dto.Name),
		Compiler:  optionalAt(ix, base+".compiler", dto.Compiler),
		CStandard: optionalAt(ix, base+".c_standard", dto.CStandard),
		Flags:     dto.Flags,
		Jobs:      dto.ParallelJobs,
	}, nil
}

func ruleFromDTO(dto ruleDTO, base string, ix *spanIndex) (domain.CustomBuildRule, error) {
	if dto.Name == "" {
		return domain.CustomBuildRule{}, missingKey(ix, base, "name")
	}
	if dto.SrcDir == "" {
		return domain.CustomBuildRule{}, missingKey(ix, base, "src_dir")
	}
	if dto.OutputDir == "" {
		return domain.CustomBuildRule{}, missingKey(ix, base, "output_dir")
	}
	if dto.TriggerExtensions == nil {
		return domain.CustomBuildRule{}, missingKey(ix, base, "trigger_extensions")
	}
	if dto.OutputExtension == "" {
		return domain.CustomBuildRule{}, missingKey(ix, base, "output_extension")
	}
	if dto.Command == "" {
		return domain.CustomBuildRule{}, missingKey(ix, base, "command")
	}
	if dto.RebuildPolicy == "" {
		return domain.CustomBuildRule{}, missingKey(ix, base, "rebuild_policy")
	}
	policy, err := domain.ParseRebuildPolicy(dto.RebuildPolicy)
	if err != nil {
		return domain.CustomBuildRule{}, badEnum(ix, base+".rebuild_policy", "rebuild policy", dto.RebuildPolicy)
	}

	return domain.CustomBuildRule{
		Name:        spannedAt(ix, base+".name", dto.Name),
		Description: dto.Description,
		SrcDir:      spannedAt(ix, base+".src_dir", dto.SrcDir),
		OutDir:      spannedAt(ix, base+".output_dir", dto.OutputDir),
		TriggerExts: dto.TriggerExtensions,
		OutputExt:   dto.OutputExtension,
		Command:     spannedAt(ix, base+".command", dto.Command),
		Policy:      spannedAt(ix, base+".rebuild_policy", policy),
	}, nil
}

func stringsFromAny(ix *spanIndex, v any, path string) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, domain.NewError(domain.TomlParseError,
			"imports must be an array of strings").
			WithSpan(ix.span(path))
	}
	out := make([]string, 0, len(list))
	for i, elem := range list {
		s, ok := elem.(string)
		if !ok {
			return nil, domain.NewError(domain.TomlParseError,
				"imports must be an array of strings").
				WithSpan(ix.span(fmt.Sprintf("%s[%d]", path, i)))
		}
		out = append(out, s)
	}
	return out, nil
}

func spannedAt[T comparable](ix *spanIndex, path string, v T) domain.Spanned[T] {
	return domain.NewSpanned(v, ix.span(path))
}

func optionalAt(ix *spanIndex, path string, v *string) *domain.Spanned[string] {
	if v == nil {
		return nil
	}
	s := domain.NewSpanned(*v, ix.span(path))
	return &s
}

func missingKey(ix *spanIndex, entry, key string) error {
	e := domain.NewError(domain.TomlParseError, fmt.Sprintf("missing required key %q", key))
	if s := ix.span(entry); !s.IsZero() {
		e = e.WithSpan(s)
	}
	return e
}

func badEnum(ix *spanIndex, path, what, got string) error {
	e := domain.NewError(domain.TomlParseError, fmt.Sprintf("unknown %s %q", what, got))
	if s := ix.span(path); !s.IsZero() {
		e = e.WithSpan(s)
	}
	return e
}

// decodeError maps a typed-decode failure onto a positioned TomlParseError.
func decodeError(data []byte, err error) error {
	var derr *toml.DecodeError
	if !errors.As(err, &derr) {
		return domain.NewError(domain.TomlParseError, err.Error())
	}
	row, col := derr.Position()
	off := offsetAt(data, row, col)
	return domain.NewError(domain.TomlParseError, derr.Error()).
		WithSpan(domain.NewSpan(off, off))
}

// offsetAt converts a 1-based row/column pair into a byte offset.
func offsetAt(data []byte, row, col int) int {
	off := 0
	for line := 1; line < row; line++ {
		i := bytes.IndexByte(data[off:], '\n')
		if i < 0 {
			return len(data)
		}
		off += i + 1
	}
	off += col - 1
	if off > len(data) {
		off = len(data)
	}
	return off
}
