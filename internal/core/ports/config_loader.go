package ports

import "go.trai.ch/forge/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and parses the configuration file at the given path. A
	// *domain.Error (kind TomlParseError) reports malformed configuration
	// text; other errors are infrastructure failures such as an unreadable
	// file.
	Load(path string) (*domain.BuildConfig, error)
}
