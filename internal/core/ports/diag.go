package ports

import "go.trai.ch/forge/internal/core/domain"

// DiagRenderer renders a single validation failure for the user.
//
//go:generate mockgen -source=diag.go -destination=mocks/mock_diag.go -package=mocks
type DiagRenderer interface {
	// Render prints the diagnostic for err. source is the configuration
	// text the error's spans index into; a nil source makes the renderer
	// read it from path best-effort.
	Render(path string, source []byte, err *domain.Error)
}
