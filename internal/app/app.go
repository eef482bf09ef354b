// Package app implements the application layer for forge.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/verify"
	"go.trai.ch/zerr"
)

// ErrVerificationFailed is returned after a verification diagnostic has been
// rendered. Callers exit non-zero without printing the error again.
var ErrVerificationFailed = zerr.New("configuration verification failed")

// App wires the configuration loader, the verification pipeline and the
// diagnostic renderer into the operations the CLI exposes.
type App struct {
	loader   ports.ConfigLoader
	verifier *verify.Verifier
	renderer ports.DiagRenderer
	watcher  ports.Watcher
	log      ports.Logger

	out io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	verifier *verify.Verifier,
	renderer ports.DiagRenderer,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		loader:   loader,
		verifier: verifier,
		renderer: renderer,
		watcher:  watcher,
		log:      log,
		out:      os.Stdout,
	}
}

// WithOutput redirects report output, primarily for tests.
func (a *App) WithOutput(out io.Writer) *App {
	a.out = out
	return a
}

// CheckOptions configures a single Check run.
type CheckOptions struct {
	// ConfigPath is the configuration file to load.
	ConfigPath string
	// Watch keeps the process alive and re-runs verification whenever the
	// configuration file changes.
	Watch bool
}

// Check loads and verifies the configuration. Verification failures are
// rendered as diagnostics and reported as ErrVerificationFailed. With
// Watch set, Check keeps running until the context is canceled, gating
// re-verification on the content fingerprint.
func (a *App) Check(ctx context.Context, opts CheckOptions) error {
	fingerprint, err := a.checkOnce(ctx, opts.ConfigPath, "")
	if !opts.Watch {
		return err
	}
	return a.watch(ctx, opts.ConfigPath, fingerprint)
}

// GraphOptions configures a Graph run.
type GraphOptions struct {
	// ConfigPath is the configuration file to load.
	ConfigPath string
}

// Graph loads and verifies the configuration, then prints the resolved
// build order with one line per subproject.
func (a *App) Graph(ctx context.Context, opts GraphOptions) error {
	cfg, err := a.loader.Load(opts.ConfigPath)
	if err != nil {
		return a.report(opts.ConfigPath, nil, err)
	}
	if derr := a.verifier.VerifyConfig(ctx, cfg); derr != nil {
		return a.report(opts.ConfigPath, cfg.Source, derr)
	}

	fmt.Fprintf(a.out, "build order for %s (fingerprint %s)\n", opts.ConfigPath, cfg.Fingerprint)
	for i, sp := range cfg.Subprojects {
		fmt.Fprintf(a.out, "%3d. %s (%s)\n", i+1, sp.Name.Value(), sp.Kind.Value())
	}
	return nil
}

// checkOnce loads and verifies the configuration once. Verification is
// skipped when the content fingerprint equals skip; the previous outcome
// still stands in that case. The returned fingerprint is empty when
// loading failed.
func (a *App) checkOnce(ctx context.Context, path, skip string) (string, error) {
	cfg, err := a.loader.Load(path)
	if err != nil {
		return "", a.report(path, nil, err)
	}
	if skip != "" && cfg.Fingerprint == skip {
		a.log.Info("configuration unchanged, skipping verification")
		return cfg.Fingerprint, nil
	}

	if derr := a.verifier.VerifyConfig(ctx, cfg); derr != nil {
		return cfg.Fingerprint, a.report(path, cfg.Source, derr)
	}

	a.log.Info(fmt.Sprintf("configuration valid: build order [%s] (fingerprint %s)",
		strings.Join(orderNames(cfg.Subprojects), ", "), cfg.Fingerprint))
	return cfg.Fingerprint, nil
}

// watch re-runs checkOnce on every coalesced change to the configuration
// file until the context is canceled. Failures never stop the loop; the
// whole point is to keep verifying while the user edits.
func (a *App) watch(ctx context.Context, path, last string) error {
	if err := a.watcher.Start(ctx, path); err != nil {
		return zerr.Wrap(err, "failed to watch configuration file")
	}
	defer func() { _ = a.watcher.Stop() }()

	a.log.Info(fmt.Sprintf("watching %s", path))
	for range a.watcher.Changes() {
		fingerprint, err := a.checkOnce(ctx, path, last)
		if err != nil && !errors.Is(err, ErrVerificationFailed) {
			a.log.Error(err)
		}
		if fingerprint != "" {
			last = fingerprint
		}
	}
	return nil
}

// report renders a verification diagnostic and converts it into the
// application error; infrastructure errors pass through untouched.
func (a *App) report(path string, source []byte, err error) error {
	var derr *domain.Error
	if errors.As(err, &derr) {
		a.renderer.Render(path, source, derr)
		return zerr.With(ErrVerificationFailed, "kind", string(derr.Kind))
	}
	return err
}

func orderNames(subprojects []domain.Subproject) []string {
	names := make([]string, len(subprojects))
	for i, sp := range subprojects {
		names[i] = sp.Name.Value()
	}
	return names
}
