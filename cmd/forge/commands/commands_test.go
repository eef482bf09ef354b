package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/cmd/forge/commands"
	"go.trai.ch/forge/internal/adapters/logger"
	"go.trai.ch/forge/internal/adapters/telemetry"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/forge/internal/engine/verify"
	"go.uber.org/mock/gomock"
)

type cliMocks struct {
	loader    *mocks.MockConfigLoader
	toolchain *mocks.MockToolchainProber
	pkgconfig *mocks.MockPkgConfigProber
	renderer  *mocks.MockDiagRenderer
	watcher   *mocks.MockWatcher
}

func (m cliMocks) healthyProbes() {
	m.toolchain.EXPECT().ResolveCompiler(gomock.Any(), gomock.Any()).Return("/usr/bin/cc", nil).AnyTimes()
	m.toolchain.EXPECT().ProbeStandard(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.pkgconfig.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func newTestCLI(t *testing.T) (*commands.CLI, cliMocks, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := cliMocks{
		loader:    mocks.NewMockConfigLoader(ctrl),
		toolchain: mocks.NewMockToolchainProber(ctrl),
		pkgconfig: mocks.NewMockPkgConfigProber(ctrl),
		renderer:  mocks.NewMockDiagRenderer(ctrl),
		watcher:   mocks.NewMockWatcher(ctrl),
	}
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	verifier := verify.NewVerifier(m.toolchain, m.pkgconfig, mockLogger, telemetry.NewNoOp())
	out := &bytes.Buffer{}
	a := app.New(m.loader, verifier, m.renderer, m.watcher, mockLogger).WithOutput(out)
	return commands.New(a, mockLogger), m, out
}

func validConfig() *domain.BuildConfig {
	return &domain.BuildConfig{
		Settings: domain.BuildSettings{
			Compiler:  domain.NewSpanned("cc", domain.NewSpan(10, 12)),
			CStandard: domain.NewSpanned("c17", domain.NewSpan(30, 33)),
		},
		Subprojects: []domain.Subproject{
			{
				Name: domain.NewSpanned("app", domain.NewSpan(100, 103)),
				Kind: domain.NewSpanned(domain.KindBinary, domain.Span{}),
			},
		},
		Source:      []byte("[build]\n"),
		Fingerprint: "00000000deadbeef",
	}
}

func TestCheck(t *testing.T) {
	cli, m, _ := newTestCLI(t)
	m.healthyProbes()
	m.loader.EXPECT().Load("forge.toml").Return(validConfig(), nil)

	cli.SetArgs([]string{"check"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestCheck_ConfigFlag(t *testing.T) {
	cli, m, _ := newTestCLI(t)
	m.healthyProbes()
	m.loader.EXPECT().Load("projects/game/forge.toml").Return(validConfig(), nil)

	cli.SetArgs([]string{"check", "--config", "projects/game/forge.toml"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestCheck_VerificationFailure(t *testing.T) {
	cli, m, _ := newTestCLI(t)
	m.healthyProbes()

	cfg := validConfig()
	cfg.Subprojects = append(cfg.Subprojects, cfg.Subprojects[0])
	m.loader.EXPECT().Load("forge.toml").Return(cfg, nil)
	m.renderer.EXPECT().Render("forge.toml", gomock.Any(), gomock.Any())

	cli.SetArgs([]string{"check"})
	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, app.ErrVerificationFailed)
}

func TestCheck_JSONLogs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	toolchain := mocks.NewMockToolchainProber(ctrl)
	pkgconfig := mocks.NewMockPkgConfigProber(ctrl)
	renderer := mocks.NewMockDiagRenderer(ctrl)
	watcher := mocks.NewMockWatcher(ctrl)

	toolchain.EXPECT().ResolveCompiler(gomock.Any(), gomock.Any()).Return("/usr/bin/cc", nil)
	toolchain.EXPECT().ProbeStandard(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	loader.EXPECT().Load("forge.toml").Return(validConfig(), nil)

	logBuf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(logBuf)

	verifier := verify.NewVerifier(toolchain, pkgconfig, lg, telemetry.NewNoOp())
	a := app.New(loader, verifier, renderer, watcher, lg).WithOutput(&bytes.Buffer{})
	cli := commands.New(a, lg)

	cli.SetArgs([]string{"check", "--json"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, logBuf.String(), `"level":"INFO"`)
	assert.Contains(t, logBuf.String(), "configuration valid")
}

func TestGraph(t *testing.T) {
	cli, m, out := newTestCLI(t)
	m.healthyProbes()
	m.loader.EXPECT().Load("forge.toml").Return(validConfig(), nil)

	cli.SetArgs([]string{"graph"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "1. app (binary)")
	assert.Contains(t, out.String(), "fingerprint 00000000deadbeef")
}

func TestInit(t *testing.T) {
	cli, _, _ := newTestCLI(t)
	dir := filepath.Join(t.TempDir(), "game")

	cli.SetArgs([]string{"init", dir})
	require.NoError(t, cli.Execute(context.Background()))

	content, err := os.ReadFile(filepath.Join(dir, "forge.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `name = "game"`)
	assert.Contains(t, string(content), `type = "binary"`)

	source, err := os.ReadFile(filepath.Join(dir, "src", "main.c"))
	require.NoError(t, err)
	assert.Contains(t, string(source), "int main(void)")
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "forge.toml"), []byte("[build]\n"), 0o644))

	cli, _, _ := newTestCLI(t)
	cli.SetArgs([]string{"init", dir})
	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, commands.ErrConfigExists)

	// The existing file is untouched.
	content, readErr := os.ReadFile(filepath.Join(dir, "forge.toml"))
	require.NoError(t, readErr)
	assert.Equal(t, "[build]\n", string(content))
}

func TestRoot_Help(t *testing.T) {
	cli, _, _ := newTestCLI(t)
	cli.SetArgs([]string{"--help"})
	require.NoError(t, cli.Execute(context.Background()))
}
