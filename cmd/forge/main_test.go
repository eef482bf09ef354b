package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Check(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		config       string
		expectedExit int
	}{
		{
			name: "valid configuration",
			config: `[build]
version = "0.1.0"
compiler = "fakecc"
c_standard = "c17"

[[subprojects]]
name = "app"
type = "binary"
`,
			expectedExit: 0,
		},
		{
			name: "duplicate subproject name",
			config: `[build]
version = "0.1.0"
compiler = "fakecc"
c_standard = "c17"

[[subprojects]]
name = "app"
type = "binary"

[[subprojects]]
name = "app"
type = "library"
`,
			expectedExit: 1,
		},
		{
			name: "malformed configuration",
			config: `[build]
version =
`,
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			// A fake compiler on PATH keeps the toolchain probes hermetic.
			binDir := filepath.Join(tmpDir, "bin")
			require.NoError(t, os.MkdirAll(binDir, 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(binDir, "fakecc"), []byte("#!/bin/sh\nexit 0\n"), 0o755))
			t.Setenv("PATH", binDir)

			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "forge.toml"), []byte(tt.config), 0o600))

			originalWd, err := os.Getwd()
			require.NoError(t, err)
			require.NoError(t, os.Chdir(tmpDir))
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = []string{"forge", "check"}
			assert.Equal(t, tt.expectedExit, run())
		})
	}
}
