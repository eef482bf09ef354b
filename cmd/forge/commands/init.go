package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/adapters/config"
	"go.trai.ch/zerr"
)

// ErrConfigExists is returned when init would overwrite an existing
// configuration file.
var ErrConfigExists = zerr.New("configuration file already exists")

const starterConfig = `[build]
version = "0.1.0"
compiler = "cc"
c_standard = "c17"

[[subprojects]]
name = %q
type = "binary"
src_dir = "src"
`

const starterMain = `#include <stdio.h>

int main(void) {
    printf("Hello, world!\n");
    return 0;
}
`

func (c *CLI) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a new project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return initProject(cmd, dir)
		},
	}
}

// initProject writes a starter configuration and source layout into dir.
// An existing configuration is never overwritten; an existing main.c is
// left alone.
func initProject(cmd *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerr.Wrap(err, "failed to create project directory")
	}

	configPath := filepath.Join(dir, config.DefaultFilename)
	if _, err := os.Stat(configPath); err == nil {
		return zerr.With(ErrConfigExists, "path", configPath)
	}

	name := projectName(dir)
	content := fmt.Sprintf(starterConfig, name)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return zerr.Wrap(err, "failed to write configuration file")
	}

	srcDir := filepath.Join(dir, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return zerr.Wrap(err, "failed to create source directory")
	}
	mainPath := filepath.Join(srcDir, "main.c")
	if _, err := os.Stat(mainPath); os.IsNotExist(err) {
		if err := os.WriteFile(mainPath, []byte(starterMain), 0o644); err != nil {
			return zerr.Wrap(err, "failed to write starter source file")
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "initialized project %s in %s\n", name, dir)
	return nil
}

// projectName derives the subproject name from the target directory.
func projectName(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "app"
	}
	name := filepath.Base(abs)
	if name == "/" || name == "." {
		return "app"
	}
	return name
}
