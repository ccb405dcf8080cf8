package bundler

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/paketo-buildpacks/packit/v2/pexec"
	"github.com/paketo-buildpacks/packit/v2/scribe"
)

// BundleOptions are the fixed packaging options: output name, windowed mode
// (no attached console), and single-file output.
type BundleOptions struct {
	EntryPoint string
	OutputDir  string
	Name       string
	Windowed   bool
	OneFile    bool
}

func NewBundleProcess(executable Executable, logger scribe.Logger) BundleProcess {
	return BundleProcess{
		executable: executable,
		logger:     logger,
	}
}

type BundleProcess struct {
	executable Executable
	logger     scribe.Logger
}

// Run invokes the bundling tool against the entry-point script and verifies
// the artifact appears at its deterministic output location. The entry-point
// script's contents are not validated; correctness of the packaged
// application is the application's own concern.
func (p BundleProcess) Run(workingDir string, options BundleOptions) (string, error) {
	entryPoint := resolvePath(workingDir, options.EntryPoint)
	if _, err := os.Stat(entryPoint); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("expected entry point %q to be an existing file", options.EntryPoint)
		}
		return "", err
	}

	outputDir := resolvePath(workingDir, options.OutputDir)

	args := []string{"--noconfirm", "--name", options.Name, "--distpath", outputDir}
	if options.Windowed {
		args = append(args, "--windowed")
	}
	if options.OneFile {
		args = append(args, "--onefile")
	}
	args = append(args, entryPoint)

	p.logger.Subprocess("Running 'pyinstaller %s'", strings.Join(args, " "))

	err := p.executable.Execute(pexec.Execution{
		Args:   args,
		Dir:    workingDir,
		Stdout: p.logger.ActionWriter,
		Stderr: p.logger.ActionWriter,
		Env:    os.Environ(),
	})
	if err != nil {
		return "", fmt.Errorf("pyinstaller failed: %w", err)
	}

	artifact := artifactPath(outputDir, options)
	if _, err := os.Stat(artifact); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("bundling completed but artifact %s was not created", artifact)
		}
		return "", err
	}

	return artifact, nil
}

func artifactPath(outputDir string, options BundleOptions) string {
	name := options.Name
	if runtime.GOOS == "windows" {
		name += ".exe"
	}

	if options.OneFile {
		return resolvePath(outputDir, name)
	}

	// One-dir bundles place the binary inside a directory named after the
	// application.
	return resolvePath(resolvePath(outputDir, options.Name), name)
}
