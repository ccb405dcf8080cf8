package bundler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paketo-buildpacks/packit/v2/pexec"
	"github.com/paketo-buildpacks/packit/v2/scribe"
)

//go:generate faux --interface Executable --output fakes/executable.go
type Executable interface {
	Execute(pexec.Execution) (err error)
}

//go:generate faux --interface Summer --output fakes/summer.go
type Summer interface {
	Sum(paths ...string) (string, error)
}

//go:generate faux --interface EnvironmentConfig --output fakes/environment_config.go
type EnvironmentConfig interface {
	GetValue(key string) string
}

func NewInstallProcess(executable Executable, summer Summer, environment EnvironmentConfig, logger scribe.Logger) InstallProcess {
	return InstallProcess{
		executable:  executable,
		summer:      summer,
		environment: environment,
		logger:      logger,
	}
}

type InstallProcess struct {
	executable  Executable
	summer      Summer
	environment EnvironmentConfig
	logger      scribe.Logger
}

// ShouldRun checksums the manifest and compares it against the previous build
// state. An unchanged manifest means installation can be skipped.
func (p InstallProcess) ShouldRun(workingDir, manifestPath string, metadata map[string]interface{}) (bool, string, error) {
	sum, err := p.summer.Sum(resolvePath(workingDir, manifestPath))
	if err != nil {
		return false, "", fmt.Errorf("checksumming manifest: %w", err)
	}

	manifestSHA, ok := metadata["manifest_sha"].(string)
	if !ok || sum != manifestSHA {
		return true, sum, nil
	}

	return false, "", nil
}

// Run installs the manifest's requirements into the current environment. Any
// installer failure aborts the pipeline with the tool's own output already
// streamed to the log.
func (p InstallProcess) Run(workingDir, manifestPath string) error {
	args := []string{"install", "--requirement", manifestPath}
	p.logger.Subprocess("Running 'pip %s'", strings.Join(args, " "))

	err := p.executable.Execute(pexec.Execution{
		Args:   args,
		Dir:    workingDir,
		Stdout: p.logger.ActionWriter,
		Stderr: p.logger.ActionWriter,
		Env: append(
			os.Environ(),
			fmt.Sprintf("PIP_DISABLE_PIP_VERSION_CHECK=%s", p.environment.GetValue("PIP_DISABLE_PIP_VERSION_CHECK")),
		),
	})
	if err != nil {
		return fmt.Errorf("pip install failed: %w", err)
	}

	return nil
}

func resolvePath(workingDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workingDir, path)
}
