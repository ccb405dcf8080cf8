package bundler

import (
	"time"

	"github.com/paketo-buildpacks/packit/v2/chronos"
	"github.com/paketo-buildpacks/packit/v2/scribe"
)

//go:generate faux --interface ManifestParser --output fakes/manifest_parser.go
type ManifestParser interface {
	Parse(path string) ([]Requirement, error)
}

//go:generate faux --interface DependencyInstaller --output fakes/dependency_installer.go
type DependencyInstaller interface {
	ShouldRun(workingDir, manifestPath string, metadata map[string]interface{}) (run bool, sha string, err error)
	Run(workingDir, manifestPath string) error
}

//go:generate faux --interface ExecutableBundler --output fakes/executable_bundler.go
type ExecutableBundler interface {
	Run(workingDir string, options BundleOptions) (artifactPath string, err error)
}

// Options configures one pipeline run.
type Options struct {
	ManifestPath string
	Bundle       BundleOptions
}

// Result reports what the pipeline produced.
type Result struct {
	ArtifactPath   string
	InstallSkipped bool
}

// Pipeline runs the strictly linear install -> package -> report sequence.
// Each step waits for the previous external process to exit; any failure
// aborts the run with the tool's diagnostic output already logged.
type Pipeline struct {
	parser    ManifestParser
	installer DependencyInstaller
	bundler   ExecutableBundler
	clock     chronos.Clock
	logger    scribe.Logger
}

func NewPipeline(parser ManifestParser, installer DependencyInstaller, bundler ExecutableBundler, clock chronos.Clock, logger scribe.Logger) Pipeline {
	return Pipeline{
		parser:    parser,
		installer: installer,
		bundler:   bundler,
		clock:     clock,
		logger:    logger,
	}
}

func (p Pipeline) Run(workingDir string, options Options) (Result, error) {
	p.logger.Title("FileClassify release pipeline")

	p.logger.Process("Resolving dependency manifest")
	requirements, err := p.parser.Parse(resolvePath(workingDir, options.ManifestPath))
	if err != nil {
		return Result{}, err
	}
	p.logger.Subprocess("Found %d requirements in %s", len(requirements), options.ManifestPath)

	outputDir := resolvePath(workingDir, options.Bundle.OutputDir)
	state, err := LoadBuildState(outputDir)
	if err != nil {
		return Result{}, err
	}

	run, sha, err := p.installer.ShouldRun(workingDir, options.ManifestPath, state.Metadata())
	if err != nil {
		return Result{}, err
	}

	var result Result
	switch {
	case len(requirements) == 0:
		result.InstallSkipped = true
		if !run {
			sha = state.ManifestSHA
		}
		p.logger.Subprocess("Manifest is empty, skipping installation")
	case !run:
		result.InstallSkipped = true
		sha = state.ManifestSHA
		p.logger.Subprocess("Manifest unchanged since %s, skipping installation", state.BuiltAt.Format(time.RFC3339))
	default:
		p.logger.Process("Installing dependencies")

		duration, err := p.clock.Measure(func() error {
			return p.installer.Run(workingDir, options.ManifestPath)
		})
		if err != nil {
			return Result{}, err
		}

		p.logger.Action("Completed in %s", duration.Round(time.Millisecond))
	}
	p.logger.Break()

	p.logger.Process("Bundling executable")

	duration, err := p.clock.Measure(func() error {
		result.ArtifactPath, err = p.bundler.Run(workingDir, options.Bundle)
		return err
	})
	if err != nil {
		return Result{}, err
	}

	p.logger.Action("Completed in %s", duration.Round(time.Millisecond))
	p.logger.Break()

	err = BuildState{BuiltAt: p.clock.Now(), ManifestSHA: sha}.Save(outputDir)
	if err != nil {
		return Result{}, err
	}

	p.logger.Process("Build complete")
	p.logger.Subprocess("%s", result.ArtifactPath)
	p.logger.Break()

	return result, nil
}
