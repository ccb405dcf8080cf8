package fileclassify

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/paketo-buildpacks/packit/v2/scribe"
	"golang.org/x/sync/errgroup"
)

//go:generate faux --interface FileClassifier --output fakes/file_classifier.go
type FileClassifier interface {
	Classify(ctx context.Context, path string) (Classification, error)
}

type Planner struct {
	classifier FileClassifier
	rule       string
	workers    int
	logger     scribe.Logger
}

func NewPlanner(classifier FileClassifier, rule string, workers int, logger scribe.Logger) Planner {
	if workers < 1 {
		workers = 1
	}

	return Planner{
		classifier: classifier,
		rule:       rule,
		workers:    workers,
		logger:     logger,
	}
}

// Plan walks sourceDir, classifies every regular file, and produces the move
// plan toward targetDir. Hidden files and directories are skipped. Moves are
// ordered by source path.
func (p Planner) Plan(ctx context.Context, sourceDir, targetDir string) (Plan, error) {
	var paths []string
	err := filepath.WalkDir(sourceDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if strings.HasPrefix(entry.Name(), ".") && path != sourceDir {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !entry.IsDir() {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return Plan{}, fmt.Errorf("walking %s: %w", sourceDir, err)
	}

	p.logger.Process("Classifying %d files", len(paths))

	moves := make([]Move, len(paths))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.workers)

	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			classification, err := p.classifier.Classify(groupCtx, path)
			if err != nil {
				return err
			}

			relative := GenerateTargetPath(p.rule, classification.Fields())
			moves[i] = Move{
				Source:         path,
				TargetDir:      filepath.Join(targetDir, relative),
				FileName:       filepath.Base(path),
				Classification: classification,
			}

			p.logger.Subprocess("%s -> %s", filepath.Base(path), relative)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Plan{}, err
	}

	return Plan{
		SourceDir: sourceDir,
		TargetDir: targetDir,
		CreatedAt: time.Now().UTC(),
		Moves:     moves,
	}, nil
}
