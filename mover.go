package fileclassify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paketo-buildpacks/packit/v2/fs"
	"github.com/paketo-buildpacks/packit/v2/scribe"
)

type Mover struct {
	logger scribe.Logger
}

func NewMover(logger scribe.Logger) Mover {
	return Mover{logger: logger}
}

// Apply executes a plan move by move, creating target directories as needed.
// A name collision at the destination gets a " (n)" suffix before the
// extension. Apply stops at the first failure and reports how many moves
// completed.
func (m Mover) Apply(plan Plan) (int, error) {
	for i, move := range plan.Moves {
		if err := os.MkdirAll(move.TargetDir, os.ModePerm); err != nil {
			return i, fmt.Errorf("creating %s: %w", move.TargetDir, err)
		}

		destination, err := availableName(move.TargetDir, move.FileName)
		if err != nil {
			return i, err
		}

		if err := fs.Move(move.Source, destination); err != nil {
			return i, fmt.Errorf("moving %s: %w", move.Source, err)
		}

		m.logger.Subprocess("Moved %s -> %s", move.FileName, destination)
	}

	return len(plan.Moves), nil
}

func availableName(dir, name string) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	candidate := filepath.Join(dir, name)
	for n := 1; ; n++ {
		_, err := os.Stat(candidate)
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", candidate, err)
		}

		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
	}
}
