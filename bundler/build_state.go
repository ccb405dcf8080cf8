package bundler

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const buildStateFile = "build-state.toml"

// BuildState records the outcome of the last successful pipeline run. It
// lives next to the artifact in the output directory and feeds the
// installer's checksum gate.
type BuildState struct {
	BuiltAt     time.Time `toml:"built_at"`
	ManifestSHA string    `toml:"manifest_sha"`
}

// LoadBuildState reads the state from dir. A missing file yields the zero
// state.
func LoadBuildState(dir string) (BuildState, error) {
	var state BuildState

	_, err := toml.DecodeFile(filepath.Join(dir, buildStateFile), &state)
	if err != nil {
		if os.IsNotExist(err) {
			return BuildState{}, nil
		}
		return BuildState{}, fmt.Errorf("decoding build state: %w", err)
	}

	return state, nil
}

// Save writes the state into dir, creating it if needed.
func (s BuildState) Save(dir string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	file, err := os.Create(filepath.Join(dir, buildStateFile))
	if err != nil {
		return fmt.Errorf("creating build state: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(s); err != nil {
		return fmt.Errorf("encoding build state: %w", err)
	}

	return nil
}

// Metadata exposes the state in the map form the install process consumes.
func (s BuildState) Metadata() map[string]interface{} {
	return map[string]interface{}{
		"manifest_sha": s.ManifestSHA,
	}
}
