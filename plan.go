package fileclassify

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Move is one planned relocation: Source moves into TargetDir keeping
// FileName.
type Move struct {
	Source         string         `yaml:"source"`
	TargetDir      string         `yaml:"target_dir"`
	FileName       string         `yaml:"file_name"`
	Classification Classification `yaml:"classification"`
}

// Plan is the reviewable output of a classification run. It can be written to
// a file, inspected or edited, and applied later.
type Plan struct {
	SourceDir string    `yaml:"source_dir"`
	TargetDir string    `yaml:"target_dir"`
	CreatedAt time.Time `yaml:"created_at"`
	Moves     []Move    `yaml:"moves"`
}

// Write encodes the plan as YAML.
func (p Plan) Write(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()

	if err := encoder.Encode(p); err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}

	return nil
}

// ReadPlan decodes a YAML plan.
func ReadPlan(r io.Reader) (Plan, error) {
	var plan Plan
	if err := yaml.NewDecoder(r).Decode(&plan); err != nil {
		return Plan{}, fmt.Errorf("decoding plan: %w", err)
	}

	return plan, nil
}
