// Package bundler implements the release pipeline: install the packaged
// application's declared dependencies from a manifest, then invoke the
// bundling tool to produce a single-file, windowed executable.
package bundler

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Requirement is one manifest entry: a package name and an optional version
// specifier such as "==2.1.0" or ">=1.4".
type Requirement struct {
	Name      string
	Specifier string
}

var requirementPattern = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9._-]*(?:\[[^\]]*\])?)\s*(.*)$`)

// RequirementsParser parses pip-style requirements manifests.
type RequirementsParser struct{}

func NewRequirementsParser() RequirementsParser {
	return RequirementsParser{}
}

// Parse reads the manifest at path. Blank lines and comments are skipped, as
// are option lines ("-r", "--index-url", ...); inline comments and
// environment markers are stripped.
func (p RequirementsParser) Parse(path string) ([]Requirement, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer file.Close()

	var requirements []Requirement
	lineNum := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}

		if idx := strings.Index(line, " #"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if idx := strings.Index(line, ";"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if line == "" {
			continue
		}

		matches := requirementPattern.FindStringSubmatch(line)
		if matches == nil {
			return nil, fmt.Errorf("manifest line %d: cannot parse requirement %q", lineNum, line)
		}

		requirements = append(requirements, Requirement{
			Name:      matches[1],
			Specifier: strings.TrimSpace(matches[2]),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	return requirements, nil
}
