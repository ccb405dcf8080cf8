package fileclassify

import (
	"path/filepath"
	"strings"
)

// UnknownSegment is the path segment used when a rule field has no usable
// value.
const UnknownSegment = "Unknown"

// GenerateTargetPath builds a relative directory path from a rule string and
// the fields extracted for a file. Each rule field contributes one segment; a
// field that is missing or blank contributes "Unknown". An empty rule yields
// "Unknown".
func GenerateTargetPath(rule string, fields map[string]string) string {
	rules := ParseRuleString(rule)
	if len(rules) == 0 {
		return UnknownSegment
	}

	segments := make([]string, 0, len(rules))
	for _, r := range rules {
		value := strings.TrimSpace(fields[r.Key])
		if value == "" {
			value = UnknownSegment
		}
		segments = append(segments, value)
	}

	return filepath.Join(segments...)
}
