package fileclassify

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fileclassify/fileclassify/extract"
	"github.com/paketo-buildpacks/packit/v2/scribe"
)

//go:generate faux --interface TextSource --output fakes/text_source.go
type TextSource interface {
	Text(path string) (string, error)
}

//go:generate faux --interface ClassificationClient --output fakes/classification_client.go
type ClassificationClient interface {
	ExtractJSON(ctx context.Context, prompt, systemPrompt string) (map[string]any, error)
}

// Classification holds the structured fields extracted for a single file.
type Classification struct {
	Category     string `yaml:"category"`
	Year         string `yaml:"year"`
	Month        string `yaml:"month"`
	Summary      string `yaml:"summary"`
	OriginalName string `yaml:"original_name"`
}

// Fields returns the classification as the field map consumed by
// GenerateTargetPath.
func (c Classification) Fields() map[string]string {
	return map[string]string{
		"category":      c.Category,
		"year":          c.Year,
		"month":         c.Month,
		"summary":       c.Summary,
		"original_name": c.OriginalName,
	}
}

type Classifier struct {
	source     TextSource
	client     ClassificationClient
	rules      []Rule
	maxSnippet int
	logger     scribe.Logger
}

func NewClassifier(source TextSource, client ClassificationClient, rules []Rule, maxSnippet int, logger scribe.Logger) Classifier {
	return Classifier{
		source:     source,
		client:     client,
		rules:      rules,
		maxSnippet: maxSnippet,
		logger:     logger,
	}
}

// Classify extracts a content snippet from the file, prompts the model for
// the structured fields, and normalizes the result. Files with unsupported
// extensions or unreadable content are classified on the file name alone.
func (c Classifier) Classify(ctx context.Context, path string) (Classification, error) {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	snippet := ""
	text, err := c.source.Text(path)
	switch {
	case errors.Is(err, extract.ErrUnsupported):
		// Classification falls back to the file name.
	case err != nil:
		c.logger.Subprocess("Unable to read %s: %s", name, err)
	default:
		snippet = extract.Snippet(text, c.maxSnippet)
	}

	prompt := name
	if strings.TrimSpace(snippet) != "" {
		prompt = fmt.Sprintf("%s\n\nFile content (excerpt):\n%s", name, snippet)
	}

	fields, err := c.client.ExtractJSON(ctx, prompt, BuildDynamicPrompt(c.rules))
	if err != nil {
		return Classification{}, fmt.Errorf("classifying %s: %w", name, err)
	}

	classification := Classification{
		Category:     stringField(fields, "category"),
		Year:         stringField(fields, "year"),
		Month:        stringField(fields, "month"),
		Summary:      stringField(fields, "summary"),
		OriginalName: stringField(fields, "original_name"),
	}
	if classification.OriginalName == UnknownSegment {
		classification.OriginalName = stem
	}

	return c.constrain(classification), nil
}

// constrain forces enum-limited fields onto their allowed options. A value
// matching an option case-insensitively takes the option's spelling; anything
// else becomes Unknown.
func (c Classifier) constrain(classification Classification) Classification {
	fields := classification.Fields()

	for _, rule := range c.rules {
		if len(rule.Options) == 0 {
			continue
		}

		value, ok := fields[rule.Key]
		if !ok {
			continue
		}

		matched := UnknownSegment
		for _, option := range rule.Options {
			if strings.EqualFold(value, option) {
				matched = option
				break
			}
		}

		switch rule.Key {
		case "category":
			classification.Category = matched
		case "year":
			classification.Year = matched
		case "month":
			classification.Month = matched
		case "summary":
			classification.Summary = matched
		case "original_name":
			classification.OriginalName = matched
		}
	}

	return classification
}

func stringField(fields map[string]any, key string) string {
	value, ok := fields[key]
	if !ok {
		return UnknownSegment
	}

	s := strings.TrimSpace(fmt.Sprintf("%v", value))
	if s == "" {
		return UnknownSegment
	}

	return s
}
