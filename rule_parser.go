package fileclassify

import (
	"regexp"
	"strings"
)

// Rule is a single field in a classification rule string. Options is nil when
// the field carries no enum constraint.
type Rule struct {
	Key     string
	Options []string
}

var fieldAliases = map[string]string{
	"类型":            "category",
	"category":      "category",
	"年份":            "year",
	"year":          "year",
	"月份":            "month",
	"month":         "month",
	"原文件名":          "original_name",
	"original name": "original_name",
	"摘要":            "summary",
	"summary":       "summary",
}

var rulePattern = regexp.MustCompile(`^([^\[]+?)\s*(?:\[([^\]]+)\])?$`)

// ParseRuleString parses a '>>'-separated rule string into its fields. Each
// field may carry a bracketed enum constraint, split on ASCII or full-width
// commas: "Category [Contract, Invoice] >> Year". Field names are mapped to
// canonical keys; unrecognized names pass through lowercased.
func ParseRuleString(rule string) []Rule {
	if strings.TrimSpace(rule) == "" {
		return nil
	}

	var rules []Rule
	for _, part := range strings.Split(rule, ">>") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		matches := rulePattern.FindStringSubmatch(part)
		if matches == nil {
			rules = append(rules, Rule{Key: canonicalKey(part)})
			continue
		}

		var options []string
		if matches[2] != "" {
			for _, opt := range splitOptions(matches[2]) {
				if opt = strings.TrimSpace(opt); opt != "" {
					options = append(options, opt)
				}
			}
		}

		rules = append(rules, Rule{
			Key:     canonicalKey(strings.TrimSpace(matches[1])),
			Options: options,
		})
	}

	return rules
}

func canonicalKey(field string) string {
	field = strings.ToLower(field)
	if key, ok := fieldAliases[field]; ok {
		return key
	}
	return field
}

func splitOptions(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '，'
	})
}
