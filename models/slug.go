package models

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveSlug turns a title into its URL-safe identifier: lowercase, every run
// of non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed.
func DeriveSlug(title string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// NormalizeTags trims and lowercases each tag, dropping empties and duplicates
// while keeping the submitted order.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		normalized = append(normalized, tag)
	}
	return normalized
}
