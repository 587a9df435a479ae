package textutil

import (
	"strings"
)

// SplitTags breaks a comma-joined cell into its individual tags,
// trimming whitespace and discarding empty entries.
func SplitTags(cell string) []string {
	if cell == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(cell, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tags = append(tags, part)
	}
	return tags
}

// JoinTags is the inverse of SplitTags, preserving the order of tags.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
