package filter

import (
	"path/filepath"
	"strings"

	"kcisum/internal/domain"
)

// Filter filters records by board name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByBoard filters records by board name using wildcard matching
// Supports patterns like "rpi*" or "*beagle*"
func (f *Filter) FilterByBoard(records []domain.Record, pattern string) []domain.Record {
	if pattern == "" {
		return records
	}

	var filtered []domain.Record
	for _, r := range records {
		if MatchName(pattern, r.Board) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// MatchName reports whether name matches pattern.
// Patterns with wildcards are tried with filepath.Match first, then as an ordered
// list of substrings separated by "*"; plain patterns are substring matches.
func MatchName(pattern, name string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		rest := name
		hasNonEmptyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			idx := strings.Index(rest, part)
			if idx < 0 {
				return false
			}
			rest = rest[idx+len(part):]
		}
		return hasNonEmptyPart
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}

	return false
}
