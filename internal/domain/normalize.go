package domain

import (
	"strings"
	"unicode"
)

// NormalizeNames trims, lowercases and deduplicates names, preserving first
// occurrence order and dropping empties.
func NormalizeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))

	for _, name := range names {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}

	return out
}

// UnionNames returns existing plus the already-normalized incoming names that
// are not present yet, preserving order. existing is not modified.
func UnionNames(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing))
	out := make([]string, 0, len(existing)+len(incoming))

	for _, name := range existing {
		seen[strings.ToLower(name)] = struct{}{}
		out = append(out, name)
	}

	for _, name := range incoming {
		if _, ok := seen[strings.ToLower(name)]; ok {
			continue
		}
		seen[strings.ToLower(name)] = struct{}{}
		out = append(out, name)
	}

	return out
}

// TitleCase uppercases the first letter, matching how stored company names
// are presented back in form options and calendar titles.
func TitleCase(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// OptionValue derives a machine value from a display label: trimmed,
// lowercased, spaces replaced with hyphens.
func OptionValue(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "-")
}
