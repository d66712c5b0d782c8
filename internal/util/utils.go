package util

import "strings"

// ParseCommaSeparated splits an env-style list such as "a, b,,c" into its
// non-empty, trimmed parts. An empty input yields nil.
func ParseCommaSeparated(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
