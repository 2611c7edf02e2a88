package reply

import (
	"fmt"
	"strings"
)

// FormatLine renders one body line of a reply. The comment is appended in
// parentheses only when present.
func FormatLine(name, val, comment string) string {
	if comment != "" {
		return fmt.Sprintf("— %s: %s (%s)", name, val, comment)
	}
	return fmt.Sprintf("— %s: %s", name, val)
}

// nonEmptyLines splits pasted text into trimmed, non-empty lines.
func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
