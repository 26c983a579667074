package storyteller

import "strings"

// SplitLines turns raw lyric text into the ordered list of trimmed,
// non-empty lines used as generation prompts. Lines are not deduplicated;
// narrative order is preserved.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
