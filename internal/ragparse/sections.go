package ragparse

import "strings"

// Section returns the body of the markdown section opened by the given
// heading, from the heading line (exclusive) to the next heading of equal or
// higher rank, or the end of the text. The heading is matched as a
// case-sensitive line prefix; a missing heading yields an empty section.
// Sub-headings are resolved the same way against an enclosing section's body.
func Section(content, heading string) string {
	level := headingLevel(heading)
	lines := strings.Split(content, "\n")

	start := -1
	for i, line := range lines {
		if start == -1 {
			if strings.HasPrefix(line, heading) {
				start = i + 1
			}
			continue
		}
		if lvl := headingLevel(line); lvl > 0 && lvl <= level {
			return strings.Join(lines[start:i], "\n")
		}
	}

	if start == -1 {
		return ""
	}
	return strings.Join(lines[start:], "\n")
}

// headingLevel returns the markdown heading rank of a line (1 for "# ",
// 2 for "## ", ...), or 0 for non-heading lines.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n >= len(line) || line[n] != ' ' {
		return 0
	}
	return n
}
