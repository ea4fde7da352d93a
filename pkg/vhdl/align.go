package vhdl

import "strings"

// alignColumns pads the text before the first occurrence of sep in each
// line so that sep starts at the same column everywhere. Lines without
// sep pass through unchanged. Alignment is a presentation pass over
// already-correct lines; it never changes anything past the separator.
func alignColumns(lines []string, sep string) []string {
	width := 0
	for _, line := range lines {
		if i := strings.Index(line, sep); i > width {
			width = i
		}
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		j := strings.Index(line, sep)
		if j < 0 {
			out[i] = line
			continue
		}
		out[i] = line[:j] + strings.Repeat(" ", width-j) + line[j:]
	}
	return out
}
