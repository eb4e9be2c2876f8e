package ocr

import "strings"

// SplitLines breaks engine output into individual text lines in reading
// order. Engines terminate lines with "\n" or "\r\n"; both are handled.
// Blank lines are dropped.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
