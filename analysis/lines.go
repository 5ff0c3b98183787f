package analysis

import "strings"

// SplitLines splits raw source into physical lines. A trailing newline
// does not produce an extra empty line, so an empty file has zero lines
// and "a\n" has one.
func SplitLines(src string) []string {
	if src == "" {
		return nil
	}
	lines := strings.Split(src, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// CountCommentLines counts lines whose first non-whitespace content is a
// '#' comment. Starlark has no block comment syntax, so this is the whole
// story.
func CountCommentLines(lines []string) int {
	count := 0
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			count++
		}
	}
	return count
}

// CountTodoLines counts lines containing the literal substring "TODO",
// case-sensitive, whether or not the line is a comment.
func CountTodoLines(lines []string) int {
	count := 0
	for _, line := range lines {
		if strings.Contains(line, "TODO") {
			count++
		}
	}
	return count
}
