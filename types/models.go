package types

import (
	"fmt"
	"math"
)

// Metrics is the flat record of counted and derived statistics for one
// source file. It is built once per run and never mutated afterwards.
type Metrics struct {
	TotalLines        int     `json:"total_lines"`
	CommentLines      int     `json:"comment_lines"`
	TodoCount         int     `json:"todo_count"`
	FunctionCount     int     `json:"function_count"`
	AvgFunctionLength float64 `json:"avg_function_length"`
}

// CommentRatio returns comment lines as a fraction of total lines,
// or 0 for an empty file.
func (m Metrics) CommentRatio() float64 {
	if m.TotalLines == 0 {
		return 0
	}
	return float64(m.CommentLines) / float64(m.TotalLines)
}

// String renders the record for humans. The average function length is
// rounded to the nearest integer for display only.
func (m Metrics) String() string {
	return fmt.Sprintf("lines=%d comments=%d todos=%d functions=%d avg_func_length=%d",
		m.TotalLines, m.CommentLines, m.TodoCount, m.FunctionCount,
		int(math.Round(m.AvgFunctionLength)))
}

// FunctionInfo describes one function definition found in the parse tree.
type FunctionInfo struct {
	Name      string   `json:"name"`
	File      string   `json:"file"`
	StartLine int      `json:"start_line"`
	EndLine   int      `json:"end_line"`
	Params    []string `json:"params"`
	IsPrivate bool     `json:"is_private"`
}

// Span returns the inclusive line span of the definition.
func (f FunctionInfo) Span() int {
	return f.EndLine - f.StartLine + 1
}
