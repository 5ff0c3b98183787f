package analysis

import (
	"github.com/guna-amangeldi/dev-horoscope/parser"
	"github.com/guna-amangeldi/dev-horoscope/types"
)

// ExtractMetrics computes the Metrics record for one parsed file.
func ExtractMetrics(fa parser.FileAnalysis) types.Metrics {
	lines := SplitLines(string(fa.Source))

	m := types.Metrics{
		TotalLines:    len(lines),
		CommentLines:  CountCommentLines(lines),
		TodoCount:     CountTodoLines(lines),
		FunctionCount: len(fa.Functions),
	}

	if len(fa.Functions) > 0 {
		total := 0
		for _, fn := range fa.Functions {
			total += fn.Span()
		}
		m.AvgFunctionLength = float64(total) / float64(len(fa.Functions))
	}

	return m
}
