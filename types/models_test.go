package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guna-amangeldi/dev-horoscope/types"
)

func TestMetrics_CommentRatio(t *testing.T) {
	assert.Zero(t, types.Metrics{}.CommentRatio())
	assert.Equal(t, 0.25, types.Metrics{TotalLines: 20, CommentLines: 5}.CommentRatio())
}

func TestMetrics_String_RoundsAverage(t *testing.T) {
	m := types.Metrics{TotalLines: 10, FunctionCount: 3, AvgFunctionLength: 4.5}
	assert.Equal(t, "lines=10 comments=0 todos=0 functions=3 avg_func_length=5", m.String())
}

func TestFunctionInfo_Span(t *testing.T) {
	fn := types.FunctionInfo{StartLine: 4, EndLine: 9}
	assert.Equal(t, 6, fn.Span())
}
