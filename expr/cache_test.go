package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.starlark.net/syntax"

	"github.com/guna-amangeldi/dev-horoscope/expr"
)

func parseExpr(t *testing.T, src string) syntax.Expr {
	t.Helper()
	e, err := syntax.ParseExpr("test.star", src, 0)
	require.NoError(t, err)
	return e
}

func TestExprCache_ToString(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: "name", want: "name"},
		{src: "3", want: "3"},
		{src: `"hi"`, want: `"hi"`},
		{src: "a + b", want: "a + b"},
		{src: "f(x, 1)", want: "f(x, 1)"},
		{src: "obj.attr", want: "obj.attr"},
		{src: "[1, 2]", want: "[1, 2]"},
		{src: "{1: 2}", want: "{1: 2}"},
		{src: "xs[0]", want: "xs[0]"},
	}

	cache := expr.NewExprCache(100)
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, cache.ToString(parseExpr(t, tt.src)))
		})
	}
}

func TestExprCache_GetPut(t *testing.T) {
	cache := expr.NewExprCache(10)
	e := parseExpr(t, "x")

	_, ok := cache.Get(e)
	assert.False(t, ok)

	cache.Put(e, "x")
	got, ok := cache.Get(e)
	assert.True(t, ok)
	assert.Equal(t, "x", got)

	cache.Clear()
	_, ok = cache.Get(e)
	assert.False(t, ok)
}
