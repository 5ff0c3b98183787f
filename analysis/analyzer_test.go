package analysis_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.starlark.net/syntax"

	"github.com/guna-amangeldi/dev-horoscope/analysis"
	"github.com/guna-amangeldi/dev-horoscope/types"
)

func writeFixture(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestAnalyzer_AnalyzeFile(t *testing.T) {
	src := `# build helpers
# TODO: move to a shared module

def library(name, srcs):
    return struct(name = name, srcs = srcs)

def _impl(name):
    return library(name, [])
`
	path := writeFixture(t, "build.star", src)

	analyzer := analysis.NewAnalyzer()
	m, err := analyzer.AnalyzeFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8, m.TotalLines)
	assert.Equal(t, 2, m.CommentLines)
	assert.Equal(t, 1, m.TodoCount)
	assert.Equal(t, 2, m.FunctionCount)
	assert.Equal(t, 2.0, m.AvgFunctionLength)
}

func TestAnalyzer_AnalyzeFile_Deterministic(t *testing.T) {
	path := writeFixture(t, "same.star", "def f():\n    pass\n")

	analyzer := analysis.NewAnalyzer()
	first, err := analyzer.AnalyzeFile(path)
	require.NoError(t, err)
	second, err := analyzer.AnalyzeFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyzer_FileNotFound(t *testing.T) {
	analyzer := analysis.NewAnalyzer()
	m, err := analyzer.AnalyzeFile(filepath.Join(t.TempDir(), "missing.star"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, types.Metrics{}, m)
}

func TestAnalyzer_SyntaxError(t *testing.T) {
	path := writeFixture(t, "broken.star", "def broken(\n")

	analyzer := analysis.NewAnalyzer()
	m, err := analyzer.AnalyzeFile(path)
	require.Error(t, err)

	var serr syntax.Error
	assert.True(t, errors.As(err, &serr))
	assert.Equal(t, types.Metrics{}, m)
}
