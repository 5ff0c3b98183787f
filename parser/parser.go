package parser

import (
	"fmt"
	"os"
	"strings"

	"go.starlark.net/syntax"

	"github.com/guna-amangeldi/dev-horoscope/expr"
	"github.com/guna-amangeldi/dev-horoscope/types"
)

// Parser turns one Starlark source file into a FileAnalysis.
type Parser struct {
	exprCache *expr.ExprCache
}

func NewParser(cache *expr.ExprCache) *Parser {
	return &Parser{
		exprCache: cache,
	}
}

// FileAnalysis represents the analysis results of a single file.
type FileAnalysis struct {
	Path      string
	Source    []byte
	Functions []types.FunctionInfo
}

// ParseFile reads and parses the file at path. The raw source is carried
// along so line-level counters can run over exactly the bytes that were
// parsed.
func (p *Parser) ParseFile(path string) (FileAnalysis, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return FileAnalysis{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return p.ParseSource(path, src)
}

// ParseSource parses in-memory source. The path is used only for
// positions and error messages.
func (p *Parser) ParseSource(path string, src []byte) (FileAnalysis, error) {
	f, err := syntax.Parse(path, src, syntax.RetainComments)
	if err != nil {
		return FileAnalysis{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return FileAnalysis{
		Path:      path,
		Source:    src,
		Functions: p.collectFunctions(f, path),
	}, nil
}

// collectFunctions walks the whole tree so nested defs are counted too.
// Lambdas are not function definitions for our purposes.
func (p *Parser) collectFunctions(f *syntax.File, path string) []types.FunctionInfo {
	var functions []types.FunctionInfo
	syntax.Walk(f, func(n syntax.Node) bool {
		def, ok := n.(*syntax.DefStmt)
		if !ok {
			return true
		}

		start, end := def.Span()
		fn := types.FunctionInfo{
			Name:      def.Name.Name,
			File:      path,
			StartLine: int(start.Line),
			EndLine:   int(end.Line),
			Params:    make([]string, 0, len(def.Params)),
			IsPrivate: strings.HasPrefix(def.Name.Name, "_"),
		}
		for _, param := range def.Params {
			fn.Params = append(fn.Params, p.exprCache.ToString(param))
		}

		functions = append(functions, fn)
		return true
	})
	return functions
}
