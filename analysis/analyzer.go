package analysis

import (
	"github.com/guna-amangeldi/dev-horoscope/expr"
	"github.com/guna-amangeldi/dev-horoscope/parser"
	"github.com/guna-amangeldi/dev-horoscope/types"
)

// Analyzer provides a high-level interface for analyzing one source file.
type Analyzer struct {
	ExprCache *expr.ExprCache
	Parser    *parser.Parser
}

// NewAnalyzer creates an Analyzer with a shared expression cache.
func NewAnalyzer() *Analyzer {
	cache := expr.NewExprCache(10000)
	return &Analyzer{
		ExprCache: cache,
		Parser:    parser.NewParser(cache),
	}
}

// AnalyzeFile reads, parses and measures the file at path. Read and
// parse failures are fatal for the run; no partial metrics are produced.
func (a *Analyzer) AnalyzeFile(path string) (types.Metrics, error) {
	fa, err := a.Parser.ParseFile(path)
	if err != nil {
		return types.Metrics{}, err
	}
	return ExtractMetrics(fa), nil
}
