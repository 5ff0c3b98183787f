package parser

import (
	"github.com/guna-amangeldi/dev-horoscope/types"
)

// FindFunction returns the first collected function with the given name,
// or nil if the file defines none.
func FindFunction(fa FileAnalysis, name string) *types.FunctionInfo {
	for i, fn := range fa.Functions {
		if fn.Name == name {
			return &fa.Functions[i]
		}
	}
	return nil
}
