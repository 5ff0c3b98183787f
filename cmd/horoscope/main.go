package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/docopt/docopt-go"
	"go.starlark.net/syntax"

	"github.com/guna-amangeldi/dev-horoscope/analysis"
	"github.com/guna-amangeldi/dev-horoscope/horoscope"
)

const usage = `Dev Horoscope - read the stars hidden in your source code.

Usage:
  horoscope <file>

Arguments:
  <file>  Path to a Starlark source file.`

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	path, err := opts.String("<file>")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	analyzer := analysis.NewAnalyzer()
	metrics, err := analyzer.AnalyzeFile(path)
	if err != nil {
		var serr syntax.Error
		switch {
		case errors.As(err, &serr):
			fmt.Fprintf(os.Stderr, "could not parse file due to syntax error: %v\n", serr)
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(os.Stderr, "file not found: %s\n", path)
		default:
			fmt.Fprintf(os.Stderr, "could not read file: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Analyzing: %s\n", path)
	fmt.Println()
	fmt.Println("Your developer horoscope:")
	fmt.Println("--------------------------")
	fmt.Println(horoscope.Compose(metrics))
}
