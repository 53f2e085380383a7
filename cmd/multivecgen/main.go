// Code generator for the fixed-arity multivec types.
// Renders vec.go.tmpl once per column count into <dir>/vec<N>_gen.go.

package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

var (
	minArity = flag.Int("min", 2, "smallest column count to generate")
	maxArity = flag.Int("max", 6, "largest column count to generate")
	output   = flag.String("o", ".", "output directory")
	verbose  = flag.Bool("v", false, "verbose output")
)

//go:embed vec.go.tmpl
var vecTemplate string

var words = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight"}

func main() {
	flag.Parse()

	gen := &Generator{
		Min:       *minArity,
		Max:       *maxArity,
		OutputDir: *output,
		Verbose:   *verbose,
	}

	if err := gen.Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type Generator struct {
	Min       int
	Max       int
	OutputDir string
	Verbose   bool
}

// Arity is the template input for one generated file.
type Arity struct {
	N      int
	Word   string
	Params string // "T0, T1 any"
	Args   string // "T0, T1"
	Cols   []Col
}

type Col struct {
	I    int
	Prev []int // columns pulled before this one in ExtendColumns
}

func newArity(n int) Arity {
	a := Arity{N: n, Word: words[n]}
	names := make([]string, n)
	for i := range n {
		names[i] = fmt.Sprintf("T%d", i)
		prev := make([]int, i)
		for j := range prev {
			prev[j] = j
		}
		a.Cols = append(a.Cols, Col{I: i, Prev: prev})
	}
	a.Args = strings.Join(names, ", ")
	a.Params = a.Args + " any"
	return a
}

func (g *Generator) Generate() error {
	if g.Min < 2 || g.Max >= len(words) || g.Min > g.Max {
		return fmt.Errorf("arity range [%d, %d] must lie within [2, %d]", g.Min, g.Max, len(words)-1)
	}

	tmpl, err := template.New("vec").Parse(vecTemplate)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	for n := g.Min; n <= g.Max; n++ {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, newArity(n)); err != nil {
			return fmt.Errorf("render arity %d: %w", n, err)
		}

		src, err := format.Source(buf.Bytes())
		if err != nil {
			return fmt.Errorf("format arity %d: %w", n, err)
		}

		path := filepath.Join(g.OutputDir, fmt.Sprintf("vec%d_gen.go", n))
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return err
		}

		if g.Verbose {
			fmt.Printf("wrote %s\n", path)
		}
	}

	return nil
}
