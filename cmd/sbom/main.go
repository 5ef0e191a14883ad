// Command sbom is a thin CLI front end for the sbom package: it reads
// a document off disk and a set of patterns off the command line, and
// reports whether the document contains every pattern as a substring.
// None of this is part of the core engine; it exists only to make the
// library runnable from a shell.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/itgcl/sbom"
	"github.com/itgcl/sbom/internal/dot"
	"github.com/itgcl/sbom/internal/obslog"
)

type patternList [][]byte

func (p *patternList) String() string {
	return fmt.Sprintf("%d patterns", len(*p))
}

func (p *patternList) Set(value string) error {
	*p = append(*p, []byte(value))
	return nil
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "search":
		runSearch(os.Args[2:])
	case "dot":
		runDot(os.Args[2:])
	case "bench":
		runBench(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: sbom <search|dot|bench> [flags]")
}

func runSearch(args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	docPath := fs.String("doc", "", "path to the document file")
	naive := fs.Bool("naive", false, "use the naive reference scan instead of the oracle")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	var patterns patternList
	fs.Var(&patterns, "pattern", "pattern to search for; repeatable")
	_ = fs.Parse(args)

	obslog.SetVerbose(*verbose)

	document, err := readDoc(*docPath)
	if err != nil {
		obslog.Logger.Fatal().Err(err).Str("path", *docPath).Msg("read document")
	}
	if len(patterns) == 0 {
		obslog.Logger.Fatal().Msg("at least one --pattern is required")
	}

	start := time.Now()
	var found bool
	if *naive {
		found, err = sbom.SearchNaive(document, patterns)
	} else {
		found, err = sbom.Search(document, patterns)
	}
	elapsed := time.Since(start)
	if err != nil {
		obslog.Logger.Fatal().Err(err).Msg("search")
	}

	obslog.Logger.Info().
		Int("patterns", len(patterns)).
		Int("document_bytes", len(document)).
		Bool("naive", *naive).
		Dur("elapsed", elapsed).
		Bool("result", found).
		Msg("search complete")

	fmt.Println(found)
}

func runDot(args []string) {
	fs := flag.NewFlagSet("dot", flag.ExitOnError)
	outPath := fs.String("out", "", "output path; defaults to stdout")
	var patterns patternList
	fs.Var(&patterns, "pattern", "pattern to include in the oracle; repeatable")
	_ = fs.Parse(args)

	if len(patterns) == 0 {
		obslog.Logger.Fatal().Msg("at least one --pattern is required")
	}

	oracle, err := sbom.New(patterns)
	if err != nil {
		obslog.Logger.Fatal().Err(err).Msg("build oracle")
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			obslog.Logger.Fatal().Err(err).Str("path", *outPath).Msg("create output")
		}
		defer f.Close()
		out = f
	}

	if err := dot.Write(out, oracle); err != nil {
		obslog.Logger.Fatal().Err(err).Msg("write dot graph")
	}
}

func runBench(args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	docPath := fs.String("doc", "", "path to the document file")
	var patterns patternList
	fs.Var(&patterns, "pattern", "pattern to search for; repeatable")
	_ = fs.Parse(args)

	document, err := readDoc(*docPath)
	if err != nil {
		obslog.Logger.Fatal().Err(err).Str("path", *docPath).Msg("read document")
	}
	if len(patterns) == 0 {
		obslog.Logger.Fatal().Msg("at least one --pattern is required")
	}

	naiveStart := time.Now()
	naiveResult, err := sbom.SearchNaive(document, patterns)
	naiveElapsed := time.Since(naiveStart)
	if err != nil {
		obslog.Logger.Fatal().Err(err).Msg("naive search")
	}

	sbomStart := time.Now()
	sbomResult, err := sbom.Search(document, patterns)
	sbomElapsed := time.Since(sbomStart)
	if err != nil {
		obslog.Logger.Fatal().Err(err).Msg("sbom search")
	}

	obslog.Logger.Info().
		Dur("naive_elapsed", naiveElapsed).
		Dur("sbom_elapsed", sbomElapsed).
		Bool("naive_result", naiveResult).
		Bool("sbom_result", sbomResult).
		Msg("bench complete")

	fmt.Printf("naive: %v in %s\n", naiveResult, naiveElapsed)
	fmt.Printf("sbom:  %v in %s\n", sbomResult, sbomElapsed)
}

func readDoc(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("--doc is required")
	}
	return os.ReadFile(path)
}
