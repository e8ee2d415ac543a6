package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/ppopth/galois"
	"github.com/ppopth/galois/search"
)

// Report is the JSON form of a search result
type Report struct {
	Prime   int64        `json:"prime"`
	Modulus []int64      `json:"modulus"`
	Degree  int          `json:"degree"`
	Pairs   []ReportPair `json:"pairs"`
}

// ReportPair is a primitive root and its minimal polynomial
type ReportPair struct {
	Root    []int64 `json:"root"`
	Minimal []int64 `json:"minimal_polynomial"`
}

func main() {
	var (
		prime         = flag.Int64("p", 3, "Prime field modulus")
		modulus       = flag.String("modulus", "1,0,2", "Ring modulus coefficients, most significant first")
		degree        = flag.Int("degree", 0, "Extension degree to search (default: degree of the modulus)")
		maxCandidates = flag.Uint64("max-candidates", search.DefaultMaxCandidates, "Maximum number of candidates enumerated per search")
		logLevel      = flag.String("log-level", "warn", "Log level: debug, info, warn, error")
		outputFile    = flag.String("output", "", "Optional output file for the JSON report")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "primpoly - List primitive roots of GF(p)[x]/(m(x)) and their minimal polynomials\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  GF(3)[x]/(x^2 + 1):\n")
		fmt.Fprintf(os.Stderr, "    %s -p 3 -modulus 1,0,1\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  GF(2)[x]/(x^3 + x + 1) with a JSON report:\n")
		fmt.Fprintf(os.Stderr, "    %s -p 2 -modulus 1,0,1,1 -output gf8.json\n\n", os.Args[0])
	}

	flag.Parse()

	if err := logging.SetLogLevel("search", *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q: %v\n", *logLevel, err)
		os.Exit(1)
	}

	cfg, err := galois.Parse(*prime, *modulus)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	r, err := galois.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *degree == 0 {
		*degree = r.Degree()
	}

	s, err := search.New(r, search.WithMaxCandidates(*maxCandidates))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Searching %s, degree %d\n\n", r, *degree)

	pairs, err := s.PrimitivePolynomials(*degree)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}

	printPairs(os.Stdout, pairs)
	fmt.Printf("\n%d primitive roots\n", len(pairs))

	if *outputFile == "" {
		return
	}

	report := Report{
		Prime:   cfg.Prime,
		Modulus: cfg.Modulus,
		Degree:  *degree,
		Pairs:   make([]ReportPair, len(pairs)),
	}
	for i, pair := range pairs {
		report.Pairs[i] = ReportPair{Root: pair.Root.Ints(), Minimal: pair.Minimal.Ints()}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to marshal report: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write report to file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Report written to: %s\n", *outputFile)
}

// printPairs writes one line per pair with both fields right-aligned
func printPairs(w io.Writer, pairs []search.Pair) {
	rootWidth, minimalWidth := 0, 0
	for _, pair := range pairs {
		rootWidth = max(rootWidth, len(pair.Root.String()))
		minimalWidth = max(minimalWidth, len(pair.Minimal.String()))
	}

	for _, pair := range pairs {
		fmt.Fprintf(w, "primitive root: %*s    minimal polynomial: %*s\n",
			rootWidth, pair.Root, minimalWidth, pair.Minimal)
	}
}
