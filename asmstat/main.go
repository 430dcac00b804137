// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// asmstat calculates and prints contig level quality statistics of a
// genome assembly from a multi-FASTA DNA sequence file (default stdin).
// The input may be gzip compressed. It prints: the total no. of contigs,
// assembly size, N50/L50, N90/L90 and any additional requested Nx/Lx
// values, longest, shortest and average contig length, auN, the number of
// contigs longer than 10 kbp and 100 kbp, the GC content and the
// percentage of A, T, C, G and other bases.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"strings"

	"github.com/biogo/asmstat/assembly"
)

var (
	inf   = flag.String("in", "", "input contig file, optionally gzip compressed. Defaults to stdin.")
	outf  = flag.String("out", "", "output file name. Defaults to stdout.")
	min   = flag.Int("min", 0, "minimum contig length cut-off (bp); shorter contigs are ignored.")
	nxs   = flag.String("nx", "", "comma separated list of additional Nx percentages to report, e.g. \"25,75\".")
	lang  = flag.String("lang", "en", "report language: en or zh.")
	tsv   = flag.Bool("tsv", false, "write a tab separated header and value line instead of labelled text.")
	plotf = flag.String("plot", "", "write an Nx curve plot to this file; format is taken from the extension.")
	help  = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	extra, err := parseThresholds(*nxs)
	if err != nil {
		log.Fatalf("bad -nx flag: %v", err)
	}
	if _, ok := languages[*lang]; !ok {
		log.Fatalf("unknown language %q", *lang)
	}

	var recs []assembly.Record
	if *inf == "" {
		fmt.Fprintln(os.Stderr, "Reading sequences from stdin.")
		var r io.ReadCloser
		r, err = assembly.Decompress(os.Stdin)
		if err != nil {
			log.Fatalf("failed to read stdin: %v", err)
		}
		recs, err = assembly.Read(r)
	} else {
		fmt.Fprintf(os.Stderr, "Reading sequence from `%s'.\n", *inf)
		recs, err = assembly.ReadFile(*inf)
	}
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}

	if *min > 0 {
		n := len(recs)
		recs = assembly.Filter(recs, *min)
		fmt.Fprintf(os.Stderr, "Discarded %d of %d contigs shorter than %d bp.\n", n-len(recs), n, *min)
	}

	rep := assembly.Compute(recs, extra...)

	out := os.Stdout
	if *outf != "" {
		out, err = os.Create(*outf)
		if err != nil {
			log.Fatalf("failed to open %q: %v", *outf, err)
		}
		fmt.Fprintf(os.Stderr, "Writing output to `%s'.\n", *outf)
	}
	if *tsv {
		err = writeTSV(out, name(*inf), rep)
	} else {
		err = writeText(out, rep, *lang)
	}
	if err != nil {
		log.Fatalf("failed to write report: %v", err)
	}
	if err = out.Close(); err != nil {
		log.Fatalf("failed to close %q: %v", out.Name(), err)
	}

	if *plotf != "" {
		if rep.TotalContigs == 0 {
			fmt.Fprintln(os.Stderr, "No contigs: not writing Nx plot.")
			return
		}
		if err = plotCurve(*plotf, name(*inf), rep.Curve); err != nil {
			log.Fatalf("failed to plot: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote Nx plot to `%s'.\n", *plotf)
	}
}

// name returns the base name of the input file without any extension,
// or "stdin" if the input is read from stdin.
func name(file string) string {
	if file == "" {
		return "stdin"
	}
	return strings.Split(path.Base(file), ".")[0]
}
