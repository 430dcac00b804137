// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembly computes contig level quality statistics for a genome
// assembly read from FASTA.
package assembly

import (
	"runtime"
	"sync"

	"github.com/biogo/biogo/alphabet"

	"github.com/biogo/asmstat/composition"
	"github.com/biogo/asmstat/nx"
)

// Threshold is an Nx/Lx pair at a given percentage of the total length.
type Threshold struct {
	Percent float64
	nx.Result
}

// Report holds the statistics of an assembly. Lengths are in bp and
// percentages are in the range [0, 100]. A Report is not modified after
// it is returned by Compute.
type Report struct {
	TotalContigs int
	TotalLength  int

	N50, L50 int
	N90, L90 int

	LongestContig  int
	ShortestContig int
	AverageLength  float64
	AuN            float64

	ContigsOver10k  int
	ContigsOver100k int

	// Extra holds additional Nx/Lx pairs in the order requested.
	Extra []Threshold

	// Bases is the nucleotide tally over all contigs.
	Bases composition.Tally

	GCContent float64
	APct      float64
	TPct      float64
	CPct      float64
	GPct      float64
	NPct      float64

	// Curve holds N1 to N100.
	Curve []int
}

// Compute returns the Report for recs. Nx/Lx pairs for each of extra are
// reported in Report.Extra in addition to N50 and N90. Length and
// composition statistics are computed concurrently. Compute will panic
// if any extra threshold is not in (0, 100].
func Compute(recs []Record, extra ...float64) *Report {
	lengths := make([]int, len(recs))
	seqs := make([]alphabet.Letters, len(recs))
	for i, r := range recs {
		lengths[i] = r.Len()
		seqs[i] = r.Seq
	}

	var (
		rep   Report
		bases composition.Tally
		wg    sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		bases = composition.CountAll(seqs, runtime.GOMAXPROCS(0))
	}()

	sum := nx.Summarize(lengths)
	rep.TotalContigs = sum.Contigs
	rep.TotalLength = sum.Total
	rep.LongestContig = sum.Longest
	rep.ShortestContig = sum.Shortest
	rep.AverageLength = sum.Mean
	rep.ContigsOver10k = sum.Over10k
	rep.ContigsOver100k = sum.Over100k
	rep.AuN = nx.AuN(lengths)

	sorted := nx.Sorted(lengths)
	n50 := nx.Scan(sorted, sum.Total, 50)
	n90 := nx.Scan(sorted, sum.Total, 90)
	rep.N50, rep.L50 = n50.N, n50.L
	rep.N90, rep.L90 = n90.N, n90.L
	for _, p := range extra {
		rep.Extra = append(rep.Extra, Threshold{Percent: p, Result: nx.Scan(sorted, sum.Total, p)})
	}
	rep.Curve = nx.Curve(sorted, sum.Total)

	wg.Wait()
	rep.Bases = bases
	rep.GCContent = bases.GC()
	rep.APct = bases.Percent(composition.A)
	rep.TPct = bases.Percent(composition.T)
	rep.CPct = bases.Percent(composition.C)
	rep.GPct = bases.Percent(composition.G)
	rep.NPct = bases.Percent(composition.Other)

	return &rep
}
