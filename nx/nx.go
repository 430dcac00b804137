// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nx provides contig length statistics for genome assemblies:
// the Nx/Lx rank statistics, the Nx curve, auN and simple length
// summaries.
package nx

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Large contig thresholds in bp. A contig is counted when its length is
// strictly greater than the threshold.
const (
	Over10k  = 10000
	Over100k = 100000
)

// Result holds an Nx value and its corresponding Lx rank.
type Result struct {
	// N is the length of the contig at which the cumulative length,
	// summed from the longest contig, first reaches the threshold.
	N int
	// L is the 1-based number of contigs needed to reach the threshold.
	L int
}

// Summary holds the aggregate length statistics of an assembly. All
// lengths are given in base pairs.
type Summary struct {
	Contigs  int
	Total    int
	Longest  int
	Shortest int
	Mean     float64
	Over10k  int
	Over100k int
}

// Summarize returns the aggregate length statistics of lengths. The
// lengths slice is not modified. An empty slice gives the zero Summary.
func Summarize(lengths []int) Summary {
	var s Summary
	s.Contigs = len(lengths)
	for i, l := range lengths {
		s.Total += l
		if l > s.Longest {
			s.Longest = l
		}
		if i == 0 || l < s.Shortest {
			s.Shortest = l
		}
		if l > Over10k {
			s.Over10k++
		}
		if l > Over100k {
			s.Over100k++
		}
	}
	if s.Contigs > 0 {
		s.Mean = float64(s.Total) / float64(s.Contigs)
	}
	return s
}

// Sorted returns a copy of lengths sorted in descending order.
func Sorted(lengths []int) []int {
	c := make([]int, len(lengths))
	copy(c, lengths)
	sort.Sort(sort.Reverse(sort.IntSlice(c)))
	return c
}

// Compute returns the Nx and Lx values of lengths for the percentage
// threshold pct, where total is the total assembly length. The lengths
// slice is not modified. Compute will panic if pct is not in (0, 100].
func Compute(lengths []int, total int, pct float64) Result {
	return Scan(Sorted(lengths), total, pct)
}

// Scan is Compute for lengths already sorted in descending order. It
// allows several thresholds to share a single sort. If the cumulative
// length never reaches the target, which can only happen when sorted is
// empty or total is zero, Scan returns the zero Result.
func Scan(sorted []int, total int, pct float64) Result {
	if !(pct > 0 && pct <= 100) {
		panic(fmt.Sprintf("nx: percentage out of range: %v", pct))
	}
	if total <= 0 {
		return Result{}
	}
	target := float64(total) * pct / 100
	var csum int
	for i, l := range sorted {
		csum += l
		if float64(csum) >= target {
			return Result{N: l, L: i + 1}
		}
	}
	return Result{}
}

// Curve returns the Nx values for x = 1 to 100 in steps of one percent.
// The value at index i is N(i+1). sorted must be in descending order.
func Curve(sorted []int, total int) []int {
	c := make([]int, 100)
	if total <= 0 {
		return c
	}
	var (
		csum int
		x    = 1
	)
	for _, l := range sorted {
		csum += l
		for x <= 100 && float64(csum) >= float64(total)*float64(x)/100 {
			c[x-1] = l
			x++
		}
		if x > 100 {
			break
		}
	}
	return c
}

// AuN returns the area under the Nx curve, sum(l^2)/sum(l). It returns
// zero for empty input or a zero total length.
func AuN(lengths []int) float64 {
	f := make([]float64, len(lengths))
	for i, l := range lengths {
		f[i] = float64(l)
	}
	sum := floats.Sum(f)
	if sum == 0 {
		return 0
	}
	return floats.Dot(f, f) / sum
}
