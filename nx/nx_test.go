// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nx

import (
	"math/rand"
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func sum(l []int) int {
	var s int
	for _, v := range l {
		s += v
	}
	return s
}

func (s *S) TestCompute(c *check.C) {
	for i, t := range []struct {
		lengths []int
		pct     float64
		want    Result
	}{
		{lengths: []int{100, 90, 80, 70, 60}, pct: 50, want: Result{N: 80, L: 3}},
		{lengths: []int{60, 80, 100, 70, 90}, pct: 50, want: Result{N: 80, L: 3}},
		{lengths: []int{100, 90, 80, 70, 60}, pct: 90, want: Result{N: 60, L: 5}},
		{lengths: []int{100, 90, 80, 70, 60}, pct: 100, want: Result{N: 60, L: 5}},
		{lengths: []int{100, 90, 80, 70, 60}, pct: 25, want: Result{N: 100, L: 1}},
		{lengths: []int{10}, pct: 50, want: Result{N: 10, L: 1}},
		{lengths: []int{5, 5, 5, 5}, pct: 50, want: Result{N: 5, L: 2}},

		// Exact boundary: 2 of 4 equal contigs is exactly 50%.
		{lengths: []int{1, 1, 1, 1}, pct: 50, want: Result{N: 1, L: 2}},

		// Fractional target must not be truncated: 3*50/100 = 1.5, so
		// one contig of length 1 is not enough.
		{lengths: []int{1, 1, 1}, pct: 50, want: Result{N: 1, L: 2}},

		// Exact 90% boundary: 9 of 10 unit contigs.
		{lengths: []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, pct: 90, want: Result{N: 1, L: 9}},

		{lengths: nil, pct: 50, want: Result{}},
		{lengths: []int{0, 0, 0}, pct: 50, want: Result{}},
	} {
		got := Compute(t.lengths, sum(t.lengths), t.pct)
		c.Check(got, check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestComputeDoesNotMutate(c *check.C) {
	l := []int{60, 80, 100, 70, 90}
	Compute(l, sum(l), 50)
	c.Check(l, check.DeepEquals, []int{60, 80, 100, 70, 90})
	Summarize(l)
	c.Check(l, check.DeepEquals, []int{60, 80, 100, 70, 90})
}

func (s *S) TestScanPanics(c *check.C) {
	for _, pct := range []float64{0, -1, 100.5} {
		c.Check(func() { Scan([]int{1}, 1, pct) }, check.PanicMatches, "nx: percentage out of range: .*")
	}
}

func (s *S) TestSummarize(c *check.C) {
	for i, t := range []struct {
		lengths []int
		want    Summary
	}{
		{
			lengths: nil,
			want:    Summary{},
		},
		{
			lengths: []int{100, 90, 80, 70, 60},
			want:    Summary{Contigs: 5, Total: 400, Longest: 100, Shortest: 60, Mean: 80},
		},
		{
			lengths: []int{10000, 10001, 100000, 100001, 5},
			want: Summary{
				Contigs:  5,
				Total:    220007,
				Longest:  100001,
				Shortest: 5,
				Mean:     44001.4,
				Over10k:  3,
				Over100k: 1,
			},
		},
		{
			lengths: []int{0},
			want:    Summary{Contigs: 1},
		},
	} {
		c.Check(Summarize(t.lengths), check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestSorted(c *check.C) {
	l := []int{3, 1, 2, 3}
	c.Check(Sorted(l), check.DeepEquals, []int{3, 3, 2, 1})
	c.Check(l, check.DeepEquals, []int{3, 1, 2, 3})
	c.Check(Sorted(nil), check.HasLen, 0)
}

func (s *S) TestProperties(c *check.C) {
	rnd := rand.New(rand.NewSource(1))
	for n := 0; n < 200; n++ {
		l := make([]int, 1+rnd.Intn(50))
		for i := range l {
			l[i] = 1 + rnd.Intn(200000)
		}
		total := sum(l)
		sorted := Sorted(l)
		n50 := Scan(sorted, total, 50)
		n90 := Scan(sorted, total, 90)
		c.Check(n90.L >= n50.L, check.Equals, true, check.Commentf("lengths %v", l))
		c.Check(n90.N <= n50.N, check.Equals, true, check.Commentf("lengths %v", l))

		for _, pct := range []float64{1, 10, 33.3, 50, 75, 90, 99.9, 100} {
			r := Scan(sorted, total, pct)
			c.Assert(r.L >= 1 && r.L <= len(l), check.Equals, true)
			c.Check(r.N, check.Equals, sorted[r.L-1])
			target := float64(total) * pct / 100
			c.Check(float64(sum(sorted[:r.L])) >= target, check.Equals, true)
			c.Check(float64(sum(sorted[:r.L-1])) < target, check.Equals, true)
		}

		c.Check(Compute(l, total, 50), check.Equals, n50)
	}
}

func (s *S) TestCurve(c *check.C) {
	l := []int{100, 90, 80, 70, 60}
	total := sum(l)
	curve := Curve(l, total)
	c.Assert(curve, check.HasLen, 100)
	for x := 1; x <= 100; x++ {
		c.Check(curve[x-1], check.Equals, Scan(l, total, float64(x)).N, check.Commentf("N%d", x))
	}
	c.Check(curve[49], check.Equals, 80)

	c.Check(Curve(nil, 0), check.DeepEquals, make([]int, 100))
}

func (s *S) TestAuN(c *check.C) {
	c.Check(AuN(nil), check.Equals, 0.0)
	c.Check(AuN([]int{0, 0}), check.Equals, 0.0)
	c.Check(AuN([]int{10}), check.Equals, 10.0)
	// (100^2 + 300^2) / 400 = 250
	c.Check(AuN([]int{100, 300}), check.Equals, 250.0)
}
