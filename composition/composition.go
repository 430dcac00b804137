// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package composition provides nucleotide composition tallies of DNA
// sequences.
//
// Letters are case folded before classification. Any letter that is not
// one of A, C, G or T after folding, including N, IUPAC ambiguity codes
// and gap characters, is counted in a single Other class.
package composition

import (
	"sync"

	"github.com/biogo/biogo/alphabet"
)

// Base is a nucleotide class.
type Base int

const (
	A Base = iota
	T
	C
	G
	Other

	numBases
)

var baseNames = [...]string{A: "A", T: "T", C: "C", G: "G", Other: "N"}

func (b Base) String() string {
	if b < 0 || b >= numBases {
		return "Base(?)"
	}
	return baseNames[b]
}

// classTable maps each byte value to its Base class.
var classTable = func() (t [256]Base) {
	for i := range t {
		t[i] = Other
	}
	for _, p := range []struct {
		l byte
		b Base
	}{
		{'A', A}, {'a', A},
		{'T', T}, {'t', T},
		{'C', C}, {'c', C},
		{'G', G}, {'g', G},
	} {
		t[p.l] = p.b
	}
	return t
}()

// Classify returns the Base class of the letter l.
func Classify(l alphabet.Letter) Base { return classTable[l] }

// Tally holds nucleotide counts. The zero value is an empty tally.
type Tally [numBases]int

// Count returns the tally of a single sequence.
func Count(s alphabet.Letters) Tally {
	var t Tally
	t.Add(s)
	return t
}

// Add adds the letters of s to the tally.
func (t *Tally) Add(s alphabet.Letters) {
	for _, l := range s {
		t[classTable[l]]++
	}
}

// Merge adds the counts of u to the tally.
func (t *Tally) Merge(u Tally) {
	for b, n := range u {
		t[b] += n
	}
}

// Of returns the count for base b.
func (t Tally) Of(b Base) int { return t[b] }

// Total returns the total number of letters counted.
func (t Tally) Total() int {
	var n int
	for _, c := range t {
		n += c
	}
	return n
}

// Percent returns the percentage of letters in class b. It returns zero
// for an empty tally.
func (t Tally) Percent(b Base) float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return float64(t[b]) / float64(total) * 100
}

// GC returns the GC content of the tally as a percentage. It returns
// zero for an empty tally.
func (t Tally) GC() float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return float64(t[C]+t[G]) / float64(total) * 100
}

// CountAll returns the tally of all sequences in seqs. The work is split
// between up to workers goroutines, each summing its own partial tally;
// partial tallies are merged after all workers are done. A workers value
// less than 2 counts serially.
func CountAll(seqs []alphabet.Letters, workers int) Tally {
	if workers < 2 || len(seqs) < 2 {
		var t Tally
		for _, s := range seqs {
			t.Add(s)
		}
		return t
	}
	if workers > len(seqs) {
		workers = len(seqs)
	}

	var wg sync.WaitGroup
	partial := make([]Tally, workers)
	chunk := (len(seqs) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(seqs) {
			break
		}
		hi := lo + chunk
		if hi > len(seqs) {
			hi = len(seqs)
		}
		wg.Add(1)
		go func(p *Tally, seqs []alphabet.Letters) {
			defer wg.Done()
			for _, s := range seqs {
				p.Add(s)
			}
		}(&partial[w], seqs[lo:hi])
	}
	wg.Wait()

	var t Tally
	for _, p := range partial {
		t.Merge(p)
	}
	return t
}
