// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/biogo/asmstat/assembly"
)

type labels struct {
	contigs, length   string
	longest, shortest string
	average, auN      string
	over10k, over100k string
	gc, composition   string
	a, t, c, g, n     string
}

var languages = map[string]labels{
	"en": {
		contigs:     "Total contigs",
		length:      "Total length",
		longest:     "Longest contig",
		shortest:    "Shortest contig",
		average:     "Average contig length",
		auN:         "auN",
		over10k:     "Contigs > 10 kbp",
		over100k:    "Contigs > 100 kbp",
		gc:          "GC content",
		composition: "Base composition:",
		a:           "A content",
		t:           "T content",
		c:           "C content",
		g:           "G content",
		n:           "N or other non-standard bases",
	},
	"zh": {
		contigs:     "总 contig 数量",
		length:      "总长度",
		longest:     "最长 contig",
		shortest:    "最短 contig",
		average:     "平均 contig 长度",
		auN:         "auN",
		over10k:     "大于 10kbp 的 contig 数量",
		over100k:    "大于 100kbp 的 contig 数量",
		gc:          "GC 含量",
		composition: "碱基组成统计:",
		a:           "A 含量",
		t:           "T 含量",
		c:           "C 含量",
		g:           "G 含量",
		n:           "N 或其他非标准碱基含量",
	},
}

func pct(p float64) string { return strconv.FormatFloat(p, 'f', -1, 64) }

// writeText writes r as labelled lines in the language lang.
func writeText(w io.Writer, r *assembly.Report, lang string) error {
	l, ok := languages[lang]
	if !ok {
		return errors.Errorf("unknown language %q", lang)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d\n", l.contigs, r.TotalContigs)
	fmt.Fprintf(&b, "%s: %d bp\n", l.length, r.TotalLength)
	fmt.Fprintf(&b, "N50: %d bp\n", r.N50)
	fmt.Fprintf(&b, "L50: %d\n", r.L50)
	fmt.Fprintf(&b, "N90: %d bp\n", r.N90)
	fmt.Fprintf(&b, "L90: %d\n", r.L90)
	for _, t := range r.Extra {
		fmt.Fprintf(&b, "N%s: %d bp\n", pct(t.Percent), t.N)
		fmt.Fprintf(&b, "L%s: %d\n", pct(t.Percent), t.L)
	}
	fmt.Fprintf(&b, "%s: %d bp\n", l.longest, r.LongestContig)
	fmt.Fprintf(&b, "%s: %d bp\n", l.shortest, r.ShortestContig)
	fmt.Fprintf(&b, "%s: %.2f bp\n", l.average, r.AverageLength)
	fmt.Fprintf(&b, "%s: %.2f bp\n", l.auN, r.AuN)
	fmt.Fprintf(&b, "%s: %d\n", l.over10k, r.ContigsOver10k)
	fmt.Fprintf(&b, "%s: %d\n", l.over100k, r.ContigsOver100k)
	fmt.Fprintf(&b, "%s: %.2f%%\n", l.gc, r.GCContent)
	fmt.Fprintf(&b, "\n%s\n", l.composition)
	fmt.Fprintf(&b, "%s: %.2f%%\n", l.a, r.APct)
	fmt.Fprintf(&b, "%s: %.2f%%\n", l.t, r.TPct)
	fmt.Fprintf(&b, "%s: %.2f%%\n", l.c, r.CPct)
	fmt.Fprintf(&b, "%s: %.2f%%\n", l.g, r.GPct)
	fmt.Fprintf(&b, "%s: %.2f%%\n", l.n, r.NPct)
	_, err := io.WriteString(w, b.String())
	return err
}

// writeTSV writes r as a header line and a single line of tab separated
// values. name is written in the first column.
func writeTSV(w io.Writer, name string, r *assembly.Report) error {
	head := []string{"name", "total_contigs", "total_length", "n50", "l50", "n90", "l90"}
	vals := []string{
		name,
		strconv.Itoa(r.TotalContigs),
		strconv.Itoa(r.TotalLength),
		strconv.Itoa(r.N50),
		strconv.Itoa(r.L50),
		strconv.Itoa(r.N90),
		strconv.Itoa(r.L90),
	}
	for _, t := range r.Extra {
		head = append(head, "n"+pct(t.Percent), "l"+pct(t.Percent))
		vals = append(vals, strconv.Itoa(t.N), strconv.Itoa(t.L))
	}
	head = append(head,
		"longest_contig", "shortest_contig", "average_length", "aun",
		"contigs_over_10k", "contigs_over_100k",
		"gc_content", "a_pct", "t_pct", "c_pct", "g_pct", "n_pct",
	)
	f2 := func(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }
	vals = append(vals,
		strconv.Itoa(r.LongestContig),
		strconv.Itoa(r.ShortestContig),
		f2(r.AverageLength),
		f2(r.AuN),
		strconv.Itoa(r.ContigsOver10k),
		strconv.Itoa(r.ContigsOver100k),
		f2(r.GCContent),
		f2(r.APct),
		f2(r.TPct),
		f2(r.CPct),
		f2(r.GPct),
		f2(r.NPct),
	)
	_, err := fmt.Fprintf(w, "%s\n%s\n", strings.Join(head, "\t"), strings.Join(vals, "\t"))
	return err
}

// parseThresholds parses a comma separated list of Nx percentages.
func parseThresholds(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var p []float64
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid Nx threshold %q", f)
		}
		if !(v > 0 && v <= 100) {
			return nil, errors.Errorf("Nx threshold out of range (0, 100]: %v", v)
		}
		p = append(p, v)
	}
	return p, nil
}
