// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/pkg/errors"
)

// curvePoints returns the Nx curve as plottable points with x in percent.
func curvePoints(curve []int) plotter.XYs {
	xys := make(plotter.XYs, len(curve))
	for i, n := range curve {
		xys[i].X = float64(i + 1)
		xys[i].Y = float64(n)
	}
	return xys
}

// plotCurve renders the Nx curve to the named file. The image format is
// taken from the file extension.
func plotCurve(path, title string, curve []int) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (%)"
	p.X.Min = 0
	p.X.Max = 100
	p.Y.Label.Text = "Nx (bp)"
	p.Y.Min = 0

	l, err := plotter.NewLine(curvePoints(curve))
	if err != nil {
		return errors.Wrap(err, "failed to build Nx line")
	}
	p.Add(l, plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "failed to save plot to %q", path)
	}
	return nil
}
