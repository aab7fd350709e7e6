/*
 * plot.go, part of ifscreen.
 *
 *
 * Copyright 2024 Ana Avila anadotavilaatuvdotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package pipeline

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Histogram saves a histogram of the dock-quality scores of the table to the
//given image file (the format follows the extension, e.g. .png or .pdf).
//Rows whose score is the None sentinel do not contribute. A table with no
//scored rows produces no file and no error.
func Histogram(T *Table, name string) error {
	scores := T.Scores()
	if len(scores) == 0 {
		return nil
	}
	p := plot.New()
	p.Title.Text = "Dock-quality scores"
	p.X.Label.Text = "mpDockQ/pDockQ"
	p.Y.Label.Text = "models"
	//scores live in (0,1), keep the axis there for comparability between runs
	p.X.Min = 0
	p.X.Max = 1
	h, err := plotter.NewHist(plotter.Values(scores), 16)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(4*vg.Inch, 4*vg.Inch, name)
}
