/*
 * table.go, part of ifscreen.
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
	"encoding/csv"
	"os"
	"strconv"
)

//TableFile is the name of the summary table written into the output
//directory.
const TableFile = "predictions_with_good_interpae.csv"

//OptFloat is a float that may legitimately be absent. Absent values render
//as the sentinel "None" in the table, which keeps them distinguishable from
//a computed score of exactly zero.
type OptFloat struct {
	Value float64
	OK    bool
}

//Some returns a present OptFloat.
func Some(v float64) OptFloat {
	return OptFloat{Value: v, OK: true}
}

//None returns an absent OptFloat.
func None() OptFloat {
	return OptFloat{}
}

func (o OptFloat) String() string {
	if !o.OK {
		return "None"
	}
	return strconv.FormatFloat(o.Value, 'g', -1, 64)
}

//Row is the summary of one accepted job. Rows are immutable once appended
//to a Table.
type Row struct {
	Job         string
	IptmPtm     OptFloat //combined interface+overall confidence
	Iptm        OptFloat //isolated interface confidence
	MeanIfPAE   OptFloat //mean predicted aligned error over the interface
	MeanIfPLDDT OptFloat //mean confidence over the interface residues
	DockQ       OptFloat //pDockQ or mpDockQ, by chain count
}

//Table is the ordered collection of summary rows of one batch, in
//job-enumeration order. It records the cutoff used so an empty run can name
//it in the notice.
type Table struct {
	Rows   []Row
	Cutoff float64
}

//Append adds a row. Rows keep the order in which jobs were enumerated; any
//re-sorting (e.g. by confidence) belongs to downstream consumers.
func (T *Table) Append(r Row) {
	T.Rows = append(T.Rows, r)
}

//Empty reports whether no job in the batch was accepted.
func (T *Table) Empty() bool {
	return len(T.Rows) == 0
}

//Scores returns the dock-quality scores of the rows that have one.
func (T *Table) Scores() []float64 {
	var r []float64
	for _, v := range T.Rows {
		if v.DockQ.OK {
			r = append(r, v.DockQ.Value)
		}
	}
	return r
}

//WriteCSV writes the table to the given file, one row per accepted job,
//overwriting any previous run's output.
func (T *Table) WriteCSV(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return Error{err.Error(), name, []string{"WriteCSV"}, true}
	}
	defer f.Close()
	w := csv.NewWriter(f)
	header := []string{"jobs", "iptm_ptm", "iptm", "average_interface_pae", "average_interface_plddt", "mpDockQ/pDockQ"}
	if err := w.Write(header); err != nil {
		return Error{err.Error(), name, []string{"WriteCSV"}, true}
	}
	for _, r := range T.Rows {
		rec := []string{r.Job, r.IptmPtm.String(), r.Iptm.String(), r.MeanIfPAE.String(), r.MeanIfPLDDT.String(), r.DockQ.String()}
		if err := w.Write(rec); err != nil {
			return Error{err.Error(), name, []string{"WriteCSV"}, true}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return Error{err.Error(), name, []string{"WriteCSV"}, true}
	}
	return nil
}
