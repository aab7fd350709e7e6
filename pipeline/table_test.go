/*
 * table_test.go
 *
 * Copyright 2024 Ana Avila anadotavilaatuvdotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestOptFloat(Te *testing.T) {
	if None().String() != "None" {
		Te.Errorf("absent value renders as %q", None().String())
	}
	//a computed zero is not the sentinel
	if Some(0).String() == "None" {
		Te.Error("a zero score rendered as the sentinel")
	}
	if Some(0.5).String() != "0.5" {
		Te.Errorf("unexpected rendering %q", Some(0.5).String())
	}
}

func TestWriteCSV(Te *testing.T) {
	t := &Table{Cutoff: 5}
	t.Append(Row{Job: "a", IptmPtm: Some(0.8), Iptm: Some(0.7), MeanIfPAE: Some(3.2), MeanIfPLDDT: Some(88), DockQ: Some(0.41)})
	t.Append(Row{Job: "b", IptmPtm: Some(0.6), DockQ: None()})
	name := filepath.Join(Te.TempDir(), TableFile)
	if err := t.WriteCSV(name); err != nil {
		Te.Fatal(err)
	}
	f, err := os.Open(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		Te.Fatal(err)
	}
	if len(recs) != 3 {
		Te.Fatalf("expected header plus 2 rows, got %d records", len(recs))
	}
	if recs[0][5] != "mpDockQ/pDockQ" {
		Te.Errorf("wrong header: %v", recs[0])
	}
	if recs[1][0] != "a" || recs[1][5] != "0.41" {
		Te.Errorf("wrong first row: %v", recs[1])
	}
	if recs[2][2] != "None" || recs[2][5] != "None" {
		Te.Errorf("absent fields not rendered as None: %v", recs[2])
	}
}
