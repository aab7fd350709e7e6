/*
 * artifacts_test.go
 *
 * Copyright 2024 Ana Avila anadotavilaatuvdotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package pae

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const testModel = "model_1_multimer_v3_pred_0"

func writePAEJSON(Te *testing.T, dir string, matrix [][]float64) {
	Te.Helper()
	payload := []map[string][][]float64{{"predicted_aligned_error": matrix}}
	b, err := json.Marshal(payload)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(dir, fmt.Sprintf("pae_%s.json", testModel))
	if err := os.WriteFile(name, b, 0644); err != nil {
		Te.Fatal(err)
	}
}

func blobBytes(Te *testing.T, matrix [][]float64, iptm float64, plddt []float64) []byte {
	Te.Helper()
	payload := map[string]interface{}{
		"predicted_aligned_error": matrix,
		"iptm":                    iptm,
		"plddt":                   plddt,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		Te.Fatal(err)
	}
	return b
}

var testRows = [][]float64{{0, 7}, {7, 0}}

func TestPAEJSONProbe(Te *testing.T) {
	dir := Te.TempDir()
	writePAEJSON(Te, dir, testRows)
	res, err := LoadResult(dir, testModel, DefaultProbes())
	if err != nil {
		Te.Fatal(err)
	}
	if res.PAE.Dim() != 2 || res.PAE.At(0, 1) != 7 {
		Te.Errorf("matrix misdecoded: dim %d", res.PAE.Dim())
	}
	if res.HasIPTM {
		Te.Error("the pae JSON artifact carries no ipTM, but one was reported")
	}
}

func TestResultBlobProbe(Te *testing.T) {
	dir := Te.TempDir()
	b := blobBytes(Te, testRows, 0.83, []float64{88, 91})
	name := filepath.Join(dir, fmt.Sprintf("result_%s.json", testModel))
	if err := os.WriteFile(name, b, 0644); err != nil {
		Te.Fatal(err)
	}
	res, err := LoadResult(dir, testModel, DefaultProbes())
	if err != nil {
		Te.Fatal(err)
	}
	if !res.HasIPTM || res.IPTM != 0.83 {
		Te.Errorf("ipTM misdecoded: %v %v", res.HasIPTM, res.IPTM)
	}
	if len(res.PLDDT) != 2 || res.PLDDT[1] != 91 {
		Te.Errorf("pLDDT misdecoded: %v", res.PLDDT)
	}
}

func TestGzippedBlobProbe(Te *testing.T) {
	dir := Te.TempDir()
	b := blobBytes(Te, testRows, 0.5, nil)
	name := filepath.Join(dir, fmt.Sprintf("result_%s.json.gz", testModel))
	f, err := os.Create(name)
	if err != nil {
		Te.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write(b); err != nil {
		Te.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		Te.Fatal(err)
	}
	f.Close()
	res, err := LoadResult(dir, testModel, DefaultProbes())
	if err != nil {
		Te.Fatal(err)
	}
	if !res.HasIPTM || res.IPTM != 0.5 {
		Te.Errorf("ipTM misdecoded from gzipped blob: %v %v", res.HasIPTM, res.IPTM)
	}
}

func TestProbeOrder(Te *testing.T) {
	//when both the pae JSON and the blob are present, the self-contained
	//pae JSON wins, so no ipTM is picked up.
	dir := Te.TempDir()
	writePAEJSON(Te, dir, testRows)
	b := blobBytes(Te, testRows, 0.9, nil)
	name := filepath.Join(dir, fmt.Sprintf("result_%s.json", testModel))
	if err := os.WriteFile(name, b, 0644); err != nil {
		Te.Fatal(err)
	}
	res, err := LoadResult(dir, testModel, DefaultProbes())
	if err != nil {
		Te.Fatal(err)
	}
	if res.HasIPTM {
		Te.Error("blob was preferred over the pae JSON artifact")
	}
}

func TestNoArtifacts(Te *testing.T) {
	_, err := LoadResult(Te.TempDir(), testModel, DefaultProbes())
	if err == nil {
		Te.Fatal("expected an error when all three artifacts are missing")
	}
	fmt.Println("got expected error:", err)
}

func TestCorruptArtifact(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, fmt.Sprintf("pae_%s.json", testModel))
	if err := os.WriteFile(name, []byte("{not json"), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err := LoadResult(dir, testModel, DefaultProbes()); err == nil {
		Te.Fatal("a present but undecodable artifact must be an error, not a fallthrough")
	}
}
