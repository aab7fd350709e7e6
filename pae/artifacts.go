/*
 * artifacts.go, part of ifscreen.
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

package pae

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

//Result is what a prediction run left behind for one model: the PAE matrix,
//and, depending on which artifact it came from, the isolated interface
//confidence (ipTM) and the per-residue pLDDT array. HasIPTM distinguishes a
//missing score from a score of zero.
type Result struct {
	PAE     *Matrix
	IPTM    float64
	HasIPTM bool
	PLDDT   []float64
}

//Probe is one way of locating and decoding the PAE artifact of a model
//inside a job directory. Load returns found=false, with a nil error, when
//the artifact this probe looks for simply is not there; a present but
//undecodable artifact is an error.
type Probe struct {
	Name string
	Load func(dir, model string) (res *Result, found bool, err error)
}

//DefaultProbes returns the artifact probes in fallback order: the small
//per-model PAE JSON file, the full result blob, and its gzipped variant.
//The first is preferred because it is self-contained and cheap to parse.
func DefaultProbes() []Probe {
	return []Probe{
		{Name: "pae-json", Load: loadPAEJSON},
		{Name: "result-blob", Load: loadResultBlob},
		{Name: "result-blob-gz", Load: loadResultBlobGz},
	}
}

//LoadResult tries the given probes in order and returns the first success.
//If every probe reports its artifact missing, the returned error names the
//model; that error is fatal to the enclosing job, never to the batch.
func LoadResult(dir, model string, probes []Probe) (*Result, error) {
	for _, p := range probes {
		res, found, err := p.Load(dir, model)
		if err != nil {
			return nil, errDecorate(err, "LoadResult")
		}
		if found {
			return res, nil
		}
	}
	return nil, Error{fmt.Sprintf("%s %q", NoArtifacts, model), dir, []string{"LoadResult"}, true}
}

//pae_<model>.json: a one-element list wrapping the matrix, with no scores.
type paeJSON []struct {
	PredictedAlignedError [][]float64 `json:"predicted_aligned_error"`
}

func loadPAEJSON(dir, model string) (*Result, bool, error) {
	name := filepath.Join(dir, fmt.Sprintf("pae_%s.json", model))
	f, err := os.Open(name)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, Error{err.Error(), name, []string{"loadPAEJSON"}, true}
	}
	defer f.Close()
	var decoded paeJSON
	if err := json.NewDecoder(f).Decode(&decoded); err != nil {
		return nil, false, Error{fmt.Sprintf("%s: %v", WrongFormat, err), name, []string{"loadPAEJSON"}, true}
	}
	if len(decoded) == 0 {
		return nil, false, Error{WrongFormat, name, []string{"loadPAEJSON"}, true}
	}
	m, err := NewMatrix(decoded[0].PredictedAlignedError)
	if err != nil {
		return nil, false, errDecorate(err, "loadPAEJSON")
	}
	return &Result{PAE: m}, true, nil
}

//result_<model>.json[.gz]: the full result blob, which also carries the
//isolated ipTM score and the pLDDT array.
type resultBlob struct {
	PredictedAlignedError [][]float64 `json:"predicted_aligned_error"`
	IPTM                  *float64    `json:"iptm"`
	PLDDT                 []float64   `json:"plddt"`
}

func decodeResultBlob(in io.Reader, name string) (*Result, error) {
	var decoded resultBlob
	if err := json.NewDecoder(in).Decode(&decoded); err != nil {
		return nil, Error{fmt.Sprintf("%s: %v", WrongFormat, err), name, []string{"decodeResultBlob"}, true}
	}
	m, err := NewMatrix(decoded.PredictedAlignedError)
	if err != nil {
		return nil, errDecorate(err, "decodeResultBlob")
	}
	res := &Result{PAE: m, PLDDT: decoded.PLDDT}
	if decoded.IPTM != nil {
		res.IPTM = *decoded.IPTM
		res.HasIPTM = true
	}
	return res, nil
}

func loadResultBlob(dir, model string) (*Result, bool, error) {
	name := filepath.Join(dir, fmt.Sprintf("result_%s.json", model))
	f, err := os.Open(name)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, Error{err.Error(), name, []string{"loadResultBlob"}, true}
	}
	defer f.Close()
	res, err := decodeResultBlob(f, name)
	if err != nil {
		return nil, false, errDecorate(err, "loadResultBlob")
	}
	return res, true, nil
}

func loadResultBlobGz(dir, model string) (*Result, bool, error) {
	name := filepath.Join(dir, fmt.Sprintf("result_%s.json.gz", model))
	f, err := os.Open(name)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, Error{err.Error(), name, []string{"loadResultBlobGz"}, true}
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, false, Error{fmt.Sprintf("%s: %v", WrongFormat, err), name, []string{"loadResultBlobGz"}, true}
	}
	defer gz.Close()
	res, err := decodeResultBlob(gz, name)
	if err != nil {
		return nil, false, errDecorate(err, "loadResultBlobGz")
	}
	return res, true, nil
}
