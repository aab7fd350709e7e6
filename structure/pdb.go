/*
 * pdb.go, part of ifscreen.
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

//Package structure reads predicted atomic models into per-chain coordinate
//sets. Only the representative atoms needed downstream are kept: the Calpha
//trace, the Cbeta trace (Calpha substituted for glycines, which have no Cbeta)
//and the per-residue confidence, which structure-prediction programs store in
//the B-factor column.
package structure

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Chain holds the representative-atom record of one polymer chain, in residue
//order. CA and CB have one row per residue; PLDDT has one value per residue,
//in [0,100].
type Chain struct {
	ID    byte
	CA    *mat.Dense
	CB    *mat.Dense
	PLDDT []float64
}

//Len returns the number of residues in the chain.
func (C *Chain) Len() int {
	r, _ := C.CA.Dims()
	return r
}

//Model is the set of chains of one predicted structure, in file order.
//Models are read-only once loaded.
type Model struct {
	Chains []*Chain
}

//NChains returns the number of chains in the model.
func (M *Model) NChains() int {
	return len(M.Chains)
}

//ChainLengths returns the number of residues of each chain, in chain order.
//This is the partition used to address the PAE matrix, whose dimension must
//equal the sum of the returned lengths.
func (M *Model) ChainLengths() []int {
	r := make([]int, len(M.Chains))
	for i, v := range M.Chains {
		r[i] = v.Len()
	}
	return r
}

//TotalResidues returns the number of residues over all chains.
func (M *Model) TotalResidues() int {
	t := 0
	for _, v := range M.Chains {
		t += v.Len()
	}
	return t
}

//Confidence returns the per-residue confidence values of all chains
//concatenated in chain order, i.e. in PAE-matrix row order.
func (M *Model) Confidence() []float64 {
	r := make([]float64, 0, M.TotalResidues())
	for _, v := range M.Chains {
		r = append(r, v.PLDDT...)
	}
	return r
}

//SplitConfidence overwrites the per-chain confidence values with the given
//flat array, partitioned by the chain lengths in chain order. It is used when
//a result blob carries a fresher pLDDT array than the coordinate file's
//B-factor column.
func (M *Model) SplitConfidence(flat []float64) error {
	if len(flat) != M.TotalResidues() {
		return Error{fmt.Sprintf("%s: %d values for %d residues", WrongConfidence, len(flat), M.TotalResidues()), "", []string{"SplitConfidence"}, true}
	}
	offset := 0
	for _, v := range M.Chains {
		n := v.Len()
		v.PLDDT = append([]float64{}, flat[offset:offset+n]...)
		offset += n
	}
	return nil
}

//one residue being assembled from consecutive ATOM records.
type residue struct {
	id    int
	name  string
	ca    []float64
	cb    []float64
	plddt float64
	hasCA bool
	hasCB bool
}

//accumulates the representative atoms of one chain before the
//coordinate matrices are built.
type chainBuilder struct {
	id  byte
	ca  []float64
	cb  []float64
	pl  []float64
	cur *residue
}

func (b *chainBuilder) flush() {
	r := b.cur
	b.cur = nil
	if r == nil || !r.hasCA {
		//residues with no Calpha (ligands, stray HETATM-like entries)
		//carry no position in the error matrix and are not counted.
		return
	}
	cb := r.cb
	if !r.hasCB {
		cb = r.ca //glycines, and the rare truncated side chain
	}
	b.ca = append(b.ca, r.ca...)
	b.cb = append(b.cb, cb...)
	b.pl = append(b.pl, r.plddt)
}

func (b *chainBuilder) build() *Chain {
	n := len(b.pl)
	if n == 0 {
		return nil
	}
	return &Chain{
		ID:    b.id,
		CA:    mat.NewDense(n, 3, b.ca),
		CB:    mat.NewDense(n, 3, b.cb),
		PLDDT: b.pl,
	}
}

//Parses the fields of a valid ATOM line of a PDB file that are relevant to
//the screen: atom name, residue name and number, chain, coordinates and
//B-factor. The fixed column layout of the format is assumed.
func readATOMLine(line string) (name, resname string, chain byte, resid int, coords []float64, bfactor float64, rerr error) {
	if len(line) < 66 {
		rerr = fmt.Errorf("%s: line too short (%d)", WrongFormat, len(line))
		return
	}
	err := make([]error, 5)
	name = strings.TrimSpace(line[12:16])
	resname = strings.TrimSpace(line[17:20])
	chain = line[21]
	coords = make([]float64, 3)
	resid, err[0] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	coords[0], err[1] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	coords[1], err[2] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	coords[2], err[3] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	bfactor, err[4] = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	for i := range err {
		if err[i] != nil {
			rerr = err[i]
			return
		}
	}
	return
}

//ReadPDB reads the ATOM records of a predicted model and returns its chains.
//Only the first model of a multi-model file is read. Chains that end up with
//zero residues are dropped from the chain list; since they contribute no
//rows, dropping them does not shift the matrix positions of later chains.
//A structure with zero parsable chains is an error.
func ReadPDB(in io.Reader, name string) (*Model, error) {
	builders := make(map[byte]*chainBuilder)
	order := make([]byte, 0, 2)
	pdb := bufio.NewReader(in)
	for {
		line, err := pdb.ReadString('\n')
		if err != nil && len(line) == 0 {
			break
		}
		if strings.HasPrefix(line, "ENDMDL") {
			break //downstream only ever looks at the top-ranked model
		}
		if !strings.HasPrefix(line, "ATOM") {
			continue
		}
		aname, resname, ch, resid, coords, bfac, err2 := readATOMLine(line)
		if err2 != nil {
			return nil, Error{err2.Error(), name, []string{"ReadPDB"}, true}
		}
		b, ok := builders[ch]
		if !ok {
			b = &chainBuilder{id: ch}
			builders[ch] = b
			order = append(order, ch)
		}
		if b.cur != nil && b.cur.id != resid {
			b.flush()
		}
		if b.cur == nil {
			b.cur = &residue{id: resid, name: resname}
		}
		switch aname {
		case "CA":
			b.cur.ca = coords
			b.cur.hasCA = true
			b.cur.plddt = bfac
			if resname == "GLY" {
				b.cur.cb = coords
				b.cur.hasCB = true
			}
		case "CB":
			b.cur.cb = coords
			b.cur.hasCB = true
		}
	}
	mol := &Model{}
	for _, ch := range order {
		b := builders[ch]
		b.flush()
		if c := b.build(); c != nil {
			mol.Chains = append(mol.Chains, c)
		}
	}
	if len(mol.Chains) == 0 {
		return nil, Error{NoChains, name, []string{"ReadPDB"}, true}
	}
	return mol, nil
}

//ReadPDBFile reads the ATOM records of the PDB file with the given name.
//A missing file is a distinct, job-fatal error.
func ReadPDBFile(name string) (*Model, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen, name, []string{"ReadPDBFile"}, true}
	}
	defer f.Close()
	mol, err := ReadPDB(f, name)
	if err != nil {
		return nil, errDecorate(err, "ReadPDBFile")
	}
	return mol, nil
}
