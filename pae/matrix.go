/*
 * matrix.go, part of ifscreen.
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

//Package pae handles the predicted-aligned-error matrix of a model: loading
//it from whichever artifact the prediction run left behind, and deciding
//whether it shows a confidently predicted inter-chain region.
package pae

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//IntraMask is the value written over every intra-chain cell before the
//inter-chain test. Predicted aligned errors top out around 32 Angstrom, so
//any realistic cutoff sits far below it and masked cells can never register
//as confident.
const IntraMask = 50.0

//Matrix is a square predicted-aligned-error matrix, in Angstrom, with one
//row/column per residue over all chains, in chain order.
type Matrix struct {
	*mat.Dense
}

//NewMatrix builds a Matrix from a row-major slice of rows, which must be
//square and non-empty.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, Error{EmptyMatrix, "", []string{"NewMatrix"}, true}
	}
	data := make([]float64, 0, n*n)
	for _, v := range rows {
		if len(v) != n {
			return nil, Error{fmt.Sprintf("%s: %dx%d", NotSquare, n, len(v)), "", []string{"NewMatrix"}, true}
		}
		data = append(data, v...)
	}
	return &Matrix{mat.NewDense(n, n, data)}, nil
}

//Dim returns the dimension of the (square) matrix.
func (P *Matrix) Dim() int {
	r, _ := P.Dims()
	return r
}

//Copy returns a deep copy of the matrix.
func (P *Matrix) Copy() *Matrix {
	return &Matrix{mat.DenseCopyOf(P.Dense)}
}

//checks that the chain-length partition covers the matrix exactly.
func checkPartition(P *Matrix, lengths []int) error {
	t := 0
	for _, v := range lengths {
		t += v
	}
	if t != P.Dim() {
		return Error{fmt.Sprintf("%s: chains sum to %d, matrix dimension is %d", WrongPartition, t, P.Dim()), "", []string{"checkPartition"}, true}
	}
	return nil
}

//MaskIntraChain overwrites every cell inside a diagonal (intra-chain) block
//with IntraMask, in place. The blocks are contiguous and sized by lengths, in
//the same chain order the matrix was built with. Masking is idempotent and
//never touches inter-chain cells.
func MaskIntraChain(P *Matrix, lengths []int) error {
	if err := checkPartition(P, lengths); err != nil {
		return errDecorate(err, "MaskIntraChain")
	}
	old := 0
	for _, l := range lengths {
		for i := old; i < old+l; i++ {
			for j := old; j < old+l; j++ {
				P.Set(i, j, IntraMask)
			}
		}
		old += l
	}
	return nil
}

//HasConfidentInterface reports whether at least one inter-chain residue pair
//has a predicted aligned error strictly below cutoff. It works on a copy, so
//the caller's matrix is never mutated. A single-chain model has no
//inter-chain pairs and always yields false.
func HasConfidentInterface(P *Matrix, lengths []int, cutoff float64) (bool, error) {
	if err := checkPartition(P, lengths); err != nil {
		return false, errDecorate(err, "HasConfidentInterface")
	}
	if len(lengths) < 2 {
		return false, nil
	}
	work := P.Copy()
	if err := MaskIntraChain(work, lengths); err != nil {
		return false, errDecorate(err, "HasConfidentInterface")
	}
	n := work.Dim()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if work.At(i, j) < cutoff {
				return true, nil
			}
		}
	}
	return false, nil
}
