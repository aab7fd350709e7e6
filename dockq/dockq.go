/*
 * dockq.go, part of ifscreen.
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

//Package dockq computes docking-quality estimates for predicted complexes
//from inter-chain contact geometry and per-residue confidence: pDockQ for
//two-chain complexes (Bryant, Pozzati and Elofsson, 2022) and mpDockQ for
//larger assemblies (Bryant et al., 2022, MoLPC). Both are fixed published
//logistic regressions; the fitted constants below are transcribed, not
//re-derived, so scores stay comparable with the original implementations.
package dockq

import (
	"math"

	"github.com/avila-lab/ifscreen/pae"
	"github.com/avila-lab/ifscreen/structure"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//ContactDist is the Cbeta-Cbeta distance, in Angstrom, under which two
//residues of different chains count as an interface contact.
const ContactDist = 8.0

//pDockQ fit, two-chain complexes.
const (
	pdockqL  = 0.724
	pdockqX0 = 152.611
	pdockqK  = 0.052
	pdockqB  = 0.018
)

//mpDockQ fit, complexes of more than two chains.
const (
	mpdockqL  = 0.827
	mpdockqX0 = 261.398
	mpdockqK  = 0.036
	mpdockqB  = 0.221
)

//Contacts returns the index pairs (row in a, row in b) of residues whose
//representative atoms lie within dist of each other. Both matrices must have
//3 columns.
func Contacts(a, b *mat.Dense, dist float64) [][2]int {
	ra, _ := a.Dims()
	rb, _ := b.Dims()
	var r [][2]int
	for i := 0; i < ra; i++ {
		for j := 0; j < rb; j++ {
			dx := a.At(i, 0) - b.At(j, 0)
			dy := a.At(i, 1) - b.At(j, 1)
			dz := a.At(i, 2) - b.At(j, 2)
			if math.Sqrt(dx*dx+dy*dy+dz*dz) <= dist {
				r = append(r, [2]int{i, j})
			}
		}
	}
	return r
}

//ScoreComplex computes the composite complex score that feeds the mpDockQ
//regression: over every ordered pair of distinct chains with at least one
//contact, the mean confidence of the contact participations times
//log10(ncontacts+1), summed. Residues taking part in several contacts count
//once per contact, as in the original fit. ok is false when no chain pair
//has any contact, in which case the score is undefined and the regression
//must not be applied.
func ScoreComplex(M *structure.Model, dist float64) (score float64, ok bool) {
	for i, ci := range M.Chains {
		for j, cj := range M.Chains {
			if i == j {
				continue
			}
			cts := Contacts(ci.CB, cj.CB, dist)
			if len(cts) == 0 {
				continue
			}
			conf := make([]float64, 0, 2*len(cts))
			for _, c := range cts {
				conf = append(conf, ci.PLDDT[c[0]])
			}
			for _, c := range cts {
				conf = append(conf, cj.PLDDT[c[1]])
			}
			score += math.Log10(float64(len(cts))+1) * stat.Mean(conf, nil)
			ok = true
		}
	}
	return score, ok
}

//MpDockQ maps a composite complex score through the mpDockQ logistic fit.
//The result is bounded to (mpdockqB, mpdockqL+mpdockqB).
func MpDockQ(score float64) float64 {
	return mpdockqL/(1+math.Exp(-1*mpdockqK*(score-mpdockqX0))) + mpdockqB
}

//PDockQ computes the two-chain docking quality from the model's Cbeta
//contacts: the mean confidence over the unique interface residues of both
//chains, times log10 of the contact count, through the pDockQ logistic fit.
//ok is false if the model does not have exactly two chains or the chains do
//not touch.
func PDockQ(M *structure.Model, dist float64) (float64, bool) {
	if M.NChains() != 2 {
		return 0, false
	}
	c1, c2 := M.Chains[0], M.Chains[1]
	cts := Contacts(c1.CB, c2.CB, dist)
	if len(cts) == 0 {
		return 0, false
	}
	conf := make([]float64, 0, 2*len(cts))
	for _, i := range uniqueIndices(cts, 0) {
		conf = append(conf, c1.PLDDT[i])
	}
	for _, i := range uniqueIndices(cts, 1) {
		conf = append(conf, c2.PLDDT[i])
	}
	x := stat.Mean(conf, nil) * math.Log10(float64(len(cts)))
	return pdockqL/(1+math.Exp(-1*pdockqK*(x-pdockqX0))) + pdockqB, true
}

//DockQuality computes the docking-quality score of a model, picking the
//regression by chain count: pDockQ for exactly two chains, mpDockQ above
//that. ok is false for single-chain models and for complexes with no
//inter-chain contact at all; callers must then report the sentinel "None"
//rather than a numeric zero.
func DockQuality(M *structure.Model, dist float64) (float64, bool) {
	if M.NChains() < 2 {
		return 0, false
	}
	score, ok := ScoreComplex(M, dist)
	if !ok {
		return 0, false
	}
	if M.NChains() == 2 {
		return PDockQ(M, dist)
	}
	return MpDockQ(score), true
}

//InterfaceStats returns the mean predicted aligned error and the mean
//confidence over the interface of the model: the PAE is averaged over both
//directed entries of every contacting inter-chain residue pair, the
//confidence over the unique residues participating in at least one contact.
//ok is false when there is no contact to average over.
func InterfaceStats(M *structure.Model, P *pae.Matrix, dist float64) (meanPAE, meanPLDDT float64, ok bool) {
	offsets := make([]int, M.NChains())
	t := 0
	for i, c := range M.Chains {
		offsets[i] = t
		t += c.Len()
	}
	var paes, confs []float64
	seen := make(map[int]bool)
	for i, ci := range M.Chains {
		for j := i + 1; j < M.NChains(); j++ {
			cj := M.Chains[j]
			for _, c := range Contacts(ci.CB, cj.CB, dist) {
				gi := offsets[i] + c[0]
				gj := offsets[j] + c[1]
				paes = append(paes, P.At(gi, gj), P.At(gj, gi))
				if !seen[gi] {
					seen[gi] = true
					confs = append(confs, ci.PLDDT[c[0]])
				}
				if !seen[gj] {
					seen[gj] = true
					confs = append(confs, cj.PLDDT[c[1]])
				}
			}
		}
	}
	if len(paes) == 0 {
		return 0, 0, false
	}
	return stat.Mean(paes, nil), stat.Mean(confs, nil), true
}

//uniqueIndices returns the distinct values of the given side of the contact
//pairs, in first-appearance order.
func uniqueIndices(cts [][2]int, side int) []int {
	seen := make(map[int]bool)
	var r []int
	for _, c := range cts {
		if !seen[c[side]] {
			seen[c[side]] = true
			r = append(r, c[side])
		}
	}
	return r
}
