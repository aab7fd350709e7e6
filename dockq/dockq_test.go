/*
 * dockq_test.go
 *
 * Copyright 2024 Ana Avila anadotavilaatuvdotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package dockq

import (
	"fmt"
	"math"
	"testing"

	"github.com/avila-lab/ifscreen/pae"
	"github.com/avila-lab/ifscreen/structure"
	"gonum.org/v1/gonum/mat"
)

//testChain builds a chain whose Calpha and Cbeta traces coincide, which is
//all the scorer looks at.
func testChain(id byte, plddt []float64, coords ...[3]float64) *structure.Chain {
	data := make([]float64, 0, 3*len(coords))
	for _, c := range coords {
		data = append(data, c[0], c[1], c[2])
	}
	m := mat.NewDense(len(coords), 3, data)
	return &structure.Chain{ID: id, CA: m, CB: m, PLDDT: plddt}
}

//two chains with two contacts: A1-B1 at 6 and A2-B1 at ~7.2 Angstrom.
func dimer() *structure.Model {
	a := testChain('A', []float64{80, 70}, [3]float64{0, 0, 0}, [3]float64{4, 0, 0})
	b := testChain('B', []float64{90, 60}, [3]float64{0, 6, 0}, [3]float64{100, 100, 100})
	return &structure.Model{Chains: []*structure.Chain{a, b}}
}

func apartDimer() *structure.Model {
	a := testChain('A', []float64{80}, [3]float64{0, 0, 0})
	b := testChain('B', []float64{90}, [3]float64{500, 0, 0})
	return &structure.Model{Chains: []*structure.Chain{a, b}}
}

func trimer() *structure.Model {
	a := testChain('A', []float64{80}, [3]float64{0, 0, 0})
	b := testChain('B', []float64{90}, [3]float64{5, 0, 0})
	c := testChain('C', []float64{100}, [3]float64{1000, 1000, 1000})
	return &structure.Model{Chains: []*structure.Chain{a, b, c}}
}

func TestContacts(Te *testing.T) {
	m := dimer()
	cts := Contacts(m.Chains[0].CB, m.Chains[1].CB, ContactDist)
	if len(cts) != 2 {
		Te.Fatalf("expected 2 contacts, got %d: %v", len(cts), cts)
	}
	if cts[0] != [2]int{0, 0} || cts[1] != [2]int{1, 0} {
		Te.Errorf("wrong contact pairs: %v", cts)
	}
}

func TestPDockQ(Te *testing.T) {
	p, ok := PDockQ(dimer(), ContactDist)
	if !ok {
		Te.Fatal("contacting dimer reported no score")
	}
	//unique interface residues are A1, A2 and B1: mean pLDDT 80, 2 contacts
	x := 80 * math.Log10(2)
	want := 0.724/(1+math.Exp(-0.052*(x-152.611))) + 0.018
	if math.Abs(p-want) > 1e-12 {
		Te.Errorf("pDockQ = %v, want %v", p, want)
	}
	if _, ok := PDockQ(apartDimer(), ContactDist); ok {
		Te.Error("non-contacting dimer got a pDockQ score")
	}
	if _, ok := PDockQ(trimer(), ContactDist); ok {
		Te.Error("pDockQ accepted a three-chain complex")
	}
	fmt.Println("pDockQ", p)
}

func TestScoreComplex(Te *testing.T) {
	s, ok := ScoreComplex(trimer(), ContactDist)
	if !ok {
		Te.Fatal("contacting trimer reported no composite score")
	}
	//the A-B interface is counted in both directions, C never touches
	want := 2 * 85 * math.Log10(2)
	if math.Abs(s-want) > 1e-12 {
		Te.Errorf("composite score = %v, want %v", s, want)
	}
	if _, ok := ScoreComplex(apartDimer(), ContactDist); ok {
		Te.Error("composite score defined with zero contacts")
	}
}

func TestRegressionBounds(Te *testing.T) {
	//both logistic fits are bounded by their published floor b and
	//ceiling L+b, and increase monotonically
	prev := 0.0
	for i, x := range []float64{0, 50, 152.611, 261.398, 400, 1000} {
		m := MpDockQ(x)
		if m <= 0.221 || m >= 1.048 {
			Te.Errorf("mpDockQ(%v) = %v outside its fit bounds", x, m)
		}
		if i > 0 && m <= prev {
			Te.Errorf("mpDockQ not increasing at %v", x)
		}
		prev = m
	}
	if math.Abs(MpDockQ(261.398)-(0.827/2+0.221)) > 1e-12 {
		Te.Error("mpDockQ midpoint off")
	}
}

func TestDockQualityDispatch(Te *testing.T) {
	//exactly one of the two formulas runs, selected by chain count
	d := dimer()
	got, ok := DockQuality(d, ContactDist)
	if !ok {
		Te.Fatal("dimer got no score")
	}
	want, _ := PDockQ(d, ContactDist)
	if got != want {
		Te.Errorf("dimer not scored by pDockQ: %v vs %v", got, want)
	}
	t := trimer()
	got, ok = DockQuality(t, ContactDist)
	if !ok {
		Te.Fatal("trimer got no score")
	}
	s, _ := ScoreComplex(t, ContactDist)
	if got != MpDockQ(s) {
		Te.Errorf("trimer not scored by mpDockQ: %v vs %v", got, MpDockQ(s))
	}
	//no contacts, or a single chain: the sentinel, never a numeric zero
	if _, ok := DockQuality(apartDimer(), ContactDist); ok {
		Te.Error("non-contacting complex got a score")
	}
	single := &structure.Model{Chains: trimer().Chains[:1]}
	if _, ok := DockQuality(single, ContactDist); ok {
		Te.Error("single chain got a score")
	}
}

func TestInterfaceStats(Te *testing.T) {
	m := dimer()
	//global residue order: A1=0, A2=1, B1=2, B2=3
	P := &pae.Matrix{Dense: mat.NewDense(4, 4, make([]float64, 16))}
	P.Set(0, 2, 4)
	P.Set(2, 0, 6)
	P.Set(1, 2, 2)
	P.Set(2, 1, 8)
	mpae, mplddt, ok := InterfaceStats(m, P, ContactDist)
	if !ok {
		Te.Fatal("contacting dimer has no interface stats")
	}
	if math.Abs(mpae-5) > 1e-12 {
		Te.Errorf("mean interface PAE = %v, want 5", mpae)
	}
	if math.Abs(mplddt-80) > 1e-12 {
		Te.Errorf("mean interface pLDDT = %v, want 80", mplddt)
	}
	if _, _, ok := InterfaceStats(apartDimer(), P, ContactDist); ok {
		Te.Error("interface stats defined with zero contacts")
	}
}
