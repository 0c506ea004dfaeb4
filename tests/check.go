// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test laminate files against reference results
package tests

import (
	"encoding/json"
	"math"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/wr1/golam/inp"
	"github.com/wr1/golam/out"
)

// Results holds the reference results of one laminate
type Results struct {
	Name   string      `json:"name"`   // name of laminate in the laminate file
	Angles []float64   `json:"angles"` // full stacking sequence
	H      float64     `json:"h"`      // total thickness
	ABD    [][]float64 `json:"abd"`    // 6×6 stiffness
	Note   string      `json:"note"`   // note about the source of results
}

// ResultsSet is a set of comparison results
type ResultsSet []*Results

// ReadResults reads a .cmp file
func ReadResults(cmpfname string) (set ResultsSet, err error) {
	buf, err := os.ReadFile(cmpfname)
	if err != nil {
		return nil, chk.Err("cannot read comparison results %q:\n%v", cmpfname, err)
	}
	err = json.Unmarshal(buf, &set)
	return
}

// CompareResults computes all laminates in lamfile and compares them with the .cmp file.
// Entries of ABD are compared with |a-b| <= atol + rtol·|b|
func CompareResults(tst *testing.T, lamfile, cmpfname string, rtol, atol float64, verbose bool) {

	// laminate file
	dat, err := inp.ReadFile(lamfile)
	if err != nil {
		tst.Errorf("CompareResults: ReadFile failed:\n%v\n", err)
		return
	}

	// comparison results
	cmpSet, err := ReadResults(cmpfname)
	if err != nil {
		tst.Errorf("CompareResults: cannot read comparison results:\n%v\n", err)
		return
	}
	if len(cmpSet) == 0 {
		tst.Errorf("CompareResults: %q has no results\n", cmpfname)
		return
	}

	// run comparisons
	for _, cmp := range cmpSet {
		lam, err := dat.Laminate(cmp.Name)
		if err != nil {
			tst.Errorf("CompareResults: %v\n", err)
			return
		}
		if verbose {
			io.Pfyel("\n%s %s\n", cmp.Name, out.Angles(cmp.Angles))
			out.PrintMat("ABD", lam.ABD(), "%13.6e")
		}
		chk.Array(tst, io.Sf("%s: angles", cmp.Name), 1e-15, lam.Angles(), cmp.Angles)
		chk.Float64(tst, io.Sf("%s: h", cmp.Name), 1e-14, lam.Thickness(), cmp.H)
		CheckClose(tst, cmp.Name+": ABD", rtol, atol, lam.ABD(), cmp.ABD)
	}
}

// CheckClose checks that |a-b| <= atol + rtol·|b| for all entries
func CheckClose(tst *testing.T, msg string, rtol, atol float64, a, b [][]float64) {
	if len(a) != len(b) {
		tst.Errorf("%s: number of rows differ: %d != %d\n", msg, len(a), len(b))
		return
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			tst.Errorf("%s: number of columns of row %d differ: %d != %d\n", msg, i, len(a[i]), len(b[i]))
			return
		}
		for j := range a[i] {
			if math.Abs(a[i][j]-b[i][j]) > atol+rtol*math.Abs(b[i][j]) {
				tst.Errorf("%s: [%d][%d] = %v != %v\n", msg, i, j, a[i][j], b[i][j])
				return
			}
		}
	}
}
