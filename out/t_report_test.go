// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/wr1/golam/clt"
	"github.com/wr1/golam/mdl/ply"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func laminate(tst *testing.T, angles ...float64) *clt.Laminate {
	mat, err := ply.NewOrthotropic(129500, 9370, 0.38, 5240, 0.2)
	if err != nil {
		tst.Fatalf("cannot create material: %v\n", err)
	}
	mat.Name = "cfrp"
	lam, err := clt.NewShared(angles, mat)
	if err != nil {
		tst.Fatalf("cannot create laminate: %v\n", err)
	}
	return lam
}

func contains(tst *testing.T, str string, parts ...string) {
	for _, p := range parts {
		if !strings.Contains(str, p) {
			tst.Errorf("output should contain %q:\n%s\n", p, str)
		}
	}
}

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. matrix tables")

	m := [][]float64{{1, 2, 0}, {2, 3.5, 0}, {0, 0, 1234.5}}
	str := MatrixTable("A (extension)", m, "%g")
	io.Pf("%s\n", str)
	contains(tst, str, "A (extension)", "xy", "3.5", "1234.5")

	lam := laminate(tst, 90, 0, 90)
	str = MatrixTable("ABD", lam.ABD(), "%.6g")
	io.Pf("%s\n", str)
	contains(tst, str, "Nxy", "Mxy", "κxy", "29961", "54240.7", "2274.68")

	str = MatrixTable("M", [][]float64{{1, 2}, {3, 4}}, "%g")
	contains(tst, str, "M", "1", "4")

	chk.String(tst, Angles([]float64{45, -45, 0, 90}), "[45, -45, 0, 90]")
	chk.String(tst, Angles(nil), "[]")
}

func Test_report02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report02. coupling summary")

	var rows []CouplingRow
	for _, angles := range [][]float64{{0, 90, 90, 0}, {0, 90}, {45, 45, -45, -45}} {
		rows = append(rows, NewCouplingRow("", laminate(tst, angles...)))
	}
	if !rows[0].Uncoupled(1e-10) || rows[1].Uncoupled(1e-10) || rows[2].Uncoupled(1e-10) {
		tst.Errorf("verdicts are incorrect: %v\n", rows)
		return
	}
	str := CouplingSummary(rows, 1e-10)
	io.Pf("%s\n", str)
	contains(tst, str, "Summary of Coupling Terms", "Stacking Sequence", "Max |B|", "Is Symmetric", "[0, 90, 90, 0]", "[45, 45, -45, -45]", "Yes", "No")
	if strings.Contains(str, "Laminate") {
		tst.Errorf("unnamed rows should not have a laminate column\n")
	}

	rows[0].Name = "cross"
	str = CouplingSummary(rows, 1e-10)
	contains(tst, str, "Laminate", "cross")
	chk.Int(tst, "number of No", strings.Count(str, "No"), 2)
}

func Test_report03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report03. laminate report")

	lam := laminate(tst, 90, 0, 90)
	str := LaminateReport("cross-ply", lam, "%.4g")
	io.Pf("%s\n", str)
	contains(tst, str, "Laminate cross-ply", "[90, 0, 90]", "plies = 3", "h = 0.6", "cfrp", "-0.3", "0.3",
		"ABD", "A (extension)", "B (coupling)", "D (bending)", "2.996e+04", "251.4")

	if chk.Verbose {
		PrintMat("D", lam.D(), "%12.4f")
	}
}

func Test_report04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report04. plain tables")

	str := Table("Materials", []string{"name", "E1"}, [][]string{{"cfrp", "129500"}, {"steel", "200000"}})
	io.Pf("%s\n", str)
	contains(tst, str, "Materials", "name", "E1", "cfrp", "129500", "steel")

	str = Table("", []string{"a"}, [][]string{{"1"}})
	contains(tst, str, "a", "1")
}
