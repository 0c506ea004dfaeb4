// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/wr1/golam/ana"
	"github.com/wr1/golam/clt"
	"github.com/wr1/golam/mdl/ply"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_inp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inp01. yaml file")

	dat, err := ReadFile("data/cfrp.yaml")
	if err != nil {
		tst.Errorf("ReadFile failed:\n%v\n", err)
		return
	}
	chk.String(tst, dat.Desc, "carbon/epoxy laminates")
	chk.Strings(tst, "names", dat.Names(), []string{"cross-ply", "quasi", "sandwich"})
	chk.Int(tst, "number of materials", len(dat.Mats), 2)
	if dat.Materials.Get("cfrp") == nil || dat.Materials.Get("steel") != nil {
		tst.Errorf("Get is incorrect\n")
		return
	}

	cfrp := dat.Mats["cfrp"]
	chk.String(tst, cfrp.Name, "cfrp")
	chk.Float64(tst, "E1", 1e-17, cfrp.E1, 129500)
	chk.Float64(tst, "t", 1e-17, cfrp.Thickness, 0.2)
	core := dat.Mats["core"]
	chk.Float64(tst, "G12 of core", 1e-10, core.G12, 73100/2.7)

	lam, err := dat.Laminate("cross-ply")
	if err != nil {
		tst.Errorf("Laminate failed:\n%v\n", err)
		return
	}
	A := lam.A()
	chk.Float64(tst, "A11", 1e-8, A[0][0], 29961.035677066175)
	chk.Float64(tst, "A22", 1e-8, A[1][1], 54240.71198498549)
	chk.Float64(tst, "A66", 1e-8, A[2][2], 3144)

	quasi := dat.GetLam("quasi")
	chk.Array(tst, "quasi stacking", 1e-17, quasi.Stacking(), []float64{45, -45, 0, 90, 90, 0, -45, 45})

	lams, err := dat.Build()
	if err != nil {
		tst.Errorf("Build failed:\n%v\n", err)
		return
	}
	chk.Int(tst, "number of laminates", len(lams), 3)
	chk.Int(tst, "quasi plies", lams[1].NumPlies(), 8)
	chk.Float64(tst, "sandwich thickness", 1e-15, lams[2].Thickness(), 2.8)
	chk.Array(tst, "sandwich plies", 1e-17, lams[2].PlyThicknesses(), []float64{0.2, 0.2, 1, 1, 0.2, 0.2})
	for i, l := range lams {
		if l.CouplingNorm() > 1e-8 {
			tst.Errorf("laminate %d should not couple: max|B| = %g\n", i, l.CouplingNorm())
		}
	}
}

func Test_inp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inp02. json file and pcomp cards")

	dat, err := ReadFile("data/cfrp.json")
	if err != nil {
		tst.Errorf("ReadFile failed:\n%v\n", err)
		return
	}

	c, err := dat.Card("cross-ply")
	if err != nil {
		tst.Errorf("Card failed:\n%v\n", err)
		return
	}
	chk.Int(tst, "pid", c.PID, 10)
	chk.Ints(tst, "mids", c.MIDs, []int{1})
	chk.Array(tst, "angles", 1e-17, c.Angles, []float64{90, 0, 90})
	chk.Array(tst, "thicknesses", 1e-17, c.Thicknesses, []float64{0.2, 0.2, 0.2})
	if c.Z0 != nil {
		tst.Errorf("z0 should be nil\n")
	}

	c, err = dat.Card("antisym")
	if err != nil {
		tst.Errorf("Card failed:\n%v\n", err)
		return
	}
	chk.Int(tst, "default pid", c.PID, 2)
	chk.Ints(tst, "default mids", c.MIDs, []int{1, 1, 1, 1})

	lam, err := dat.Laminate("antisym")
	if err != nil {
		tst.Errorf("Laminate failed:\n%v\n", err)
		return
	}
	B := lam.B()
	io.Pforan("B = %v\n", B)
	chk.Float64(tst, "B11", 1e-9, B[0][0], 0)
	if B[0][2] > -4800 {
		tst.Errorf("antisymmetric angle-ply should couple: B16 = %g\n", B[0][2])
	}
}

func Test_inp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inp03. mixed materials and nastran ids")

	dat, err := ReadFile("data/cfrp.yaml")
	if err != nil {
		tst.Errorf("ReadFile failed:\n%v\n", err)
		return
	}

	c, err := dat.Card("sandwich")
	if err != nil {
		tst.Errorf("Card failed:\n%v\n", err)
		return
	}
	chk.Int(tst, "pid", c.PID, 3)
	chk.Ints(tst, "mids", c.MIDs, []int{1, 1, 2, 2, 1, 1})
	if c.Z0 == nil {
		tst.Errorf("z0 should be set\n")
		return
	}
	chk.Float64(tst, "z0", 1e-17, *c.Z0, -1.5)

	c, err = dat.Card("quasi")
	if err != nil {
		tst.Errorf("Card failed:\n%v\n", err)
		return
	}
	chk.String(tst, c.Sout, "fiber")
	chk.Int(tst, "pid", c.PID, 2)
	chk.Int(tst, "number of mids", len(c.MIDs), 8)
}

func Test_inp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inp04. materials written by ana")

	var steel, cfrp ana.Material
	if err := steel.Init("steel", "GPa"); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if err := cfrp.Init("cfrp", "MPa"); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	src := "{\n  \"materials\" : [\n" + steel.GetMatString("steel", "%g") + ",\n" + cfrp.GetMatString("cfrp", "%g") + "\n  ],\n"
	src += "  \"laminates\" : [ {\"name\":\"hybrid\", \"angles\":[0, 90, 0], \"materials\":[\"steel\", \"cfrp\", \"steel\"]} ]\n}"
	io.Pforan("%s\n", src)

	dat, err := Decode([]byte(src), ".JSON")
	if err != nil {
		tst.Errorf("Decode failed:\n%v\n", err)
		return
	}
	chk.Float64(tst, "E steel", 1e-17, dat.Mats["steel"].E1, 200)
	chk.String(tst, dat.Materials.Get("cfrp").Model, "orthotropic")

	lam, err := dat.Laminate("hybrid")
	if err != nil {
		tst.Errorf("Laminate failed:\n%v\n", err)
		return
	}
	chk.Float64(tst, "h", 1e-15, lam.Thickness(), 2.2)
	if lam.CouplingNorm() > 1e-8 {
		tst.Errorf("hybrid laminate should not couple: max|B| = %g\n", lam.CouplingNorm())
	}
}

func Test_inp05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inp05. errors")

	const mat = "materials: [{name: m, model: isotropic, prms: [{n: E, v: 1000}, {n: nu, v: 0.3}, {n: t, v: 1}]}]\n"
	for _, tc := range []struct {
		src, ext, msg string
	}{
		{mat, ".txt", "not supported"},
		{"materials: [", ".yaml", "cannot decode"},
		{mat + "extra: 1\n", ".yml", "cannot decode"},
		{`{"materials":[], "laminate":[]}`, ".json", "cannot decode"},
		{"materials: [{name: m, model: isotropic, prms: [{n: E, v: 1}, {n: nu, v: 0}, {n: t, v: 1}]}, {name: m, model: isotropic, prms: [{n: E, v: 2}, {n: nu, v: 0}, {n: t, v: 1}]}]\n", ".yaml", "duplicated"},
		{"materials: [{model: isotropic}]\n", ".yaml", "no name"},
		{"materials: [{name: x, model: elastoplastic}]\n", ".yaml", "not available"},
		{"materials: [{name: x, model: isotropic, prms: [{n: E, v: 1000}]}]\n", ".yaml", "missing"},
		{mat + "laminates: [{name: a, angles: [0], material: m}, {name: a, angles: [0], material: m}]\n", ".yaml", "duplicated"},
		{mat + "laminates: [{angles: [0], material: m}]\n", ".yaml", "no name"},
		{mat + "laminates: [{name: a, angles: [0]}]\n", ".yaml", "exactly one"},
		{mat + "laminates: [{name: a, angles: [0], material: m, materials: [m]}]\n", ".yaml", "exactly one"},
		{mat + "laminates: [{name: a, angles: [0], material: steel}]\n", ".yaml", "\"steel\" is not available"},
		{mat + "laminates: [{name: a, angles: [0, 90], materials: [m, q]}]\n", ".yaml", "\"q\" is not available"},
		{mat + "laminates: [{name: a, angles: [0, 90], repeat: -1, material: m}]\n", ".yaml", "must be non-negative"},
	} {
		_, err := Decode([]byte(tc.src), tc.ext)
		if err == nil {
			tst.Errorf("%q should fail\n", tc.src)
			continue
		}
		io.Pforan("%v\n", err)
		if !strings.Contains(err.Error(), tc.msg) {
			tst.Errorf("error %q should contain %q\n", err.Error(), tc.msg)
		}
	}

	// sentinel errors survive wrapping
	_, err := Decode([]byte("materials: [{name: x, model: isotropic, prms: [{n: E, v: -1}, {n: nu, v: 0.3}, {n: t, v: 1}]}]\n"), ".yaml")
	if !errors.Is(err, ply.ErrInvalidMaterial) {
		tst.Errorf("negative modulus should give ErrInvalidMaterial; got %v\n", err)
	}
	dat, err := Decode([]byte(mat+"laminates: [{name: a, angles: [0, 90, 0], materials: [m, m]}]\n"), ".yaml")
	if err != nil {
		tst.Errorf("Decode failed:\n%v\n", err)
		return
	}
	if _, err = dat.Laminate("a"); !errors.Is(err, clt.ErrInvalidStackingSequence) {
		tst.Errorf("length mismatch should give ErrInvalidStackingSequence; got %v\n", err)
	}
	if _, err = dat.Build(); err == nil {
		tst.Errorf("Build should fail\n")
	}
	if _, err = dat.Laminate("b"); err == nil {
		tst.Errorf("unknown laminate should fail\n")
	}
	if _, err = dat.Card("b"); err == nil {
		tst.Errorf("unknown laminate should fail\n")
	}
	_, err = ReadFile("data/missing.yaml")
	if err == nil {
		tst.Errorf("missing file should fail\n")
		return
	}
	if !strings.Contains(err.Error(), "cannot read laminate file \"data/missing.yaml\"") {
		tst.Errorf("error of missing file is incorrect: %v\n", err)
	}
}

func Test_inp06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inp06. repeated sub-laminates")

	src := `materials:
  - {name: m, model: isotropic, prms: [{n: E, v: 1000}, {n: nu, v: 0.3}, {n: t, v: 0.5}]}
  - {name: q, model: isotropic, prms: [{n: E, v: 2000}, {n: nu, v: 0.3}, {n: t, v: 0.25}]}
laminates:
  - {name: rs, angles: [0, 90], repeat: 2, symmetric: true, materials: [m, q]}
  - {name: r3, angles: [45], repeat: 3, material: m}
  - {name: r0, angles: [0, 90], repeat: 0, material: m}
`
	dat, err := Decode([]byte(src), ".yaml")
	if err != nil {
		tst.Errorf("Decode failed:\n%v\n", err)
		return
	}
	chk.Array(tst, "[0,90]2s", 1e-17, dat.GetLam("rs").Stacking(), []float64{0, 90, 0, 90, 90, 0, 90, 0})
	chk.Array(tst, "[45]3", 1e-17, dat.GetLam("r3").Stacking(), []float64{45, 45, 45})
	chk.Array(tst, "[0,90] with repeat 0", 1e-17, dat.GetLam("r0").Stacking(), []float64{0, 90})

	c, err := dat.Card("rs")
	if err != nil {
		tst.Errorf("Card failed:\n%v\n", err)
		return
	}
	chk.Ints(tst, "mids", c.MIDs, []int{1, 2, 1, 2, 2, 1, 2, 1})
	chk.Array(tst, "thicknesses", 1e-17, c.Thicknesses, []float64{0.5, 0.25, 0.5, 0.25, 0.25, 0.5, 0.25, 0.5})

	lam, err := dat.Laminate("rs")
	if err != nil {
		tst.Errorf("Laminate failed:\n%v\n", err)
		return
	}
	chk.Float64(tst, "h", 1e-15, lam.Thickness(), 3)
	if lam.CouplingNorm() > 1e-10 {
		tst.Errorf("[0,90]2s should not couple: max|B| = %g\n", lam.CouplingNorm())
	}
}
