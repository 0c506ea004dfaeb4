// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/wr1/golam/mdl/ply"
)

// Material holds parameters of some reference ply materials
//
//   isotropic   : steel, aluminum
//   orthotropic : cfrp, t300-5208, as4-3501, eglass-epoxy
//
//   thickness of one ply is always given in mm
type Material struct {

	// input
	Type     string // type of material; e.g. "cfrp"
	UnitPres string // unit of pressure

	// derived
	Desc string  // description
	Iso  bool    // isotropic material
	E1   float64 // longitudinal Young's modulus
	E2   float64 // transverse Young's modulus
	Nu12 float64 // major Poisson's coefficient
	G12  float64 // shear modulus
	T    float64 // ply thickness [mm]
}

// refdata holds the reference constants in MPa and mm
var refdata = map[string]Material{
	"steel": {Desc: "Steel: structural A36", Iso: true,
		E1: 200000, E2: 200000, Nu12: 0.32, T: 1.0},
	"aluminum": {Desc: "Aluminum: 2014-T6", Iso: true,
		E1: 73100, E2: 73100, Nu12: 0.35, T: 1.0},
	"cfrp": {Desc: "CFRP: unidirectional carbon/epoxy prepreg",
		E1: 129500, E2: 9370, Nu12: 0.38, G12: 5240, T: 0.2},
	"t300-5208": {Desc: "CFRP: T300/5208 carbon/epoxy",
		E1: 181000, E2: 10300, Nu12: 0.28, G12: 7170, T: 0.125},
	"as4-3501": {Desc: "CFRP: AS4/3501-6 carbon/epoxy",
		E1: 138000, E2: 8960, Nu12: 0.30, G12: 7100, T: 0.125},
	"eglass-epoxy": {Desc: "GFRP: Scotchply 1002 E-glass/epoxy",
		E1: 38600, E2: 8270, Nu12: 0.26, G12: 4140, T: 0.125},
}

// Types returns the available reference materials
func Types() (types []string) {
	for typ := range refdata {
		types = append(types, typ)
	}
	sort.Strings(types)
	return
}

// Init initialises material paramters
//  Input:
//   unitPres:  "kPa", "MPa" or "GPa"
func (o *Material) Init(typ, unitPres string) (err error) {

	// material data
	ref, ok := refdata[typ]
	if !ok {
		return chk.Err("material type %q is unavailable; options are %v", typ, Types())
	}
	*o = ref
	o.Type = typ

	// set unit
	MPa_to_unitPres := 1.0 // convert from MPa to unitPress (e.g. kPa)
	switch unitPres {
	case "kPa":
		MPa_to_unitPres = 1e3
	case "MPa":
	case "GPa":
		MPa_to_unitPres = 1e-3
	default:
		return chk.Err("unit of pressure %q is invalid", unitPres)
	}
	o.UnitPres = unitPres

	// convert values to requested units
	o.E1 *= MPa_to_unitPres
	o.E2 *= MPa_to_unitPres
	o.G12 *= MPa_to_unitPres

	// derived quantity
	if o.Iso {
		o.G12 = o.E1 / (2.0 * (1.0 + o.Nu12))
	}
	return
}

// Ply returns the ply material
func (o *Material) Ply() (mat *ply.Material, err error) {
	if o.Iso {
		mat, err = ply.NewIsotropic(o.E1, o.Nu12, o.T)
	} else {
		mat, err = ply.NewOrthotropic(o.E1, o.E2, o.Nu12, o.G12, o.T)
	}
	if err != nil {
		return nil, err
	}
	mat.Name = o.Type
	return
}

// GetMatString returns the JSON representation of this material for laminate input files
func (o *Material) GetMatString(name, numfmt string) string {
	l := io.Sf("    {\n      \"name\" : %q,\n", name)
	l += io.Sf("      \"desc\" : %q,\n", o.Desc)
	if o.Iso {
		l += "      \"model\" : \"isotropic\",\n"
		l += "      \"prms\" : [\n"
		l += io.Sf("        {\"n\":\"E\",    \"v\":"+numfmt+", \"u\":%q},\n", o.E1, o.UnitPres)
		l += io.Sf("        {\"n\":\"nu\",   \"v\":"+numfmt+", \"u\":%q},\n", o.Nu12, "-")
	} else {
		l += "      \"model\" : \"orthotropic\",\n"
		l += "      \"prms\" : [\n"
		l += io.Sf("        {\"n\":\"E1\",   \"v\":"+numfmt+", \"u\":%q},\n", o.E1, o.UnitPres)
		l += io.Sf("        {\"n\":\"E2\",   \"v\":"+numfmt+", \"u\":%q},\n", o.E2, o.UnitPres)
		l += io.Sf("        {\"n\":\"nu12\", \"v\":"+numfmt+", \"u\":%q},\n", o.Nu12, "-")
		l += io.Sf("        {\"n\":\"G12\",  \"v\":"+numfmt+", \"u\":%q},\n", o.G12, o.UnitPres)
	}
	l += io.Sf("        {\"n\":\"t\",    \"v\":"+numfmt+", \"u\":%q}", o.T, "mm")
	l += io.Sf("\n      ]\n    }")
	return l
}
