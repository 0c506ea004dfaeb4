// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Orthotropic implements the general orthotropic ply model
type Orthotropic struct {
	E1   float64 // longitudinal modulus
	E2   float64 // transverse modulus
	Nu12 float64 // major Poisson's coefficient
	G12  float64 // shear modulus
	T    float64 // thickness
}

// add model to factory
func init() {
	allocators["orthotropic"] = func() Model { return new(Orthotropic) }
}

// Init initialises model
func (o *Orthotropic) Init(prms Prms) (err error) {
	given := make(map[string]bool)
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "e1":
			o.E1 = p.V
			given["e1"] = true
		case "e2":
			o.E2 = p.V
			given["e2"] = true
		case "nu12", "v12":
			o.Nu12 = p.V
			given["nu12"] = true
		case "g12":
			o.G12 = p.V
			given["g12"] = true
		case "t", "thickness":
			o.T = p.V
			given["t"] = true
		default:
			return chk.Err("orthotropic: parameter named %q is incorrect", p.N)
		}
	}
	return required("orthotropic", given, "e1", "e2", "nu12", "g12", "t")
}

// GetPrms gets (an example) of parameters
func (o Orthotropic) GetPrms() Prms {
	return []*Prm{
		&Prm{N: "E1", V: 129500, U: "MPa"},
		&Prm{N: "E2", V: 9370, U: "MPa"},
		&Prm{N: "nu12", V: 0.38, U: "-"},
		&Prm{N: "G12", V: 5240, U: "MPa"},
		&Prm{N: "t", V: 0.2, U: "mm"},
	}
}

// Material builds the ply material
func (o Orthotropic) Material() (*Material, error) {
	return NewOrthotropic(o.E1, o.E2, o.Nu12, o.G12, o.T)
}
