// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Isotropic implements an isotropic ply (E1 = E2 = E, G12 = E/(2(1+ν)))
type Isotropic struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson's coefficient
	T  float64 // thickness
}

// add model to factory
func init() {
	allocators["isotropic"] = func() Model { return new(Isotropic) }
}

// Init initialises model
func (o *Isotropic) Init(prms Prms) (err error) {
	given := make(map[string]bool)
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "e":
			o.E = p.V
			given["e"] = true
		case "nu", "v":
			o.Nu = p.V
			given["nu"] = true
		case "t", "thickness":
			o.T = p.V
			given["t"] = true
		default:
			return chk.Err("isotropic: parameter named %q is incorrect", p.N)
		}
	}
	return required("isotropic", given, "e", "nu", "t")
}

// GetPrms gets (an example) of parameters
func (o Isotropic) GetPrms() Prms {
	return []*Prm{
		&Prm{N: "E", V: 73100, U: "MPa"},
		&Prm{N: "nu", V: 0.35, U: "-"},
		&Prm{N: "t", V: 1.0, U: "mm"},
	}
}

// Material builds the ply material
func (o Isotropic) Material() (*Material, error) {
	return NewIsotropic(o.E, o.Nu, o.T)
}
