// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ply implements the plane-stress elastic model of a single lamina
//
//   2 (transverse)
//   ^
//   |  ---------------
//   |  ---------------   fibres along 1
//   |  ---------------
//   +-----------------> 1 (longitudinal)
//
//   Q = | Q11  Q12   0  |     Q11 = E1 / (1 - ν12 ν21)
//       | Q12  Q22   0  |     Q22 = E2 / (1 - ν12 ν21)
//       |  0    0   Q66 |     Q12 = ν12 E2 / (1 - ν12 ν21)    Q66 = G12
//
package ply

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// ErrInvalidMaterial flags non-physical elastic constants or thickness
var ErrInvalidMaterial = errors.New("invalid material")

// Material holds the elastic constants of an orthotropic ply in its own 1-2 axes.
// A Material must not be modified after construction; it may be shared by any number of plies
// and laminates.
type Material struct {
	Name      string  // optional name; e.g. "cfrp"
	E1        float64 // longitudinal Young's modulus
	E2        float64 // transverse Young's modulus
	V12       float64 // major Poisson's coefficient
	G12       float64 // in-plane shear modulus
	Thickness float64 // ply thickness
}

// NewOrthotropic returns a new orthotropic ply material
func NewOrthotropic(E1, E2, v12, G12, thickness float64) (*Material, error) {
	o := &Material{E1: E1, E2: E2, V12: v12, G12: G12, Thickness: thickness}
	if err := o.Check(); err != nil {
		return nil, err
	}
	return o, nil
}

// NewIsotropic returns a ply material with E1 = E2 = E and G12 = E / (2 (1 + ν))
func NewIsotropic(E, ν, thickness float64) (*Material, error) {
	if !(ν >= 0 && ν < 1) {
		return nil, fmt.Errorf("%w: ν = %g must satisfy 0 ≤ ν < 1", ErrInvalidMaterial, ν)
	}
	return NewOrthotropic(E, E, ν, E/(2.0*(1.0+ν)), thickness)
}

// Check validates the constants. The negated comparisons also catch NaN.
func (o *Material) Check() error {
	if o == nil {
		return fmt.Errorf("%w: material is nil", ErrInvalidMaterial)
	}
	positive := []struct {
		name string
		val  float64
	}{
		{"E1", o.E1},
		{"E2", o.E2},
		{"G12", o.G12},
		{"thickness", o.Thickness},
	}
	for _, p := range positive {
		if !(p.val > 0) || math.IsInf(p.val, 0) {
			return o.fail("%s = %g must be positive and finite", p.name, p.val)
		}
	}
	if !(o.V12 >= 0 && o.V12 < 1) {
		return o.fail("ν12 = %g must satisfy 0 ≤ ν12 < 1", o.V12)
	}
	den := 1.0 - o.V12*o.V21()
	if !(den > 0) {
		return o.fail("1 - ν12 ν21 = %g must be positive (ν12 = %g, E1 = %g, E2 = %g)", den, o.V12, o.E1, o.E2)
	}
	return nil
}

// V21 returns the minor Poisson's coefficient ν21 = ν12 E2 / E1
func (o *Material) V21() float64 {
	return o.V12 * o.E2 / o.E1
}

// Q returns a new reduced stiffness matrix in the material axes
func (o *Material) Q() (Q [][]float64) {
	Q = utl.Alloc(3, 3)
	den := 1.0 - o.V12*o.V21()
	Q[0][0] = o.E1 / den
	Q[1][1] = o.E2 / den
	Q[0][1] = o.V12 * o.E2 / den
	Q[1][0] = Q[0][1]
	Q[2][2] = o.G12
	return
}

// Isotropic tells whether E1 == E2 and G12 is the isotropic shear modulus
func (o *Material) Isotropic(tol float64) bool {
	G := o.E1 / (2.0 * (1.0 + o.V12))
	return math.Abs(o.E1-o.E2) <= tol*o.E1 && math.Abs(o.G12-G) <= tol*G
}

// Equal compares elastic constants and thickness; names are ignored
func (o *Material) Equal(other *Material) bool {
	if o == other {
		return true
	}
	if o == nil || other == nil {
		return false
	}
	return o.E1 == other.E1 && o.E2 == other.E2 && o.V12 == other.V12 &&
		o.G12 == other.G12 && o.Thickness == other.Thickness
}

// String returns a one-line description
func (o *Material) String() string {
	name := o.Name
	if name == "" {
		name = "ply"
	}
	return io.Sf("%s: E1=%g E2=%g ν12=%g G12=%g t=%g", name, o.E1, o.E2, o.V12, o.G12, o.Thickness)
}

func (o *Material) fail(msg string, prm ...interface{}) error {
	if o.Name != "" {
		return fmt.Errorf("%w %q: %s", ErrInvalidMaterial, o.Name, io.Sf(msg, prm...))
	}
	return fmt.Errorf("%w: %s", ErrInvalidMaterial, io.Sf(msg, prm...))
}
