// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// IsoPlate implements the stiffness of a homogeneous isotropic plate of thickness H
//
//                E H      | 1  ν     0     |             E H³        | 1  ν     0     |
//   A = ----------------- | ν  1     0     |   D = --------------- | ν  1     0     |   B = 0
//           (1 - ν²)      | 0  0  (1-ν)/2  |       12 (1 - ν²)     | 0  0  (1-ν)/2  |
//
type IsoPlate struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson's coefficient
	H  float64 // thickness
}

// A returns the extensional stiffness
func (o IsoPlate) A() [][]float64 {
	return o.stiff(o.E * o.H / (1.0 - o.Nu*o.Nu))
}

// D returns the bending stiffness
func (o IsoPlate) D() [][]float64 {
	return o.stiff(o.E * o.H * o.H * o.H / (12.0 * (1.0 - o.Nu*o.Nu)))
}

// FlexuralRigidity returns the classical plate constant E H³ / (12 (1 - ν²))
func (o IsoPlate) FlexuralRigidity() float64 {
	return o.E * o.H * o.H * o.H / (12.0 * (1.0 - o.Nu*o.Nu))
}

// CheckABD checks the 6×6 ABD matrix of a laminate against this plate
func (o IsoPlate) CheckABD(tst *testing.T, abd [][]float64, tolA, tolD float64) {
	A, D := o.A(), o.D()
	a, b, d := utl.Alloc(3, 3), utl.Alloc(3, 3), utl.Alloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = abd[i][j]
			b[i][j] = abd[i][j+3]
			d[i][j] = abd[i+3][j+3]
		}
	}
	chk.Deep2(tst, "A", tolA, a, A)
	chk.Deep2(tst, "B", tolD, b, utl.Alloc(3, 3))
	chk.Deep2(tst, "D", tolD, d, D)
}

func (o IsoPlate) stiff(c float64) (M [][]float64) {
	M = utl.Alloc(3, 3)
	M[0][0], M[0][1] = c, c*o.Nu
	M[1][0], M[1][1] = c*o.Nu, c
	M[2][2] = c * (1.0 - o.Nu) / 2.0
	return
}
