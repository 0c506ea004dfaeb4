// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package clt implements the classical lamination theory
//
//          z ^
//            |       ply n    θn   ----------------   z_n = +h/2
//            |        ...          ----------------
//     midplane ------ ply k   θk   ---------------- z_k
//            |        ...          ---------------- z_k-1
//            |       ply 1    θ1   ----------------
//            |                     ----------------   z_0 = -h/2
//
//   | N |   | A  B | | ε⁰ |      A_ij =     Σ Q̄k_ij (z_k  - z_k-1 )
//   |   | = |      | |    |      B_ij = 1/2 Σ Q̄k_ij (z_k² - z_k-1²)
//   | M |   | B  D | | κ  |      D_ij = 1/3 Σ Q̄k_ij (z_k³ - z_k-1³)
//
package clt

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpmech/gosl/utl"
	"github.com/wr1/golam/mdl/ply"
)

// ErrInvalidStackingSequence flags an empty stacking sequence or inconsistent per-ply data
var ErrInvalidStackingSequence = errors.New("invalid stacking sequence")

// Ply holds the data of one ply placed in the laminate
type Ply struct {
	Angle float64       // fibre angle [deg]
	Mat   *ply.Material // material (shared, read-only)
	Qbar  [][]float64   // rotated reduced stiffness in laminate axes
	Zbot  float64       // bottom coordinate measured from the midplane
	Ztop  float64       // top coordinate measured from the midplane
}

// Thickness returns the ply thickness
func (o *Ply) Thickness() float64 {
	return o.Ztop - o.Zbot
}

// Laminate holds the stiffness of a laminate. It is immutable: all matrices are computed by the
// constructors and the accessors return copies.
type Laminate struct {
	plies []*Ply      // plies from bottom to top
	h     float64     // total thickness
	a     [][]float64 // extensional stiffness
	b     [][]float64 // coupling stiffness
	d     [][]float64 // bending stiffness
	abd   [][]float64 // [[A, B], [B, D]]
}

// NewShared returns a new laminate where every ply uses the same material
func NewShared(angles []float64, mat *ply.Material) (*Laminate, error) {
	mats := make([]*ply.Material, len(angles))
	for i := range mats {
		mats[i] = mat
	}
	return New(angles, mats)
}

// New returns a new laminate
//  angles -- ply angles [deg] from the bottom face to the top face
//  mats   -- one material per ply
func New(angles []float64, mats []*ply.Material) (*Laminate, error) {
	if len(angles) == 0 {
		return nil, fmt.Errorf("%w: at least one ply is required", ErrInvalidStackingSequence)
	}
	if len(mats) != len(angles) {
		return nil, fmt.Errorf("%w: %d angles but %d materials", ErrInvalidStackingSequence, len(angles), len(mats))
	}
	for k, θ := range angles {
		if math.IsNaN(θ) || math.IsInf(θ, 0) {
			return nil, fmt.Errorf("%w: angle of ply %d is %g", ErrInvalidStackingSequence, k, θ)
		}
		if mats[k] == nil {
			return nil, fmt.Errorf("%w: material of ply %d is missing", ErrInvalidStackingSequence, k)
		}
		if err := mats[k].Check(); err != nil {
			return nil, fmt.Errorf("ply %d: %w", k, err)
		}
	}
	o := new(Laminate)
	o.place(angles, mats)
	o.integrate()
	o.assemble()
	return o, nil
}

// place computes the rotated stiffness and the z interval of each ply
func (o *Laminate) place(angles []float64, mats []*ply.Material) {
	for _, m := range mats {
		o.h += m.Thickness
	}
	o.plies = make([]*Ply, len(angles))
	z := -o.h / 2.0
	for k, θ := range angles {
		p := &Ply{Angle: θ, Mat: mats[k], Qbar: QbarOf(mats[k].Q(), θ), Zbot: z}
		z += mats[k].Thickness
		p.Ztop = z
		o.plies[k] = p
	}
	o.plies[len(o.plies)-1].Ztop = o.h / 2.0
}

// integrate computes A, B and D through the thickness
func (o *Laminate) integrate() {
	o.a = utl.Alloc(3, 3)
	o.b = utl.Alloc(3, 3)
	o.d = utl.Alloc(3, 3)
	for _, p := range o.plies {
		z0, z1 := p.Zbot, p.Ztop
		Δz1 := z1 - z0
		Δz2 := (z1*z1 - z0*z0) / 2.0
		Δz3 := (z1*z1*z1 - z0*z0*z0) / 3.0
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				o.a[i][j] += p.Qbar[i][j] * Δz1
				o.b[i][j] += p.Qbar[i][j] * Δz2
				o.d[i][j] += p.Qbar[i][j] * Δz3
			}
		}
	}
}

// assemble builds the 6×6 ABD matrix
func (o *Laminate) assemble() {
	o.abd = utl.Alloc(6, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.abd[i][j] = o.a[i][j]
			o.abd[i][j+3] = o.b[i][j]
			o.abd[i+3][j] = o.b[i][j]
			o.abd[i+3][j+3] = o.d[i][j]
		}
	}
}

// A returns the extensional stiffness matrix
func (o *Laminate) A() [][]float64 { return clone(o.a) }

// B returns the coupling stiffness matrix
func (o *Laminate) B() [][]float64 { return clone(o.b) }

// D returns the bending stiffness matrix
func (o *Laminate) D() [][]float64 { return clone(o.d) }

// ABD returns the 6×6 laminate stiffness matrix
func (o *Laminate) ABD() [][]float64 { return clone(o.abd) }

// Thickness returns the total thickness
func (o *Laminate) Thickness() float64 { return o.h }

// NumPlies returns the number of plies
func (o *Laminate) NumPlies() int { return len(o.plies) }

// PlyThicknesses returns the thickness of each ply from bottom to top
func (o *Laminate) PlyThicknesses() (t []float64) {
	t = make([]float64, len(o.plies))
	for k, p := range o.plies {
		t[k] = p.Mat.Thickness
	}
	return
}

// Angles returns the stacking sequence
func (o *Laminate) Angles() (θ []float64) {
	θ = make([]float64, len(o.plies))
	for k, p := range o.plies {
		θ[k] = p.Angle
	}
	return
}

// Plies returns copies of the placed plies
func (o *Laminate) Plies() (res []*Ply) {
	res = make([]*Ply, len(o.plies))
	for k, p := range o.plies {
		res[k] = &Ply{Angle: p.Angle, Mat: p.Mat, Qbar: clone(p.Qbar), Zbot: p.Zbot, Ztop: p.Ztop}
	}
	return
}

// CouplingNorm returns the largest absolute entry of B
func (o *Laminate) CouplingNorm() (norm float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			norm = math.Max(norm, math.Abs(o.b[i][j]))
		}
	}
	return
}

// IsMirrorSymmetric tells whether ply k from the top mirrors ply k from the bottom in angle and
// material (including thickness). tol applies to angles [deg]
func (o *Laminate) IsMirrorSymmetric(tol float64) bool {
	n := len(o.plies)
	for k := 0; k < n/2; k++ {
		bot, top := o.plies[k], o.plies[n-1-k]
		if math.Abs(bot.Angle-top.Angle) > tol || !bot.Mat.Equal(top.Mat) {
			return false
		}
	}
	return true
}

func clone(m [][]float64) (res [][]float64) {
	res = utl.Alloc(len(m), len(m[0]))
	for i := range m {
		copy(res[i], m[i])
	}
	return
}
