// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clt

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// QbarOf rotates the reduced stiffness Q (material axes, Q16 = Q26 = 0) by θ [deg] about the
// laminate normal, returning Q̄ in the laminate x-y axes
//  m = cos θ,  n = sin θ
//  Q̄11 = Q11 m⁴ + 2 (Q12 + 2 Q66) m² n² + Q22 n⁴
//  Q̄12 = (Q11 + Q22 - 4 Q66) m² n² + Q12 (m⁴ + n⁴)
//  Q̄22 = Q11 n⁴ + 2 (Q12 + 2 Q66) m² n² + Q22 m⁴
//  Q̄16 = (Q11 - Q12 - 2 Q66) m³ n + (Q12 - Q22 + 2 Q66) m n³
//  Q̄26 = (Q11 - Q12 - 2 Q66) m n³ + (Q12 - Q22 + 2 Q66) m³ n
//  Q̄66 = (Q11 + Q22 - 2 Q12 - 2 Q66) m² n² + Q66 (m⁴ + n⁴)
func QbarOf(Q [][]float64, θ float64) (Qb [][]float64) {
	r := θ * math.Pi / 180.0
	m, n := math.Cos(r), math.Sin(r)
	m2, n2 := m*m, n*n
	m4, n4, m2n2 := m2*m2, n2*n2, m2*n2
	m3n, mn3 := m2*m*n, m*n2*n

	Q11, Q12, Q22, Q66 := Q[0][0], Q[0][1], Q[1][1], Q[2][2]
	a := Q11 - Q12 - 2.0*Q66
	b := Q12 - Q22 + 2.0*Q66

	Qb = utl.Alloc(3, 3)
	Qb[0][0] = Q11*m4 + 2.0*(Q12+2.0*Q66)*m2n2 + Q22*n4
	Qb[0][1] = (Q11+Q22-4.0*Q66)*m2n2 + Q12*(m4+n4)
	Qb[1][1] = Q11*n4 + 2.0*(Q12+2.0*Q66)*m2n2 + Q22*m4
	Qb[0][2] = a*m3n + b*mn3
	Qb[1][2] = a*mn3 + b*m3n
	Qb[2][2] = (Q11+Q22-2.0*Q12-2.0*Q66)*m2n2 + Q66*(m4+n4)
	Qb[1][0] = Qb[0][1]
	Qb[2][0] = Qb[0][2]
	Qb[2][1] = Qb[1][2]
	return
}
