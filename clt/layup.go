// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clt

// Expand returns the full stacking sequence. If symmetric, half is mirrored about the midplane;
// e.g. [0, 45]s => [0, 45, 45, 0]
func Expand(half []float64, symmetric bool) (angles []float64) {
	angles = make([]float64, 0, 2*len(half))
	angles = append(angles, half...)
	if symmetric {
		for k := len(half) - 1; k >= 0; k-- {
			angles = append(angles, half[k])
		}
	}
	return
}

// Repeat returns the stacking sequence repeated n times; e.g. [0, 90]2 => [0, 90, 0, 90]
//  Note: returns nil if n <= 0
func Repeat(angles []float64, n int) (res []float64) {
	if n <= 0 {
		return nil
	}
	res = make([]float64, 0, n*len(angles))
	for i := 0; i < n; i++ {
		res = append(res, angles...)
	}
	return
}
