// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package nastran writes composite shell property cards
//
//   PCOMP,PID,Z0,NSM,SB,FT,TREF,+
//   +,MID1,T1,THETA1,SOUT1,MID2,T2,THETA2,SOUT2+
//   ...
//
package nastran

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SOUT options
const (
	SoutExtremes = "EXTREMES" // stresses on the outer plies only (default)
	SoutFiber    = "FIBER"    // stresses on every ply
	SoutAll      = "ALL"      // same as FIBER
	SoutNone     = "NONE"     // no ply stresses
)

// Card holds the data of one PCOMP card. A single MID or thickness applies to every ply
type Card struct {
	PID         int       // property id
	Z0          *float64  // bottom surface offset; nil => blank field
	Angles      []float64 // ply angles [deg] from bottom to top
	MIDs        []int     // material ids
	Thicknesses []float64 // ply thicknesses
	Sout        string    // stress output request; see Sout constants
}

// BuildPCOMP returns the PCOMP card in free-field format
func BuildPCOMP(c Card) (string, error) {
	n := len(c.Angles)
	if n == 0 {
		return "", chk.Err("PCOMP %d: stacking sequence is empty", c.PID)
	}
	mids, err := broadcastInts(c.PID, "material ids", c.MIDs, n)
	if err != nil {
		return "", err
	}
	thick, err := broadcastFloats(c.PID, "thicknesses", c.Thicknesses, n)
	if err != nil {
		return "", err
	}
	for k, t := range thick {
		if !(t > 0) {
			return "", chk.Err("PCOMP %d: thickness of ply %d must be positive; got %g", c.PID, k, t)
		}
	}
	souts, err := sout(c.PID, c.Sout, n)
	if err != nil {
		return "", err
	}

	z0 := ""
	if c.Z0 != nil {
		z0 = num(*c.Z0)
	}
	var b strings.Builder
	b.WriteString(io.Sf("PCOMP,%d,%s,,,,,+\n", c.PID, z0))
	for k := 0; k < n; k += 2 {
		b.WriteString(io.Sf("+,%d,%s,%s,%s", mids[k], num(thick[k]), num(c.Angles[k]), souts[k]))
		if k+1 < n {
			b.WriteString(io.Sf(",%d,%s,%s,%s", mids[k+1], num(thick[k+1]), num(c.Angles[k+1]), souts[k+1]))
		}
		b.WriteString("+\n")
	}
	return b.String(), nil
}

// sout returns the YES/NO flags of every ply
func sout(pid int, option string, n int) (flags []string, err error) {
	flags = make([]string, n)
	switch strings.ToUpper(option) {
	case "", SoutExtremes:
		for k := range flags {
			flags[k] = "NO"
		}
		flags[0], flags[n-1] = "YES", "YES"
	case SoutFiber, SoutAll:
		for k := range flags {
			flags[k] = "YES"
		}
	case SoutNone:
		for k := range flags {
			flags[k] = "NO"
		}
	default:
		return nil, chk.Err("PCOMP %d: SOUT option %q is invalid; options are %q, %q, %q and %q", pid, option, SoutExtremes, SoutFiber, SoutAll, SoutNone)
	}
	return
}

func broadcastInts(pid int, what string, vals []int, n int) ([]int, error) {
	switch len(vals) {
	case n:
		return vals, nil
	case 1:
		res := make([]int, n)
		for k := range res {
			res[k] = vals[0]
		}
		return res, nil
	}
	return nil, chk.Err("PCOMP %d: %d %s given for %d plies", pid, len(vals), what, n)
}

func broadcastFloats(pid int, what string, vals []float64, n int) ([]float64, error) {
	switch len(vals) {
	case n:
		return vals, nil
	case 1:
		res := make([]float64, n)
		for k := range res {
			res[k] = vals[0]
		}
		return res, nil
	}
	return nil, chk.Err("PCOMP %d: %d %s given for %d plies", pid, len(vals), what, n)
}

// num formats numbers with the shortest representation; e.g. 0.1, 45, -45
func num(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
