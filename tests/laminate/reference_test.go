// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laminate

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/wr1/golam/tests"
)

func Test_reference01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("reference01. mixed materials, symmetric and unsymmetric layups")

	tests.CompareResults(tst, "data/reference.yaml", "cmp/reference.cmp", 1e-9, 1e-8, chk.Verbose)
}

func Test_reference02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("reference02. coupling of reference laminates")

	set, err := tests.ReadResults("cmp/reference.cmp")
	if err != nil {
		tst.Errorf("ReadResults failed:\n%v\n", err)
		return
	}
	coupled := map[string]bool{
		"antisym-cross": true,
		"antisym-angle": true,
		"offaxis":       true,
		"hybrid-unsym":  true,
	}
	for _, res := range set {
		maxB := 0.0
		for i := 0; i < 3; i++ {
			for j := 3; j < 6; j++ {
				if v := res.ABD[i][j]; v > maxB {
					maxB = v
				} else if -v > maxB {
					maxB = -v
				}
			}
		}
		if coupled[res.Name] != (maxB > 1e-8) {
			tst.Errorf("%s: max|B| = %g is inconsistent\n", res.Name, maxB)
		}
	}
}

func Test_reference03(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("reference03. missing comparison file")

	set, err := tests.ReadResults("cmp/missing.cmp")
	if err == nil {
		tst.Errorf("missing file should fail\n")
		return
	}
	io.Pforan("%v\n", err)
	chk.Int(tst, "number of results", len(set), 0)
}
