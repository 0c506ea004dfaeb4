// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/cpmech/gosl/chk"
	"github.com/wr1/golam/ana"
	"github.com/wr1/golam/inp"
	"github.com/wr1/golam/mdl/ply"
)

// inputFile returns the laminate file from the flag or GOLAM_INPUT
func inputFile(opts *Options, file string) string {
	if file != "" {
		return file
	}
	if opts.Settings != nil {
		return opts.Settings.Input
	}
	return ""
}

// readInput reads the laminate file; optional tells whether a missing name is acceptable
func readInput(opts *Options, file string, optional bool) (*inp.Data, error) {
	fn := inputFile(opts, file)
	if fn == "" {
		if optional {
			return nil, nil
		}
		return nil, chk.Err("laminate file is required; use --file or GOLAM_INPUT")
	}
	return inp.ReadFile(fn)
}

// unit returns the unit of reference materials
func unit(opts *Options) string {
	if opts.Settings != nil {
		return opts.Settings.Unit
	}
	return "MPa"
}

// refMaterial returns a ply material from the reference database
func refMaterial(typ, unitPres string) (*ply.Material, error) {
	var mat ana.Material
	if err := mat.Init(typ, unitPres); err != nil {
		return nil, err
	}
	return mat.Ply()
}

// names returns the selected laminate or all laminates in the file
func names(dat *inp.Data, laminate string) ([]string, error) {
	if laminate == "" {
		return dat.Names(), nil
	}
	if dat.GetLam(laminate) == nil {
		return nil, chk.Err("laminate %q is not available; options are %v", laminate, dat.Names())
	}
	return []string{laminate}, nil
}

func writeln(w io.Writer, str string) error {
	_, err := fmt.Fprintln(w, str)
	return err
}
