// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Prm holds a named parameter; e.g. {"n":"E1", "v":129500, "u":"MPa"}
type Prm struct {
	N string  `json:"n" yaml:"n"`                     // name
	V float64 `json:"v" yaml:"v"`                     // value
	U string  `json:"u,omitempty" yaml:"u,omitempty"` // unit
}

// Prms holds many parameters
type Prms []*Prm

// Find finds a parameter by name
//  Note: returns nil if not found
func (o Prms) Find(name string) *Prm {
	for _, p := range o {
		if p.N == name {
			return p
		}
	}
	return nil
}

// Model defines the interface for ply models read from input files
type Model interface {
	Init(prms Prms) error         // initialises model
	GetPrms() Prms                // gets (an example) of parameters
	Material() (*Material, error) // builds the (validated) ply material
}

// New returns new ply model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'ply' database; options are %v", name, Models())
	}
	return allocator(), nil
}

// Models returns the sorted names of all available models
func Models() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// required checks that all names were given
func required(model string, given map[string]bool, names ...string) error {
	for _, n := range names {
		if !given[n] {
			return chk.Err("%s: parameter %q is missing", model, n)
		}
	}
	return nil
}
