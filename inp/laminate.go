// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from laminate files (.json, .yaml or .yml)
package inp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/wr1/golam/clt"
	"github.com/wr1/golam/mdl/ply"
	"github.com/wr1/golam/nastran"
	"gopkg.in/yaml.v3"
)

// Material holds material data
type Material struct {

	// input
	Name  string   `json:"name" yaml:"name"`   // name of material
	Model string   `json:"model" yaml:"model"` // name of model; e.g. "orthotropic", "isotropic"
	Desc  string   `json:"desc" yaml:"desc"`   // description
	Prms  ply.Prms `json:"prms" yaml:"prms"`   // model parameters

	// derived
	Ply *ply.Material `json:"-" yaml:"-"` // validated ply material
}

// MatsData holds materials
type MatsData []*Material

// Get returns a material
//  Note: returns nil if not found
func (o MatsData) Get(name string) *Material {
	for _, mat := range o {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// LamData holds the data of one laminate
type LamData struct {
	Name      string    `json:"name" yaml:"name"`           // name of laminate
	Desc      string    `json:"desc" yaml:"desc"`           // description
	Angles    []float64 `json:"angles" yaml:"angles"`       // ply angles [deg] from bottom to top
	Symmetric bool      `json:"symmetric" yaml:"symmetric"` // angles (and materials) are the lower half; mirror them
	Repeat    int       `json:"repeat" yaml:"repeat"`       // number of repetitions of angles before mirroring; 0 => 1
	Material  string    `json:"material" yaml:"material"`   // material shared by all plies
	Materials []string  `json:"materials" yaml:"materials"` // one material per ply
	PID       int       `json:"pid" yaml:"pid"`             // nastran property id; 0 => index+1
	MID       int       `json:"mid" yaml:"mid"`             // nastran material id; 0 => material index+1
	Z0        *float64  `json:"z0" yaml:"z0"`               // nastran bottom offset
	Sout      string    `json:"sout" yaml:"sout"`           // nastran stress output request
}

// Stacking returns the full stacking sequence; e.g. angles [0, 90], repeat 2 and
// symmetric give [0, 90, 0, 90, 90, 0, 90, 0]
func (o *LamData) Stacking() []float64 {
	return clt.Expand(clt.Repeat(o.Angles, o.repeats()), o.Symmetric)
}

// repeats returns the number of repetitions
func (o *LamData) repeats() int {
	if o.Repeat == 0 {
		return 1
	}
	return o.Repeat
}

// matNames returns the material name of each ply of the full stacking sequence
func (o *LamData) matNames() (names []string) {
	if o.Material != "" {
		names = make([]string, len(o.Stacking()))
		for i := range names {
			names[i] = o.Material
		}
		return
	}
	for i := 0; i < o.repeats(); i++ {
		names = append(names, o.Materials...)
	}
	if o.Symmetric {
		for i := len(names) - 1; i >= 0; i-- {
			names = append(names, names[i])
		}
	}
	return
}

// Data holds all data in a laminate file
type Data struct {

	// input
	Desc      string     `json:"desc" yaml:"desc"`           // description of file
	Materials MatsData   `json:"materials" yaml:"materials"` // all materials
	Laminates []*LamData `json:"laminates" yaml:"laminates"` // all laminates

	// derived
	Mats map[string]*ply.Material `json:"-" yaml:"-"` // validated ply materials
}

// ReadFile reads a laminate file; the format is selected by the extension
func ReadFile(path string) (*Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read laminate file %q:\n%v", path, err)
	}
	dat, err := Decode(b, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dat, nil
}

// Decode decodes laminate data; ext is ".json", ".yaml" or ".yml"
func Decode(b []byte, ext string) (dat *Data, err error) {

	// decode
	dat = new(Data)
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(dat)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(dat)
	default:
		return nil, chk.Err("file extension %q is not supported; options are \".json\", \".yaml\" and \".yml\"", ext)
	}
	if err != nil {
		return nil, chk.Err("cannot decode laminate data:\n%v", err)
	}

	// materials
	dat.Mats = make(map[string]*ply.Material)
	for i, m := range dat.Materials {
		if m.Name == "" {
			return nil, chk.Err("material %d has no name", i)
		}
		if _, ok := dat.Mats[m.Name]; ok {
			return nil, chk.Err("material %q is duplicated", m.Name)
		}
		mdl, err := ply.New(m.Model)
		if err != nil {
			return nil, chk.Err("material %q: %v", m.Name, err)
		}
		err = mdl.Init(m.Prms)
		if err != nil {
			return nil, chk.Err("material %q: %v", m.Name, err)
		}
		m.Ply, err = mdl.Material()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", m.Name, err)
		}
		m.Ply.Name = m.Name
		dat.Mats[m.Name] = m.Ply
	}

	// laminates
	names := make(map[string]bool)
	for i, l := range dat.Laminates {
		if l.Name == "" {
			return nil, chk.Err("laminate %d has no name", i)
		}
		if names[l.Name] {
			return nil, chk.Err("laminate %q is duplicated", l.Name)
		}
		names[l.Name] = true
		if l.Repeat < 0 {
			return nil, chk.Err("laminate %q: repeat = %d must be non-negative", l.Name, l.Repeat)
		}
		if (l.Material == "") == (len(l.Materials) == 0) {
			return nil, chk.Err("laminate %q: exactly one of \"material\" or \"materials\" must be given", l.Name)
		}
		for _, name := range l.matNames() {
			if _, ok := dat.Mats[name]; !ok {
				return nil, chk.Err("laminate %q: material %q is not available", l.Name, name)
			}
		}
	}
	return
}

// GetLam returns the data of a laminate
//  Note: returns nil if not found
func (o *Data) GetLam(name string) *LamData {
	for _, l := range o.Laminates {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Names returns the names of all laminates in file order
func (o *Data) Names() (names []string) {
	for _, l := range o.Laminates {
		names = append(names, l.Name)
	}
	return
}

// Laminate computes the stiffness of one laminate
func (o *Data) Laminate(name string) (*clt.Laminate, error) {
	l := o.GetLam(name)
	if l == nil {
		return nil, chk.Err("laminate %q is not available", name)
	}
	mats := make([]*ply.Material, 0, len(l.Angles)*2)
	for _, n := range l.matNames() {
		mats = append(mats, o.Mats[n])
	}
	lam, err := clt.New(l.Stacking(), mats)
	if err != nil {
		return nil, fmt.Errorf("laminate %q: %w", name, err)
	}
	return lam, nil
}

// Build computes the stiffness of all laminates in file order
func (o *Data) Build() (lams []*clt.Laminate, err error) {
	lams = make([]*clt.Laminate, len(o.Laminates))
	for i, l := range o.Laminates {
		lams[i], err = o.Laminate(l.Name)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Card returns the PCOMP card data of one laminate
func (o *Data) Card(name string) (c nastran.Card, err error) {
	lam, err := o.Laminate(name)
	if err != nil {
		return
	}
	var idx int
	for i, l := range o.Laminates {
		if l.Name == name {
			idx = i
		}
	}
	l := o.Laminates[idx]
	c.PID = l.PID
	if c.PID == 0 {
		c.PID = idx + 1
	}
	c.Z0 = l.Z0
	c.Angles = lam.Angles()
	c.Thicknesses = lam.PlyThicknesses()
	c.Sout = l.Sout
	if l.MID > 0 {
		c.MIDs = []int{l.MID}
		return
	}
	for _, n := range l.matNames() {
		c.MIDs = append(c.MIDs, o.matIndex(n)+1)
	}
	return
}

// matIndex returns the position of a material in the file
func (o *Data) matIndex(name string) int {
	for i, m := range o.Materials {
		if m.Name == name {
			return i
		}
	}
	return -1
}
