// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config implements the settings read from the environment and .env files
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/cpmech/gosl/chk"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when no other file is given; it may be missing
const DefaultEnvFile = ".env"

// Settings holds the GOLAM_* settings
type Settings struct {
	LogLevel string  `env:"GOLAM_LOG_LEVEL" envDefault:"info"` // debug, info, warn or error
	NumFmt   string  `env:"GOLAM_NUMFMT" envDefault:"%.4e"`    // format of matrix entries
	Input    string  `env:"GOLAM_INPUT"`                       // default laminate file
	SymTol   float64 `env:"GOLAM_SYM_TOL" envDefault:"1e-10"`  // max|B| tolerance of the symmetric verdict
	Unit     string  `env:"GOLAM_UNIT" envDefault:"MPa"`       // unit of reference materials
}

// Load reads envFile (or the optional DefaultEnvFile if empty) and the process
// environment; variables already set in the process win
func Load(envFile string) (*Settings, error) {
	path, optional := envFile, false
	if path == "" {
		path, optional = DefaultEnvFile, true
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		if !(optional && errors.Is(err, fs.ErrNotExist)) {
			return nil, chk.Err("cannot read env file %q:\n%v", path, err)
		}
		vars = make(map[string]string)
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return Parse(vars)
}

// Parse parses the settings from vars
func Parse(vars map[string]string) (*Settings, error) {
	var o Settings
	err := env.ParseWithOptions(&o, env.Options{Environment: vars})
	if err != nil {
		return nil, chk.Err("cannot parse settings:\n%v", err)
	}
	if err = o.Check(); err != nil {
		return nil, err
	}
	return &o, nil
}

// Check checks the settings
func (o *Settings) Check() error {
	if err := CheckNumFmt(o.NumFmt); err != nil {
		return chk.Err("GOLAM_NUMFMT: %v", err)
	}
	if !(o.SymTol >= 0) {
		return chk.Err("GOLAM_SYM_TOL = %g must be non-negative", o.SymTol)
	}
	switch o.Unit {
	case "kPa", "MPa", "GPa":
	default:
		return chk.Err("GOLAM_UNIT = %q is invalid; options are \"kPa\", \"MPa\" and \"GPa\"", o.Unit)
	}
	return nil
}

// CheckNumFmt checks that numfmt is a number format; e.g. "%.4e"
func CheckNumFmt(numfmt string) error {
	if !strings.Contains(numfmt, "%") {
		return chk.Err("%q is not a number format; e.g. \"%%.4e\"", numfmt)
	}
	return nil
}
