// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
	"github.com/wr1/golam/ana"
	"github.com/wr1/golam/clt"
	"github.com/wr1/golam/out"
)

// newMaterialsCommand creates the "materials" subcommand listing the reference materials
func newMaterialsCommand(opts *Options) *cobra.Command {
	var (
		unitPres string
		angle    float64
		showQ    bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "materials",
		Short: "List the reference ply materials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if !cmd.Flag("unit").Changed {
				unitPres = unit(opts)
			}
			types := ana.Types()
			mats := make([]ana.Material, len(types))
			for i, typ := range types {
				if err := mats[i].Init(typ, unitPres); err != nil {
					return err
				}
			}

			// laminate file fragment
			if asJSON {
				entries := make([]string, len(mats))
				for i, m := range mats {
					entries[i] = m.GetMatString(m.Type, "%g")
				}
				return writeln(w, "{\n  \"materials\" : [\n"+strings.Join(entries, ",\n")+"\n  ]\n}")
			}

			rows := make([][]string, len(mats))
			for i, m := range mats {
				model := "orthotropic"
				if m.Iso {
					model = "isotropic"
				}
				rows[i] = []string{m.Type, model, io.Sf("%g", m.E1), io.Sf("%g", m.E2), io.Sf("%g", m.Nu12), io.Sf("%.6g", m.G12), io.Sf("%g", m.T), m.Desc}
			}
			header := []string{"name", "model", "E1 [" + unitPres + "]", "E2 [" + unitPres + "]", "ν12", "G12 [" + unitPres + "]", "t [mm]", "description"}
			if err := writeln(w, out.Table("Reference materials", header, rows)); err != nil {
				return err
			}
			if !showQ {
				return nil
			}
			for _, m := range mats {
				p, err := m.Ply()
				if err != nil {
					return err
				}
				Q, title := p.Q(), "Q of "+m.Type
				if angle != 0 {
					Q, title = clt.QbarOf(Q, angle), io.Sf("Q̄(%g) of %s", angle, m.Type)
				}
				if err = writeln(w, out.MatrixTable(title, Q, opts.NumFmt)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&unitPres, "unit", "MPa", "Unit of moduli: kPa, MPa or GPa (overrides GOLAM_UNIT)")
	cmd.Flags().BoolVar(&showQ, "q", false, "Also print the reduced stiffness Q of every material")
	cmd.Flags().Float64Var(&angle, "angle", 0, "Rotate Q by this fibre angle [deg] (with --q)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the materials as a laminate file fragment")
	return cmd
}
