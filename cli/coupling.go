// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"
	"github.com/wr1/golam/clt"
	"github.com/wr1/golam/out"
)

// layups holds the stacking sequences evaluated when no file is given
var layups = [][]float64{
	{0, 0},
	{90, 90},
	{0, 90, 90, 0},
	{45, -45, -45, 45},
	{0},
	{0, 90},
	{45, 0},
	{0, 45, 90},
	{30, -30, 60},
	{0, 45, -45, 90, 30},
	{10, 20, 30, 40, 50},
	{0, 0, 0, 90},
	{45, 45, -45, -45},
	{0, 45, 90, 135},
	{60, 30, 0, -30, -60},
}

// newCouplingCommand creates the "coupling" subcommand summarising the B matrices of laminates
func newCouplingCommand(opts *Options) *cobra.Command {
	var (
		file, ref string
		tol       float64
		full      bool
	)

	cmd := &cobra.Command{
		Use:   "coupling",
		Short: "Summarise the bending-extension coupling (max|B|) of laminates",
		Long: "Summarise the bending-extension coupling (max|B|) of every laminate in a file. " +
			"Without a file, a set of symmetric and unsymmetric layups of the reference material is evaluated.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())
			w := cmd.OutOrStdout()
			if !cmd.Flag("tol").Changed && opts.Settings != nil {
				tol = opts.Settings.SymTol
			}

			var rows []out.CouplingRow
			dat, err := readInput(opts, file, true)
			if err != nil {
				return err
			}
			if dat == nil {
				logger.Debug("no laminate file; using built-in layups", "material", ref)
				mat, err := refMaterial(ref, unit(opts))
				if err != nil {
					return err
				}
				for _, angles := range layups {
					lam, err := clt.NewShared(angles, mat)
					if err != nil {
						return err
					}
					rows = append(rows, out.NewCouplingRow("", lam))
					if full {
						if err = writeln(w, out.MatrixTable("ABD Matrix for Stacking: "+out.Angles(angles), lam.ABD(), opts.NumFmt)); err != nil {
							return err
						}
					}
				}
			} else {
				lams, err := dat.Build()
				if err != nil {
					return err
				}
				for i, lam := range lams {
					name := dat.Laminates[i].Name
					rows = append(rows, out.NewCouplingRow(name, lam))
					if full {
						if err = writeln(w, out.MatrixTable("ABD Matrix for "+name, lam.ABD(), opts.NumFmt)); err != nil {
							return err
						}
					}
				}
			}
			return writeln(w, out.CouplingSummary(rows, tol))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Laminate file (.json, .yaml or .yml); default GOLAM_INPUT")
	cmd.Flags().StringVar(&ref, "ref", "cfrp", "Reference material of the built-in layups")
	cmd.Flags().Float64Var(&tol, "tol", 1e-10, "Tolerance on max|B| for the symmetric verdict (overrides GOLAM_SYM_TOL)")
	cmd.Flags().BoolVar(&full, "full", false, "Also print the ABD matrix of every laminate")
	return cmd
}
