// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"
	"github.com/wr1/golam/clt"
	"github.com/wr1/golam/out"
)

// newAbdCommand creates the "abd" subcommand printing the stiffness of laminates
func newAbdCommand(opts *Options) *cobra.Command {
	var (
		file, laminate, ref string
		angles              []float64
		symmetric           bool
	)

	cmd := &cobra.Command{
		Use:   "abd",
		Short: "Print the A, B, D and ABD matrices of laminates",
		Example: "  golam abd -f examples/abd/cfrp.yaml\n" +
			"  golam abd --angles 45,-45,0,90 --symmetric --ref t300-5208",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())
			w := cmd.OutOrStdout()

			// ad-hoc layup
			if len(angles) > 0 {
				mat, err := refMaterial(ref, unit(opts))
				if err != nil {
					return err
				}
				stack := clt.Expand(angles, symmetric)
				logger.Debug("computing layup", "angles", stack, "material", ref)
				lam, err := clt.NewShared(stack, mat)
				if err != nil {
					return err
				}
				return writeln(w, out.LaminateReport(out.Angles(stack), lam, opts.NumFmt))
			}

			// laminates in file
			dat, err := readInput(opts, file, false)
			if err != nil {
				return err
			}
			sel, err := names(dat, laminate)
			if err != nil {
				return err
			}
			for _, name := range sel {
				logger.Debug("computing laminate", "name", name)
				lam, err := dat.Laminate(name)
				if err != nil {
					return err
				}
				if err = writeln(w, out.LaminateReport(name, lam, opts.NumFmt)); err != nil {
					return err
				}
			}
			logger.Info("laminates computed", "count", len(sel))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Laminate file (.json, .yaml or .yml); default GOLAM_INPUT")
	cmd.Flags().StringVarP(&laminate, "laminate", "l", "", "Name of laminate in file (default: all)")
	cmd.Flags().Float64SliceVar(&angles, "angles", nil, "Ply angles in degrees from bottom to top; e.g. 90,0,90")
	cmd.Flags().BoolVar(&symmetric, "symmetric", false, "Mirror the angles about the midplane")
	cmd.Flags().StringVar(&ref, "ref", "cfrp", "Reference material used with --angles")
	return cmd
}
