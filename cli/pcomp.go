// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wr1/golam/nastran"
)

// newPcompCommand creates the "pcomp" subcommand writing Nastran PCOMP cards
func newPcompCommand(opts *Options) *cobra.Command {
	var (
		file, laminate, sout string
		z0                   float64
		pid                  int
	)

	cmd := &cobra.Command{
		Use:     "pcomp",
		Short:   "Write Nastran PCOMP cards of laminates",
		Example: "  golam pcomp -f examples/pcomp/quasi.json --laminate quasi --sout FIBER",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())
			dat, err := readInput(opts, file, false)
			if err != nil {
				return err
			}
			sel, err := names(dat, laminate)
			if err != nil {
				return err
			}
			if cmd.Flag("pid").Changed && len(sel) > 1 {
				logger.Warn("--pid applies to one laminate only; ignored", "laminates", len(sel))
			}
			for _, name := range sel {
				c, err := dat.Card(name)
				if err != nil {
					return err
				}
				if cmd.Flag("sout").Changed {
					c.Sout = sout
				}
				if cmd.Flag("z0").Changed {
					c.Z0 = &z0
				}
				if cmd.Flag("pid").Changed && len(sel) == 1 {
					c.PID = pid
				}
				card, err := nastran.BuildPCOMP(c)
				if err != nil {
					return err
				}
				logger.Debug("PCOMP card built", "laminate", name, "pid", c.PID, "plies", len(c.Angles))
				if _, err = fmt.Fprint(cmd.OutOrStdout(), card); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Laminate file (.json, .yaml or .yml); default GOLAM_INPUT")
	cmd.Flags().StringVarP(&laminate, "laminate", "l", "", "Name of laminate in file (default: all)")
	cmd.Flags().StringVar(&sout, "sout", nastran.SoutExtremes, "Ply stress output: EXTREMES, FIBER, ALL or NONE")
	cmd.Flags().Float64Var(&z0, "z0", 0, "Offset of the bottom surface (default: blank field)")
	cmd.Flags().IntVar(&pid, "pid", 1, "Property id (overrides the file)")
	return cmd
}
