// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/emer/spikewta/record"
	"github.com/emer/spikewta/sim"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the network size and parameters without running",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg.PrintDetails = false
			ss := sim.New(cfg, 0)
			if err := ss.Init(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, ss.Net.SizeReport())
			fmt.Fprintf(out, "Iterations per run: %d\n", cfg.NIters())
			fmt.Fprint(out, record.FormatParams(ss.ParamStrings(), 4))
			return nil
		},
	}
	cmd.Flags().String("params", "", "additional param set to apply on top of Base")
	return cmd
}
