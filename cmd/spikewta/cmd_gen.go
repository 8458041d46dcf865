// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"

	"github.com/emer/etable/etable"
	"github.com/emer/spikewta/patgen"
	"github.com/emer/spikewta/record"
	"github.com/emer/spikewta/sim"
	"github.com/spf13/cobra"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print the generated input patterns as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := sim.DefaultConfig()
			if fn, _ := cmd.Flags().GetString("config"); fn != "" {
				var err error
				if cfg, err = sim.LoadConfig(fn); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			pats, err := patgen.Generate(cfg.GenConfig(), rand.New(rand.NewSource(cfg.Seed)))
			if err != nil {
				return err
			}
			return record.PatsTable(pats).WriteCSV(cmd.OutOrStdout(), etable.Comma, etable.Headers)
		},
	}
	cmd.Flags().Int64("seed", 1, "random seed")
	return cmd
}
