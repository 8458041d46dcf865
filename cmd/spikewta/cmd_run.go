// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/emer/spikewta/record"
	"github.com/emer/spikewta/sim"
	"github.com/emer/spikewta/store"
	"github.com/spf13/cobra"
)

// loadConfig returns the config from the --config file, or the defaults,
// with any flags set on the command line applied on top.
func loadConfig(cmd *cobra.Command) (*sim.Config, error) {
	cfg := sim.DefaultConfig()
	if fn, _ := cmd.Flags().GetString("config"); fn != "" {
		var err error
		if cfg, err = sim.LoadConfig(fn); err != nil {
			return nil, err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("runs") {
		cfg.Runs, _ = fl.GetInt("runs")
	}
	if fl.Changed("threads") {
		cfg.Threads, _ = fl.GetInt("threads")
	}
	if fl.Changed("epochs") {
		cfg.Epochs, _ = fl.GetInt("epochs")
	}
	if fl.Changed("seed") {
		cfg.Seed, _ = fl.GetInt64("seed")
	}
	if fl.Changed("params") {
		cfg.ParamSet, _ = fl.GetString("params")
	}
	if fl.Changed("out") {
		cfg.OutDir, _ = fl.GetString("out")
	}
	if fl.Changed("db") {
		cfg.DB, _ = fl.GetString("db")
	}
	if fl.Changed("spikes") {
		cfg.LogSpikes, _ = fl.GetBool("spikes")
	}
	if fl.Changed("vm") {
		cfg.LogVm, _ = fl.GetBool("vm")
	}
	if q, _ := fl.GetBool("quiet"); q {
		cfg.PrintDetails = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a batch of independent simulation runs",
		Long: `Runs the configured number of runs, each with its own seed, and
prints the winning output neurons per pattern for each run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			quiet, _ := cmd.Flags().GetBool("quiet")
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			results, err := sim.RunBatch(ctx, cfg)
			if err != nil {
				return err
			}
			for _, rr := range results {
				if !quiet {
					fmt.Fprintf(out, "Run: %d\tSeed: %d\tIters: %d\tOutAct: %.4f\tDistinct: %v\tTime: %.2fs\n", rr.Run, rr.Seed, rr.Iterations, rr.OutAct, rr.Distinct, rr.Secs)
				}
				for pi, wins := range rr.Winners {
					fmt.Fprintf(out, "\tpattern: %d\twinners: %s\n", pi, record.FormatWinners(wins))
				}
			}
			if !quiet && len(results) > 0 {
				fmt.Fprint(out, results[0].Params)
			}
			fmt.Fprintf(out, "Distinct: %.2f of %d runs\n", sim.DistinctFrac(results), len(results))

			if cfg.OutDir != "" {
				if err := cfg.Save(filepath.Join(cfg.OutDir, cfg.Name+"_config.yaml")); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
			}
			if cfg.DB != "" {
				st, err := store.Open(ctx, cfg.DB)
				if err != nil {
					return err
				}
				defer st.Close()
				if err := sim.SaveResults(ctx, st, cfg, results); err != nil {
					return err
				}
				frac, n, err := st.DistinctFrac(ctx, cfg.Name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Stored: %d runs of %s, distinct: %.2f\n", n, cfg.Name, frac)
			}
			return nil
		},
	}
	cmd.Flags().Int("runs", 1, "number of runs")
	cmd.Flags().Int("threads", 4, "maximum number of runs in parallel")
	cmd.Flags().Int("epochs", 10, "number of passes through all patterns per run")
	cmd.Flags().Int64("seed", 1, "random seed of the first run")
	cmd.Flags().String("params", "", "additional param set to apply on top of Base")
	cmd.Flags().String("out", "", "directory to save run logs to")
	cmd.Flags().String("db", "", "SQLite database file to save run results to")
	cmd.Flags().Bool("spikes", false, "log output spike events")
	cmd.Flags().Bool("vm", false, "log output membrane potentials")
	cmd.Flags().BoolP("quiet", "q", false, "only print the winners")
	return cmd
}
