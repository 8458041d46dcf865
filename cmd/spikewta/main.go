// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// spikewta runs winner-take-all spiking network simulations.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spikewta",
		Short: "Winner-take-all spiking network simulations",
		Long: `spikewta runs a spiking network in which output neurons compete
through lateral input, so that each input pattern comes to be won
by one output neuron.  Results can be saved as tab-separated logs and
to a SQLite database of runs.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "YAML run config file (defaults are used for anything not set)")

	rootCmd.AddCommand(
		newRunCmd(),
		newGenCmd(),
		newInfoCmd(),
	)
	return rootCmd
}
