// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spikewta is the overall repository for winner-take-all spiking network
simulation code implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-packages:

* snn: the discrete-time spiking network: neuron and synapse groups, leaky
integrate-and-fire dynamics, axonal spike delays, pooled inhibition, and the ordered
Setup / Step behavior schedule that drives a run.

* dendrite: the dendritic input behaviors of synapse groups, including LateralInput,
which makes the neurons of a group compete, and Sum, which adds all pathway inputs
into each neuron's input current.

* measure: read-only behaviors that measure a group: ActivityMeter for population
activity, and WinnerAggregator for the winning neurons of each input pattern.

* patgen: generation and presentation of the input patterns.

* record: etable logs of a run, and their export and aggregation.

* store: a SQLite database of run results.

* sim: assembles and runs the winner-take-all network from a config, and
cmd/spikewta is the command-line program for it.
*/
package spikewta
