// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"fmt"

	"github.com/emer/empi/mpi"
	"github.com/emer/spikewta/snn"
)

// WinnerConfig are the configuration options for WinnerAggregator
type WinnerConfig struct {
	PrintDetails bool   `def:"true" desc:"print the pattern index, winners and raw spike counts each time a presentation window closes"`
	Label        string `desc:"prefix for printed details, identifying e.g., the run when several run at once"`
}

func (wc *WinnerConfig) Defaults() {
	wc.PrintDetails = true
	wc.Label = ""
}

// WinnerAggregator accumulates per-neuron spike counts over each input
// presentation window (Time.InpDuration iterations), and when the window
// closes records the winners -- all neurons tied for the maximum count --
// as the result for the pattern that was presented during that window.
//
// It relies on the input presentation advancing Time.CurInpIdx on the
// window-end iteration, before this behavior is stepped, so that the closed
// window's pattern is Time.ClosedInpIdx().  A final partial window at the
// end of a run is never recorded.
type WinnerAggregator struct {
	Config  WinnerConfig `view:"inline" desc:"configuration options"`
	Counts  []int        `inactive:"+" desc:"spike counts per neuron over the current presentation window"`
	Results [][]int      `inactive:"+" desc:"winners per pattern index, for the most recently completed window of that pattern -- nil if no window has completed yet"`
}

// NewWinnerAggregator returns a new aggregator with default configuration
func NewWinnerAggregator() *WinnerAggregator {
	wa := &WinnerAggregator{}
	wa.Config.Defaults()
	return wa
}

func (wa *WinnerAggregator) Setup(ng *snn.NeuronGroup) error {
	tm := ng.Time()
	if tm.InpDuration <= 0 {
		return fmt.Errorf("measure.WinnerAggregator %s: InpDuration must be positive, is: %d", ng.Nm, tm.InpDuration)
	}
	if tm.NData <= 0 {
		return fmt.Errorf("measure.WinnerAggregator %s: NData must be positive, is: %d", ng.Nm, tm.NData)
	}
	wa.Counts = make([]int, ng.Size())
	wa.Results = make([][]int, tm.NData)
	return nil
}

func (wa *WinnerAggregator) Step(ng *snn.NeuronGroup) {
	for i, s := range ng.Spikes() {
		if s {
			wa.Counts[i]++
		}
	}
	tm := ng.Time()
	if !tm.WindowEnd() {
		return
	}
	inx := tm.ClosedInpIdx()
	wins := Winners(wa.Counts)
	wa.Results[inx] = wins
	if wa.Config.PrintDetails {
		mpi.Printf("%s", wa.Details(ng.Nm, inx, wins))
	}
	for i := range wa.Counts {
		wa.Counts[i] = 0
	}
}

// Details returns the printed line for a closed window of given pattern,
// including the raw counts, on one line so concurrent runs do not interleave.
func (wa *WinnerAggregator) Details(nm string, pat int, wins []int) string {
	if wa.Config.Label != "" {
		nm = wa.Config.Label + " " + nm
	}
	return fmt.Sprintf("%s: for pattern: %d, winners: %v, counts: %v\n", nm, pat, wins, wa.Counts)
}

// Winners returns the indexes of all counts equal to the maximum count,
// in increasing order.  Returns nil for empty counts.
func Winners(counts []int) []int {
	if len(counts) == 0 {
		return nil
	}
	mx := counts[0]
	for _, c := range counts[1:] {
		if c > mx {
			mx = c
		}
	}
	var wins []int
	for i, c := range counts {
		if c == mx {
			wins = append(wins, i)
		}
	}
	return wins
}

// HasResult returns true if a presentation window has completed for given pattern
func (wa *WinnerAggregator) HasResult(pat int) bool {
	return pat >= 0 && pat < len(wa.Results) && wa.Results[pat] != nil
}

// PatWinners returns the winners recorded for given pattern, nil if none yet
func (wa *WinnerAggregator) PatWinners(pat int) []int {
	if !wa.HasResult(pat) {
		return nil
	}
	return wa.Results[pat]
}

// NResults returns the number of patterns that have a recorded result
func (wa *WinnerAggregator) NResults() int {
	n := 0
	for pi := range wa.Results {
		if wa.HasResult(pi) {
			n++
		}
	}
	return n
}

// Distinct returns true if every recorded pattern has a single winner and
// no two patterns share the same winner, i.e., the group has separated the patterns.
// Returns false if no pattern has a result.
func (wa *WinnerAggregator) Distinct() bool {
	seen := map[int]bool{}
	for pi := range wa.Results {
		if !wa.HasResult(pi) {
			continue
		}
		wins := wa.Results[pi]
		if len(wins) != 1 || seen[wins[0]] {
			return false
		}
		seen[wins[0]] = true
	}
	return len(seen) > 0
}
