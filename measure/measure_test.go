// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/emer/spikewta/snn"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

// spikeSeq sets the group spikes from a sequence indexed by iteration-1,
// cycling, and advances the input pattern on window-end iterations.
type spikeSeq struct {
	seq [][]bool
}

func (ss *spikeSeq) Setup(ng *snn.NeuronGroup) error { return nil }

func (ss *spikeSeq) Step(ng *snn.NeuronGroup) {
	tm := ng.Time()
	if tm.WindowEnd() {
		tm.CurInpIdx = (tm.CurInpIdx + 1) % tm.NData
	}
	copy(ng.Spks, ss.seq[(tm.Iteration-1)%len(ss.seq)])
}

func newTestNet(t *testing.T, n, inpDur, ndata int, seq [][]bool, bhs ...snn.Behavior) *snn.Network {
	net := snn.NewNetwork("Meas")
	net.Time.InpDuration = inpDur
	net.Time.NData = ndata
	ng := net.AddGroup("Output", n, snn.Output)
	net.AddBehavior(ng, 10, &spikeSeq{seq: seq})
	for i, bh := range bhs {
		net.AddBehavior(ng, 50+i, bh)
	}
	if err := net.Build(); err != nil {
		t.Fatal(err)
	}
	if err := net.Setup(); err != nil {
		t.Fatal(err)
	}
	return net
}

func TestActivity(t *testing.T) {
	act := Activity([]bool{true, true, false}, 3)
	if math32.Abs(act-float32(2)/3) > difTol {
		t.Errorf("activity: %v != 2/3\n", act)
	}
	if act := Activity([]bool{false, false}, 2); act != 0 {
		t.Errorf("activity of no spikes: %v\n", act)
	}
	if act := Activity([]bool{true, true}, 2); act != 1 {
		t.Errorf("activity of all spikes: %v\n", act)
	}
	if act := Activity(nil, 0); !math32.IsNaN(act) {
		t.Errorf("activity of empty group should be NaN, is: %v\n", act)
	}
}

func TestActivityMeter(t *testing.T) {
	seq := [][]bool{{true, true, false}, {false, false, false}, {true, true, true}}
	am := &ActivityMeter{}
	net := newTestNet(t, 3, 10, 1, seq, am)
	if am.Activity != 0 {
		t.Errorf("activity after setup: %v\n", am.Activity)
	}
	cor := []float32{float32(2) / 3, 0, 1}
	for i, c := range cor {
		net.Step()
		if math32.Abs(am.Activity-c) > difTol {
			t.Errorf("iteration %v: activity: %v != %v\n", i+1, am.Activity, c)
		}
	}
}

func TestActivityMeterEmpty(t *testing.T) {
	am := &ActivityMeter{}
	ng := &snn.NeuronGroup{Nm: "Empty"}
	if err := am.Setup(ng); err != nil {
		t.Fatal(err)
	}
	if !math32.IsNaN(am.Activity) {
		t.Errorf("activity of size 0 group should be NaN, is: %v\n", am.Activity)
	}
}

func TestWinners(t *testing.T) {
	if w := Winners([]int{2, 1, 0}); len(w) != 1 || w[0] != 0 {
		t.Errorf("winners: %v\n", w)
	}
	if w := Winners([]int{0, 3, 3}); len(w) != 2 || w[0] != 1 || w[1] != 2 {
		t.Errorf("tied winners: %v\n", w)
	}
	if w := Winners([]int{0, 0, 0, 0}); len(w) != 4 {
		t.Errorf("all zero counts should all win: %v\n", w)
	}
	if w := Winners(nil); w != nil {
		t.Errorf("empty counts: %v\n", w)
	}
}

func TestWinnerAggregator(t *testing.T) {
	seq := [][]bool{
		{true, false, false}, {true, true, false}, {false, false, false}, // pattern 0: [2,1,0]
		{false, true, true}, {false, true, true}, {false, true, true}, // pattern 1: [0,3,3]
	}
	wa := NewWinnerAggregator()
	wa.Config.PrintDetails = false
	net := newTestNet(t, 3, 3, 2, seq, wa)
	if len(wa.Results) != 2 || wa.HasResult(0) || wa.HasResult(1) {
		t.Errorf("results after setup: %v\n", wa.Results)
	}

	net.Run(2)
	if wa.Counts[0] != 2 || wa.Counts[1] != 1 || wa.Counts[2] != 0 {
		t.Errorf("counts before boundary: %v\n", wa.Counts)
	}
	if wa.HasResult(0) {
		t.Errorf("result recorded before window end\n")
	}
	net.Step() // iteration 3: window closes
	if net.Time.CurInpIdx != 1 {
		t.Errorf("CurInpIdx at boundary: %v\n", net.Time.CurInpIdx)
	}
	if w := wa.PatWinners(0); len(w) != 1 || w[0] != 0 {
		t.Errorf("pattern 0 winners: %v\n", w)
	}
	for i, c := range wa.Counts {
		if c != 0 {
			t.Errorf("count %v not reset after window end: %v\n", i, c)
		}
	}
	if wa.HasResult(1) {
		t.Errorf("pattern 1 recorded too early\n")
	}
	if !wa.Distinct() {
		t.Errorf("single recorded winner should be distinct\n")
	}

	net.Run(3)
	if w := wa.PatWinners(1); len(w) != 2 || w[0] != 1 || w[1] != 2 {
		t.Errorf("pattern 1 tied winners: %v\n", w)
	}
	if wa.NResults() != 2 {
		t.Errorf("NResults: %v\n", wa.NResults())
	}
	if wa.Distinct() {
		t.Errorf("tie should not be distinct\n")
	}

	// pattern 0 again: overwritten with same winners
	net.Run(3)
	if w := wa.PatWinners(0); len(w) != 1 || w[0] != 0 {
		t.Errorf("pattern 0 winners on second pass: %v\n", w)
	}
}

func TestWinnerAggregatorPartialWindow(t *testing.T) {
	seq := [][]bool{{false, true}}
	wa := NewWinnerAggregator()
	wa.Config.PrintDetails = false
	net := newTestNet(t, 2, 3, 2, seq, wa)
	net.Run(5)
	if !wa.HasResult(0) || wa.HasResult(1) {
		t.Errorf("results after partial window: %v\n", wa.Results)
	}
	// trailing window spikes stay in the counter, never flushed
	if wa.Counts[1] != 2 || wa.Counts[0] != 0 {
		t.Errorf("partial window counts: %v\n", wa.Counts)
	}
}

func TestWinnerAggregatorDistinct(t *testing.T) {
	wa := &WinnerAggregator{Results: [][]int{{2}, nil, {0}}}
	if !wa.Distinct() {
		t.Errorf("separate single winners should be distinct\n")
	}
	wa.Results[1] = []int{2}
	if wa.Distinct() {
		t.Errorf("shared winner should not be distinct\n")
	}
	wa.Results = make([][]int, 3)
	if wa.Distinct() {
		t.Errorf("no results should not be distinct\n")
	}
}

func TestWinnerAggregatorPrint(t *testing.T) {
	// exercises the diagnostic output path
	wa := NewWinnerAggregator()
	net := newTestNet(t, 2, 2, 1, [][]bool{{true, false}}, wa)
	net.Run(2)
	if w := wa.PatWinners(0); len(w) != 1 || w[0] != 0 {
		t.Errorf("winners: %v\n", w)
	}
}

func TestWinnerDetails(t *testing.T) {
	wa := NewWinnerAggregator()
	wa.Counts = []int{2, 1, 0}
	cor := "Output: for pattern: 1, winners: [0], counts: [2 1 0]\n"
	if d := wa.Details("Output", 1, []int{0}); d != cor {
		t.Errorf("details: %q != %q\n", d, cor)
	}
	wa.Config.Label = "wta run 3"
	cor = "wta run 3 Output: for pattern: 1, winners: [0], counts: [2 1 0]\n"
	if d := wa.Details("Output", 1, []int{0}); d != cor {
		t.Errorf("labeled details: %q != %q\n", d, cor)
	}
}
