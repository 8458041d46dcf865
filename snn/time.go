// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "fmt"

// snn.Time contains all the timing state and parameter information for running a network,
// including the input presentation schedule that windowed behaviors align to.
type Time struct {
	Iteration   int     `inactive:"+" desc:"iteration counter: 0 during Setup, incremented at the start of each Step, so the first stepped iteration is 1"`
	Time        float32 `inactive:"+" desc:"accumulated amount of simulated time, in Dt units"`
	Dt          float32 `def:"1" desc:"amount of time to increment per iteration"`
	InpDuration int     `def:"50" min:"1" desc:"number of iterations each input pattern is presented for -- one presentation window"`
	CurInpIdx   int     `inactive:"+" desc:"index of the input pattern being presented on the current iteration, in [0, NData)"`
	NData       int     `def:"1" min:"1" desc:"number of distinct input patterns, constant for the run"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.Dt = 1
	tm.InpDuration = 50
	tm.NData = 1
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Iteration = 0
	tm.Time = 0
	tm.CurInpIdx = 0
	if tm.InpDuration == 0 {
		tm.Defaults()
	}
}

// IterInc increments at the iteration level
func (tm *Time) IterInc() {
	tm.Iteration++
	tm.Time += tm.Dt
}

// WindowEnd returns true if the current iteration closes a presentation window.
func (tm *Time) WindowEnd() bool {
	return tm.Iteration%tm.InpDuration == 0
}

// ClosedInpIdx returns the index of the pattern whose presentation window closes on
// this iteration: (CurInpIdx - 1) mod NData.  The input behavior advances CurInpIdx
// on the boundary iteration before any windowed behavior runs, so the closing pattern
// is the one before the current one.
func (tm *Time) ClosedInpIdx() int {
	return Mod(tm.CurInpIdx-1, tm.NData)
}

// WindowInpIdx returns the index of the pattern whose presentation window the
// current iteration belongs to: ClosedInpIdx on a window-end iteration, else CurInpIdx.
func (tm *Time) WindowInpIdx() int {
	if tm.Iteration > 0 && tm.WindowEnd() {
		return tm.ClosedInpIdx()
	}
	return tm.CurInpIdx
}

// Window returns the 0-based presentation window number the current iteration falls in.
func (tm *Time) Window() int {
	if tm.Iteration == 0 {
		return 0
	}
	return (tm.Iteration - 1) / tm.InpDuration
}

// Validate returns an error if the schedule parameters cannot drive a run.
func (tm *Time) Validate() error {
	if tm.InpDuration < 1 {
		return fmt.Errorf("snn.Time: InpDuration must be positive, is: %d", tm.InpDuration)
	}
	if tm.NData < 1 {
		return fmt.Errorf("snn.Time: NData must be positive, is: %d", tm.NData)
	}
	return nil
}

// Mod is the non-negative modulus of x by n, for n > 0.
func Mod(x, n int) int {
	m := x % n
	if m < 0 {
		m += n
	}
	return m
}
