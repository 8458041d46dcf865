// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patgen

import (
	"fmt"

	"github.com/emer/emergent/env"
	"github.com/emer/etable/etensor"
	"github.com/emer/spikewta/snn"
)

// Input is the behavior that presents patterns to an input neuron group, as
// external input Ext = Gain * pattern value.  Each pattern is held for
// Time.InpDuration iterations.
//
// On each window-end iteration it advances to the next pattern (wrapping
// at Time.NData) and publishes it as Time.CurInpIdx before presenting it.
// It must be scheduled before every behavior that reads CurInpIdx.
type Input struct {
	Pats *etensor.Float32 `view:"no-inline" desc:"patterns, [NData, group size]"`
	Gain float32          `def:"0.05" desc:"multiplier on pattern values to get external input"`
	Pat  env.Ctr          `view:"inline" desc:"current pattern counter, Max = NData"`
}

// NewInput returns a new Input behavior presenting given patterns with given gain
func NewInput(pats *etensor.Float32, gain float32) *Input {
	return &Input{Pats: pats, Gain: gain}
}

func (in *Input) Setup(ng *snn.NeuronGroup) error {
	if in.Pats == nil || in.Pats.NumDims() != 2 {
		return fmt.Errorf("patgen.Input %s: Pats must be a 2D [NData, N] tensor", ng.Nm)
	}
	tm := ng.Time()
	if np := in.Pats.Dim(0); np != tm.NData {
		return fmt.Errorf("patgen.Input %s: number of patterns %d != Time.NData %d", ng.Nm, np, tm.NData)
	}
	if sz := in.Pats.Dim(1); sz != ng.Size() {
		return fmt.Errorf("patgen.Input %s: pattern size %d != group size %d", ng.Nm, sz, ng.Size())
	}
	in.Pat.Scale = env.Trial
	in.Pat.Max = tm.NData
	in.Pat.Init()
	tm.CurInpIdx = in.Pat.Cur
	return nil
}

func (in *Input) Step(ng *snn.NeuronGroup) {
	tm := ng.Time()
	if tm.WindowEnd() {
		in.Pat.Incr()
		tm.CurInpIdx = in.Pat.Cur
	}
	in.ApplyExt(ng, tm.CurInpIdx)
}

// ApplyExt sets the external input of each neuron from given pattern
func (in *Input) ApplyExt(ng *snn.NeuronGroup, pat int) {
	nn := ng.Size()
	row := in.Pats.Values[pat*nn : (pat+1)*nn]
	for ni := range ng.Neurons {
		nrn := &ng.Neurons[ni]
		nrn.Ext = in.Gain * row[ni]
		nrn.SetFlag(snn.NeurHasExt)
	}
}
