// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package dendrite provides the dendritic input behaviors for snn synapse groups:
each pathway computes its own input vector from the (delayed) sending spikes,
scaled and signed by the pathway's ScaleParams, and the Sum neuron behavior
adds the inputs of all receiving pathways into each neuron's input current.

The LateralInput pathway implements competition within a group: a neuron that
just spiked receives nothing from it, and every other neuron is inhibited in
proportion to the total number of spikes in the sending population.
*/
package dendrite

import (
	"fmt"

	"github.com/emer/spikewta/snn"
)

// Calcer computes the raw (unscaled) input that a pathway contributes to each
// receiving neuron, from the sending spikes as float32 values (1 = spike).
type Calcer interface {
	CalcInput(sg *snn.SynapseGroup, spikes []float32) []float32
}

// Input is the base dendritic-input synapse behavior: on each Step it reads the
// sending spikes through the pathway delay, calls Calc, and writes
// sg.I = Scale.Coef * Scale.Sign() * Calc(...).
type Input struct {
	Calc Calcer `desc:"the pathway-specific input computation"`

	spks []float32
}

// NewInput returns a base input behavior around the given computation
func NewInput(calc Calcer) *Input {
	return &Input{Calc: calc}
}

func (in *Input) Setup(sg *snn.SynapseGroup) error {
	if in.Calc == nil {
		return fmt.Errorf("dendrite.Input %s: Calc is nil", sg.Nm)
	}
	if len(sg.I) != sg.Dst.N {
		return fmt.Errorf("dendrite.Input %s: input size %d != receiving group size %d -- Build the network first", sg.Nm, len(sg.I), sg.Dst.N)
	}
	for i := range sg.I {
		sg.I[i] = 0
	}
	if st, ok := in.Calc.(interface {
		Setup(sg *snn.SynapseGroup) error
	}); ok {
		return st.Setup(sg)
	}
	return nil
}

func (in *Input) Step(sg *snn.SynapseGroup) {
	sg.SrcSpikes(&in.spks)
	raw := in.Calc.CalcInput(sg, in.spks)
	sg.Scale.Apply(raw, sg.I)
}
