// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dendrite

import (
	"fmt"

	"github.com/emer/spikewta/snn"
)

// Lateral returns the competitive input for the given spike vector:
// (spikes - 1) * sum(spikes), elementwise.  Neurons that spiked get 0 and all
// others get -sum(spikes).  The result is a new slice.
func Lateral(spikes []float32) []float32 {
	out := make([]float32, len(spikes))
	LateralInto(spikes, out)
	return out
}

// LateralInto computes Lateral into out, which must be at least len(spikes)
func LateralInto(spikes []float32, out []float32) {
	var nspk float32
	for _, s := range spikes {
		nspk += s
	}
	for i, s := range spikes {
		out[i] = (s - 1) * nspk
	}
}

// LateralInput is the lateral (competitive) dendritic input computation.
// The sending and receiving groups must be the same size, typically the same group.
type LateralInput struct {
	out []float32
}

// NewLateral returns a dendritic Input behavior computing lateral input
func NewLateral() *Input {
	return NewInput(&LateralInput{})
}

func (li *LateralInput) Setup(sg *snn.SynapseGroup) error {
	if sg.Src.N != sg.Dst.N {
		return fmt.Errorf("dendrite.LateralInput %s: sending size %d != receiving size %d", sg.Nm, sg.Src.N, sg.Dst.N)
	}
	li.out = make([]float32, sg.Dst.N)
	return nil
}

func (li *LateralInput) CalcInput(sg *snn.SynapseGroup, spikes []float32) []float32 {
	LateralInto(spikes, li.out)
	return li.out
}
