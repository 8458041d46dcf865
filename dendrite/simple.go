// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dendrite

import (
	"fmt"
	"math/rand"

	"github.com/emer/spikewta/snn"
)

// Simple is the weighted dendritic input computation: each receiving neuron
// gets the sum of the weights from the sending neurons that spiked.
type Simple struct {
	WtMin float32    `def:"0" desc:"minimum initial weight"`
	WtMax float32    `def:"1" desc:"maximum initial weight -- weights are initialized uniformly in [WtMin, WtMax)"`
	Rand  *rand.Rand `view:"-" desc:"random source for weight initialization -- required if weights are not already set"`

	out []float32
}

// NewSimple returns a dendritic Input behavior computing weighted input,
// with weights initialized uniformly in [wmin, wmax) from rnd on Setup.
func NewSimple(wmin, wmax float32, rnd *rand.Rand) *Input {
	return NewInput(&Simple{WtMin: wmin, WtMax: wmax, Rand: rnd})
}

// Setup allocates the weights if needed and initializes them, unless the
// synapse group already holds a full weight matrix (e.g., set by the caller).
func (sm *Simple) Setup(sg *snn.SynapseGroup) error {
	sm.out = make([]float32, sg.Dst.N)
	if len(sg.Wts) == sg.Src.N*sg.Dst.N {
		return nil
	}
	if sm.Rand == nil {
		return fmt.Errorf("dendrite.Simple %s: no weights set and Rand is nil", sg.Nm)
	}
	sg.AllocWts()
	sm.InitWts(sg)
	return nil
}

// InitWts initializes all weights uniformly in [WtMin, WtMax)
func (sm *Simple) InitWts(sg *snn.SynapseGroup) {
	rng := sm.WtMax - sm.WtMin
	for i := range sg.Wts {
		sg.Wts[i] = sm.WtMin + rng*sm.Rand.Float32()
	}
}

func (sm *Simple) CalcInput(sg *snn.SynapseGroup, spikes []float32) []float32 {
	nr := sg.Dst.N
	for ri := range sm.out {
		sm.out[ri] = 0
	}
	for si, s := range spikes {
		if s == 0 {
			continue
		}
		wts := sg.Wts[si*nr : (si+1)*nr]
		for ri, wt := range wts {
			sm.out[ri] += s * wt
		}
	}
	return sm.out
}
