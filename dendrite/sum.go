// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dendrite

import (
	"github.com/emer/spikewta/snn"
	"github.com/goki/mat32"
)

// Sum is the neuron behavior that adds the inputs of all receiving synapse
// groups into each neuron's input current: I = Ext + Exc - Inh, where Exc
// and Inh are the summed positive and negative pathway contributions.
// If the group's pooled inhibition is On, its Gi is added to every Inh.
// It must be scheduled after the synapse behaviors and before snn.Dynamics.
type Sum struct{}

func (sm *Sum) Setup(ng *snn.NeuronGroup) error {
	ng.Inhib.Update()
	ng.PoolInh.Init()
	for ni := range ng.Neurons {
		nrn := &ng.Neurons[ni]
		nrn.I, nrn.Exc, nrn.Inh = 0, 0, 0
	}
	return nil
}

func (sm *Sum) Step(ng *snn.NeuronGroup) {
	for ni := range ng.Neurons {
		nrn := &ng.Neurons[ni]
		nrn.Exc, nrn.Inh = 0, 0
	}
	for _, sg := range ng.RcvSyns {
		if sg.Off {
			continue
		}
		for ni, v := range sg.I {
			nrn := &ng.Neurons[ni]
			nrn.Exc += mat32.Max(v, 0)
			nrn.Inh -= mat32.Min(v, 0)
		}
	}
	if ng.Inhib.On {
		sm.PoolInhib(ng)
	}
	for ni := range ng.Neurons {
		nrn := &ng.Neurons[ni]
		nrn.I = nrn.Ext + nrn.Exc - nrn.Inh
	}
}

// PoolInhib computes the group pooled inhibition from the current Exc values
// and the spikes of the previous iteration, and adds it to each neuron's Inh.
func (sm *Sum) PoolInhib(ng *snn.NeuronGroup) {
	inh := &ng.PoolInh
	inh.Exc.Init()
	for ni := range ng.Neurons {
		nrn := &ng.Neurons[ni]
		if nrn.IsOff() {
			continue
		}
		inh.Exc.UpdateVal(nrn.Exc, int32(ni))
	}
	inh.Exc.CalcAvg()
	act := float32(ng.SpikeCount()) / float32(ng.Size())
	ng.Inhib.Inhib(inh, act)
	for ni := range ng.Neurons {
		ng.Neurons[ni].Inh += inh.Gi
	}
}
