// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// Dynamics is the leaky integrate-and-fire neuron behavior: it integrates
// each neuron's Vm from its dendritic input I using the group's ActParams,
// and sets the group spike vector.  It is typically scheduled after the
// dendritic input has been summed and before any spike readout behaviors.
type Dynamics struct{}

func (dy *Dynamics) Setup(ng *NeuronGroup) error {
	ng.Act.Update()
	for ni := range ng.Neurons {
		ng.Act.InitActs(&ng.Neurons[ni])
	}
	ng.SpikesFmNeurons()
	return nil
}

func (dy *Dynamics) Step(ng *NeuronGroup) {
	dt := ng.Time().Dt
	for ni := range ng.Neurons {
		nrn := &ng.Neurons[ni]
		if nrn.IsOff() {
			nrn.Spike = 0
			continue
		}
		ng.Act.VmFmI(nrn, dt)
		ng.Act.SpikeFmVm(nrn)
	}
	ng.SpikesFmNeurons()
}
