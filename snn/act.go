// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "github.com/emer/etable/minmax"

///////////////////////////////////////////////////////////////////////
//  act.go contains the activation params and functions for snn

// snn.ActParams contains the leaky integrate-and-fire (LIF) activation parameters
// and functions, at the neuron level.
// This is included in snn.NeuronGroup to drive the computation.
type ActParams struct {
	Tau     float32    `def:"10" min:"1" desc:"membrane time constant in iterations -- larger values integrate input more slowly"`
	R       float32    `def:"1" min:"0" desc:"membrane resistance -- multiplies dendritic input current I"`
	Rest    float32    `def:"-65" desc:"resting potential that Vm decays toward in the absence of input"`
	Reset   float32    `def:"-70" desc:"potential Vm is set to after a spike"`
	Thr     float32    `def:"-55" desc:"spiking threshold: Vm >= Thr produces a spike"`
	Refract int        `def:"2" min:"0" desc:"refractory period in iterations after a spike, during which Vm is held at Reset"`
	Init    float32    `def:"-65" desc:"initial membrane potential set by InitActs"`
	VmRange minmax.F32 `view:"inline" desc:"range for Vm membrane potential -- [-90, 0] by default"`

	DtTau float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"rate = 1 / Tau"`
}

func (ac *ActParams) Defaults() {
	ac.Tau = 10
	ac.R = 1
	ac.Rest = -65
	ac.Reset = -70
	ac.Thr = -55
	ac.Refract = 2
	ac.Init = -65
	ac.VmRange.Set(-90, 0)
	ac.Update()
}

// Update must be called after any changes to parameters
func (ac *ActParams) Update() {
	ac.DtTau = 1 / ac.Tau
}

///////////////////////////////////////////////////////////////////////
//  Init

// InitActs initializes activation state in neuron
func (ac *ActParams) InitActs(nrn *Neuron) {
	nrn.Vm = ac.Init
	nrn.I = 0
	nrn.Exc = 0
	nrn.Inh = 0
	nrn.Spike = 0
	nrn.ISI = -1
	nrn.Ext = 0
	nrn.Nspk = 0
	nrn.ClearFlag(NeurHasExt)
	nrn.ClearFlag(NeurRefract)
}

///////////////////////////////////////////////////////////////////////
//  Cycle

// VmFmI integrates membrane potential Vm from the dendritic input current I,
// over dt units of time.  Vm is held at Reset during the refractory period.
func (ac *ActParams) VmFmI(nrn *Neuron, dt float32) {
	if nrn.HasFlag(NeurRefract) {
		nrn.Vm = ac.Reset
		return
	}
	dv := dt * ac.DtTau * ((ac.Rest - nrn.Vm) + ac.R*nrn.I)
	nrn.Vm = ac.VmRange.ClipVal(nrn.Vm + dv)
}

// SpikeFmVm computes discrete spiking from Vm, resetting Vm and tracking the
// inter-spike interval and refractory state.  Returns true if the neuron spiked.
func (ac *ActParams) SpikeFmVm(nrn *Neuron) bool {
	if nrn.ISI >= 0 {
		nrn.ISI++
	}
	if nrn.HasFlag(NeurRefract) && nrn.ISI >= float32(ac.Refract) {
		nrn.ClearFlag(NeurRefract)
	}
	if nrn.IsOff() || nrn.HasFlag(NeurRefract) || nrn.Vm < ac.Thr {
		nrn.Spike = 0
		return false
	}
	nrn.Spike = 1
	nrn.Nspk++
	nrn.ISI = 0
	nrn.Vm = ac.Reset
	if ac.Refract > 0 {
		nrn.SetFlag(NeurRefract)
	}
	return true
}
