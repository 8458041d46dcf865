// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import (
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-4)

func TestActVmFmI(t *testing.T) {
	// constant input of 20 from rest, Tau = 10: Vm += 0.1 * ((Rest - Vm) + I)
	corvm := []float32{-63, -61.2, -59.58, -58.122, -56.8098, -55.62882}

	ac := ActParams{}
	ac.Defaults()
	nrn := &Neuron{}
	ac.InitActs(nrn)

	for i := range corvm {
		nrn.I = 20
		ac.VmFmI(nrn, 1)
		if ac.SpikeFmVm(nrn) {
			t.Errorf("unexpected spike at step: %v, vm: %v\n", i, nrn.Vm)
		}
		dif := math32.Abs(nrn.Vm - corvm[i])
		if dif > difTol {
			t.Errorf("Vm err: idx: %v, vm: %v, corvm: %v, dif: %v\n", i, nrn.Vm, corvm[i], dif)
		}
	}
	nrn.I = 20
	ac.VmFmI(nrn, 1)
	if !ac.SpikeFmVm(nrn) {
		t.Errorf("expected spike once Vm crossed Thr, vm: %v\n", nrn.Vm)
	}
	if nrn.Vm != ac.Reset || nrn.Spike != 1 || nrn.Nspk != 1 {
		t.Errorf("after spike: vm: %v spike: %v nspk: %v\n", nrn.Vm, nrn.Spike, nrn.Nspk)
	}

	// refractory: held at Reset with no spikes for Refract iterations
	for i := 0; i < ac.Refract; i++ {
		nrn.I = 1000
		ac.VmFmI(nrn, 1)
		if ac.SpikeFmVm(nrn) {
			t.Errorf("spike during refractory period, step: %v\n", i)
		}
		if nrn.Vm != ac.Reset {
			t.Errorf("Vm not held at Reset during refractory period: %v\n", nrn.Vm)
		}
	}
	nrn.I = 1000
	ac.VmFmI(nrn, 1)
	if !ac.SpikeFmVm(nrn) {
		t.Errorf("expected spike after refractory period, vm: %v\n", nrn.Vm)
	}
}

func TestActVmRange(t *testing.T) {
	ac := ActParams{}
	ac.Defaults()
	ac.Thr = 100 // never spike
	nrn := &Neuron{}
	ac.InitActs(nrn)
	for i := 0; i < 200; i++ {
		nrn.I = 10000
		ac.VmFmI(nrn, 1)
		ac.SpikeFmVm(nrn)
	}
	if nrn.Vm != ac.VmRange.Max {
		t.Errorf("Vm not clipped to VmRange.Max: %v\n", nrn.Vm)
	}
}

func TestNeuronVarByName(t *testing.T) {
	nrn := &Neuron{}
	nrn.Vm = -60
	nrn.Ext = 3
	nrn.Nspk = 7
	for nm, cor := range map[string]float32{"Vm": -60, "Ext": 3, "Nspk": 7} {
		v, err := nrn.VarByName(nm)
		if err != nil {
			t.Error(err)
		}
		if v != cor {
			t.Errorf("VarByName %v: %v != %v\n", nm, v, cor)
		}
	}
	if _, err := nrn.VarByName("Act"); err == nil {
		t.Errorf("expected error for invalid var name\n")
	}
	nrn.SetFlag(NeurOff)
	if !nrn.IsOff() || nrn.HasFlag(NeurHasExt) {
		t.Errorf("flags: %v\n", nrn.Flags)
	}
	nrn.ClearFlag(NeurOff)
	if nrn.IsOff() {
		t.Errorf("NeurOff not cleared\n")
	}
}
