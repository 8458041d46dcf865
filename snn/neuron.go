// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import (
	"fmt"
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/goki/ki/bitflag"
)

// NeuronVarStart is the byte offset of fields in the Neuron structure
// where the float32 named variables start.
// Note: all non-float32 infrastructure variables must be at the start!
const NeuronVarStart = 4

// snn.Neuron holds all of the neuron (unit) level variables for a leaky
// integrate-and-fire neuron.
// All variables accessible via VarByName must be float32 and start at the top, in contiguous order
type Neuron struct {
	Flags NeurFlags `desc:"bit flags for binary state variables"`
	Vm    float32   `desc:"membrane potential -- integrates I input current over time"`
	I     float32   `desc:"total dendritic input current for this iteration = Ext + Exc - Inh"`
	Exc   float32   `desc:"excitatory part of the dendritic input, summed over receiving synapse groups"`
	Inh   float32   `desc:"inhibitory part of the dendritic input, as a positive magnitude"`
	Spike float32   `desc:"whether neuron has spiked on this iteration (0 or 1)"`
	ISI   float32   `desc:"current inter-spike-interval -- counts up since last spike.  Starts at -1 when initialized."`
	Ext   float32   `desc:"external input current: drives the neuron from outside influences (e.g., presented input pattern)"`
	Nspk  float32   `desc:"number of spikes since the last InitActs"`
}

var NeuronVars = []string{"Vm", "I", "Exc", "Inh", "Spike", "ISI", "Ext", "Nspk"}

var NeuronVarsMap map[string]int

func init() {
	NeuronVarsMap = make(map[string]int, len(NeuronVars))
	for i, v := range NeuronVars {
		NeuronVarsMap[v] = i
	}
}

func (nrn *Neuron) VarNames() []string {
	return NeuronVars
}

// NeuronVarIdxByName returns the index of the variable in the Neuron, or error
func NeuronVarIdxByName(varNm string) (int, error) {
	i, ok := NeuronVarsMap[varNm]
	if !ok {
		return -1, fmt.Errorf("Neuron VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in NeuronVars list)
func (nrn *Neuron) VarByIndex(idx int) float32 {
	fv := (*float32)(unsafe.Pointer(uintptr(unsafe.Pointer(nrn)) + uintptr(NeuronVarStart+4*idx)))
	return *fv
}

// VarByName returns variable by name, or error
func (nrn *Neuron) VarByName(varNm string) (float32, error) {
	i, err := NeuronVarIdxByName(varNm)
	if err != nil {
		return math32.NaN(), err
	}
	return nrn.VarByIndex(i), nil
}

func (nrn *Neuron) HasFlag(flag NeurFlags) bool {
	return bitflag.Has32(int32(nrn.Flags), int(flag))
}

func (nrn *Neuron) SetFlag(flag NeurFlags) {
	bitflag.Set32((*int32)(&nrn.Flags), int(flag))
}

func (nrn *Neuron) ClearFlag(flag NeurFlags) {
	bitflag.Clear32((*int32)(&nrn.Flags), int(flag))
}

// IsOff returns true if the neuron has been turned off (lesioned)
func (nrn *Neuron) IsOff() bool {
	return nrn.HasFlag(NeurOff)
}

// NeurFlags are bit-flags encoding relevant binary state for neurons
type NeurFlags int32

// The neuron flags
const (
	// NeurOff flag indicates that this neuron has been turned off (i.e., lesioned)
	NeurOff NeurFlags = iota

	// NeurHasExt means the neuron has external input in its Ext field
	NeurHasExt

	// NeurRefract means the neuron is within its refractory period after a spike
	NeurRefract

	NeurFlagsN
)
