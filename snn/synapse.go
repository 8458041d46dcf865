// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import (
	"fmt"

	"github.com/emer/emergent/params"
)

// snn.SynapseGroup is a pathway of synapses from a sending (Src) to a receiving (Dst)
// neuron group.  Its SynBehaviors compute the input current I that the pathway
// contributes to each receiving neuron on every iteration.
type SynapseGroup struct {
	Network *Network     `copy:"-" json:"-" xml:"-" view:"-" desc:"our parent network"`
	Nm      string       `desc:"Name of the synapse group -- defaults to Src->Dst names"`
	Cls     string       `desc:"Class is for applying parameter styles, can be space separated multple tags"`
	Off     bool         `desc:"inactivate this synapse group -- its behaviors are not stepped and it contributes no input"`
	Src     *NeuronGroup `desc:"sending neuron group"`
	Dst     *NeuronGroup `desc:"receiving neuron group"`
	Com     SynComParams `view:"inline" desc:"synaptic communication parameters: delay"`
	Scale   ScaleParams  `view:"inline" desc:"scaling and sign of the input this pathway contributes"`

	I   []float32 `view:"-" desc:"input current contributed to each receiving neuron on the current iteration, after Scale"`
	Wts []float32 `view:"-" desc:"synaptic weights, Src.N x Dst.N in row-major (sender outer) order, for pathways that use them"`
}

// params.Styler interface methods

func (sg *SynapseGroup) Name() string     { return sg.Nm }
func (sg *SynapseGroup) Label() string    { return sg.Nm }
func (sg *SynapseGroup) Class() string    { return sg.Cls }
func (sg *SynapseGroup) TypeName() string { return "SynapseGroup" } // type category, for params..

// Net returns the network this synapse group belongs to
func (sg *SynapseGroup) Net() *Network { return sg.Network }

func (sg *SynapseGroup) Defaults() {
	sg.Com.Defaults()
	sg.Scale.Defaults()
}

// UpdateParams updates all params given any changes that might have been made to individual values
func (sg *SynapseGroup) UpdateParams() {
	sg.Com.Update()
	sg.Scale.Update()
}

// Build allocates the input current slice -- weights are allocated by the
// behaviors that use them, via AllocWts.
func (sg *SynapseGroup) Build() error {
	if sg.Src == nil || sg.Dst == nil {
		return fmt.Errorf("snn.SynapseGroup %s: Src and Dst must both be set", sg.Nm)
	}
	if sg.Com.Delay < 0 {
		return fmt.Errorf("snn.SynapseGroup %s: Delay must be >= 0, is: %d", sg.Nm, sg.Com.Delay)
	}
	sg.I = make([]float32, sg.Dst.N)
	return nil
}

// AllocWts allocates the Src.N x Dst.N weight matrix if not already sized.
func (sg *SynapseGroup) AllocWts() {
	nw := sg.Src.N * sg.Dst.N
	if len(sg.Wts) != nw {
		sg.Wts = make([]float32, nw)
	}
}

// Wt returns the weight from sending neuron si to receiving neuron ri
func (sg *SynapseGroup) Wt(si, ri int) float32 {
	return sg.Wts[si*sg.Dst.N+ri]
}

// SetWt sets the weight from sending neuron si to receiving neuron ri
func (sg *SynapseGroup) SetWt(si, ri int, wt float32) {
	sg.Wts[si*sg.Dst.N+ri] = wt
}

// SrcSpikes returns the sending group spikes as seen through the synaptic delay,
// converted to float32 (1 = spike) in the given slice, resized as needed.
func (sg *SynapseGroup) SrcSpikes(vals *[]float32) {
	spks := sg.Src.SpikesDelayed(sg.Com.Delay)
	nn := len(spks)
	if *vals == nil || cap(*vals) < nn {
		*vals = make([]float32, nn)
	} else {
		*vals = (*vals)[0:nn]
	}
	for i, s := range spks {
		if s {
			(*vals)[i] = 1
		} else {
			(*vals)[i] = 0
		}
	}
}

// ApplyParams applies given parameter style Sheet to this synapse group.
// Calls UpdateParams if anything set to ensure derived parameters are all updated.
// If setMsg is true, then a message is printed to confirm each parameter that is set.
// it always prints a message if a parameter fails to be set.
// returns true if any params were set, and error if there were any errors.
func (sg *SynapseGroup) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	app, err := pars.Apply(sg, setMsg)
	if app {
		sg.UpdateParams()
	}
	return app, err
}

//////////////////////////////////////////////////////////////////////////////////////
//  SynComParams

// SynComParams are synaptic communication parameters: delay
type SynComParams struct {
	Delay int `min:"0" def:"0" desc:"synaptic delay in iterations for spikes arriving at this pathway -- 0 reads the spikes of the last completed iteration, and each additional step reads one iteration further back -- IMPORTANT: if you change this, you must Build the Network again"`
}

func (sc *SynComParams) Defaults() {
	sc.Delay = 0
}

func (sc *SynComParams) Update() {
}

//////////////////////////////////////////////////////////////////////////////////////
//  ScaleParams

// ScaleParams scale the input computed by a pathway and set its sign
type ScaleParams struct {
	Coef  float32 `def:"1" desc:"scaling coefficient multiplying the computed input"`
	Inhib bool    `desc:"input is inhibitory: its sign is reversed before being summed into the receiving neurons"`
}

func (sc *ScaleParams) Defaults() {
	sc.Coef = 1
	sc.Inhib = false
}

func (sc *ScaleParams) Update() {
}

// Sign returns -1 for inhibitory pathways and 1 otherwise
func (sc *ScaleParams) Sign() float32 {
	if sc.Inhib {
		return -1
	}
	return 1
}

// Apply sets I = Coef * Sign * in, elementwise
func (sc *ScaleParams) Apply(in []float32, out []float32) {
	f := sc.Coef * sc.Sign()
	for i, v := range in {
		out[i] = f * v
	}
}
