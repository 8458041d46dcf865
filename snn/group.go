// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/emer/emergent/params"
	"github.com/goki/ki/ints"
)

// snn.NeuronGroup is a population of LIF neurons sharing parameters, with its own
// axonal spike history so that receiving pathways can read delayed spikes.
type NeuronGroup struct {
	Network *Network    `copy:"-" json:"-" xml:"-" view:"-" desc:"our parent network, set when added by network"`
	Nm      string      `desc:"Name of the group -- this must be unique within the network"`
	Cls     string      `desc:"Class is for applying parameter styles, can be space separated multple tags"`
	Off     bool        `desc:"inactivate this group -- its behaviors are not stepped"`
	Typ     GroupTypes  `desc:"type of group -- Input, Hidden or Output -- matches against .Class parameter styles (e.g., .Input etc)"`
	Idx     int         `inactive:"+" desc:"a 0..n-1 index of the position of the group within list of groups in the network"`
	N       int         `desc:"number of neurons in the group"`
	Act     ActParams   `view:"add-fields" desc:"leaky integrate-and-fire activation parameters"`
	Inhib   InhibParams `view:"add-fields" desc:"pooled feedforward / feedback inhibition parameters"`

	Neurons []Neuron        `view:"-" desc:"slice of neurons for this group"`
	Spks    []bool          `view:"-" desc:"spike vector for the most recently computed iteration"`
	PoolInh InhibState      `inactive:"+" desc:"pooled inhibition state, computed by the dendritic summation"`
	Hist    []bool          `view:"-" desc:"axonal spike history ring buffer: HistLen slots of N spikes each"`
	HistLen int             `inactive:"+" desc:"number of completed iterations held in Hist = maximum sending delay + 1"`
	HistIdx int             `inactive:"+" desc:"slot in Hist holding the most recently pushed spikes"`
	RcvSyns []*SynapseGroup `view:"-" desc:"list of receiving synapse groups into this group from other groups"`
	SndSyns []*SynapseGroup `view:"-" desc:"list of sending synapse groups from this group to other groups"`
}

// params.Styler interface methods

func (ng *NeuronGroup) Name() string     { return ng.Nm }
func (ng *NeuronGroup) Label() string    { return ng.Nm }
func (ng *NeuronGroup) Class() string    { return ng.Typ.String() + " " + ng.Cls }
func (ng *NeuronGroup) TypeName() string { return "NeuronGroup" } // type category, for params..

// Size returns the number of neurons in the group
func (ng *NeuronGroup) Size() int { return ng.N }

// Net returns the network this group belongs to
func (ng *NeuronGroup) Net() *Network { return ng.Network }

// Time returns the timing state of the owning network
func (ng *NeuronGroup) Time() *Time { return &ng.Network.Time }

// Spikes returns the spike vector for the most recently computed iteration.
// The slice is owned by the group and must not be modified by behaviors.
func (ng *NeuronGroup) Spikes() []bool { return ng.Spks }

// SpikesDelayed returns the spike vector from the axonal history, delay iterations
// before the last completed one: delay 0 is the last completed iteration, delay 1
// the one before it, and so on.  The iteration in progress is never visible
// here, whatever the reader's schedule order.  Iterations before the start of
// the run read as no spikes.
func (ng *NeuronGroup) SpikesDelayed(delay int) []bool {
	if delay < 0 || delay >= ng.HistLen {
		panic(fmt.Sprintf("snn.NeuronGroup %s: delay %d outside built history length %d -- Build after Connect", ng.Nm, delay, ng.HistLen))
	}
	si := Mod(ng.HistIdx-delay, ng.HistLen)
	return ng.Hist[si*ng.N : (si+1)*ng.N]
}

// SpikeCount returns the number of neurons that spiked on the most recent iteration
func (ng *NeuronGroup) SpikeCount() int {
	n := 0
	for _, s := range ng.Spks {
		if s {
			n++
		}
	}
	return n
}

// Defaults sets default parameters
func (ng *NeuronGroup) Defaults() {
	ng.Act.Defaults()
	ng.Inhib.Defaults()
}

// UpdateParams updates all params given any changes that might have been made to individual values
func (ng *NeuronGroup) UpdateParams() {
	ng.Act.Update()
	ng.Inhib.Update()
}

// Build constructs the neuron state and the axonal history, sized from
// the longest delay among the sending synapse groups.
func (ng *NeuronGroup) Build() error {
	if ng.N <= 0 {
		return fmt.Errorf("snn.NeuronGroup %s: N must be positive, is: %d", ng.Nm, ng.N)
	}
	ng.Neurons = make([]Neuron, ng.N)
	ng.Spks = make([]bool, ng.N)
	mxd := 0
	for _, sg := range ng.SndSyns {
		mxd = ints.MaxInt(mxd, sg.Com.Delay)
	}
	ng.HistLen = mxd + 1
	ng.Hist = make([]bool, ng.HistLen*ng.N)
	ng.HistIdx = 0
	return nil
}

// InitActs fully initializes activation state and clears the spike history
func (ng *NeuronGroup) InitActs() {
	for ni := range ng.Neurons {
		nrn := &ng.Neurons[ni]
		ng.Act.InitActs(nrn)
	}
	ng.PoolInh.Init()
	for i := range ng.Spks {
		ng.Spks[i] = false
	}
	for i := range ng.Hist {
		ng.Hist[i] = false
	}
	ng.HistIdx = 0
}

// SpikesFmNeurons sets the spike vector from the neuron Spike values
func (ng *NeuronGroup) SpikesFmNeurons() {
	for ni := range ng.Neurons {
		ng.Spks[ni] = ng.Neurons[ni].Spike > 0
	}
}

// PushHist records the current spike vector as the newest slot of the axonal history.
// Called by the network at the end of each iteration.
func (ng *NeuronGroup) PushHist() {
	ng.HistIdx = (ng.HistIdx + 1) % ng.HistLen
	copy(ng.Hist[ng.HistIdx*ng.N:(ng.HistIdx+1)*ng.N], ng.Spks)
}

// UnitVals fills in values of given variable name on neurons,
// for each neuron in the group, into given float32 slice (only resized if not big enough).
// Returns error on invalid var name.
func (ng *NeuronGroup) UnitVals(vals *[]float32, varNm string) error {
	nn := len(ng.Neurons)
	if *vals == nil || cap(*vals) < nn {
		*vals = make([]float32, nn)
	} else if len(*vals) < nn {
		*vals = (*vals)[0:nn]
	}
	vidx, err := NeuronVarIdxByName(varNm)
	if err != nil {
		nan := math32.NaN()
		for i := range ng.Neurons {
			(*vals)[i] = nan
		}
		return err
	}
	for i := range ng.Neurons {
		(*vals)[i] = ng.Neurons[i].VarByIndex(vidx)
	}
	return nil
}

// ApplyParams applies given parameter style Sheet to this group and its recv synapse groups.
// Calls UpdateParams on anything set to ensure derived parameters are all updated.
// If setMsg is true, then a message is printed to confirm each parameter that is set.
// it always prints a message if a parameter fails to be set.
// returns true if any params were set, and error if there were any errors.
func (ng *NeuronGroup) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	applied := false
	var rerr error
	app, err := pars.Apply(ng, setMsg)
	if app {
		ng.UpdateParams()
		applied = true
	}
	if err != nil {
		rerr = err
	}
	for _, sg := range ng.RcvSyns {
		app, err = sg.ApplyParams(pars, setMsg)
		if app {
			applied = true
		}
		if err != nil {
			rerr = err
		}
	}
	return applied, rerr
}
