// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// Behavior is a per-group computation attached to a NeuronGroup.
// Setup is called exactly once, before the first Step, and must initialize
// all state owned by the behavior.  Step is called exactly once per network
// iteration, in the order given by the key the behavior was added with.
// Behaviors read group state through its accessors and write only their own fields,
// except for the core dynamics behaviors that own neuron state.
type Behavior interface {
	Setup(ng *NeuronGroup) error
	Step(ng *NeuronGroup)
}

// SynBehavior is the synapse-group counterpart of Behavior, typically computing
// the dendritic input that a pathway contributes to its receiving group.
type SynBehavior interface {
	Setup(sg *SynapseGroup) error
	Step(sg *SynapseGroup)
}

// slot is one scheduled behavior on either a neuron or synapse group.
type slot struct {
	order int
	ng    *NeuronGroup
	sg    *SynapseGroup
	bh    Behavior
	sbh   SynBehavior
}

func (sl *slot) setup() error {
	if sl.bh != nil {
		return sl.bh.Setup(sl.ng)
	}
	return sl.sbh.Setup(sl.sg)
}

func (sl *slot) step() {
	if sl.bh != nil {
		if !sl.ng.Off {
			sl.bh.Step(sl.ng)
		}
		return
	}
	if !sl.sg.Off {
		sl.sbh.Step(sl.sg)
	}
}

// BehaviorFunc adapts a plain function to a Behavior with no setup.
type BehaviorFunc func(ng *NeuronGroup)

func (bf BehaviorFunc) Setup(ng *NeuronGroup) error { return nil }
func (bf BehaviorFunc) Step(ng *NeuronGroup)        { bf(ng) }
