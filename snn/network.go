// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/params"
	"github.com/goki/kigen/ordmap"
)

// snn.Network holds the neuron groups and synapse groups of a spiking network,
// along with the ordered behavior schedule that is run once per iteration.
type Network struct {
	Nm     string                            `desc:"overall name of network -- helps discriminate if there are multiple"`
	Time   Time                              `view:"inline" desc:"timing state and input presentation schedule"`
	Groups *ordmap.Map[string, *NeuronGroup] `desc:"neuron groups, in order added, with lookup by name"`
	Syns   []*SynapseGroup                   `desc:"synapse groups, in order added"`
	slots  []slot

	IsBuilt bool `inactive:"+" desc:"Build has been called since the last structural change"`
	IsSetup bool `inactive:"+" desc:"Setup has been called since the last Build"`
}

// NewNetwork returns a new network with given name and default timing parameters
func NewNetwork(name string) *Network {
	nt := &Network{Nm: name}
	nt.Groups = ordmap.New[string, *NeuronGroup]()
	nt.Time.Defaults()
	return nt
}

func (nt *Network) Name() string { return nt.Nm }

// NGroups returns the number of neuron groups
func (nt *Network) NGroups() int { return nt.Groups.Len() }

// Group returns neuron group at given index
func (nt *Network) Group(idx int) *NeuronGroup { return nt.Groups.ValByIdx(idx) }

// AddGroup adds a new neuron group with given name, number of neurons and type.
// The group gets default parameters.
func (nt *Network) AddGroup(name string, n int, typ GroupTypes) *NeuronGroup {
	ng := &NeuronGroup{Network: nt, Nm: name, N: n, Typ: typ}
	ng.Defaults()
	ng.Idx = nt.Groups.Len()
	nt.Groups.Add(name, ng)
	nt.IsBuilt = false
	return ng
}

// GroupByName returns neuron group of given name, nil if not found
func (nt *Network) GroupByName(name string) *NeuronGroup {
	ng, _ := nt.Groups.ValByKey(name)
	return ng
}

// GroupByNameTry returns neuron group of given name, or error if not found
func (nt *Network) GroupByNameTry(name string) (*NeuronGroup, error) {
	ng, ok := nt.Groups.ValByKey(name)
	if !ok {
		return nil, fmt.Errorf("Neuron group named: %v not found in Network: %v", name, nt.Nm)
	}
	return ng, nil
}

// Connect establishes a synapse group from src to dst, adding it to the send and
// recv lists on each side.  src and dst may be the same group (recurrent / lateral).
// Does not yet allocate anything -- that requires Build.
func (nt *Network) Connect(src, dst *NeuronGroup) *SynapseGroup {
	sg := &SynapseGroup{Network: nt, Src: src, Dst: dst}
	sg.Nm = src.Nm + "To" + dst.Nm
	sg.Defaults()
	dst.RcvSyns = append(dst.RcvSyns, sg)
	src.SndSyns = append(src.SndSyns, sg)
	nt.Syns = append(nt.Syns, sg)
	nt.IsBuilt = false
	return sg
}

// AddBehavior schedules behavior b on neuron group ng, at given order key.
// Behaviors run in increasing key order, across all groups; equal keys run
// in the order added.
func (nt *Network) AddBehavior(ng *NeuronGroup, order int, b Behavior) {
	nt.slots = append(nt.slots, slot{order: order, ng: ng, bh: b})
	nt.IsSetup = false
}

// AddSynBehavior schedules behavior b on synapse group sg, at given order key.
func (nt *Network) AddSynBehavior(sg *SynapseGroup, order int, b SynBehavior) {
	nt.slots = append(nt.slots, slot{order: order, sg: sg, sbh: b})
	nt.IsSetup = false
}

// Defaults sets all the default parameters for all groups and synapse groups
func (nt *Network) Defaults() {
	nt.Time.Defaults()
	for _, kv := range nt.Groups.Order {
		kv.Val.Defaults()
	}
	for _, sg := range nt.Syns {
		sg.Defaults()
	}
}

// UpdateParams updates all the derived parameters if any have changed, for all groups
// and synapse groups
func (nt *Network) UpdateParams() {
	for _, kv := range nt.Groups.Order {
		kv.Val.UpdateParams()
	}
	for _, sg := range nt.Syns {
		sg.UpdateParams()
	}
}

// ApplyParams applies given parameter style Sheet to groups and synapse groups in this network.
// Calls UpdateParams to ensure derived parameters are all updated.
// If setMsg is true, then a message is printed to confirm each parameter that is set.
// it always prints a message if a parameter fails to be set.
// returns true if any params were set, and error if there were any errors.
func (nt *Network) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	applied := false
	var rerr error
	for _, kv := range nt.Groups.Order {
		app, err := kv.Val.ApplyParams(pars, setMsg)
		if app {
			applied = true
		}
		if err != nil {
			rerr = err
		}
	}
	return applied, rerr
}

// Build constructs the neuron and synapse state for all groups, and validates
// the timing parameters.  Must be called after all Connect calls and before Setup.
func (nt *Network) Build() error {
	emsg := ""
	if err := nt.Time.Validate(); err != nil {
		emsg += err.Error() + "\n"
	}
	for gi, kv := range nt.Groups.Order {
		ng := kv.Val
		ng.Idx = gi
		if err := ng.Build(); err != nil {
			emsg += err.Error() + "\n"
		}
	}
	for _, sg := range nt.Syns {
		if err := sg.Build(); err != nil {
			emsg += err.Error() + "\n"
		}
	}
	nt.IsSetup = false
	if emsg != "" {
		nt.IsBuilt = false
		return errors.New(emsg)
	}
	nt.IsBuilt = true
	return nil
}

// InitActs fully initializes activation state in all groups
func (nt *Network) InitActs() {
	for _, kv := range nt.Groups.Order {
		kv.Val.InitActs()
	}
	for _, sg := range nt.Syns {
		for i := range sg.I {
			sg.I[i] = 0
		}
	}
}

// Setup resets the timing counters and activation state, then calls Setup on
// every scheduled behavior exactly once, in schedule order.
// Returns the first behavior error, wrapped with the owning group name.
func (nt *Network) Setup() error {
	if !nt.IsBuilt {
		return fmt.Errorf("snn.Network %s: Setup called before Build", nt.Nm)
	}
	nt.Time.Reset()
	nt.InitActs()
	sort.SliceStable(nt.slots, func(i, j int) bool {
		return nt.slots[i].order < nt.slots[j].order
	})
	for i := range nt.slots {
		sl := &nt.slots[i]
		if err := sl.setup(); err != nil {
			nm := ""
			if sl.ng != nil {
				nm = sl.ng.Nm
			} else {
				nm = sl.sg.Nm
			}
			return fmt.Errorf("snn.Network %s: setup of %s: %w", nt.Nm, nm, err)
		}
	}
	nt.IsSetup = true
	return nil
}

// Step runs one iteration: increments Time.Iteration, calls every scheduled
// Step hook in order, and then records all group spikes into their axonal history.
func (nt *Network) Step() {
	if !nt.IsSetup {
		panic(fmt.Sprintf("snn.Network %s: Step called before Setup", nt.Nm))
	}
	nt.Time.IterInc()
	for i := range nt.slots {
		nt.slots[i].step()
	}
	for _, kv := range nt.Groups.Order {
		kv.Val.PushHist()
	}
}

// Run runs given number of iterations
func (nt *Network) Run(n int) {
	for i := 0; i < n; i++ {
		nt.Step()
	}
}

// SizeReport returns a string reporting the size of each group and synapse group
// in the network, and total memory footprint.
func (nt *Network) SizeReport() string {
	var b strings.Builder
	neur := 0
	neurMem := 0
	syn := 0
	synMem := 0
	for _, kv := range nt.Groups.Order {
		ng := kv.Val
		nn := len(ng.Neurons)
		nmem := nn*int(unsafe.Sizeof(Neuron{})) + len(ng.Spks) + len(ng.Hist)
		neur += nn
		neurMem += nmem
		fmt.Fprintf(&b, "%14s:\t Neurons: %d\t NeurMem: %v \t Sends To:\n", ng.Nm, nn, (datasize.ByteSize)(nmem).HumanReadable())
		for _, sg := range ng.SndSyns {
			ns := len(sg.Wts)
			syn += ns
			smem := ns*4 + len(sg.I)*4
			synMem += smem
			fmt.Fprintf(&b, "\t%14s:\t Syns: %d\t SynMem: %v\n", sg.Dst.Nm, ns, (datasize.ByteSize)(smem).HumanReadable())
		}
	}
	fmt.Fprintf(&b, "\n\n%14s:\t Neurons: %d\t NeurMem: %v \t Syns: %d \t SynMem: %v\n", nt.Nm, neur, (datasize.ByteSize)(neurMem).HumanReadable(), syn, (datasize.ByteSize)(synMem).HumanReadable())
	return b.String()
}
