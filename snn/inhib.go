// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "github.com/emer/etable/minmax"

// InhibParams parameterize pooled feedforward (FF) and feedback (FB) inhibition
// over a whole neuron group, based on the average (or maximum) excitatory input (FF)
// and the fraction of neurons that spiked on the previous iteration (FB).
// This is a graded, group-wide alternative or complement to lateral input competition.
// It is applied to each neuron's Inh by the dendritic summation.
type InhibParams struct {
	On       bool    `desc:"enable pooled inhibition"`
	Gi       float32 `viewif:"On" min:"0" def:"1" desc:"overall inhibition gain -- scales both the ff and fb factors uniformly"`
	FF       float32 `viewif:"On" min:"0" def:"0.5" desc:"overall inhibitory contribution from feedforward inhibition -- multiplies average excitatory input above FF0"`
	FB       float32 `viewif:"On" min:"0" def:"10" desc:"overall inhibitory contribution from feedback inhibition -- multiplies the fraction of neurons spiking"`
	FBTau    float32 `viewif:"On" min:"0" def:"1.4,3,5" desc:"time constant in iterations for integrating feedback inhibitory values -- prevents oscillations that otherwise occur"`
	MaxVsAvg float32 `viewif:"On" def:"0,0.5,1" desc:"what proportion of the maximum vs. average excitatory input to use in the feedforward inhibition computation -- 0 = all average, 1 = all max"`
	FF0      float32 `viewif:"On" def:"0" desc:"feedforward zero point for excitatory input -- below this level, no FF inhibition is computed, and this value is subtracted from the ff inhib contribution above it"`

	FBDt float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"rate = 1 / tau"`
}

func (ip *InhibParams) Update() {
	ip.FBDt = 1 / ip.FBTau
}

func (ip *InhibParams) Defaults() {
	ip.On = false
	ip.Gi = 1
	ip.FF = 0.5
	ip.FB = 10
	ip.FBTau = 1.4
	ip.MaxVsAvg = 0
	ip.FF0 = 0
	ip.Update()
}

// FFInhib returns the feedforward inhibition value based on average and max excitatory input
func (ip *InhibParams) FFInhib(avgExc, maxExc float32) float32 {
	ffExc := avgExc + ip.MaxVsAvg*(maxExc-avgExc)
	var ffi float32
	if ffExc > ip.FF0 {
		ffi = ip.FF * (ffExc - ip.FF0)
	}
	return ffi
}

// FBInhib computes feedback inhibition value as function of the fraction of neurons spiking
func (ip *InhibParams) FBInhib(act float32) float32 {
	return ip.FB * act
}

// FBUpdt updates feedback inhibition using time-integration rate constant
func (ip *InhibParams) FBUpdt(fbi *float32, newFbi float32) {
	*fbi += ip.FBDt * (newFbi - *fbi)
}

// Inhib is the full inhibition computation for given inhib state, which must have
// the Exc values updated to reflect the current Avg and Max over the group,
// given the fraction of the group that spiked on the previous iteration.
func (ip *InhibParams) Inhib(inh *InhibState, act float32) {
	if !ip.On {
		inh.Zero()
		return
	}
	inh.FFi = ip.FFInhib(inh.Exc.Avg, inh.Exc.Max)
	ip.FBUpdt(&inh.FBi, ip.FBInhib(act))
	inh.Gi = ip.Gi * (inh.FFi + inh.FBi)
}

// InhibState contains state values for computed pooled inhibition
type InhibState struct {
	FFi float32         `desc:"computed feedforward inhibition"`
	FBi float32         `desc:"computed feedback inhibition (time integrated)"`
	Gi  float32         `desc:"overall value of the inhibition -- this is what is added into each neuron's Inh"`
	Exc minmax.AvgMax32 `desc:"average and max excitatory input over the group, which drive FF inhibition"`
}

func (is *InhibState) Init() {
	is.Zero()
	is.Exc.Init()
}

// Zero clears inhibition but does not affect the Exc averages
func (is *InhibState) Zero() {
	is.FFi = 0
	is.FBi = 0
	is.Gi = 0
}
