// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "github.com/goki/ki/kit"

// GroupTypes enumerates the roles a neuron group plays in a network.
// Class parameter styles automatically key off of these types.
type GroupTypes int32

//go:generate stringer -type=GroupTypes

var KiT_GroupTypes = kit.Enums.AddEnum(GroupTypesN, false, nil)

func (ev GroupTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *GroupTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The group types
const (
	// Input is a group that receives external input in its Ext values
	Input GroupTypes = iota

	// Hidden is a group driven only by synaptic input from other groups
	Hidden

	// Output is a group whose spiking is read out as the network's response,
	// typically via a WinnerAggregator
	Output

	GroupTypesN
)
