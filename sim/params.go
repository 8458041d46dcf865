// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import "github.com/emer/emergent/params"

// ParamSets is the default set of parameters -- Base is always applied, and others can be optionally
// selected to apply on top of that
var ParamSets = params.Sets{
	{Name: "Base", Desc: "these are the best params", Sheets: params.Sheets{
		"Network": &params.Sheet{
			{Sel: "NeuronGroup", Desc: "LIF defaults",
				Params: params.Params{
					"NeuronGroup.Act.Tau":     "10",
					"NeuronGroup.Act.Thr":     "-55",
					"NeuronGroup.Act.Refract": "2",
				}},
			{Sel: ".Input", Desc: "input neurons track their input faster",
				Params: params.Params{
					"NeuronGroup.Act.Tau": "5",
				}},
			{Sel: ".Forward", Desc: "input drive must be able to bring outputs over threshold",
				Params: params.Params{
					"SynapseGroup.Scale.Coef": "6",
				}},
		},
	}},
	{Name: "StrongLat", Desc: "stronger competition among output neurons", Sheets: params.Sheets{
		"Network": &params.Sheet{
			{Sel: ".Lateral", Desc: "double the default lateral scaling",
				Params: params.Params{
					"SynapseGroup.Scale.Coef": "4",
				}},
		},
	}},
	{Name: "NoLateral", Desc: "no competition: output neurons respond independently", Sheets: params.Sheets{
		"Network": &params.Sheet{
			{Sel: ".Lateral", Desc: "lateral pathway off",
				Params: params.Params{
					"SynapseGroup.Off": "true",
				}},
		},
	}},
	{Name: "SlowOutput", Desc: "slower output integration, fewer output spikes per window", Sheets: params.Sheets{
		"Network": &params.Sheet{
			{Sel: ".Output", Desc: "longer time constant and refractory period",
				Params: params.Params{
					"NeuronGroup.Act.Tau":     "20",
					"NeuronGroup.Act.Refract": "4",
				}},
		},
	}},
	{Name: "FFFB", Desc: "pooled feedforward / feedback inhibition on the output group, with weaker lateral input", Sheets: params.Sheets{
		"Network": &params.Sheet{
			{Sel: ".Output", Desc: "pooled inhibition on",
				Params: params.Params{
					"NeuronGroup.Inhib.On": "true",
					"NeuronGroup.Inhib.FB": "10",
				}},
			{Sel: ".Lateral", Desc: "lateral input only sharpens the competition",
				Params: params.Params{
					"SynapseGroup.Scale.Coef": "1",
				}},
		},
	}},
}
