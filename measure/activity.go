// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"github.com/emer/spikewta/snn"
)

// Activity returns the fraction of the size neurons that spiked.
// A size of 0 gives NaN.
func Activity(spikes []bool, size int) float32 {
	var sum float32
	for _, s := range spikes {
		if s {
			sum++
		}
	}
	return sum / float32(size)
}

// ActivityMeter records the instantaneous population firing rate of a
// neuron group: the fraction of its neurons that spiked on the current iteration.
type ActivityMeter struct {
	Activity float32 `inactive:"+" desc:"fraction of neurons in the group that spiked on the most recent iteration"`
}

func (am *ActivityMeter) Setup(ng *snn.NeuronGroup) error {
	am.Activity = Activity(ng.Spikes(), ng.Size())
	return nil
}

func (am *ActivityMeter) Step(ng *snn.NeuronGroup) {
	am.Activity = Activity(ng.Spikes(), ng.Size())
}
