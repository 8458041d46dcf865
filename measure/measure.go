// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package measure provides read-only snn behaviors that measure neuron group
activity: ActivityMeter for the instantaneous population firing rate, and
WinnerAggregator for the winner-take-all result of each input presentation window.

Measures own their outputs: they read the group spikes and timing through
the group accessors and never write onto the group itself.
*/
package measure
