// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/emer/spikewta/snn"
)

// SpikeLog is a behavior that logs every spike of a neuron group as an
// (Iteration, Neuron) event row, the data for a spike raster display.
// It must be scheduled after the group dynamics.
type SpikeLog struct {
	Table *etable.Table `view:"no-inline" desc:"the log: Iteration, Neuron"`
}

// NewSpikeLog returns a new spike event log
func NewSpikeLog() *SpikeLog {
	return &SpikeLog{Table: &etable.Table{}}
}

func (sl *SpikeLog) Setup(ng *snn.NeuronGroup) error {
	if sl.Table == nil {
		sl.Table = &etable.Table{}
	}
	dt := sl.Table
	dt.SetMetaData("name", ng.Nm+"SpikeLog")
	dt.SetMetaData("desc", "spike events for "+ng.Nm)
	dt.SetMetaData("read-only", "true")
	sch := etable.Schema{
		{"Iteration", etensor.INT64, nil, nil},
		{"Neuron", etensor.INT64, nil, nil},
	}
	dt.SetFromSchema(sch, 0)
	return nil
}

func (sl *SpikeLog) Step(ng *snn.NeuronGroup) {
	nspk := ng.SpikeCount()
	if nspk == 0 {
		return
	}
	dt := sl.Table
	itr := float64(ng.Time().Iteration)
	row := dt.Rows
	dt.SetNumRows(row + nspk)
	for ni, s := range ng.Spikes() {
		if !s {
			continue
		}
		dt.SetCellFloat("Iteration", row, itr)
		dt.SetCellFloat("Neuron", row, float64(ni))
		row++
	}
}

// SpikeCounts returns the number of spikes of each of n neurons in a spike log
func SpikeCounts(dt *etable.Table, n int) []int {
	cnts := make([]int, n)
	for ri := 0; ri < dt.Rows; ri++ {
		ni := int(dt.CellFloat("Neuron", ri))
		if ni >= 0 && ni < n {
			cnts[ni]++
		}
	}
	return cnts
}
