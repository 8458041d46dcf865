// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"github.com/emer/etable/agg"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/emer/etable/split"
	"github.com/emer/spikewta/measure"
	"github.com/emer/spikewta/snn"
)

// ActLog is a behavior that logs the population activity of a neuron group,
// as measured by Meter, one row per iteration.  It must be scheduled after Meter.
type ActLog struct {
	Meter *measure.ActivityMeter `desc:"activity meter on the same group"`
	Table *etable.Table          `view:"no-inline" desc:"the log: Iteration, Window, Pattern, Activity"`
}

// NewActLog returns a new activity log reading from given meter
func NewActLog(meter *measure.ActivityMeter) *ActLog {
	return &ActLog{Meter: meter, Table: &etable.Table{}}
}

func (al *ActLog) Setup(ng *snn.NeuronGroup) error {
	if al.Table == nil {
		al.Table = &etable.Table{}
	}
	dt := al.Table
	dt.SetMetaData("name", ng.Nm+"ActLog")
	dt.SetMetaData("desc", "population activity per iteration for "+ng.Nm)
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", "4")
	sch := etable.Schema{
		{"Iteration", etensor.INT64, nil, nil},
		{"Window", etensor.INT64, nil, nil},
		{"Pattern", etensor.INT64, nil, nil},
		{"Activity", etensor.FLOAT32, nil, nil},
	}
	dt.SetFromSchema(sch, 0)
	return nil
}

func (al *ActLog) Step(ng *snn.NeuronGroup) {
	dt := al.Table
	tm := ng.Time()
	row := dt.Rows
	dt.SetNumRows(row + 1)
	dt.SetCellFloat("Iteration", row, float64(tm.Iteration))
	dt.SetCellFloat("Window", row, float64(tm.Window()))
	dt.SetCellFloat("Pattern", row, float64(tm.WindowInpIdx()))
	dt.SetCellFloat("Activity", row, float64(al.Meter.Activity))
}

// PatternMeans returns a table with the mean Activity for each Pattern of
// the given activity log, one row per pattern.
func PatternMeans(dt *etable.Table) *etable.Table {
	ix := etable.NewIdxView(dt)
	spl := split.GroupBy(ix, []string{"Pattern"})
	split.Agg(spl, "Activity", agg.AggMean)
	return spl.AggsToTable(etable.ColNameOnly)
}

// MeanActivity returns the mean Activity over all rows of an activity log
func MeanActivity(dt *etable.Table) float64 {
	if dt.Rows == 0 {
		return 0
	}
	return agg.Mean(etable.NewIdxView(dt), "Activity")[0]
}
