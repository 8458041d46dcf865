// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"log"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/emer/spikewta/snn"
)

// VmLog is a behavior that logs the membrane potential of every neuron in a
// group, one row per iteration with a Vm tensor cell, the data for a
// voltage trace display.  It must be scheduled after the group dynamics.
type VmLog struct {
	Table *etable.Table    `view:"no-inline" desc:"the log: Iteration, Vm[Neuron]"`
	Tsr   *etensor.Float32 `view:"-" desc:"per-neuron Vm values for the current row"`
}

// NewVmLog returns a new membrane potential log
func NewVmLog() *VmLog {
	return &VmLog{Table: &etable.Table{}}
}

func (vl *VmLog) Setup(ng *snn.NeuronGroup) error {
	if vl.Table == nil {
		vl.Table = &etable.Table{}
	}
	dt := vl.Table
	dt.SetMetaData("name", ng.Nm+"VmLog")
	dt.SetMetaData("desc", "membrane potential per iteration for "+ng.Nm)
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", "4")
	sch := etable.Schema{
		{"Iteration", etensor.INT64, nil, nil},
		{"Vm", etensor.FLOAT32, []int{ng.Size()}, []string{"Neuron"}},
	}
	dt.SetFromSchema(sch, 0)
	vl.Tsr = etensor.NewFloat32([]int{ng.Size()}, nil, []string{"Neuron"})
	return nil
}

func (vl *VmLog) Step(ng *snn.NeuronGroup) {
	if err := ng.UnitVals(&vl.Tsr.Values, "Vm"); err != nil {
		log.Println(err)
		return
	}
	dt := vl.Table
	row := dt.Rows
	dt.SetNumRows(row + 1)
	dt.SetCellFloat("Iteration", row, float64(ng.Time().Iteration))
	dt.SetCellTensor("Vm", row, vl.Tsr)
}
