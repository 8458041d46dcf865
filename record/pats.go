// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"fmt"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// PatsTable returns a table of the [NPats, Size] patterns, one row per
// pattern: Name and Input, with Input a Size tensor cell.
func PatsTable(pats *etensor.Float32) *etable.Table {
	np, sz := pats.Dim(0), pats.Dim(1)
	dt := &etable.Table{}
	dt.SetMetaData("name", "Pats")
	dt.SetMetaData("desc", "input patterns")
	dt.SetFromSchema(etable.Schema{
		{"Name", etensor.STRING, nil, nil},
		{"Input", etensor.FLOAT32, []int{sz}, []string{"Neuron"}},
	}, np)
	for pi := 0; pi < np; pi++ {
		dt.SetCellString("Name", pi, fmt.Sprintf("Pat%d", pi))
	}
	copy(dt.ColByName("Input").(*etensor.Float32).Values, pats.Values)
	return dt
}
