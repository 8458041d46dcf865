// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"fmt"
	"strings"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/emer/spikewta/measure"
)

// WinnerTable returns a table of the winners recorded by wa, one row per
// pattern: Pattern, Winners (space separated, empty if none yet), NWinners.
func WinnerTable(wa *measure.WinnerAggregator) *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "Winners")
	dt.SetMetaData("desc", "winning neurons per input pattern")
	sch := etable.Schema{
		{"Pattern", etensor.INT64, nil, nil},
		{"Winners", etensor.STRING, nil, nil},
		{"NWinners", etensor.INT64, nil, nil},
	}
	dt.SetFromSchema(sch, len(wa.Results))
	for pi := range wa.Results {
		wins := wa.PatWinners(pi)
		dt.SetCellFloat("Pattern", pi, float64(pi))
		dt.SetCellString("Winners", pi, FormatWinners(wins))
		dt.SetCellFloat("NWinners", pi, float64(len(wins)))
	}
	return dt
}

// FormatWinners returns the winner indexes as a space separated list
func FormatWinners(wins []int) string {
	strs := make([]string, len(wins))
	for i, w := range wins {
		strs[i] = fmt.Sprintf("%d", w)
	}
	return strings.Join(strs, " ")
}
