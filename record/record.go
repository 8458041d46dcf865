// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package record provides etable logs of a winner-take-all run: per-iteration
population activity, spike events for raster displays, and the winners per
pattern, along with CSV export and summary aggregation.
*/
package record

import (
	"github.com/emer/etable/etable"
	"github.com/goki/gi/gi"
)

// SaveCSV saves the given log table to a tab-separated file with headers
func SaveCSV(dt *etable.Table, fname string) error {
	return dt.SaveCSV(gi.FileName(fname), etable.Tab, etable.Headers)
}
