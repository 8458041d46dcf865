// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"fmt"
	"strings"
)

// FormatParams formats parameter strings into a text table with ncols columns,
// filled column by column, with cells padded to the longest string.
// Used to label run summaries with the parameters that produced them.
func FormatParams(pars []string, ncols int) string {
	if len(pars) == 0 || ncols < 1 {
		return ""
	}
	ps := make([]string, len(pars))
	copy(ps, pars)
	if rem := len(ps) % ncols; rem != 0 {
		ps = append(ps, make([]string, ncols-rem)...)
	}
	mxlen := 0
	for _, p := range ps {
		if len(p) > mxlen {
			mxlen = len(p)
		}
	}
	mxlen += 2
	nrows := len(ps) / ncols
	var b strings.Builder
	for r := 0; r < nrows; r++ {
		cells := make([]string, 0, ncols)
		for c := r; c < len(ps); c += nrows {
			cells = append(cells, fmt.Sprintf("%-*s", mxlen, ps[c]))
		}
		fmt.Fprintf(&b, " %s \n", strings.Join(cells, " | "))
	}
	return b.String()
}
