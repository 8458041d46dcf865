// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package patgen generates the synthetic input patterns for a winner-take-all
run, and provides the Input behavior that presents them to an input neuron
group, one pattern per presentation window.
*/
package patgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/emer/etable/etensor"
)

// GenConfig are the parameters for generating input patterns.
// Patterns are blocks of active neurons laid out along the input group,
// optionally overlapping, with larger mean values for later patterns.
type GenConfig struct {
	Size    int     `def:"100" min:"1" desc:"number of input neurons per pattern"`
	Frac    float32 `def:"0.5" desc:"fraction of neurons active -- recorded with the patterns but not used in the layout, which is determined by NPats and Overlap"`
	Mean    float32 `def:"100" desc:"mean value scale of the active neurons"`
	NPats   int     `def:"5" min:"1" desc:"number of patterns to generate"`
	Overlap float64 `def:"0" min:"0" max:"1" desc:"fraction of each pattern block that overlaps the next block, in [0, 1)"`
}

func (gc *GenConfig) Defaults() {
	gc.Size = 100
	gc.Frac = 0.5
	gc.Mean = 100
	gc.NPats = 5
	gc.Overlap = 0
}

// Validate returns an error if the configuration cannot generate patterns
func (gc *GenConfig) Validate() error {
	if gc.Size < 1 {
		return fmt.Errorf("patgen.GenConfig: Size must be positive, is: %d", gc.Size)
	}
	if gc.NPats < 1 {
		return fmt.Errorf("patgen.GenConfig: NPats must be positive, is: %d", gc.NPats)
	}
	if gc.Overlap < 0 || gc.Overlap >= 1 {
		return fmt.Errorf("patgen.GenConfig: Overlap must be in [0, 1), is: %g", gc.Overlap)
	}
	if gc.PatSize() < 1 {
		return errors.New("patgen.GenConfig: Size too small for NPats -- patterns would be empty")
	}
	return nil
}

// PatSize returns the number of active neurons in each pattern block.
// The layout is computed in float64, and products are converted explicitly
// so they are rounded before the subtraction, never fused.
func (gc *GenConfig) PatSize() int {
	n := float64(gc.NPats)
	span := n - float64((n-1)*gc.Overlap)
	return int(float64((1 / span) * float64(gc.Size)))
}

// PatStart returns the index of the first active neuron of pattern i
func (gc *GenConfig) PatStart(i int) int {
	ips := float64(i) * float64(gc.PatSize())
	return int(ips - float64(ips*gc.Overlap))
}

// Generate returns the [NPats, Size] patterns for given config, using rnd
// for the active values: (NPats + N(0,1)) * Mean * (1 + (i+1)/10) for
// pattern i, and 0 outside the pattern block.
func Generate(gc *GenConfig, rnd *rand.Rand) (*etensor.Float32, error) {
	if err := gc.Validate(); err != nil {
		return nil, err
	}
	pats := etensor.NewFloat32([]int{gc.NPats, gc.Size}, nil, []string{"Pat", "Neuron"})
	ps := gc.PatSize()
	np := float32(gc.NPats)
	for pi := 0; pi < gc.NPats; pi++ {
		st := gc.PatStart(pi)
		ed := st + ps
		if ed > gc.Size {
			ed = gc.Size
		}
		scl := gc.Mean * (1 + float32(pi+1)/10)
		row := pats.Values[pi*gc.Size : (pi+1)*gc.Size]
		for ni := st; ni < ed; ni++ {
			row[ni] = (np + float32(rnd.NormFloat64())) * scl
		}
	}
	return pats, nil
}
