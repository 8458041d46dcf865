// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"context"
	"fmt"
	"log"

	"github.com/emer/spikewta/store"
	"github.com/sourcegraph/conc/pool"
)

// RunBatch runs Config.Runs independent runs, up to Config.Threads at a time,
// and returns their results in run order.  Each run has its own Sim and seed.
// If OutDir is set, the logs of each run are saved there.
// The first run error cancels the remaining runs and is returned.
func RunBatch(ctx context.Context, cfg *Config) ([]*RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	results := make([]*RunResult, cfg.Runs)
	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithMaxGoroutines(cfg.Threads)
	for ri := 0; ri < cfg.Runs; ri++ {
		p.Go(func(ctx context.Context) error {
			ss := New(cfg, ri)
			if err := ss.Init(); err != nil {
				return fmt.Errorf("run %d: %w", ri, err)
			}
			rr, err := ss.Run(ctx)
			if err != nil {
				return fmt.Errorf("run %d: %w", ri, err)
			}
			if cfg.OutDir != "" {
				if err := ss.SaveLogs(cfg.OutDir); err != nil {
					log.Println(err)
				}
			}
			results[ri] = rr
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SaveResults saves the batch results to the store, under the config name
func SaveResults(ctx context.Context, st *store.Store, cfg *Config, results []*RunResult) error {
	for _, rr := range results {
		rec := &store.RunRecord{
			Name:       cfg.Name,
			Run:        rr.Run,
			Seed:       rr.Seed,
			ParamSet:   cfg.ParamSet,
			Params:     rr.Params,
			NPats:      len(rr.Winners),
			Iterations: rr.Iterations,
			MeanAct:    rr.OutAct,
			Distinct:   rr.Distinct,
			Winners:    rr.Winners,
		}
		if err := st.SaveRun(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// DistinctFrac returns the fraction of results whose winners separated all patterns
func DistinctFrac(results []*RunResult) float64 {
	if len(results) == 0 {
		return 0
	}
	n := 0
	for _, rr := range results {
		if rr.Distinct {
			n++
		}
	}
	return float64(n) / float64(len(results))
}
