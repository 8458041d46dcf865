// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/emer/spikewta/store"
)

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Name = "test"
	cfg.InputSize = 20
	cfg.OutputSize = 4
	cfg.NPats = 2
	cfg.Mean = 200
	cfg.InpDuration = 10
	cfg.Epochs = 2
	cfg.PrintDetails = false
	return cfg
}

func TestSimRun(t *testing.T) {
	cfg := testConfig()
	ss := New(cfg, 0)
	if err := ss.Init(); err != nil {
		t.Fatal(err)
	}
	if ss.Net.NGroups() != 2 || len(ss.Net.Syns) != 2 {
		t.Fatalf("network structure: %v groups, %v synapse groups\n", ss.Net.NGroups(), len(ss.Net.Syns))
	}
	rr, err := ss.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if rr.Iterations != cfg.NIters() || rr.Iterations != 40 {
		t.Errorf("iterations: %v != 40\n", rr.Iterations)
	}
	if len(rr.Winners) != 2 {
		t.Fatalf("winners: %v\n", rr.Winners)
	}
	for pi, wins := range rr.Winners {
		if len(wins) == 0 {
			t.Errorf("pattern %v has no winners\n", pi)
		}
		for _, w := range wins {
			if w < 0 || w >= cfg.OutputSize {
				t.Errorf("pattern %v winner out of range: %v\n", pi, w)
			}
		}
	}
	if ss.InLog.Table.Rows != 40 || ss.OutLog.Table.Rows != 40 {
		t.Errorf("log rows: %v %v\n", ss.InLog.Table.Rows, ss.OutLog.Table.Rows)
	}
	if rr.InAct <= 0 || rr.InAct > 1 {
		t.Errorf("input activity: %v\n", rr.InAct)
	}
	if rr.OutAct < 0 || rr.OutAct > 1 {
		t.Errorf("output activity: %v\n", rr.OutAct)
	}
	if len(rr.PatActs) != 2 || rr.Params == "" {
		t.Errorf("result summary: %+v\n", rr)
	}
	if ss.SpikeLog != nil || ss.VmLog != nil {
		t.Errorf("spike and Vm logs should be off by default\n")
	}
}

func TestSimVmLog(t *testing.T) {
	cfg := testConfig()
	cfg.LogVm = true
	ss := New(cfg, 0)
	if err := ss.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := ss.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	dt := ss.VmLog.Table
	if dt.Rows != 40 {
		t.Fatalf("VmLog rows: %v != 40\n", dt.Rows)
	}
	out := ss.Net.GroupByName("Output")
	for ni := 0; ni < cfg.OutputSize; ni++ {
		vm := dt.CellTensorFloat1D("Vm", dt.Rows-1, ni)
		if vm != float64(out.Neurons[ni].Vm) {
			t.Errorf("neuron %v: logged Vm %v != %v\n", ni, vm, out.Neurons[ni].Vm)
		}
	}
	dir := t.TempDir()
	if err := ss.SaveLogs(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "test_run0_vm.tsv")); err != nil {
		t.Errorf("Vm log not saved: %v\n", err)
	}
}

func TestSimDeterministic(t *testing.T) {
	cfg := testConfig()
	cfg.LogSpikes = true
	var res [2]*RunResult
	var nspk [2]int
	for i := range res {
		ss := New(cfg, 3)
		if err := ss.Init(); err != nil {
			t.Fatal(err)
		}
		rr, err := ss.Run(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		res[i] = rr
		nspk[i] = ss.SpikeLog.Table.Rows
	}
	if res[0].Seed != 4 {
		t.Errorf("seed: %v != 4\n", res[0].Seed)
	}
	if res[0].OutAct != res[1].OutAct || res[0].InAct != res[1].InAct || nspk[0] != nspk[1] {
		t.Errorf("same seed, different runs: %v %v, %v %v\n", res[0].OutAct, res[1].OutAct, nspk[0], nspk[1])
	}
	for pi := range res[0].Winners {
		if len(res[0].Winners[pi]) != len(res[1].Winners[pi]) {
			t.Errorf("pattern %v: different winners: %v %v\n", pi, res[0].Winners[pi], res[1].Winners[pi])
		}
	}
}

func TestSimDelayTiming(t *testing.T) {
	for delay := 0; delay <= 2; delay++ {
		cfg := testConfig()
		cfg.Delay = delay
		ss := New(cfg, 0)
		if err := ss.Init(); err != nil {
			t.Fatal(err)
		}
		inp := ss.Net.GroupByName("Input")
		ff := ss.Net.GroupByName("Output").RcvSyns[0]
		if inp.HistLen != delay+1 {
			t.Errorf("delay %v: input HistLen: %v\n", delay, inp.HistLen)
		}
		firstSpk, firstI := 0, 0
		for it := 1; it <= 100 && firstI == 0; it++ {
			ss.Net.Step()
			for _, v := range ff.I {
				if v != 0 {
					firstI = it
					break
				}
			}
			if firstSpk == 0 && inp.SpikeCount() > 0 {
				firstSpk = it
			}
		}
		if firstSpk == 0 || firstI == 0 {
			t.Fatalf("delay %v: no input arrived: first spike %v, first input %v\n", delay, firstSpk, firstI)
		}
		if firstI-firstSpk != delay+1 {
			t.Errorf("delay %v: input arrived %v iterations after the first spike, should be %v\n", delay, firstI-firstSpk, delay+1)
		}
	}
}

func TestSimParamSets(t *testing.T) {
	cfg := testConfig()
	ss := New(cfg, 0)
	if err := ss.Init(); err != nil {
		t.Fatal(err)
	}
	inp := ss.Net.GroupByName("Input")
	out := ss.Net.GroupByName("Output")
	if inp.Act.Tau != 5 || out.Act.Tau != 10 {
		t.Errorf("Base Tau: input %v, output %v\n", inp.Act.Tau, out.Act.Tau)
	}
	if inp.Act.DtTau != 0.2 {
		t.Errorf("DtTau not updated: %v\n", inp.Act.DtTau)
	}
	ff, lat := out.RcvSyns[0], out.RcvSyns[1]
	if ff.Scale.Coef != 6 || lat.Scale.Coef != cfg.LatCoef || lat.Scale.Inhib {
		t.Errorf("Base pathway scales: %+v %+v\n", ff.Scale, lat.Scale)
	}

	cfg.ParamSet = "StrongLat"
	ss = New(cfg, 0)
	if err := ss.Init(); err != nil {
		t.Fatal(err)
	}
	if lat := ss.Net.GroupByName("Output").RcvSyns[1]; lat.Scale.Coef != 4 {
		t.Errorf("StrongLat coef: %v\n", lat.Scale.Coef)
	}

	cfg.ParamSet = "NoLateral"
	ss = New(cfg, 0)
	if err := ss.Init(); err != nil {
		t.Fatal(err)
	}
	if lat := ss.Net.GroupByName("Output").RcvSyns[1]; !lat.Off {
		t.Errorf("NoLateral did not turn off lateral pathway\n")
	}

	cfg.ParamSet = "FFFB"
	ss = New(cfg, 0)
	if err := ss.Init(); err != nil {
		t.Fatal(err)
	}
	out = ss.Net.GroupByName("Output")
	if !out.Inhib.On || ss.Net.GroupByName("Input").Inhib.On || out.RcvSyns[1].Scale.Coef != 1 {
		t.Errorf("FFFB params not applied: %+v\n", out.Inhib)
	}
	if _, err := ss.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if ss.Winners.NResults() != cfg.NPats {
		t.Errorf("FFFB run results: %v\n", ss.Winners.Results)
	}

	cfg.ParamSet = "NoSuchSet"
	ss = New(cfg, 0)
	if err := ss.Init(); err == nil {
		t.Errorf("expected error for unknown param set\n")
	}
}

func TestRunBatch(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.Runs = 3
	cfg.Threads = 2
	cfg.OutDir = t.TempDir()
	results, err := RunBatch(ctx, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("results: %v != 3\n", len(results))
	}
	for ri, rr := range results {
		if rr.Run != ri || rr.Seed != cfg.Seed+int64(ri) {
			t.Errorf("result %v: run %v seed %v\n", ri, rr.Run, rr.Seed)
		}
		fn := filepath.Join(cfg.OutDir, "test_run"+string(rune('0'+ri))+"_winners.tsv")
		if _, err := os.Stat(fn); err != nil {
			t.Errorf("run %v: winners log not saved: %v\n", ri, err)
		}
	}
	if df := DistinctFrac(results); df < 0 || df > 1 {
		t.Errorf("DistinctFrac: %v\n", df)
	}

	st, err := store.Open(ctx, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	if err := SaveResults(ctx, st, cfg, results); err != nil {
		t.Fatal(err)
	}
	recs, err := st.Runs(ctx, "test")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 || recs[2].Seed != cfg.Seed+2 || len(recs[2].Winners) != 2 {
		t.Errorf("stored runs: %+v\n", recs)
	}
}

func TestRunBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := testConfig()
	cfg.Runs = 2
	if _, err := RunBatch(ctx, cfg); err == nil {
		t.Errorf("expected error from canceled batch\n")
	}
}

func TestConfig(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "wta.yaml")
	yml := "name: overlap\nnpats: 3\noverlap: 0.25\nprint_details: false\nparam_set: StrongLat\n"
	if err := os.WriteFile(fn, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(fn)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "overlap" || cfg.NPats != 3 || cfg.Overlap != 0.25 || cfg.PrintDetails || cfg.ParamSet != "StrongLat" {
		t.Errorf("loaded config: %+v\n", cfg)
	}
	// unset fields keep defaults
	if cfg.InputSize != 100 || cfg.InpDuration != 50 || cfg.Runs != 1 {
		t.Errorf("defaults not kept: %+v\n", cfg)
	}

	sfn := filepath.Join(t.TempDir(), "saved.yaml")
	if err := cfg.Save(sfn); err != nil {
		t.Fatal(err)
	}
	cfg2, err := LoadConfig(sfn)
	if err != nil {
		t.Fatal(err)
	}
	if *cfg2 != *cfg {
		t.Errorf("saved config differs: %+v != %+v\n", cfg2, cfg)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("inp_duration: 0\n"), 0644)
	if _, err := LoadConfig(bad); err == nil {
		t.Errorf("expected validation error for inp_duration 0\n")
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file\n")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v\n", err)
	}
	if cfg.NIters() != 10*5*50 {
		t.Errorf("NIters: %v\n", cfg.NIters())
	}
	cfg.Overlap = 1
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for overlap 1\n")
	}
	cfg = DefaultConfig()
	cfg.Threads = 0
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for 0 threads\n")
	}
}
