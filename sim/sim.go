// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sim assembles a winner-take-all spiking network from a Config: an
input group presenting generated patterns, and an output group whose neurons
compete through lateral input, so that each pattern comes to be won by one
output neuron.  It runs one or many independent runs and collects the
results.
*/
package sim

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/emer/emergent/params"
	"github.com/emer/emergent/timer"
	"github.com/emer/etable/etensor"
	"github.com/emer/spikewta/dendrite"
	"github.com/emer/spikewta/measure"
	"github.com/emer/spikewta/patgen"
	"github.com/emer/spikewta/record"
	"github.com/emer/spikewta/snn"
)

// behavior schedule order keys
const (
	OrderInput    = 10
	OrderSyn      = 20
	OrderSum      = 30
	OrderDynamics = 40
	OrderMeter    = 50
	OrderWinners  = 60
	OrderLog      = 70
)

// Sim encapsulates the entire simulation model for one run
type Sim struct {
	Config   *Config                   `desc:"run configuration"`
	RunIdx   int                       `desc:"index of this run within a batch"`
	Seed     int64                     `desc:"random seed for this run"`
	Net      *snn.Network              `view:"no-inline" desc:"the network"`
	Pats     *etensor.Float32          `view:"no-inline" desc:"input patterns, [NPats, InputSize]"`
	Params   params.Sets               `view:"no-inline" desc:"full collection of param sets"`
	Input    *patgen.Input             `desc:"pattern presentation on the input group"`
	InMeter  *measure.ActivityMeter    `desc:"input group activity"`
	OutMeter *measure.ActivityMeter    `desc:"output group activity"`
	Winners  *measure.WinnerAggregator `desc:"output group winners per pattern"`
	InLog    *record.ActLog            `desc:"input group activity log"`
	OutLog   *record.ActLog            `desc:"output group activity log"`
	SpikeLog *record.SpikeLog          `desc:"output group spike events, if Config.LogSpikes"`
	VmLog    *record.VmLog             `desc:"output group membrane potentials, if Config.LogVm"`
	Rand     *rand.Rand                `view:"-" desc:"random source for this run"`
	Timer    timer.Time                `view:"-" desc:"timer for the run"`
}

// New returns a new Sim for given run index of a batch, seeded with Config.Seed + run
func New(cfg *Config, run int) *Sim {
	ss := &Sim{Config: cfg, RunIdx: run}
	ss.Seed = cfg.Seed + int64(run)
	ss.Rand = rand.New(rand.NewSource(ss.Seed))
	ss.Params = ParamSets
	return ss
}

// Init generates the patterns, configures the network, applies the params,
// and builds and sets up the network, ready to Run.
func (ss *Sim) Init() error {
	if err := ss.Config.Validate(); err != nil {
		return err
	}
	if err := ss.ConfigPats(); err != nil {
		return err
	}
	ss.ConfigNet()
	if err := ss.SetParams(false); err != nil {
		return err
	}
	if err := ss.Net.Build(); err != nil {
		return err
	}
	return ss.Net.Setup()
}

// ConfigPats generates the input patterns
func (ss *Sim) ConfigPats() error {
	pats, err := patgen.Generate(ss.Config.GenConfig(), ss.Rand)
	if err != nil {
		return err
	}
	ss.Pats = pats
	return nil
}

// ConfigNet configures the network groups, pathways and behaviors
func (ss *Sim) ConfigNet() {
	cfg := ss.Config
	net := snn.NewNetwork(cfg.Name)
	ss.Net = net
	net.Time.InpDuration = cfg.InpDuration
	net.Time.NData = cfg.NPats

	inp := net.AddGroup("Input", cfg.InputSize, snn.Input)
	out := net.AddGroup("Output", cfg.OutputSize, snn.Output)

	ff := net.Connect(inp, out)
	ff.Cls = "Forward"
	ff.Com.Delay = cfg.Delay
	lat := net.Connect(out, out)
	lat.Cls = "Lateral"
	// lateral input is already <= 0, Sum counts it as inhibition
	lat.Scale.Coef = cfg.LatCoef

	ss.Input = patgen.NewInput(ss.Pats, cfg.Gain)
	net.AddBehavior(inp, OrderInput, ss.Input)

	net.AddSynBehavior(ff, OrderSyn, dendrite.NewSimple(cfg.WtMin, cfg.WtMax, ss.Rand))
	net.AddSynBehavior(lat, OrderSyn, dendrite.NewLateral())

	for _, ng := range []*snn.NeuronGroup{inp, out} {
		net.AddBehavior(ng, OrderSum, &dendrite.Sum{})
		net.AddBehavior(ng, OrderDynamics, &snn.Dynamics{})
	}

	ss.InMeter = &measure.ActivityMeter{}
	ss.OutMeter = &measure.ActivityMeter{}
	net.AddBehavior(inp, OrderMeter, ss.InMeter)
	net.AddBehavior(out, OrderMeter, ss.OutMeter)

	ss.Winners = measure.NewWinnerAggregator()
	ss.Winners.Config.PrintDetails = cfg.PrintDetails
	ss.Winners.Config.Label = fmt.Sprintf("%s run %d", cfg.Name, ss.RunIdx)
	net.AddBehavior(out, OrderWinners, ss.Winners)

	ss.InLog = record.NewActLog(ss.InMeter)
	ss.OutLog = record.NewActLog(ss.OutMeter)
	net.AddBehavior(inp, OrderLog, ss.InLog)
	net.AddBehavior(out, OrderLog, ss.OutLog)
	ss.SpikeLog = nil
	if cfg.LogSpikes {
		ss.SpikeLog = record.NewSpikeLog()
		net.AddBehavior(out, OrderLog, ss.SpikeLog)
	}
	ss.VmLog = nil
	if cfg.LogVm {
		ss.VmLog = record.NewVmLog()
		net.AddBehavior(out, OrderLog, ss.VmLog)
	}
}

////////////////////////////////////////////////////////////////////////////////////////////
// 		Params setting

// SetParams sets the params for "Base" and then current ParamSet.
// This is called at the start of Init, and can be called again after
// changing Config.ParamSet, before building the network.
func (ss *Sim) SetParams(setMsg bool) error {
	err := ss.SetParamsSet("Base", setMsg)
	if ps := ss.Config.ParamSet; ps != "" && ps != "Base" {
		err = ss.SetParamsSet(ps, setMsg)
	}
	return err
}

// SetParamsSet sets the params for given params.Set name.
func (ss *Sim) SetParamsSet(setNm string, setMsg bool) error {
	pset, err := ss.Params.SetByNameTry(setNm)
	if err != nil {
		return err
	}
	if netp, ok := pset.Sheets["Network"]; ok {
		_, err = ss.Net.ApplyParams(netp, setMsg)
	}
	return err
}

// ParamStrings returns the key parameters of the run as name=value strings,
// for FormatParams summaries.
func (ss *Sim) ParamStrings() []string {
	cfg := ss.Config
	out := ss.Net.GroupByName("Output")
	pars := []string{
		fmt.Sprintf("Seed=%d", ss.Seed),
		fmt.Sprintf("ParamSet=%s", cfg.ParamSet),
		fmt.Sprintf("Input=%d", cfg.InputSize),
		fmt.Sprintf("Output=%d", cfg.OutputSize),
		fmt.Sprintf("NPats=%d", cfg.NPats),
		fmt.Sprintf("Overlap=%g", cfg.Overlap),
		fmt.Sprintf("Gain=%g", cfg.Gain),
		fmt.Sprintf("InpDuration=%d", cfg.InpDuration),
		fmt.Sprintf("Epochs=%d", cfg.Epochs),
		fmt.Sprintf("Delay=%d", cfg.Delay),
	}
	if out != nil {
		pars = append(pars, fmt.Sprintf("Tau=%g", out.Act.Tau), fmt.Sprintf("Thr=%g", out.Act.Thr))
		for _, sg := range out.RcvSyns {
			pars = append(pars, fmt.Sprintf("%s.Coef=%g", sg.Cls, sg.Scale.Coef))
		}
	}
	return pars
}

////////////////////////////////////////////////////////////////////////////////////////////
// 		Running

// RunResult is the summary of one run
type RunResult struct {
	Run        int       `desc:"index of the run within its batch"`
	Seed       int64     `desc:"random seed of the run"`
	Iterations int       `desc:"number of iterations run"`
	Winners    [][]int   `desc:"winning output neurons per pattern, nil if no window completed"`
	Distinct   bool      `desc:"each pattern has a single winner, not shared with any other pattern"`
	InAct      float64   `desc:"mean input group activity over the run"`
	OutAct     float64   `desc:"mean output group activity over the run"`
	PatActs    []float64 `desc:"mean output group activity per pattern"`
	Params     string    `desc:"formatted table of the run parameters"`
	Secs       float64   `desc:"wall-clock seconds taken by the run"`
}

// Run runs Config.NIters iterations, one epoch at a time, stopping early
// with the context error if ctx is done.  Init must have been called.
func (ss *Sim) Run(ctx context.Context) (*RunResult, error) {
	nper := ss.Config.NPats * ss.Config.InpDuration
	ss.Timer.Reset()
	ss.Timer.Start()
	for ep := 0; ep < ss.Config.Epochs; ep++ {
		if err := ctx.Err(); err != nil {
			ss.Timer.Stop()
			return nil, err
		}
		ss.Net.Run(nper)
	}
	ss.Timer.Stop()
	return ss.Result(), nil
}

// Result returns the summary of the run so far
func (ss *Sim) Result() *RunResult {
	rr := &RunResult{Run: ss.RunIdx, Seed: ss.Seed, Iterations: ss.Net.Time.Iteration}
	rr.Winners = make([][]int, len(ss.Winners.Results))
	for pi := range ss.Winners.Results {
		if wins := ss.Winners.PatWinners(pi); wins != nil {
			rr.Winners[pi] = append([]int(nil), wins...)
		}
	}
	rr.Distinct = ss.Winners.Distinct()
	rr.InAct = record.MeanActivity(ss.InLog.Table)
	rr.OutAct = record.MeanActivity(ss.OutLog.Table)
	rr.PatActs = make([]float64, ss.Config.NPats)
	if ss.OutLog.Table.Rows > 0 {
		pm := record.PatternMeans(ss.OutLog.Table)
		for ri := 0; ri < pm.Rows; ri++ {
			pi := int(pm.CellFloat("Pattern", ri))
			if pi >= 0 && pi < len(rr.PatActs) {
				rr.PatActs[pi] = pm.CellFloat("Activity", ri)
			}
		}
	}
	rr.Params = record.FormatParams(ss.ParamStrings(), 4)
	rr.Secs = ss.Timer.TotalSecs()
	return rr
}

// SaveLogs saves the run logs as tab-separated files in dir, named by the
// config name and run index.  Errors are logged and the remaining logs are still saved.
func (ss *Sim) SaveLogs(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	base := filepath.Join(dir, fmt.Sprintf("%s_run%d", ss.Config.Name, ss.RunIdx))
	var rerr error
	save := func(fn string, err error) {
		if err != nil {
			log.Println(fn, err)
			rerr = err
		}
	}
	save(base+"_inact.tsv", record.SaveCSV(ss.InLog.Table, base+"_inact.tsv"))
	save(base+"_outact.tsv", record.SaveCSV(ss.OutLog.Table, base+"_outact.tsv"))
	save(base+"_winners.tsv", record.SaveCSV(record.WinnerTable(ss.Winners), base+"_winners.tsv"))
	if ss.SpikeLog != nil {
		save(base+"_spikes.tsv", record.SaveCSV(ss.SpikeLog.Table, base+"_spikes.tsv"))
	}
	if ss.VmLog != nil {
		save(base+"_vm.tsv", record.SaveCSV(ss.VmLog.Table, base+"_vm.tsv"))
	}
	return rerr
}
