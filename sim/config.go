// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"os"

	"github.com/emer/spikewta/patgen"
	"gopkg.in/yaml.v3"
)

// Config has the run configuration for a winner-take-all simulation.
// Loaded from YAML on top of the defaults, with command-line flags applied last.
type Config struct {
	Name         string  `yaml:"name" def:"wta" desc:"name of the simulation, used for output files and stored runs"`
	InputSize    int     `yaml:"input_size" def:"100" desc:"number of input neurons"`
	OutputSize   int     `yaml:"output_size" def:"5" desc:"number of output (competing) neurons"`
	NPats        int     `yaml:"npats" def:"5" desc:"number of input patterns"`
	Overlap      float64 `yaml:"overlap" def:"0" desc:"fraction of overlap between adjacent patterns, in [0, 1)"`
	Mean         float32 `yaml:"mean" def:"100" desc:"mean value scale of the active pattern neurons"`
	Frac         float32 `yaml:"frac" def:"0.5" desc:"fraction of active input neurons, recorded with the patterns"`
	Gain         float32 `yaml:"gain" def:"0.05" desc:"multiplier on pattern values to get the external input current"`
	InpDuration  int     `yaml:"inp_duration" def:"50" desc:"number of iterations each pattern is presented for"`
	Epochs       int     `yaml:"epochs" def:"10" desc:"number of passes through all the patterns per run"`
	Delay        int     `yaml:"delay" def:"0" desc:"synaptic delay of the input to output pathway, in iterations beyond the minimum of one: 0 delivers the spikes of the previous iteration"`
	LatCoef      float32 `yaml:"lat_coef" def:"2" desc:"scaling of the lateral (competitive) input among output neurons -- a param set may override"`
	WtMin        float32 `yaml:"wt_min" def:"0" desc:"minimum initial input to output weight"`
	WtMax        float32 `yaml:"wt_max" def:"1" desc:"maximum initial input to output weight"`
	Seed         int64   `yaml:"seed" def:"1" desc:"random seed of the first run -- run i uses Seed + i"`
	PrintDetails bool    `yaml:"print_details" def:"true" desc:"print the winners and spike counts each time a presentation window closes"`
	ParamSet     string  `yaml:"param_set" desc:"name of additional param set to apply on top of Base"`
	Runs         int     `yaml:"runs" def:"1" desc:"number of independent runs, each with its own seed"`
	Threads      int     `yaml:"threads" def:"4" desc:"maximum number of runs to compute in parallel"`
	OutDir       string  `yaml:"out_dir" desc:"if set, directory to save run logs to as tab-separated files"`
	DB           string  `yaml:"db" desc:"if set, SQLite database file to save run results to"`
	LogSpikes    bool    `yaml:"log_spikes" desc:"record output spike events for raster displays -- can be large"`
	LogVm        bool    `yaml:"log_vm" desc:"record the output membrane potential of every neuron each iteration, for voltage traces -- can be large"`
}

// DefaultConfig returns a new config with default values
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

func (cfg *Config) Defaults() {
	cfg.Name = "wta"
	cfg.InputSize = 100
	cfg.OutputSize = 5
	cfg.NPats = 5
	cfg.Overlap = 0
	cfg.Mean = 100
	cfg.Frac = 0.5
	cfg.Gain = 0.05
	cfg.InpDuration = 50
	cfg.Epochs = 10
	cfg.Delay = 0
	cfg.LatCoef = 2
	cfg.WtMin = 0
	cfg.WtMax = 1
	cfg.Seed = 1
	cfg.PrintDetails = true
	cfg.Runs = 1
	cfg.Threads = 4
}

// LoadConfig returns the default config overlaid with the YAML file at path
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save saves the config as YAML to given file
func (cfg *Config) Save(path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GenConfig returns the pattern generation config
func (cfg *Config) GenConfig() *patgen.GenConfig {
	return &patgen.GenConfig{Size: cfg.InputSize, Frac: cfg.Frac, Mean: cfg.Mean, NPats: cfg.NPats, Overlap: cfg.Overlap}
}

// NIters returns the number of iterations in one run
func (cfg *Config) NIters() int {
	return cfg.Epochs * cfg.NPats * cfg.InpDuration
}

// Validate returns an error if the config cannot drive a run
func (cfg *Config) Validate() error {
	switch {
	case cfg.Name == "":
		return fmt.Errorf("name must be set")
	case cfg.OutputSize < 1:
		return fmt.Errorf("output_size must be positive, is: %d", cfg.OutputSize)
	case cfg.InpDuration < 1:
		return fmt.Errorf("inp_duration must be positive, is: %d", cfg.InpDuration)
	case cfg.Epochs < 1:
		return fmt.Errorf("epochs must be positive, is: %d", cfg.Epochs)
	case cfg.Delay < 0:
		return fmt.Errorf("delay must be >= 0, is: %d", cfg.Delay)
	case cfg.WtMax < cfg.WtMin:
		return fmt.Errorf("wt_max %g < wt_min %g", cfg.WtMax, cfg.WtMin)
	case cfg.Runs < 1:
		return fmt.Errorf("runs must be positive, is: %d", cfg.Runs)
	case cfg.Threads < 1:
		return fmt.Errorf("threads must be positive, is: %d", cfg.Threads)
	}
	return cfg.GenConfig().Validate()
}
