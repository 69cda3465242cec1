// Copyright 2025 Sonic Labs
// This file is part of Metropolis, a sampling tool of the Aida Testing Infrastructure for Sonic
//
// Metropolis is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Metropolis is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Metropolis. If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"fmt"

	"github.com/0xsoniclabs/metropolis/stochastic/metropolis"
	"github.com/0xsoniclabs/metropolis/stochastic/rng"
	"github.com/urfave/cli/v2"
)

// Config summarizes the flags of a metropolis command.
type Config struct {
	AppName     string
	CommandName string

	Sigma        float64 // proposal standard deviation
	InitialValue float64 // seed value of the chain
	ChainLength  int     // number of rows
	RandomSeed   uint64  // 0 selects a clock based seed
	Ratio        string  // acceptance ratio form
	BurnIn       float64 // fraction of rows excluded from the summary

	Output   string // CSV output file
	Sqlite3  string // sqlite3 database of the chain
	Chart    string // static HTML chart file
	Port     string // visualizer port
	Quiet    bool   // no console summary
	LogLevel string
}

// NewConfig creates the configuration of the command run by ctx and validates it.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := createConfigFromFlags(ctx)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if _, err := cfg.Params(); err != nil {
		return err
	}
	if !(cfg.BurnIn >= 0 && cfg.BurnIn < 1) {
		return fmt.Errorf("burn-in must be a fraction in [0,1), got %v", cfg.BurnIn)
	}
	return nil
}

// Params returns the validated sampler parameters.
func (cfg *Config) Params() (metropolis.Params, error) {
	ratio, err := metropolis.ParseRatioForm(cfg.Ratio)
	if err != nil {
		return metropolis.Params{}, err
	}
	p := metropolis.Params{
		Sigma: cfg.Sigma,
		X0:    cfg.InitialValue,
		N:     cfg.ChainLength,
		Ratio: ratio,
	}
	if err := p.Validate(); err != nil {
		return metropolis.Params{}, err
	}
	return p, nil
}

// Seed returns the configured seed, or a clock based one if none was given.
// The chosen seed is stored so that later calls and log messages agree.
func (cfg *Config) Seed() uint64 {
	if cfg.RandomSeed == 0 {
		cfg.RandomSeed = rng.TimeSeed()
	}
	return cfg.RandomSeed
}
