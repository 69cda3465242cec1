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

package sampler

import (
	"errors"
	"fmt"
	"os"

	"github.com/0xsoniclabs/metropolis/config"
	"github.com/0xsoniclabs/metropolis/logger"
	"github.com/0xsoniclabs/metropolis/stochastic/metropolis"
	"github.com/0xsoniclabs/metropolis/stochastic/rng"
	"github.com/0xsoniclabs/metropolis/utils"
	"github.com/urfave/cli/v2"
)

// SampleCommand draws a chain and exports it.
var SampleCommand = cli.Command{
	Action:    sampleAction,
	Name:      "sample",
	Usage:     "draw a Metropolis chain targeting the standard Laplace distribution",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&utils.SigmaFlag,
		&utils.InitialValueFlag,
		&utils.ChainLengthFlag,
		&utils.RandomSeedFlag,
		&utils.RatioFlag,
		&utils.BurnInFlag,
		&utils.OutputFlag,
		&utils.Sqlite3Flag,
		&utils.QuietFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The sample command runs a random-walk Metropolis sampler with a Normal
proposal and prints a summary of the chain. The rows of the chain are
written as CSV to --output and into the chain table of --sqlite3.`,
}

// sampleAction draws a chain and runs the configured printers.
func sampleAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Metropolis")

	chain, err := drawChain(cfg, log)
	if err != nil {
		return err
	}
	summary, err := chain.Summarize(cfg.BurnIn)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		// the file printer appends
		if err := os.Remove(cfg.Output); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("cannot replace output file %v; %w", cfg.Output, err)
		}
	}
	printers, err := newChainPrinters(cfg, chain, summary)
	if err != nil {
		return err
	}
	defer printers.Close()

	if err := printers.Print(); err != nil {
		return err
	}
	if cfg.Output != "" {
		log.Noticef("Chain written to %v", cfg.Output)
	}
	if cfg.Sqlite3 != "" {
		log.Noticef("Chain written to %v", cfg.Sqlite3)
	}
	return nil
}

// drawChain runs the sampler with the configured parameters and seed.
func drawChain(cfg *config.Config, log logger.Logger) (*metropolis.Chain, error) {
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	log.Infof("Random seed %v", cfg.Seed())
	s, err := metropolis.NewSampler(rng.New(cfg.Seed()), params, log)
	if err != nil {
		return nil, err
	}
	return s.Run()
}

// newChainPrinters registers the console summary and the chain exports.
func newChainPrinters(cfg *config.Config, chain *metropolis.Chain, summary metropolis.Summary) (*utils.Printers, error) {
	rows := chain.Rows()
	printers := utils.NewPrinters().
		AddPrinterToConsole(cfg.Quiet, summary.String).
		AddPrinterToFile(cfg.Output, func() string { return utils.ChainCSV(rows) })

	_, err := printers.AddPrinterToSqlite3(cfg.Sqlite3, utils.ChainTableCreate, utils.ChainTableInsert,
		func() [][]any { return utils.ChainRecords(rows) })
	if err != nil {
		printers.Close()
		return nil, err
	}
	return printers, nil
}
