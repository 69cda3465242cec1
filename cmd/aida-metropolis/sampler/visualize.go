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
	"github.com/0xsoniclabs/metropolis/stochastic/visualizer"
	"github.com/0xsoniclabs/metropolis/utils"
	"github.com/urfave/cli/v2"
)

// VisualizeCommand charts a chain.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "chart a Metropolis chain",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&utils.SigmaFlag,
		&utils.InitialValueFlag,
		&utils.ChainLengthFlag,
		&utils.RandomSeedFlag,
		&utils.RatioFlag,
		&utils.BurnInFlag,
		&utils.Sqlite3Flag,
		&utils.ChartFlag,
		&utils.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The visualize command charts the trace, the rejection counter and the
empirical CDF of a chain against the Laplace CDF. The chain is loaded
from --sqlite3 if given and sampled otherwise. With --chart the charts
are written into a static HTML file, else they are served on --port.`,
}

// visualizeAction loads or draws a chain and renders its charts.
func visualizeAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Metropolis Visualizer")

	chain, err := loadOrDrawChain(cfg, log)
	if err != nil {
		return err
	}

	if cfg.Chart != "" {
		if err := writeChart(cfg.Chart, chain, cfg.BurnIn); err != nil {
			return err
		}
		log.Noticef("Charts written to %v", cfg.Chart)
		return nil
	}

	log.Noticef("Open http://localhost:%v to view the chain", cfg.Port)
	return visualizer.FireUpWeb(chain, cfg.BurnIn, cfg.Port)
}

// loadOrDrawChain reads the chain table of the configured database, or
// samples a new chain if no database is given.
func loadOrDrawChain(cfg *config.Config, log logger.Logger) (*metropolis.Chain, error) {
	if cfg.Sqlite3 == "" {
		return drawChain(cfg, log)
	}
	log.Infof("Load chain from %v", cfg.Sqlite3)
	rows, err := utils.LoadChainRows(cfg.Sqlite3)
	if err != nil {
		return nil, err
	}
	chain, err := metropolis.NewChainFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("database %v holds no valid chain; %w", cfg.Sqlite3, err)
	}
	log.Infof("Loaded %v rows", chain.Len())
	return chain, nil
}

func writeChart(filename string, chain *metropolis.Chain, burnIn float64) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create chart file %v; %w", filename, err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	return visualizer.Render(file, chain, burnIn)
}
