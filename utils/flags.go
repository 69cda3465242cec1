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

package utils

import (
	"github.com/0xsoniclabs/metropolis/stochastic/metropolis"
	"github.com/urfave/cli/v2"
)

var (
	SigmaFlag = cli.Float64Flag{
		Name:  "sigma",
		Usage: "standard deviation of the Normal proposal distribution",
		Value: metropolis.DefaultSigma,
	}
	InitialValueFlag = cli.Float64Flag{
		Name:  "x0",
		Usage: "initial value of the chain",
		Value: metropolis.DefaultInitialValue,
	}
	ChainLengthFlag = cli.IntFlag{
		Name:    "chain-length",
		Aliases: []string{"n"},
		Usage:   "number of rows of the chain including the initial value",
		Value:   metropolis.DefaultChainLength,
	}
	RandomSeedFlag = cli.Uint64Flag{
		Name:  "random-seed",
		Usage: "seed of the random number generator; 0 derives a seed from the clock",
		Value: 0,
	}
	BurnInFlag = cli.Float64Flag{
		Name:  "burn-in",
		Usage: "fraction of leading rows excluded from the summary",
		Value: 0.1,
	}
	RatioFlag = cli.StringFlag{
		Name:  "ratio",
		Usage: "evaluation of the acceptance ratio (\"naive\" or \"log\")",
		Value: metropolis.NaiveRatio.String(),
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "CSV file receiving the chain; a \".gz\" suffix compresses it",
	}
	Sqlite3Flag = cli.PathFlag{
		Name:  "sqlite3",
		Usage: "sqlite3 database holding the chain table",
	}
	ChartFlag = cli.PathFlag{
		Name:  "chart",
		Usage: "write the chain charts into a static HTML file instead of serving them",
	}
	PortFlag = cli.StringFlag{
		Name:  "port",
		Usage: "port of the visualizer web server",
		Value: "8080",
	}
	QuietFlag = cli.BoolFlag{
		Name:  "quiet",
		Usage: "do not print the chain summary to the console",
	}
)
