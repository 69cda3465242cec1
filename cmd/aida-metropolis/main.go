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

package main

import (
	"fmt"
	"os"

	"github.com/0xsoniclabs/metropolis/cmd/aida-metropolis/sampler"
	"github.com/urfave/cli/v2"
)

// MetropolisApp data structure
var MetropolisApp = cli.App{
	Name:      "Aida Metropolis Sampler",
	HelpName:  "aida-metropolis",
	Usage:     "draw random-walk Metropolis chains from the standard Laplace distribution",
	Copyright: "(c) 2025 Sonic Labs",
	Commands: []*cli.Command{
		&sampler.SampleCommand,
		&sampler.VisualizeCommand,
	},
}

func main() {
	if err := MetropolisApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
