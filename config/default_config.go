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
	"github.com/0xsoniclabs/metropolis/logger"
	"github.com/0xsoniclabs/metropolis/utils"
	"github.com/urfave/cli/v2"
)

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		BurnIn:       getFlagValue(ctx, utils.BurnInFlag).(float64),
		Chart:        getFlagValue(ctx, utils.ChartFlag).(string),
		ChainLength:  getFlagValue(ctx, utils.ChainLengthFlag).(int),
		InitialValue: getFlagValue(ctx, utils.InitialValueFlag).(float64),
		LogLevel:     getFlagValue(ctx, logger.LogLevelFlag).(string),
		Output:       getFlagValue(ctx, utils.OutputFlag).(string),
		Port:         getFlagValue(ctx, utils.PortFlag).(string),
		Quiet:        getFlagValue(ctx, utils.QuietFlag).(bool),
		RandomSeed:   getFlagValue(ctx, utils.RandomSeedFlag).(uint64),
		Ratio:        getFlagValue(ctx, utils.RatioFlag).(string),
		Sigma:        getFlagValue(ctx, utils.SigmaFlag).(float64),
		Sqlite3:      getFlagValue(ctx, utils.Sqlite3Flag).(string),
	}

	return cfg
}

// getFlagValue returns value specified by user if flag is present in cli context, otherwise return default flag value
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	var cmdFlags []cli.Flag
	if ctx.Command != nil {
		cmdFlags = ctx.Command.Flags
	}
	for _, cmdFlag := range cmdFlags {
		switch f := flag.(type) {
		case cli.IntFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int(f.Name)
			}

		case cli.Uint64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Uint64(f.Name)
			}

		case cli.Float64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Float64(f.Name)
			}

		case cli.StringFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.String(f.Name)
			}

		case cli.PathFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Path(f.Name)
			}

		case cli.BoolFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Bool(f.Name)
			}
		}
	}

	// If flag not found, return the default value of the flag
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value
	case cli.Uint64Flag:
		return f.Value
	case cli.Float64Flag:
		return f.Value
	case cli.StringFlag:
		return f.Value
	case cli.PathFlag:
		return f.Value
	case cli.BoolFlag:
		return f.Value
	}

	return nil
}
