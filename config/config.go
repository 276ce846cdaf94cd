// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"time"

	"github.com/0xsoniclabs/sampler/logger"
	"github.com/0xsoniclabs/sampler/statistics"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

var (
	OutcomesFlag = cli.StringSliceFlag{
		Name:    "outcomes",
		Aliases: []string{"o"},
		Usage:   "comma separated labels of the outcomes",
	}
	ProbabilitiesFlag = cli.Float64SliceFlag{
		Name:    "probabilities",
		Aliases: []string{"p"},
		Usage:   "comma separated probabilities of the outcomes, summing to one",
	}
	DrawsFlag = cli.IntFlag{
		Name:    "draws",
		Aliases: []string{"n"},
		Usage:   "number of outcomes to draw",
		Value:   100_000,
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "seed of the random source (default: time-based)",
	}
	KeyFlag = cli.StringFlag{
		Name:  "key",
		Usage: "passphrase of a deterministic keyed random source; takes precedence over --random-seed",
	}
	AlphaFlag = cli.Float64Flag{
		Name:  "alpha",
		Usage: "significance level of the chi-square goodness-of-fit test",
		Value: statistics.DefaultAlpha,
	}
	ChartFlag = cli.PathFlag{
		Name:  "chart",
		Usage: "write an HTML chart of the observed frequencies to the given path",
	}
)

// Config summarizes the command line parameters of a sampling run.
type Config struct {
	AppName     string
	CommandName string

	LogLevel      string    // level of the logging of the app action
	Outcomes      []string  // labels of the outcomes
	Probabilities []float64 // probabilities of the outcomes
	Draws         int       // number of draws
	RandomSeed    int64     // seed of the math/rand source
	Key           string    // passphrase of the keyed source, empty for seeded runs
	Alpha         float64   // significance level of the goodness-of-fit test
	Chart         string    // output path of the HTML chart, empty to skip
}

// NewConfig creates and validates the configuration of a command.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := createConfigFromFlags(ctx)
	if !ctx.IsSet(RandomSeedFlag.Name) {
		cfg.RandomSeed = time.Now().UnixNano()
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Draws <= 0 {
		return errors.Newf("number of draws (%d) must be positive", cfg.Draws)
	}
	if !(cfg.Alpha > 0.0 && cfg.Alpha < 1.0) {
		return errors.Newf("significance level (%v) is not in interval (0,1)", cfg.Alpha)
	}
	return nil
}

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:       ctx.App.HelpName,
		LogLevel:      getFlagValue(ctx, logger.LogLevelFlag).(string),
		Outcomes:      getFlagValue(ctx, OutcomesFlag).([]string),
		Probabilities: getFlagValue(ctx, ProbabilitiesFlag).([]float64),
		Draws:         getFlagValue(ctx, DrawsFlag).(int),
		RandomSeed:    getFlagValue(ctx, RandomSeedFlag).(int64),
		Key:           getFlagValue(ctx, KeyFlag).(string),
		Alpha:         getFlagValue(ctx, AlphaFlag).(float64),
		Chart:         getFlagValue(ctx, ChartFlag).(string),
	}
	if ctx.Command != nil {
		cfg.CommandName = ctx.Command.Name
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
		case cli.Int64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int64(f.Name)
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
		case cli.StringSliceFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.StringSlice(f.Name)
			}
		case cli.Float64SliceFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Float64Slice(f.Name)
			}
		}
	}

	// If flag not found, return the default value of the flag
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value
	case cli.Int64Flag:
		return f.Value
	case cli.Float64Flag:
		return f.Value
	case cli.StringFlag:
		return f.Value
	case cli.PathFlag:
		return f.Value
	case cli.StringSliceFlag:
		if f.Value == nil {
			return []string{}
		}
		return f.Value.Value()
	case cli.Float64SliceFlag:
		if f.Value == nil {
			return []float64{}
		}
		return f.Value.Value()
	}
	return nil
}
