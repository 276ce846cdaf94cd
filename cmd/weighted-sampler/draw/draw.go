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

package draw

import (
	"fmt"
	"os"
	"time"

	"github.com/0xsoniclabs/sampler/config"
	"github.com/0xsoniclabs/sampler/logger"
	"github.com/0xsoniclabs/sampler/report"
	"github.com/0xsoniclabs/sampler/sampler"
	"github.com/0xsoniclabs/sampler/statistics"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// DrawCommand samples a distribution and checks the observed frequencies.
var DrawCommand = cli.Command{
	Action:    drawAction,
	Name:      "draw",
	Usage:     "draw outcomes and test them against the distribution",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&config.OutcomesFlag,
		&config.ProbabilitiesFlag,
		&config.DrawsFlag,
		&config.RandomSeedFlag,
		&config.KeyFlag,
		&config.AlphaFlag,
		&config.ChartFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The draw command builds a weighted sampler from the given outcomes and
probabilities, draws the requested number of outcomes and prints a
frequency table together with a chi-square goodness-of-fit test.`,
}

func drawAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Draw")

	src := newSource(cfg, log)
	w, err := sampler.NewWithLogger(cfg.Outcomes, cfg.Probabilities, src, log)
	if err != nil {
		return errors.Wrap(err, "cannot create sampler")
	}
	log.Noticef("Sampler uses %v with precision %d", w.Strategy(), w.Precision())

	start := time.Now()
	draws := make([]string, cfg.Draws)
	for i := range draws {
		draws[i] = w.Next()
	}
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("Drew %d outcomes in %vh %vm %vs; %d cached keys", cfg.Draws, hours, minutes, seconds, w.CacheSize())

	observed, err := statistics.Frequencies(draws, w.Outcomes())
	if err != nil {
		return err
	}
	expected := statistics.ExpectedCounts(w.Probabilities(), cfg.Draws)
	// a single possible outcome is trivially consistent
	result := statistics.ChiSquareResult{PValue: 1}
	if obs, exp := positiveBuckets(observed, expected); len(exp) > 1 {
		result, err = statistics.ChiSquareTest(obs, exp, cfg.Alpha)
		if err != nil {
			return errors.Wrap(err, "cannot test goodness of fit")
		}
	}

	rows := report.Rows(w.Outcomes(), w.Probabilities(), expected, observed)
	report.WriteTable(ctx.App.Writer, rows, result)

	if cfg.Chart != "" {
		if err := writeChart(cfg, rows); err != nil {
			return err
		}
		log.Infof("Chart written to %v", cfg.Chart)
	}
	if result.RejectNull {
		log.Warningf("Observed frequencies deviate from the distribution (p=%.4g)", result.PValue)
	}
	return nil
}

// newSource returns a keyed source if a passphrase is configured, a seeded source otherwise.
func newSource(cfg *config.Config, log logger.Logger) sampler.Source {
	if cfg.Key != "" {
		log.Info("Using keyed random source")
		return sampler.NewKeyedSource(sampler.KeyFromPassphrase(cfg.Key))
	}
	log.Infof("Using random seed %d", cfg.RandomSeed)
	return sampler.NewSeededSource(cfg.RandomSeed)
}

// positiveBuckets drops outcomes with zero expectation.
func positiveBuckets(observed, expected []float64) ([]float64, []float64) {
	var obs, exp []float64
	for i := range expected {
		if expected[i] > 0 {
			obs = append(obs, observed[i])
			exp = append(exp, expected[i])
		}
	}
	return obs, exp
}

func writeChart(cfg *config.Config, rows []report.Row) error {
	f, err := os.Create(cfg.Chart)
	if err != nil {
		return fmt.Errorf("cannot create chart file; %w", err)
	}
	title := fmt.Sprintf("%d draws of %d outcomes", cfg.Draws, len(rows))
	if err := report.WriteChart(f, title, rows); err != nil {
		return errors.CombineErrors(err, f.Close())
	}
	return f.Close()
}
