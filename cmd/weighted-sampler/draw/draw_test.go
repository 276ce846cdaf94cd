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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/sampler/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runDraw(t *testing.T, args *config.ArgsBuilder) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := cli.NewApp()
	app.Writer = &out
	app.Commands = []*cli.Command{&DrawCommand}
	err := app.Run(args.Build())
	return out.String(), err
}

func TestDrawCommand_Seeded(t *testing.T) {
	// given
	args := config.NewArgs("test").
		Arg(DrawCommand.Name).
		Flag(config.OutcomesFlag.Name, []string{"head", "tail", "edge"}).
		Flag(config.ProbabilitiesFlag.Name, "0.45,0.45,0.1").
		Flag(config.DrawsFlag.Name, 20_000).
		Flag(config.RandomSeedFlag.Name, int64(7)).
		Flag(config.AlphaFlag.Name, 1e-6)

	// when
	out, err := runDraw(t, args)

	// then
	require.NoError(t, err)
	assert.Contains(t, out, "head")
	assert.Contains(t, out, "edge")
	assert.Contains(t, out, "9,000")
	assert.Contains(t, out, "2,000")
	assert.Contains(t, out, "consistent")
}

func TestDrawCommand_Keyed(t *testing.T) {
	args := config.NewArgs("test").
		Arg(DrawCommand.Name).
		Flag(config.OutcomesFlag.Name, []string{"a", "b"}).
		Flag(config.ProbabilitiesFlag.Name, "0.25,0.75").
		Flag(config.DrawsFlag.Name, 10_000).
		Flag(config.KeyFlag.Name, "passphrase").
		Flag(config.AlphaFlag.Name, 1e-6)

	first, err := runDraw(t, args)
	require.NoError(t, err)
	second, err := runDraw(t, args)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "consistent")
}

func TestDrawCommand_SingleOutcome(t *testing.T) {
	args := config.NewArgs("test").
		Arg(DrawCommand.Name).
		Flag(config.OutcomesFlag.Name, []string{"only", "never"}).
		Flag(config.ProbabilitiesFlag.Name, "1,0").
		Flag(config.DrawsFlag.Name, 100)

	out, err := runDraw(t, args)
	require.NoError(t, err)
	assert.Contains(t, out, "only")
	assert.Contains(t, out, "consistent")
}

func TestDrawCommand_WritesChart(t *testing.T) {
	chart := filepath.Join(t.TempDir(), "chart.html")
	args := config.NewArgs("test").
		Arg(DrawCommand.Name).
		Flag(config.OutcomesFlag.Name, []string{"x", "y"}).
		Flag(config.ProbabilitiesFlag.Name, "0.5,0.5").
		Flag(config.DrawsFlag.Name, 1000).
		Flag(config.RandomSeedFlag.Name, int64(1)).
		Flag(config.ChartFlag.Name, chart)

	_, err := runDraw(t, args)
	require.NoError(t, err)

	content, err := os.ReadFile(chart)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<html")
}

func TestDrawCommand_InvalidDistribution(t *testing.T) {
	args := config.NewArgs("test").
		Arg(DrawCommand.Name).
		Flag(config.OutcomesFlag.Name, []string{"a", "b"}).
		Flag(config.ProbabilitiesFlag.Name, "0.5,0.4")

	_, err := runDraw(t, args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot create sampler")
	assert.Contains(t, err.Error(), "sum")
}

func TestDrawCommand_MissingDistribution(t *testing.T) {
	_, err := runDraw(t, config.NewArgs("test").Arg(DrawCommand.Name))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot create sampler")
}

func TestDrawCommand_InvalidConfig(t *testing.T) {
	args := config.NewArgs("test").
		Arg(DrawCommand.Name).
		Flag(config.OutcomesFlag.Name, []string{"a"}).
		Flag(config.ProbabilitiesFlag.Name, "1").
		Flag(config.DrawsFlag.Name, 0)

	_, err := runDraw(t, args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "number of draws")
}

func TestDrawCommand_UnwritableChart(t *testing.T) {
	args := config.NewArgs("test").
		Arg(DrawCommand.Name).
		Flag(config.OutcomesFlag.Name, []string{"a", "b"}).
		Flag(config.ProbabilitiesFlag.Name, "0.5,0.5").
		Flag(config.DrawsFlag.Name, 10).
		Flag(config.ChartFlag.Name, filepath.Join(t.TempDir(), "missing", "chart.html"))

	_, err := runDraw(t, args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot create chart file")
}
