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

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/0xsoniclabs/sampler/statistics"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRows() []Row {
	return Rows(
		[]string{"head", "tail"},
		[]float64{0.5, 0.5},
		[]float64{50000, 50000},
		[]float64{50123, 49877},
	)
}

func TestReport_Rows(t *testing.T) {
	rows := testRows()
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Label: "tail", Probability: 0.5, Expected: 50000, Observed: 49877}, rows[1])
}

func TestReport_WriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, testRows(), statistics.ChiSquareResult{
		Statistic:        1.21,
		DegreesOfFreedom: 1,
		PValue:           0.27,
		RejectNull:       false,
	})

	out := strings.ToLower(buf.String())
	assert.Contains(t, out, "head")
	assert.Contains(t, out, "tail")
	assert.Contains(t, out, "50,123")
	assert.Contains(t, out, "-123")
	assert.Contains(t, out, "consistent")
}

func TestReport_WriteTableRejected(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, testRows(), statistics.ChiSquareResult{Statistic: 99, DegreesOfFreedom: 1, PValue: 1e-9, RejectNull: true})
	assert.Contains(t, strings.ToLower(buf.String()), "rejected")
}

func TestReport_ConvertFrequencies(t *testing.T) {
	result := convertFrequencies(testRows(), func(r Row) float64 { return r.Observed })
	assert.Len(t, result, 2)
	assert.Equal(t, opts.BarData{Value: 50123.0}, result[0])
	assert.Equal(t, opts.BarData{Value: 49877.0}, result[1])
}

func TestReport_NewFrequencyChart(t *testing.T) {
	chart := NewFrequencyChart("Frequencies", testRows())
	assert.NotNil(t, chart)
}

func TestReport_WriteChart(t *testing.T) {
	var buf bytes.Buffer
	err := WriteChart(&buf, "Frequencies", testRows())
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "Observed")
	assert.Contains(t, out, "Expected")
}
