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
	"io"

	"github.com/0xsoniclabs/sampler/statistics"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Row is one outcome of a frequency report.
type Row struct {
	Label       string
	Probability float64
	Expected    float64
	Observed    float64
}

// Rows zips the columns of a frequency report. All slices must be parallel.
func Rows(labels []string, probabilities, expected, observed []float64) []Row {
	rows := make([]Row, len(labels))
	for i, label := range labels {
		rows[i] = Row{
			Label:       label,
			Probability: probabilities[i],
			Expected:    expected[i],
			Observed:    observed[i],
		}
	}
	return rows
}

// WriteTable prints the observed and expected frequencies together with the
// verdict of a goodness-of-fit test.
func WriteTable(w io.Writer, rows []Row, result statistics.ChiSquareResult) {
	p := message.NewPrinter(language.English)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Outcome", "Probability", "Expected", "Observed", "Deviation"})
	for _, r := range rows {
		t.AppendRow(table.Row{
			r.Label,
			r.Probability,
			p.Sprintf("%.0f", r.Expected),
			p.Sprintf("%.0f", r.Observed),
			p.Sprintf("%+.0f", r.Observed-r.Expected),
		})
	}
	verdict := "consistent"
	if result.RejectNull {
		verdict = "rejected"
	}
	t.AppendFooter(table.Row{
		"chi2", p.Sprintf("%.4f", result.Statistic),
		"df", result.DegreesOfFreedom,
		p.Sprintf("p=%.4g %s", result.PValue, verdict),
	})
	t.Render()
}
