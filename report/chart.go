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

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// convertFrequencies converts a column of a report to chart items.
func convertFrequencies(rows []Row, value func(Row) float64) []opts.BarData {
	items := []opts.BarData{}
	for _, r := range rows {
		items = append(items, opts.BarData{Value: value(r)})
	}
	return items
}

// NewFrequencyChart creates a bar chart comparing observed and expected frequencies.
func NewFrequencyChart(title string, rows []Row) *charts.Bar {
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r.Label
	}

	chart := charts.NewBar()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}))
	chart.SetXAxis(labels).
		AddSeries("Observed", convertFrequencies(rows, func(r Row) float64 { return r.Observed })).
		AddSeries("Expected", convertFrequencies(rows, func(r Row) float64 { return r.Expected }))
	return chart
}

// WriteChart renders the frequency chart as HTML page.
func WriteChart(w io.Writer, title string, rows []Row) error {
	return NewFrequencyChart(title, rows).Render(w)
}
