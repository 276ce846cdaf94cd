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

package statistics

import (
	"slices"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultAlpha is the significance level used when none is configured.
const DefaultAlpha = 0.05

// ChiSquareResult is the outcome of a chi-square goodness-of-fit test.
type ChiSquareResult struct {
	Statistic        float64 // sum of (o-e)^2/e over all categories
	DegreesOfFreedom int     // number of categories minus one
	PValue           float64 // probability of a statistic at least as extreme
	RejectNull       bool    // PValue < alpha
}

// ChiSquareTest checks whether the observed frequencies are consistent with
// the expected ones at significance level alpha. Both tables must have the
// same number (at least two) of categories and every expected count must
// be positive.
func ChiSquareTest(observed, expected []float64, alpha float64) (ChiSquareResult, error) {
	if len(observed) != len(expected) {
		return ChiSquareResult{}, errors.Newf("observed (%d) and expected (%d) frequencies differ in length", len(observed), len(expected))
	}
	if len(observed) < 2 {
		return ChiSquareResult{}, errors.Newf("at least two categories required, got %d", len(observed))
	}
	if !(alpha > 0.0 && alpha < 1.0) {
		return ChiSquareResult{}, errors.Newf("significance level (%v) is not in interval (0,1)", alpha)
	}

	chi2 := 0.0
	for i, o := range observed {
		e := expected[i]
		if !(e > 0.0) {
			return ChiSquareResult{}, errors.Newf("expected frequency (%v) of category %d is not positive", e, i)
		}
		err := o - e
		chi2 += (err * err) / e
	}

	df := len(observed) - 1
	pValue := 1.0 - distuv.ChiSquared{K: float64(df), Src: nil}.CDF(chi2)
	return ChiSquareResult{
		Statistic:        chi2,
		DegreesOfFreedom: df,
		PValue:           pValue,
		RejectNull:       pValue < alpha,
	}, nil
}

// ExpectedCounts scales a probability mass function to a number of draws.
func ExpectedCounts(probabilities []float64, draws int) []float64 {
	expected := make([]float64, len(probabilities))
	for i, p := range probabilities {
		expected[i] = p * float64(draws)
	}
	return expected
}

// Frequencies counts how often each outcome occurs in draws, in the order
// of outcomes. Draws that are not among the outcomes are reported as error.
func Frequencies[T comparable](draws []T, outcomes []T) ([]float64, error) {
	counts := make(map[T]int, len(outcomes))
	for _, d := range draws {
		counts[d]++
	}
	freq := make([]float64, len(outcomes))
	for i, o := range outcomes {
		freq[i] = float64(counts[o])
		delete(counts, o)
	}
	if len(counts) > 0 {
		unknown := maps.Keys(counts)
		slices.SortFunc(unknown, func(a, b T) int { return counts[b] - counts[a] })
		return nil, errors.Newf("draws contain %d unknown outcomes, e.g. %v", len(unknown), unknown[0])
	}
	return freq, nil
}
