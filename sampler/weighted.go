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

package sampler

import (
	"math"
	"sort"
	"sync"

	"github.com/0xsoniclabs/sampler/logger"
	"github.com/cockroachdb/errors"
)

const (
	// SumTolerance is the relative tolerance accepted between the sum of
	// all probabilities and one, i.e. |sum-1| <= SumTolerance * max(|sum|, 1).
	SumTolerance = 1e-9

	// PrecisionThreshold is the number of significant decimal digits from
	// which draws are no longer cached. At this resolution draws are
	// effectively continuous and the cache would never stop growing.
	PrecisionThreshold = 10
)

// Strategy is the algorithm used to map a uniform draw to an outcome.
type Strategy int

const (
	// DirectSearch binary-searches the cumulative table for every draw.
	DirectSearch Strategy = iota
	// CachedSearch quantizes the draw and memoizes the search result.
	CachedSearch
)

func (s Strategy) String() string {
	switch s {
	case DirectSearch:
		return "direct-search"
	case CachedSearch:
		return "cached-search"
	default:
		return "unknown"
	}
}

// Weighted draws outcomes according to a fixed discrete probability
// distribution. The distribution is validated and turned into a
// cumulative table once; afterwards every call of Next consumes exactly
// one value of the random source.
//
// Distributions with less than PrecisionThreshold significant decimal
// digits use CachedSearch: a draw r is snapped upwards onto the grid
// 10^-(precision+1) and the outcome of each grid cell is searched only once,
// in a copy of the cumulative table expressed in grid units. Since every
// bucket boundary is a multiple of 10^-precision, a cell never straddles a
// boundary and the snapping does not bias the distribution.
//
// Weighted is safe for concurrent use.
type Weighted[T comparable] struct {
	outcomes      []T
	probabilities []float64
	cumulative    []float64
	last          int // last outcome with positive probability
	precision     int
	strategy      Strategy

	scale float64       // 10^(precision+1), inverse width of a cache cell
	cells []int64       // cumulative table in cells
	cache map[int64]int // cell -> outcome index, never evicted
	mu    sync.Mutex    // guards src and cache
	src   Source
}

// New returns a sampler for the given outcomes and probabilities using a
// clock seeded random source.
func New[T comparable](outcomes []T, probabilities []float64) (*Weighted[T], error) {
	return NewWithSource(outcomes, probabilities, newAmbientSource())
}

// NewWithSource returns a sampler drawing its uniform values from src.
func NewWithSource[T comparable](outcomes []T, probabilities []float64, src Source) (*Weighted[T], error) {
	return NewWithLogger(outcomes, probabilities, src, logger.NewLogger("INFO", "Weighted-Sampler"))
}

// NewWithLogger returns a sampler drawing from src and reporting its
// construction decisions to log.
// It fails with ErrEmptyInput, ErrLengthMismatch, ErrInvalidValue,
// ErrProbabilityRange or ErrProbabilitySum, checked in this order.
func NewWithLogger[T comparable](outcomes []T, probabilities []float64, src Source, log logger.Logger) (*Weighted[T], error) {
	if err := validate(outcomes, probabilities); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("random source must not be nil")
	}

	n := len(probabilities)
	w := &Weighted[T]{
		outcomes:      make([]T, n),
		probabilities: make([]float64, n),
		cumulative:    make([]float64, n),
		src:           src,
	}
	copy(w.outcomes, outcomes)
	copy(w.probabilities, probabilities)

	total := 0.0
	for i, p := range w.probabilities {
		total += p
		w.cumulative[i] = total
		if p > 0 {
			w.last = i
		}
		w.precision = max(w.precision, DecimalPlaces(p))
	}
	if math.Abs(total-1.0) > SumTolerance*math.Max(math.Abs(total), 1.0) {
		return nil, errors.Wrapf(ErrProbabilitySum, "got %v", total)
	}

	if w.precision >= PrecisionThreshold {
		w.strategy = DirectSearch
	} else {
		w.strategy = CachedSearch
		w.scale = math.Pow10(w.precision + 1)
		w.cells = make([]int64, n)
		for i, c := range w.cumulative {
			w.cells[i] = int64(math.Round(c * w.scale))
		}
		w.cache = make(map[int64]int)
	}
	log.Debugf("%d outcomes with precision %d, using %v", n, w.precision, w.strategy)
	return w, nil
}

// validate checks the raw input of a sampler.
func validate[T comparable](outcomes []T, probabilities []float64) error {
	if len(outcomes) == 0 || len(probabilities) == 0 {
		return ErrEmptyInput
	}
	if len(outcomes) != len(probabilities) {
		return errors.Wrapf(ErrLengthMismatch, "%d outcomes, %d probabilities", len(outcomes), len(probabilities))
	}
	for i, o := range outcomes {
		// a label that is not equal to itself (NaN) can never be matched
		if o != o {
			return errors.Wrapf(ErrInvalidValue, "outcome %d (%v)", i, o)
		}
	}
	for i, p := range probabilities {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return errors.Wrapf(ErrInvalidValue, "probability %d (%v)", i, p)
		}
	}
	for i, p := range probabilities {
		if p < 0.0 || p > 1.0 {
			return errors.Wrapf(ErrProbabilityRange, "probability %d (%v)", i, p)
		}
	}
	return nil
}

// Next returns one of the outcomes. Over many calls outcomes are returned
// with their configured probabilities.
func (w *Weighted[T]) Next() T {
	w.mu.Lock()
	defer w.mu.Unlock()

	r := w.src.Float64()
	switch w.strategy {
	case CachedSearch:
		return w.outcomes[w.lookup(r)]
	default:
		return w.outcomes[w.search(r)]
	}
}

// search returns the leftmost index whose cumulative probability is
// positive and at least u. If rounding left the table short of u, the last
// outcome with positive probability is returned.
func (w *Weighted[T]) search(u float64) int {
	i := sort.Search(len(w.cumulative), func(i int) bool {
		return w.cumulative[i] > 0 && w.cumulative[i] >= u
	})
	if i == len(w.cumulative) {
		return w.last
	}
	return i
}

// quantize maps r to the fixed-point key of its cache cell.
func (w *Weighted[T]) quantize(r float64) int64 {
	return int64(math.Ceil(r * w.scale))
}

// searchCell is search on the quantized table; key is a cell of quantize.
func (w *Weighted[T]) searchCell(key int64) int {
	i := sort.Search(len(w.cells), func(i int) bool {
		return w.cells[i] > 0 && w.cells[i] >= key
	})
	if i == len(w.cells) {
		return w.last
	}
	return i
}

// lookup resolves r through the cache. Misses search with the quantized
// value, not with r, so every draw of a cell resolves to the same outcome.
func (w *Weighted[T]) lookup(r float64) int {
	key := w.quantize(r)
	if i, found := w.cache[key]; found {
		return i
	}
	i := w.searchCell(key)
	w.cache[key] = i
	return i
}

// Len returns the number of outcomes.
func (w *Weighted[T]) Len() int {
	return len(w.outcomes)
}

// Outcomes returns a copy of the outcomes.
func (w *Weighted[T]) Outcomes() []T {
	res := make([]T, len(w.outcomes))
	copy(res, w.outcomes)
	return res
}

// Probabilities returns a copy of the probabilities.
func (w *Weighted[T]) Probabilities() []float64 {
	res := make([]float64, len(w.probabilities))
	copy(res, w.probabilities)
	return res
}

// Cumulative returns a copy of the cumulative distribution table.
func (w *Weighted[T]) Cumulative() []float64 {
	res := make([]float64, len(w.cumulative))
	copy(res, w.cumulative)
	return res
}

// Precision returns the maximal number of significant decimal digits
// of the probabilities.
func (w *Weighted[T]) Precision() int {
	return w.precision
}

// Strategy returns the sampling strategy chosen at construction.
func (w *Weighted[T]) Strategy() Strategy {
	return w.strategy
}

// CacheSize returns the number of cached cells.
func (w *Weighted[T]) CacheSize() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.cache)
}
