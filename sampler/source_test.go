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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_SeededIsDeterministic(t *testing.T) {
	a := NewSeededSource(999)
	b := NewSeededSource(999)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestSource_KeyedIsDeterministic(t *testing.T) {
	// more draws than one keystream block holds
	n := 3 * keyedBlockSize / 8
	a := NewKeyedSource(KeyFromPassphrase("sampler"))
	b := NewKeyedSource(KeyFromPassphrase("sampler"))
	for i := 0; i < n; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestSource_KeyedDiffersPerKey(t *testing.T) {
	a := NewKeyedSource(KeyFromPassphrase("alpha"))
	b := NewKeyedSource(KeyFromPassphrase("beta"))
	same := 0
	for i := 0; i < 100; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	assert.Less(t, same, 100)
}

func TestSource_KeyedBlocksDiffer(t *testing.T) {
	src := NewKeyedSource(KeyFromPassphrase("blocks"))
	first := make([]float64, keyedBlockSize/8)
	for i := range first {
		first[i] = src.Float64()
	}
	second := make([]float64, keyedBlockSize/8)
	for i := range second {
		second[i] = src.Float64()
	}
	assert.NotEqual(t, first, second)
}

func TestSource_KeyedIsUniform(t *testing.T) {
	src := NewKeyedSource(KeyFromPassphrase("uniform"))
	n := 100_000
	sum := 0.0
	for i := 0; i < n; i++ {
		x := src.Float64()
		if x < 0 || x >= 1 {
			t.Fatalf("value out of range [0,1): %v", x)
		}
		sum += x
	}
	assert.InDelta(t, 0.5, sum/float64(n), 0.01)
}

func TestSource_KeyFromPassphrase(t *testing.T) {
	assert.Equal(t, KeyFromPassphrase("x"), KeyFromPassphrase("x"))
	assert.NotEqual(t, KeyFromPassphrase("x"), KeyFromPassphrase("y"))
}
