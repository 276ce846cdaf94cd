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
	"strconv"
	"strings"
)

// DecimalPlaces returns the number of significant fractional decimal digits
// of x, i.e. the digits after the decimal point in the shortest decimal
// representation of x with trailing zeros removed. Integral values, NaN and
// infinities have no fractional digits.
//
//	1.234 -> 3, 1.2000 -> 1, 1.0 -> 0, 1e-5 -> 5, 1e5 -> 0
func DecimalPlaces(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) || x == math.Trunc(x) {
		return 0
	}
	// shortest round-trip form d.dddde±XX
	s := strconv.FormatFloat(math.Abs(x), 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "e")
	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return 0
	}
	digits := 0
	if _, frac, ok := strings.Cut(mantissa, "."); ok {
		digits = len(strings.TrimRight(frac, "0"))
	}
	return max(digits-exp, 0)
}
