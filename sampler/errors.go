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

import "github.com/cockroachdb/errors"

// Construction errors. Each constructor failure wraps exactly one of these,
// so callers can distinguish them with errors.Is.
var (
	ErrEmptyInput       = errors.New("outcomes and probabilities must not be empty")
	ErrLengthMismatch   = errors.New("outcomes and probabilities must have the same length")
	ErrInvalidValue     = errors.New("invalid value in outcomes or probabilities")
	ErrProbabilityRange = errors.New("probabilities must be between 0 and 1")
	ErrProbabilitySum   = errors.New("probabilities must sum to 1")
)
