/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	gowalk "github.com/fentec-project/gowalk/internal"
)

// Sampler samples random float64 values from some
// probability distribution.
type Sampler interface {
	Sample() (float64, error)
}

var (
	// ErrInvalidInterval is returned for inverted, NaN or otherwise
	// unusable sampling bounds.
	ErrInvalidInterval = gowalk.MalformedInterval
	// ErrInvalidPrecision is returned for a negative or NaN
	// precision parameter.
	ErrInvalidPrecision = gowalk.MalformedPrecision
	// ErrNoFeasibleSample is returned when a rejection loop gives up.
	ErrNoFeasibleSample = gowalk.NoFeasibleSample
	// ErrDimensionMismatch is returned when the bounds of a line
	// have different lengths.
	ErrDimensionMismatch = gowalk.DimensionMismatch
)
