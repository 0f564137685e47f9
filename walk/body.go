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

package walk

import (
	"github.com/fentec-project/gowalk/data"
	gowalk "github.com/fentec-project/gowalk/internal"
)

// Body is a convex body the walks move in. The types of package
// body implement it.
type Body interface {
	// Dimension returns the dimension of the ambient space.
	Dimension() int
	// LineIntersect returns the signed distances (tPlus, tMinus)
	// along v from x to the boundary of the body.
	LineIntersect(x, v data.Vector) (float64, float64)
	// LineIntersectCoord is LineIntersect along the coord-th axis.
	// The body may reuse lamdas, computed for prev and prevCoord
	// by the previous call, unless init is set.
	LineIntersectCoord(x, prev data.Vector, coord, prevCoord int, lamdas []float64, init bool) (float64, float64)
	// IsIn reports whether x lies in the body.
	IsIn(x data.Vector) bool
	// NumOfHyperplanes returns the length of the lamdas cache.
	NumOfHyperplanes() int
}

var (
	// ErrDimensionMismatch is returned when a point does not have
	// the dimension of the walk.
	ErrDimensionMismatch = gowalk.DimensionMismatch
	// ErrMalformedPoint is returned for points with NaN or
	// infinite coordinates.
	ErrMalformedPoint = gowalk.MalformedPoint
	// ErrInvalidPrecision is returned for a negative or NaN
	// precision parameter.
	ErrInvalidPrecision = gowalk.MalformedPrecision
	// ErrNoFeasibleSample is returned when sampling along a chord
	// gives up after the configured number of tries.
	ErrNoFeasibleSample = gowalk.NoFeasibleSample
	// ErrUnboundedLine is returned when the body does not bound
	// the chosen line.
	ErrUnboundedLine = gowalk.UnboundedLine
	// ErrOutsideBody is returned for a starting point outside the body.
	ErrOutsideBody = gowalk.OutsideBody
)
