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

package body

import (
	"fmt"
	"math"

	"github.com/fentec-project/gowalk/data"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Ball represents the closed Euclidean ball with a given
// center and radius.
type Ball struct {
	center data.Vector
	radius float64
}

// NewBall returns a new Ball instance.
func NewBall(center data.Vector, radius float64) (*Ball, error) {
	if len(center) == 0 {
		return nil, fmt.Errorf("ball center should have at least one coordinate")
	}
	if err := center.CheckFinite(); err != nil {
		return nil, errors.Wrap(err, "malformed ball center")
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("ball radius should be positive and finite")
	}

	return &Ball{
		center: center.Copy(),
		radius: radius,
	}, nil
}

// Dimension returns the dimension of the ambient space.
func (b *Ball) Dimension() int {
	return len(b.center)
}

// NumOfHyperplanes returns 0, a ball needs no per-facet cache.
func (b *Ball) NumOfHyperplanes() int {
	return 0
}

// IsIn reports whether x lies in the ball.
// A point of another dimension is not in the ball.
func (b *Ball) IsIn(x data.Vector) bool {
	if len(x) != len(b.center) {
		return false
	}

	return floats.Distance(x, b.center, 2) <= b.radius
}

// LineIntersect returns the signed distances along v from x to the
// sphere bounding the ball, the larger one first. If the line
// misses the ball, both distances are 0.
// It panics if x or v do not have Dimension elements.
func (b *Ball) LineIntersect(x, v data.Vector) (float64, float64) {
	d := floats.SubTo(make([]float64, len(x)), x, b.center)

	return b.roots(floats.Dot(v, v), floats.Dot(v, d), floats.Dot(d, d))
}

// LineIntersectCoord is LineIntersect for the direction of the
// coord-th axis. The remaining arguments are ignored.
// It panics if x does not have Dimension elements.
func (b *Ball) LineIntersectCoord(x, _ data.Vector, coord, _ int, _ []float64, _ bool) (float64, float64) {
	d := floats.SubTo(make([]float64, len(x)), x, b.center)

	return b.roots(1, d[coord], floats.Dot(d, d))
}

// roots solves vv*t^2 + 2*vd*t + dd - r^2 = 0.
func (b *Ball) roots(vv, vd, dd float64) (float64, float64) {
	disc := vd*vd - vv*(dd-b.radius*b.radius)
	if vv == 0 || disc < 0 {
		return 0, 0
	}
	sq := math.Sqrt(disc)

	return (-vd + sq) / vv, (-vd - sq) / vv
}
