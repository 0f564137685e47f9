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

package data

import (
	"fmt"
	"math"

	"github.com/fentec-project/gowalk/sample"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// NewRandomDirection returns a new Vector sampled uniformly from
// the unit sphere in n dimensions. The coordinates are independent
// standard normal values, normalized by their Euclidean norm.
func NewRandomDirection(n int, src rand.Source) (Vector, error) {
	if n < 1 {
		return nil, fmt.Errorf("dimension should be positive")
	}

	normal := sample.NewNormal(1, src)
	for {
		v, err := NewRandomVector(n, normal)
		if err != nil {
			return nil, err
		}
		norm := v.Norm()
		if norm > 0 {
			floats.Scale(1/norm, v)
			return v, nil
		}
	}
}

// NewRandomPointInBall returns a new Vector sampled uniformly from
// the n-dimensional ball of the given radius centered at the origin.
// A uniform direction is scaled by radius * U^(1/n) for U uniform
// on [0, 1), which makes the density of the distance from the
// center proportional to r^(n-1).
func NewRandomPointInBall(n int, radius float64, src rand.Source) (Vector, error) {
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("radius should be finite and non-negative")
	}

	v, err := NewRandomDirection(n, src)
	if err != nil {
		return nil, err
	}
	u, err := sample.NewUniform(src).Sample()
	if err != nil {
		return nil, err
	}
	floats.Scale(radius*math.Pow(u, 1/float64(n)), v)

	return v, nil
}
