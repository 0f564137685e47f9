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

// Polytope represents a convex polytope given by the
// inequalities A x <= b, one row of A for each facet.
type Polytope struct {
	a data.Matrix
	b data.Vector
}

// NewPolytope returns a new Polytope instance with facets
// A x <= b. The inputs are copied.
// It returns an error if the dimensions of A and b do not match
// or if they contain non-finite values.
func NewPolytope(a data.Matrix, b data.Vector) (*Polytope, error) {
	if a.Rows() == 0 || a.Cols() == 0 {
		return nil, fmt.Errorf("polytope needs at least one facet and one dimension")
	}
	if a.Rows() != len(b) {
		return nil, fmt.Errorf("number of rows of A should equal the length of b")
	}
	aCopy, err := data.NewMatrix(a)
	if err != nil {
		return nil, errors.Wrap(err, "malformed facet matrix")
	}
	for _, row := range aCopy {
		if err := row.CheckFinite(); err != nil {
			return nil, errors.Wrap(err, "malformed facet matrix")
		}
	}
	if err := b.CheckFinite(); err != nil {
		return nil, errors.Wrap(err, "malformed right-hand side")
	}

	return &Polytope{
		a: aCopy,
		b: b.Copy(),
	}, nil
}

// NewCube returns the cube [-r, r]^n as a Polytope.
func NewCube(n int, r float64) (*Polytope, error) {
	if n < 1 || !(r > 0) || math.IsInf(r, 0) {
		return nil, fmt.Errorf("cube needs a positive dimension and a positive finite radius")
	}

	a := data.NewConstantMatrix(2*n, n, 0)
	b := data.NewConstantVector(2*n, r)
	for i := 0; i < n; i++ {
		a[i][i] = 1
		a[n+i][i] = -1
	}

	return NewPolytope(a, b)
}

// NewSimplex returns the standard simplex
// {x : x_i >= 0, x_1 + ... + x_n <= 1} as a Polytope.
func NewSimplex(n int) (*Polytope, error) {
	if n < 1 {
		return nil, fmt.Errorf("simplex needs a positive dimension")
	}

	a := data.NewConstantMatrix(n+1, n, 0)
	b := data.NewConstantVector(n+1, 0)
	for i := 0; i < n; i++ {
		a[i][i] = -1
		a[n][i] = 1
	}
	b[n] = 1

	return NewPolytope(a, b)
}

// Dimension returns the dimension of the ambient space.
func (p *Polytope) Dimension() int {
	return p.a.Cols()
}

// NumOfHyperplanes returns the number of facets.
func (p *Polytope) NumOfHyperplanes() int {
	return p.a.Rows()
}

// A returns a copy of the facet matrix.
func (p *Polytope) A() data.Matrix {
	return p.a.Copy()
}

// B returns a copy of the right-hand side of the inequalities.
func (p *Polytope) B() data.Vector {
	return p.b.Copy()
}

// IsIn reports whether x satisfies all the inequalities.
// A point of another dimension is not in the polytope.
func (p *Polytope) IsIn(x data.Vector) bool {
	ax, err := p.a.MulVec(x)
	if err != nil {
		return false
	}
	for i, v := range ax {
		if v-p.b[i] > 0 {
			return false
		}
	}

	return true
}

// LineIntersect returns the signed distances along v from x to the
// boundary of the polytope, the smallest positive one first.
// Facets parallel to v are skipped. If x lies on a facet, the
// distance in the direction leaving the polytope is 0.
// It panics if x or v do not have Dimension elements.
func (p *Polytope) LineIntersect(x, v data.Vector) (float64, float64) {
	minPlus, maxMinus := math.Inf(1), math.Inf(-1)

	for i, row := range p.a {
		den := floats.Dot(row, v)
		if den == 0 {
			continue
		}
		minPlus, maxMinus = closer(p.b[i]-floats.Dot(row, x), den, minPlus, maxMinus)
	}

	return minPlus, maxMinus
}

// LineIntersectCoord is LineIntersect for the direction of the
// coord-th axis. lamdas caches A x for the previous point prev:
// when init is set it is recomputed from x, otherwise only the
// contribution of coordinate prevCoord, the single coordinate in
// which x and prev differ, is updated. lamdas must have
// NumOfHyperplanes elements. It panics if x does not have
// Dimension elements.
func (p *Polytope) LineIntersectCoord(x, prev data.Vector, coord, prevCoord int, lamdas []float64, init bool) (float64, float64) {
	minPlus, maxMinus := math.Inf(1), math.Inf(-1)

	for i, row := range p.a {
		if init {
			lamdas[i] = floats.Dot(row, x)
		} else {
			lamdas[i] += row[prevCoord] * (x[prevCoord] - prev[prevCoord])
		}

		den := row[coord]
		if den == 0 {
			continue
		}
		minPlus, maxMinus = closer(p.b[i]-lamdas[i], den, minPlus, maxMinus)
	}

	return minPlus, maxMinus
}

// closer updates the bounds with the distance num/den to a facet.
// A point on the facet (num == 0) cannot move towards its outer
// side, which is the positive direction when den > 0.
func closer(num, den, minPlus, maxMinus float64) (float64, float64) {
	if num == 0 {
		if den > 0 {
			return 0, maxMinus
		}
		return minPlus, 0
	}

	lambda := num / den
	if lambda > 0 && lambda < minPlus {
		minPlus = lambda
	}
	if lambda < 0 && lambda > maxMinus {
		maxMinus = lambda
	}

	return minPlus, maxMinus
}
