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
	"strconv"
	"strings"

	gowalk "github.com/fentec-project/gowalk/internal"
	"github.com/fentec-project/gowalk/sample"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Vector wraps a slice of float64 elements. It represents a point
// (or a direction) in the n-dimensional Euclidean space.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	vec := make([]float64, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewVector(vec), nil
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Get returns the i-th coordinate of vector v.
func (v Vector) Get(i int) float64 {
	return v[i]
}

// Set sets the i-th coordinate of vector v to x. Unlike the
// other operations, it modifies v in place.
func (v Vector) Set(i int, x float64) {
	v[i] = x
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	return floats.ScaleTo(make(Vector, len(v)), x, v)
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Add(other Vector) Vector {
	return floats.AddTo(make(Vector, len(v)), v, other)
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Sub(other Vector) Vector {
	return floats.SubTo(make(Vector, len(v)), v, other)
}

// AddScaled returns v + alpha*other in a new Vector.
func (v Vector) AddScaled(alpha float64, other Vector) Vector {
	return floats.AddScaledTo(make(Vector, len(v)), v, alpha, other)
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("vectors should be of same length")
	}

	return floats.Dot(v, other), nil
}

// SquaredNorm returns the squared Euclidean norm of vector v.
func (v Vector) SquaredNorm() float64 {
	return floats.Dot(v, v)
}

// Norm returns the Euclidean norm of vector v.
func (v Vector) Norm() float64 {
	return floats.Norm(v, 2)
}

// CheckDims checks whether vector v has n elements.
// It returns an error wrapping gowalk.DimensionMismatch otherwise.
func (v Vector) CheckDims(n int) error {
	if len(v) != n {
		return errors.Wrapf(gowalk.DimensionMismatch, "expected %d coordinates, got %d", n, len(v))
	}

	return nil
}

// CheckFinite checks whether all vector elements are finite.
// It returns an error if at least one element is NaN or infinite.
func (v Vector) CheckFinite() error {
	for i, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return errors.Wrapf(gowalk.MalformedPoint, "coordinate %d is %v", i, c)
		}
	}

	return nil
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	coords := make([]string, len(v))
	for i, vi := range v {
		coords[i] = strconv.FormatFloat(vi, 'g', -1, 64)
	}

	return "(" + strings.Join(coords, ", ") + ")"
}
