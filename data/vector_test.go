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
	"math"
	"testing"

	gowalk "github.com/fentec-project/gowalk/internal"
	"github.com/fentec-project/gowalk/sample"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	l := 3
	sampler := sample.NewUniformRange(-10, 10, sample.NewSource(1))

	x, err := NewRandomVector(l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	y, err := NewRandomVector(l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	add := x.Add(y)
	sub := x.Sub(y)
	scaled := x.MulScalar(2)
	axpy := x.AddScaled(-3, y)
	mul, err := x.Dot(y)

	if err != nil {
		t.Fatalf("Error during vector multiplication: %v", err)
	}

	innerProd := 0.0
	for i := 0; i < 3; i++ {
		assert.Equal(t, x[i]+y[i], add[i], "coordinates should sum correctly")
		assert.Equal(t, x[i]-y[i], sub[i], "coordinates should subtract correctly")
		assert.Equal(t, 2*x[i], scaled[i], "coordinates should scale correctly")
		assert.InDelta(t, x[i]-3*y[i], axpy[i], 1e-12)
		innerProd += x[i] * y[i]
	}

	assert.InDelta(t, innerProd, mul, 1e-12, "inner product should calculate correctly")
	assert.InDelta(t, math.Sqrt(x.SquaredNorm()), x.Norm(), 1e-12)

	_, err = x.Dot(Vector{1})
	assert.Error(t, err)
}

func TestVector_GetSetCopy(t *testing.T) {
	v := NewVector([]float64{1, 2, 3})
	c := v.Copy()
	v.Set(1, 5)

	assert.Equal(t, 5.0, v.Get(1))
	assert.Equal(t, 2.0, c.Get(1), "copy should not share memory")
	assert.Equal(t, Vector{0.5, 2.5, 1.5}, v.Apply(func(x float64) float64 { return x / 2 }))
	assert.Equal(t, Vector{4, 4}, NewConstantVector(2, 4))
	assert.Equal(t, "(1, 5, 3)", v.String())
}

func TestVector_Checks(t *testing.T) {
	v := Vector{1, 2}

	assert.NoError(t, v.CheckDims(2))
	assert.True(t, errors.Is(v.CheckDims(3), gowalk.DimensionMismatch))

	assert.NoError(t, v.CheckFinite())
	assert.True(t, errors.Is(Vector{1, math.NaN()}.CheckFinite(), gowalk.MalformedPoint))
	assert.Error(t, Vector{math.Inf(-1)}.CheckFinite())
}
