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

package sample_test

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/fentec-project/gowalk/sample"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat"
)

var intervalTests = []struct {
	l, u, a float64
}{
	{l: -1, u: 1, a: 0},
	{l: -1, u: 1, a: 1e-9},
	{l: -1, u: 1, a: 1},
	{l: -1, u: 1, a: 100},
	{l: 0.5, u: 2, a: 1},
	{l: -3, u: -2, a: 0.5},
	{l: -10, u: 10, a: 0.01},
	{l: 0, u: 1e-3, a: 1000},
	{l: 1, u: 4, a: 2},
}

func TestTruncatedNormal_SampleCoordInInterval(t *testing.T) {
	s := sample.NewTruncatedNormal(sample.NewSource(1), 0)
	for _, test := range intervalTests {
		t.Run(fmt.Sprintf("[%v,%v] a=%v", test.l, test.u, test.a), func(t *testing.T) {
			for i := 0; i < 5000; i++ {
				x, err := s.SampleCoord(test.l, test.u, test.a)
				require.NoError(t, err)
				require.True(t, x >= test.l && x <= test.u, "sample %v outside the interval", x)
			}
		})
	}
}

func TestTruncatedNormal_SampleLineOnSegment(t *testing.T) {
	s := sample.NewTruncatedNormal(sample.NewSource(2), 0)
	// the line c + t*d with unit d
	c := []float64{0.3, -0.2, 0.5}
	d := []float64{2, 1, -2}
	floats.Scale(1/floats.Norm(d, 2), d)

	for _, test := range intervalTests {
		t.Run(fmt.Sprintf("[%v,%v] a=%v", test.l, test.u, test.a), func(t *testing.T) {
			lower := floats.AddScaledTo(make([]float64, 3), c, test.l, d)
			upper := floats.AddScaledTo(make([]float64, 3), c, test.u, d)
			for i := 0; i < 2000; i++ {
				p, err := s.SampleLine(lower, upper, test.a)
				require.NoError(t, err)
				require.Len(t, p, 3)

				// position along the line and distance from it
				diff := floats.SubTo(make([]float64, 3), p, c)
				tp := floats.Dot(diff, d)
				floats.AddScaled(diff, -tp, d)
				assert.InDelta(t, 0, floats.Norm(diff, 2), 1e-9)
				require.True(t, tp >= test.l-1e-9 && tp <= test.u+1e-9, "sample at %v outside the segment", tp)
			}
		})
	}
}

// ksUniform returns the Kolmogorov-Smirnov distance between the
// empirical distribution of x and the uniform distribution on [l, u].
func ksUniform(x []float64, l, u float64) float64 {
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)
	n := float64(len(sorted))
	d := 0.0
	for i, v := range sorted {
		cdf := (v - l) / (u - l)
		d = math.Max(d, math.Max(float64(i+1)/n-cdf, cdf-float64(i)/n))
	}

	return d
}

func TestTruncatedNormal_UniformForZeroPrecision(t *testing.T) {
	s := sample.NewTruncatedNormal(sample.NewSource(3), 0)
	n := 10000
	// critical value of the KS statistic at significance 0.001
	crit := 1.95 / math.Sqrt(float64(n))

	for _, iv := range []r1.Interval{{Min: -1, Max: 1}, {Min: 2, Max: 7}, {Min: -0.01, Max: 0}} {
		xs := make([]float64, n)
		ys := make([]float64, n)
		for i := 0; i < n; i++ {
			x, err := s.SampleCoord(iv.Min, iv.Max, 0)
			require.NoError(t, err)
			xs[i] = x

			p, err := s.SampleLine([]float64{iv.Min, 1}, []float64{iv.Max, 1}, 0)
			require.NoError(t, err)
			ys[i] = p[0]
		}
		assert.Less(t, ksUniform(xs, iv.Min, iv.Max), crit)
		assert.Less(t, ksUniform(ys, iv.Min, iv.Max), crit)
	}
}

func TestTruncatedNormal_ExactBranchVariance(t *testing.T) {
	var tests = []struct {
		a float64
	}{
		{a: 10},
		{a: 100},
		{a: 1000},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("a=%v", test.a), func(t *testing.T) {
			require.True(t, sample.UseExact(2, test.a))

			s := sample.NewTruncatedNormalRange(r1.Interval{Min: -1, Max: 1}, test.a, sample.NewSource(4), 0)
			want := 1 / (2 * test.a)
			testSampler(t, s, paramBounds{
				meanLow:  -5 * math.Sqrt(want/10000),
				meanHigh: 5 * math.Sqrt(want/10000),
				varLow:   0.93 * want,
				varHigh:  1.07 * want,
			})
		})
	}
}

func TestUseExact(t *testing.T) {
	assert.False(t, sample.UseExact(100, 0))
	assert.False(t, sample.UseExact(100, 1e-9))
	assert.True(t, sample.UseExact(2/math.Sqrt(2), 1))
	assert.False(t, sample.UseExact(1.4, 1))
}

func TestMaxDensityCoord_Bound(t *testing.T) {
	rnd := rand.New(sample.NewSource(5))
	for i := 0; i < 1000; i++ {
		l := rnd.Float64()*10 - 5
		u := rnd.Float64()*10 - 5
		if l > u {
			l, u = u, l
		}
		a := rnd.Float64() * 5
		m := sample.MaxDensityCoord(l, u, a)
		for j := 0; j <= 100; j++ {
			x := l + (u-l)*float64(j)/100
			require.GreaterOrEqual(t, m, math.Exp(-a*x*x)*(1-1e-12),
				"bound %v below the density at %v for [%v,%v] a=%v", m, x, l, u, a)
		}
	}
}

func TestMaxDensity_Bound(t *testing.T) {
	rnd := rand.New(sample.NewSource(6))
	for i := 0; i < 1000; i++ {
		lower := make([]float64, 3)
		upper := make([]float64, 3)
		for k := range lower {
			lower[k] = rnd.Float64()*4 - 2
			upper[k] = rnd.Float64()*4 - 2
		}
		a := rnd.Float64() * 5
		m := sample.MaxDensity(lower, upper, a)
		p := make([]float64, 3)
		for j := 0; j <= 100; j++ {
			r := float64(j) / 100
			floats.ScaleTo(p, 1-r, lower)
			floats.AddScaled(p, r, upper)
			require.GreaterOrEqual(t, m, sample.Density(p, a)*(1-1e-9),
				"bound %v below the density at %v for a=%v", m, p, a)
		}
	}
}

func TestMaxDensity_Cases(t *testing.T) {
	// segment crossing the peak of its line at (0, 1)
	assert.InDelta(t, math.Exp(-2), sample.MaxDensity([]float64{-1, 1}, []float64{1, 1}, 2), 1e-12)
	// monotone segment, maximum at the endpoint closer to the origin
	assert.InDelta(t, math.Exp(-2*2), sample.MaxDensity([]float64{1, 1}, []float64{3, 1}, 2), 1e-12)
	// coinciding endpoints
	assert.InDelta(t, math.Exp(-2*5), sample.MaxDensity([]float64{1, 2}, []float64{1, 2}, 2), 1e-12)

	assert.Equal(t, 1.0, sample.MaxDensityCoord(-1, 2, 3))
	assert.InDelta(t, math.Exp(-3), sample.MaxDensityCoord(1, 2, 3), 1e-12)
	assert.InDelta(t, math.Exp(-3), sample.MaxDensityCoord(-2, -1, 3), 1e-12)

	assert.Panics(t, func() { sample.MaxDensity([]float64{1, 2}, []float64{1}, 2) })
}

func TestTruncatedNormal_Errors(t *testing.T) {
	s := sample.NewTruncatedNormal(sample.NewSource(8), 1000)
	assert.Equal(t, 1000, s.MaxTries())

	_, err := s.SampleCoord(1, -1, 1)
	assert.True(t, errors.Is(err, sample.ErrInvalidInterval))
	_, err = s.SampleCoord(math.NaN(), 1, 1)
	assert.True(t, errors.Is(err, sample.ErrInvalidInterval))
	_, err = s.SampleCoord(math.Inf(-1), 1, 0)
	assert.True(t, errors.Is(err, sample.ErrInvalidInterval))
	_, err = s.SampleCoord(-1, 1, -0.5)
	assert.True(t, errors.Is(err, sample.ErrInvalidPrecision))
	_, err = s.SampleCoord(-1, 1, math.NaN())
	assert.True(t, errors.Is(err, sample.ErrInvalidPrecision))

	// the envelope underflows to zero
	_, err = s.SampleCoord(30, 31, 1)
	assert.True(t, errors.Is(err, sample.ErrNoFeasibleSample))
	_, err = s.SampleLine([]float64{30, 0}, []float64{31, 0}, 1)
	assert.True(t, errors.Is(err, sample.ErrNoFeasibleSample))

	// exact branch on an interval far in the tail exhausts the retries
	_, err = s.SampleCoord(5, 10, 1)
	assert.True(t, errors.Is(err, sample.ErrNoFeasibleSample))

	_, err = s.SampleLine([]float64{0, 0}, []float64{1}, 1)
	assert.True(t, errors.Is(err, sample.ErrDimensionMismatch))
	_, err = s.SampleLine([]float64{0, math.Inf(1)}, []float64{1, 0}, 1)
	assert.True(t, errors.Is(err, sample.ErrInvalidInterval))
}

func TestTruncatedNormal_Degenerate(t *testing.T) {
	s := sample.NewTruncatedNormal(sample.NewSource(9), 10)

	x, err := s.SampleCoord(0.25, 0.25, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0.25, x)

	lower := []float64{1, 2}
	p, err := s.SampleLine(lower, []float64{1, 2}, 3)
	assert.NoError(t, err)
	assert.Equal(t, lower, p)
	p[0] = 7
	assert.Equal(t, 1.0, lower[0], "result must not alias the bounds")

	// unbounded interval is fine for the exact procedure
	x, err = s.SampleCoord(math.Inf(-1), math.Inf(1), 2)
	assert.NoError(t, err)
	assert.False(t, math.IsInf(x, 0))
}

func TestTruncatedNormal_Reproducible(t *testing.T) {
	s1 := sample.NewTruncatedNormal(sample.NewSource(10), 0)
	s2 := sample.NewTruncatedNormal(sample.NewSource(10), 0)
	for i := 0; i < 100; i++ {
		x1, _ := s1.SampleCoord(-1, 2, 0.7)
		x2, _ := s2.SampleCoord(-1, 2, 0.7)
		assert.Equal(t, x1, x2)
	}
}

func TestTruncatedNormalRange_Mean(t *testing.T) {
	// on [0, inf) the mean of the half-normal with sigma^2 = 1/(2a)
	// is sigma*sqrt(2/pi)
	a := 2.0
	s := sample.NewTruncatedNormalRange(r1.Interval{Min: 0, Max: math.Inf(1)}, a, sample.NewSource(12), 0)
	xs := make([]float64, 20000)
	for i := range xs {
		x, err := s.Sample()
		require.NoError(t, err)
		xs[i] = x
	}
	sigma := 1 / math.Sqrt(2*a)
	assert.InDelta(t, sigma*math.Sqrt(2/math.Pi), stat.Mean(xs, nil), 0.01)
}
