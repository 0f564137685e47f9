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
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distuv"
)

// MinPrecision is the smallest precision parameter for which the
// density exp(-a*t^2) is treated as concentrated. For smaller
// values only the envelope rejection sampler is used.
const MinPrecision = 1e-8

// Density evaluates the unnormalized Gaussian density
// exp(-a*|p|^2) at p.
func Density(p []float64, a float64) float64 {
	return math.Exp(-a * floats.Dot(p, p))
}

// UseExact reports whether an interval of the given width is
// sampled by drawing from the untruncated Gaussian and discarding
// draws outside the interval. This happens when a is not negligible
// and the interval is at least twice as wide as 1/sqrt(2a).
func UseExact(width, a float64) bool {
	return a > MinPrecision && width >= 2.0/math.Sqrt(2.0*a)
}

// MaxDensityCoord returns an upper bound of exp(-a*t^2) for t
// in [l, u].
func MaxDensityCoord(l, u, a float64) float64 {
	if l < 0 && u > 0 {
		return 1
	}

	return math.Max(math.Exp(-a*l*l), math.Exp(-a*u*u))
}

// MaxDensity returns an upper bound of exp(-a*|x|^2) for x on the
// segment between points lower and upper. When the segment passes
// the point of its line closest to the origin, the bound is the
// density at that point, otherwise the density is monotone on the
// segment and the bound is attained at one of the endpoints.
// It panics if lower and upper have different lengths.
func MaxDensity(lower, upper []float64, a float64) float64 {
	b, width := lineFrame(lower, upper)
	if width == 0 {
		return Density(lower, a)
	}

	return maxDensity(lower, upper, b, a)
}

func maxDensity(lower, upper, b []float64, a float64) float64 {
	z, lowBd, upBd := closestToOrigin(lower, upper, b)
	if lowBd*upBd > 0 {
		return math.Max(Density(lower, a), Density(upper, a))
	}

	return Density(z, a)
}

// lineFrame returns the unit vector pointing from lower to upper
// and the distance between them. For coinciding points the
// returned vector is zero.
func lineFrame(lower, upper []float64) ([]float64, float64) {
	b := floats.SubTo(make([]float64, len(upper)), upper, lower)
	width := floats.Norm(b, 2)
	if width > 0 {
		floats.Scale(1/width, b)
	}

	return b, width
}

// closestToOrigin returns the point z of the line through lower
// with unit direction b that is closest to the origin, together
// with the offsets of lower and upper relative to z along b.
// Since z is orthogonal to b, the offsets are plain projections.
func closestToOrigin(lower, upper, b []float64) ([]float64, float64, float64) {
	lowBd := floats.Dot(lower, b)
	upBd := floats.Dot(upper, b)
	z := floats.AddScaledTo(make([]float64, len(lower)), lower, -lowBd, b)

	return z, lowBd, upBd
}

// TruncatedNormal samples random values from the Gaussian density
// exp(-a*t^2) restricted to an interval. Depending on the width of
// the interval relative to the scale 1/sqrt(2a), it either draws
// from the untruncated distribution until a draw falls into the
// interval, or it uses rejection sampling with a constant envelope.
//
// Both procedures retry until success. If maxTries is positive,
// a procedure gives up after maxTries draws and ErrNoFeasibleSample
// is returned.
type TruncatedNormal struct {
	normal   distuv.Normal
	uniform  distuv.Uniform
	maxTries int
}

// NewTruncatedNormal returns an instance of TruncatedNormal sampler
// drawing from src. A non-positive maxTries means the rejection
// loops are not bounded.
func NewTruncatedNormal(src rand.Source, maxTries int) *TruncatedNormal {
	return &TruncatedNormal{
		normal:   distuv.Normal{Mu: 0, Sigma: 1, Src: src},
		uniform:  distuv.Uniform{Min: 0, Max: 1, Src: src},
		maxTries: maxTries,
	}
}

// MaxTries returns the retry limit of the sampler.
func (s *TruncatedNormal) MaxTries() int {
	return s.maxTries
}

func (s *TruncatedNormal) exhausted(tries int) bool {
	return s.maxTries > 0 && tries >= s.maxTries
}

func checkPrecision(a float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) || a < 0 {
		return errors.Wrapf(ErrInvalidPrecision, "got a = %v", a)
	}

	return nil
}

// SampleCoord samples a value from [l, u] with density
// proportional to exp(-a*t^2).
// Unbounded intervals are accepted only if the exact procedure
// applies to them, that is when a > MinPrecision.
func (s *TruncatedNormal) SampleCoord(l, u, a float64) (float64, error) {
	if err := checkPrecision(a); err != nil {
		return 0, err
	}
	if math.IsNaN(l) || math.IsNaN(u) || l > u {
		return 0, errors.Wrapf(ErrInvalidInterval, "got [%v, %v]", l, u)
	}
	if l == u {
		if math.IsInf(l, 0) {
			return 0, errors.Wrapf(ErrInvalidInterval, "got [%v, %v]", l, u)
		}
		return l, nil
	}

	if UseExact(u-l, a) {
		scale := 1.0 / math.Sqrt(2.0*a)
		for tries := 0; !s.exhausted(tries); tries++ {
			r := s.normal.Rand() * scale
			if r >= l && r <= u {
				return r, nil
			}
		}
		return 0, errors.Wrapf(ErrNoFeasibleSample, "after %d draws on [%v, %v]", s.maxTries, l, u)
	}

	if math.IsInf(l, 0) || math.IsInf(u, 0) {
		return 0, errors.Wrapf(ErrInvalidInterval, "unbounded interval [%v, %v] with a = %v", l, u, a)
	}
	m := MaxDensityCoord(l, u, a)
	if m == 0 {
		return 0, errors.Wrapf(ErrNoFeasibleSample, "density vanishes on [%v, %v]", l, u)
	}
	for tries := 0; !s.exhausted(tries); tries++ {
		r := s.uniform.Rand()
		dis := (1.0-r)*l + r*u
		if m*s.uniform.Rand() < math.Exp(-a*dis*dis) {
			return dis, nil
		}
	}

	return 0, errors.Wrapf(ErrNoFeasibleSample, "after %d draws on [%v, %v]", s.maxTries, l, u)
}

// SampleLine samples a point from the segment between lower and
// upper with density proportional to exp(-a*|x|^2). The result is
// returned in a new slice.
func (s *TruncatedNormal) SampleLine(lower, upper []float64, a float64) ([]float64, error) {
	if len(lower) != len(upper) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "segment bounds of lengths %d and %d", len(lower), len(upper))
	}
	if err := checkPrecision(a); err != nil {
		return nil, err
	}
	for i := range lower {
		if isNonFinite(lower[i]) || isNonFinite(upper[i]) {
			return nil, errors.Wrap(ErrInvalidInterval, "segment bounds must be finite")
		}
	}

	b, width := lineFrame(lower, upper)
	if width == 0 {
		return append([]float64(nil), lower...), nil
	}

	if UseExact(width, a) {
		z, lowBd, upBd := closestToOrigin(lower, upper, b)
		scale := 1.0 / math.Sqrt(2.0*a)
		for tries := 0; !s.exhausted(tries); tries++ {
			r := s.normal.Rand() * scale
			if r >= lowBd && r <= upBd {
				return floats.AddScaledTo(make([]float64, len(z)), z, r, b), nil
			}
		}
		return nil, errors.Wrapf(ErrNoFeasibleSample, "after %d draws on a segment of length %v", s.maxTries, width)
	}

	m := maxDensity(lower, upper, b, a)
	if m == 0 {
		return nil, errors.Wrap(ErrNoFeasibleSample, "density vanishes on the segment")
	}
	p := make([]float64, len(lower))
	for tries := 0; !s.exhausted(tries); tries++ {
		r := s.uniform.Rand()
		floats.ScaleTo(p, 1.0-r, lower)
		floats.AddScaled(p, r, upper)
		if m*s.uniform.Rand() < Density(p, a) {
			return p, nil
		}
	}

	return nil, errors.Wrapf(ErrNoFeasibleSample, "after %d draws on a segment of length %v", s.maxTries, width)
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// TruncatedNormalRange samples random values from the Gaussian
// density exp(-a*t^2) restricted to a fixed interval.
type TruncatedNormalRange struct {
	*TruncatedNormal
	interval r1.Interval
	a        float64
}

// NewTruncatedNormalRange returns an instance of TruncatedNormalRange
// sampler. It accepts the interval, the precision parameter a, the
// source of randomness and the retry limit.
func NewTruncatedNormalRange(interval r1.Interval, a float64, src rand.Source, maxTries int) *TruncatedNormalRange {
	return &TruncatedNormalRange{
		TruncatedNormal: NewTruncatedNormal(src, maxTries),
		interval:        interval,
		a:               a,
	}
}

// Sample samples a value from the interval of the sampler.
func (s *TruncatedNormalRange) Sample() (float64, error) {
	return s.SampleCoord(s.interval.Min, s.interval.Max, s.a)
}
