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
	"fmt"
	"math"

	"github.com/fentec-project/gowalk/sample"
	"golang.org/x/exp/rand"
)

// Kind selects the kernel applied by a Walker.
type Kind int

const (
	// HitAndRun moves along a uniformly random direction.
	HitAndRun Kind = iota
	// CoordinateHitAndRun moves along a uniformly random axis.
	CoordinateHitAndRun
	// BallWalk proposes a uniform point in a ball around the
	// current point and accepts it with the Metropolis rule.
	BallWalk
)

// String returns the name of the kernel.
func (k Kind) String() string {
	switch k {
	case HitAndRun:
		return "hit-and-run"
	case CoordinateHitAndRun:
		return "coordinate hit-and-run"
	case BallWalk:
		return "ball walk"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) valid() bool {
	return k >= HitAndRun && k <= BallWalk
}

// Defaults used when the corresponding option is not given.
const (
	DefaultKind = HitAndRun

	// DefaultBallRadius is the base radius of ball walk proposals.
	DefaultBallRadius = 1.0

	// DefaultBallRadiusScaling shrinks the ball walk radius with the
	// dimension and the precision, see Walker.BallRadius.
	DefaultBallRadiusScaling = true

	// DefaultTolerance is the length below which a chord is treated
	// as a single point and the walk stays put.
	DefaultTolerance = 1e-10

	// DefaultMaxTries bounds the rejection loops of the truncated
	// Gaussian sampler.
	DefaultMaxTries = 1 << 20

	// DefaultSeed seeds the MT19937 source when neither WithSource
	// nor WithSeed is given.
	DefaultSeed uint64 = 5489
)

const (
	panicKindInvalid       = "walk: WithKind: unknown kernel"
	panicBallRadiusInvalid = "walk: WithBallRadius: radius must be finite and positive"
	panicToleranceInvalid  = "walk: WithTolerance: tolerance must be finite and non-negative"
	panicSourceNil         = "walk: WithSource: source must not be nil"
)

// Option configures a Walker.
type Option func(*options)

type options struct {
	kind            Kind
	ballRadius      float64
	scaleBallRadius bool
	tolerance       float64
	maxTries        int
	src             rand.Source
}

// WithKind selects the kernel. It panics on an unknown kind.
func WithKind(k Kind) Option {
	if !k.valid() {
		panic(panicKindInvalid)
	}

	return func(o *options) { o.kind = k }
}

// WithBallRadius sets the base radius of ball walk proposals.
// It panics unless r is finite and positive.
func WithBallRadius(r float64) Option {
	if !(r > 0) || math.IsInf(r, 0) {
		panic(panicBallRadiusInvalid)
	}

	return func(o *options) { o.ballRadius = r }
}

// WithBallRadiusScaling toggles the scaling of the ball walk radius
// by 4/sqrt(max(1, a)*n).
func WithBallRadiusScaling(enabled bool) Option {
	return func(o *options) { o.scaleBallRadius = enabled }
}

// WithTolerance sets the numerical tolerance for degenerate chords.
// It panics unless eps is finite and non-negative.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tolerance = eps }
}

// WithMaxTries bounds the number of draws of each rejection loop.
// A non-positive n removes the bound, in which case sampling from
// a degenerate chord may never return.
func WithMaxTries(n int) Option {
	return func(o *options) { o.maxTries = n }
}

// WithSource sets the source of randomness. The Walker becomes its
// only user: drawing from src elsewhere breaks reproducibility.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic(panicSourceNil)
	}

	return func(o *options) { o.src = src }
}

// WithSeed uses a MT19937 source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.src = sample.NewSource(seed) }
}

func gatherOptions(opts ...Option) options {
	o := options{
		kind:            DefaultKind,
		ballRadius:      DefaultBallRadius,
		scaleBallRadius: DefaultBallRadiusScaling,
		tolerance:       DefaultTolerance,
		maxTries:        DefaultMaxTries,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = sample.NewSource(DefaultSeed)
	}

	return o
}
