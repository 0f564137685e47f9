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

	"github.com/fentec-project/gowalk/data"
	"github.com/fentec-project/gowalk/sample"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Walker applies one of the walk kernels to points of a body.
type Walker struct {
	body Body
	n    int
	opts options

	src     rand.Source
	rnd     *rand.Rand
	trunc   *sample.TruncatedNormal
	uniform *sample.UniformRange
}

// NewWalker configures a new walk in body b of dimension n.
// Without options it is a hit-and-run walk seeded with DefaultSeed.
func NewWalker(b Body, n int, opts ...Option) (*Walker, error) {
	if b == nil {
		return nil, fmt.Errorf("body should not be nil")
	}
	if n < 1 {
		return nil, fmt.Errorf("dimension should be positive")
	}
	if b.Dimension() != n {
		return nil, errors.Wrapf(ErrDimensionMismatch, "body of dimension %d in a walk of dimension %d", b.Dimension(), n)
	}

	o := gatherOptions(opts...)

	return &Walker{
		body:    b,
		n:       n,
		opts:    o,
		src:     o.src,
		rnd:     rand.New(o.src),
		trunc:   sample.NewTruncatedNormal(o.src, o.maxTries),
		uniform: sample.NewUniform(o.src),
	}, nil
}

// Kind returns the kernel of the walk.
func (w *Walker) Kind() Kind {
	return w.opts.kind
}

// Dimension returns the dimension of the walk.
func (w *Walker) Dimension() int {
	return w.n
}

// Body returns the body the walk moves in.
func (w *Walker) Body() Body {
	return w.body
}

// BallRadius returns the radius of ball walk proposals for
// precision a. With scaling enabled it is 4r/sqrt(max(1, a)*n),
// otherwise the configured radius r.
func (w *Walker) BallRadius(a float64) float64 {
	r := w.opts.ballRadius
	if !w.opts.scaleBallRadius {
		return r
	}

	return 4 * r / math.Sqrt(math.Max(1, a)*float64(w.n))
}

func (w *Walker) checkPoint(p data.Vector) error {
	if err := p.CheckDims(w.n); err != nil {
		return err
	}

	return p.CheckFinite()
}

func checkPrecision(a float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) || a < 0 {
		return errors.Wrapf(ErrInvalidPrecision, "got a = %v", a)
	}

	return nil
}

// Step applies the kernel of the walk once to p, which is updated
// in place. The pivot is required by CoordinateHitAndRun, which
// initializes it on first use, and ignored by the other kernels.
// The point is expected to lie in the body.
func (w *Walker) Step(p data.Vector, pivot *Pivot, a float64) error {
	if err := w.checkPoint(p); err != nil {
		return err
	}
	if err := checkPrecision(a); err != nil {
		return err
	}
	_, err := w.step(p, pivot, a)

	return err
}

// outcome of a single step.
type outcome int

const (
	// outside means a ball walk proposal left the body.
	outside outcome = iota
	rejected
	accepted
)

// step applies the kernel once. The hit-and-run kernels always
// accept.
func (w *Walker) step(p data.Vector, pivot *Pivot, a float64) (outcome, error) {
	switch w.opts.kind {
	case CoordinateHitAndRun:
		if err := w.checkPivot(pivot); err != nil {
			return rejected, err
		}
		return accepted, w.coordHitAndRun(p, pivot, a)
	case BallWalk:
		return w.ballWalk(p, a)
	default:
		return accepted, w.hitAndRun(p, a)
	}
}

func (w *Walker) checkPivot(pivot *Pivot) error {
	if pivot == nil {
		return fmt.Errorf("coordinate hit-and-run requires a pivot")
	}
	if len(pivot.Lamdas) != w.body.NumOfHyperplanes() {
		return errors.Wrapf(ErrDimensionMismatch, "pivot cache of length %d for %d hyperplanes",
			len(pivot.Lamdas), w.body.NumOfHyperplanes())
	}
	if !pivot.Initialized() {
		return nil
	}
	if pivot.PrevCoord < 0 || pivot.PrevCoord >= w.n {
		return fmt.Errorf("pivot coordinate %d out of range", pivot.PrevCoord)
	}

	return errors.Wrap(pivot.Prev.CheckDims(w.n), "pivot point")
}

// chord checks the distances returned by a line intersection and
// reports whether the chord is long enough to move along.
func (w *Walker) chord(tPlus, tMinus float64) (bool, error) {
	if math.IsNaN(tPlus) || math.IsNaN(tMinus) || math.IsInf(tPlus, 0) || math.IsInf(tMinus, 0) {
		return false, errors.Wrapf(ErrUnboundedLine, "got [%v, %v]", tMinus, tPlus)
	}

	return tPlus-tMinus > w.opts.tolerance, nil
}

func (w *Walker) hitAndRun(p data.Vector, a float64) error {
	v, err := data.NewRandomDirection(w.n, w.src)
	if err != nil {
		return err
	}
	tPlus, tMinus := w.body.LineIntersect(p, v)
	move, err := w.chord(tPlus, tMinus)
	if err != nil || !move {
		return err
	}

	next, err := w.trunc.SampleLine(p.AddScaled(tMinus, v), p.AddScaled(tPlus, v), a)
	if err != nil {
		return errors.Wrap(err, "hit-and-run step")
	}
	copy(p, next)

	return nil
}

// coordHitAndRun leaves the pivot uninitialized when it fails, as
// the body may have updated the cache for a step that was not taken.
func (w *Walker) coordHitAndRun(p data.Vector, pivot *Pivot, a float64) error {
	coord := w.rnd.Intn(w.n)
	init := !pivot.Initialized()
	prevCoord := pivot.PrevCoord
	if init {
		pivot.Prev = p.Copy()
		prevCoord = coord
	}

	tPlus, tMinus := w.body.LineIntersectCoord(p, pivot.Prev, coord, prevCoord, pivot.Lamdas, init)
	move, err := w.chord(tPlus, tMinus)
	if err != nil {
		pivot.Reset()
		return err
	}

	dis := p[coord]
	if move {
		dis, err = w.trunc.SampleCoord(p[coord]+tMinus, p[coord]+tPlus, a)
		if err != nil {
			pivot.Reset()
			return errors.Wrap(err, "coordinate hit-and-run step")
		}
	}

	copy(pivot.Prev, p)
	p.Set(coord, dis)
	pivot.PrevCoord = coord

	return nil
}

func (w *Walker) ballWalk(p data.Vector, a float64) (outcome, error) {
	d, err := data.NewRandomPointInBall(w.n, w.BallRadius(a), w.src)
	if err != nil {
		return rejected, err
	}
	y := p.Add(d)
	if !w.body.IsIn(y) {
		return outside, nil
	}

	u, err := w.uniform.Sample()
	if err != nil {
		return rejected, err
	}
	if u > math.Exp(-a*(y.SquaredNorm()-p.SquaredNorm())) {
		return rejected, nil
	}
	copy(p, y)

	return accepted, nil
}

// Generate runs a walk from start and returns rnum points, one after
// every walkLen steps. The coordinate kernel takes one extra step
// before the first point to initialize its pivot. The start point
// is not modified.
func (w *Walker) Generate(start data.Vector, rnum, walkLen int, a float64) ([]data.Vector, error) {
	c, err := NewChain(w, start)
	if err != nil {
		return nil, err
	}

	return c.Generate(rnum, walkLen, a)
}
