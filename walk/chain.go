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

	"github.com/fentec-project/gowalk/data"
	"github.com/pkg/errors"
)

// Stats counts the steps of a Chain. Proposals are the steps whose
// candidate point lay in the body, which for the ball walk excludes
// proposals that left it. Accepted are the steps that moved to their
// candidate.
type Stats struct {
	Steps     int
	Proposals int
	Accepted  int
}

// AcceptanceRate returns the share of steps that moved to their
// proposal, or 0 before the first step.
func (s Stats) AcceptanceRate() float64 {
	if s.Steps == 0 {
		return 0
	}

	return float64(s.Accepted) / float64(s.Steps)
}

// Chain is a single run of a Walker. It owns its current point
// and pivot.
type Chain struct {
	w     *Walker
	p     data.Vector
	pivot *Pivot
	stats Stats
}

// NewChain starts a chain of walker w at a copy of start, which
// must be a finite point of the body.
func NewChain(w *Walker, start data.Vector) (*Chain, error) {
	if err := w.checkPoint(start); err != nil {
		return nil, err
	}
	if !w.body.IsIn(start) {
		return nil, errors.Wrapf(ErrOutsideBody, "starting point %v", start)
	}

	return &Chain{
		w:     w,
		p:     start.Copy(),
		pivot: NewPivot(w.body),
	}, nil
}

// Point returns a copy of the current point.
func (c *Chain) Point() data.Vector {
	return c.p.Copy()
}

// Pivot returns a copy of the pivot of the chain.
func (c *Chain) Pivot() *Pivot {
	return c.pivot.Copy()
}

// Stats returns the step counters of the chain.
func (c *Chain) Stats() Stats {
	return c.stats
}

// Step applies the kernel once with precision a.
func (c *Chain) Step(a float64) error {
	if err := checkPrecision(a); err != nil {
		return err
	}

	return c.step(a)
}

func (c *Chain) step(a float64) error {
	res, err := c.w.step(c.p, c.pivot, a)
	if err != nil {
		return err
	}
	c.stats.Steps++
	if res != outside {
		c.stats.Proposals++
	}
	if res == accepted {
		c.stats.Accepted++
	}

	return nil
}

// Generate continues the chain and returns rnum points, one after
// every walkLen steps.
func (c *Chain) Generate(rnum, walkLen int, a float64) ([]data.Vector, error) {
	if rnum < 0 {
		return nil, fmt.Errorf("number of points should be non-negative")
	}
	if walkLen < 1 {
		return nil, fmt.Errorf("walk length should be positive")
	}
	if err := checkPrecision(a); err != nil {
		return nil, err
	}

	points := make([]data.Vector, rnum)
	for i := range points {
		if c.w.opts.kind == CoordinateHitAndRun && !c.pivot.Initialized() {
			if err := c.step(a); err != nil {
				return nil, errors.Wrapf(err, "point %d", i)
			}
		}
		for j := 0; j < walkLen; j++ {
			if err := c.step(a); err != nil {
				return nil, errors.Wrapf(err, "point %d", i)
			}
		}
		points[i] = c.p.Copy()
	}

	return points, nil
}
