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
	"github.com/fentec-project/gowalk/data"
)

// NoCoord marks a Pivot that has not been through a coordinate
// step yet.
const NoCoord = -1

// Pivot is the state a coordinate hit-and-run chain carries from one
// step to the next: the point before the last step, the axis of the
// last step and the body's per-facet cache for that point. The
// current point differs from Prev at most in coordinate PrevCoord.
type Pivot struct {
	Prev      data.Vector
	PrevCoord int
	Lamdas    []float64
}

// NewPivot returns a fresh Pivot for body b. The first coordinate
// step taken with it recomputes the cache from scratch.
func NewPivot(b Body) *Pivot {
	return &Pivot{
		PrevCoord: NoCoord,
		Lamdas:    make([]float64, b.NumOfHyperplanes()),
	}
}

// Initialized reports whether a coordinate step has been taken
// with the pivot.
func (p *Pivot) Initialized() bool {
	return p.PrevCoord != NoCoord
}

// Reset makes the next coordinate step recompute the cache.
func (p *Pivot) Reset() {
	p.PrevCoord = NoCoord
}

// Copy returns a deep copy of the pivot.
func (p *Pivot) Copy() *Pivot {
	res := &Pivot{
		PrevCoord: p.PrevCoord,
		Lamdas:    append([]float64(nil), p.Lamdas...),
	}
	if p.Prev != nil {
		res.Prev = p.Prev.Copy()
	}

	return res
}
