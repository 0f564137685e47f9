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

// Package walk includes Markov chain random walks that sample points
// from the Gaussian density exp(-a*|x|^2) restricted to a convex body.
//
// Three kernels are provided, selected by Kind:
//
//   - HitAndRun picks a uniformly random direction and moves to a point
//     sampled from the density restricted to the chord of the body
//     through the current point in that direction.
//   - CoordinateHitAndRun does the same along a uniformly random axis.
//     It keeps a Pivot (the previous point, the previous axis and a
//     per-facet cache) so the body can update the chord incrementally.
//   - BallWalk proposes a uniform point in a ball around the current
//     point and accepts it with the Metropolis rule.
//
// A Walker applies a kernel to a caller-owned point. Walker.Generate
// emits a sequence of points, one per walkLen kernel applications.
// A Chain keeps the point and pivot of one chain between calls, which
// allows the precision parameter to change between steps, e.g. along
// a cooling schedule.
//
// All randomness comes from the single source configured for the
// Walker, so the output is reproducible for a fixed seed. A Walker
// is not safe for concurrent use; independent chains running in
// parallel need their own Walker.
package walk
