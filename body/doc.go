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

// Package body includes convex bodies that answer the membership
// and line-intersection queries needed by the random walks in
// package walk.
//
// A line through point p with direction v is described by the
// signed distances (tPlus, tMinus) such that p + tPlus*v and
// p + tMinus*v are the points where the line leaves the body.
// tPlus is positive and tMinus is negative for interior points.
// A body that is unbounded along the line reports an infinite
// distance.
//
// Bodies are read-only after construction and can be queried
// concurrently. The per-facet cache passed to LineIntersectCoord
// belongs to the caller.
package body
