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

// Package sample includes samplers for sampling random values
// from different probability distributions.
//
// Package sample provides the Sampler interface
// along with different implementations of this interface.
// Its primary purpose is drawing float64 values from the
// one-dimensional Gaussian density exp(-a*t^2) truncated to an
// interval, which is the building block of the random walks in
// package walk.
//
// All samplers draw from an explicitly provided rand.Source.
// Sharing one source between the samplers of a chain makes the
// produced values reproducible for a fixed seed, as long as the
// calls are made in a fixed order. A source must not be shared
// between goroutines without external synchronization.
package sample
