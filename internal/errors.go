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

package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

var malformedStr = "is not of the proper form"

var MalformedInterval = errors.New(fmt.Sprintf("sampling interval %s", malformedStr))
var MalformedPrecision = errors.New(fmt.Sprintf("precision parameter %s", malformedStr))
var MalformedPoint = errors.New(fmt.Sprintf("point %s", malformedStr))

var DimensionMismatch = errors.New("point dimension does not match the dimension of the walk")
var NoFeasibleSample = errors.New("no feasible sample found within the retry limit")
var UnboundedLine = errors.New("line does not intersect the body boundary in both directions")
var OutsideBody = errors.New("point lies outside the body")
