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

package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	m, err := NewMatrix([]Vector{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatalf("Error during matrix creation: %v", err)
	}

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	prod, err := m.MulVec(Vector{1, 0, -1})
	assert.NoError(t, err)
	assert.Equal(t, Vector{-2, -2}, prod)
	_, err = m.MulVec(Vector{1})
	assert.Error(t, err)

	c := m.Copy()
	c[0][0] = 10
	assert.Equal(t, 1.0, m[0][0], "copy should not share memory")
}

func TestMatrix_Ragged(t *testing.T) {
	_, err := NewMatrix([]Vector{{1, 2}, {3}})
	assert.Error(t, err)
}

func TestMatrix_Empty(t *testing.T) {
	var m Matrix
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())

	c := NewConstantMatrix(2, 2, 1.5)
	assert.Equal(t, Matrix{{1.5, 1.5}, {1.5, 1.5}}, c)
}
