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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

// NewSource returns a Mersenne Twister (MT19937) source
// seeded with seed.
func NewSource(seed uint64) rand.Source {
	src := prng.NewMT19937()
	src.Seed(seed)
	return src
}

// detBlockLen is the number of keystream bytes produced per refill.
const detBlockLen = 512

// DetSource is a deterministic source of pseudo-random values
// given by the salsa20 keystream. Two instances created with
// the same key produce the same sequence of values.
type DetSource struct {
	key   [32]byte
	nonce uint64
	buf   []byte
	pos   int
}

// NewDetSource returns an instance of DetSource. The key
// determines the pseudo-random generator.
func NewDetSource(key *[32]byte) *DetSource {
	s := &DetSource{
		key: *key,
		buf: make([]byte, detBlockLen),
	}
	s.refill()

	return s
}

// refill encrypts a block of zeros under the next nonce, so that
// consecutive blocks come from distinct keystreams.
func (s *DetSource) refill() {
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.nonce)
	in := make([]byte, detBlockLen) // input is initialized to zeros

	salsa20.XORKeyStream(s.buf, in, nonce, &s.key)
	s.nonce++
	s.pos = 0
}

// Uint64 returns the next 64 bits of the keystream.
func (s *DetSource) Uint64() uint64 {
	if s.pos+8 > len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos : s.pos+8])
	s.pos += 8

	return v
}

// Seed rekeys the source. The new key holds the little-endian
// encoding of seed followed by zeros.
func (s *DetSource) Seed(seed uint64) {
	s.key = [32]byte{}
	binary.LittleEndian.PutUint64(s.key[:8], seed)
	s.nonce = 0
	s.refill()
}
