// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package sampler

//go:generate mockgen -source source.go -destination source_mock.go -package sampler

import (
	"encoding/binary"
	"math/rand"
	"time"

	"golang.org/x/crypto/salsa20"
	"golang.org/x/crypto/sha3"
)

// Source provides uniformly distributed values in [0,1).
// *rand.Rand satisfies this interface.
type Source interface {
	Float64() float64
}

// NewSeededSource returns a math/rand based source with a fixed seed.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// newAmbientSource returns a source seeded from the wall clock.
func newAmbientSource() Source {
	return NewSeededSource(time.Now().UnixNano())
}

// keyedBlockSize is the number of keystream bytes produced per refill.
const keyedBlockSize = 512

// keyedSource derives uniform values from the Salsa20 keystream of a key.
// The stream only depends on the key, so it is reproducible across
// platforms and Go releases.
type keyedSource struct {
	key   *[32]byte
	nonce uint64 // nonce of the next keystream block
	buf   []byte
	pos   int
}

// NewKeyedSource returns a deterministic source determined by key.
func NewKeyedSource(key *[32]byte) Source {
	return &keyedSource{
		key: key,
		buf: make([]byte, keyedBlockSize),
		pos: keyedBlockSize,
	}
}

// KeyFromPassphrase hashes a passphrase into a key for NewKeyedSource.
func KeyFromPassphrase(passphrase string) *[32]byte {
	key := sha3.Sum256([]byte(passphrase))
	return &key
}

// Float64 returns the next 53 random bits of the keystream scaled to [0,1).
func (s *keyedSource) Float64() float64 {
	if s.pos+8 > len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos : s.pos+8])
	s.pos += 8
	return float64(v>>11) / (1 << 53)
}

func (s *keyedSource) refill() {
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.nonce)
	s.nonce++

	in := make([]byte, keyedBlockSize) // input is initialized to zeros
	salsa20.XORKeyStream(s.buf, in, nonce, s.key)
	s.pos = 0
}
