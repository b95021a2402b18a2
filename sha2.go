// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package sha2 implements the SHA-224, SHA-256, SHA-384, SHA-512,
// SHA-512/224 and SHA-512/256 hash algorithms as defined in FIPS 180-4.
//
// All six variants share one streaming Digest: SHA-224 and SHA-256 run on
// the 32-bit compression function over 64-byte blocks, the others on the
// 64-bit function over 128-byte blocks.
//
// A Digest is not safe for concurrent use. The byte counter is 128 bits
// wide; inputs of 2^125 bytes or more are not supported and not checked.
package sha2

import (
	"hash"
	"math/bits"
)

// Digest is the running state of one SHA-2 computation.
type Digest struct {
	h            [8]uint64
	x            [maxBlock]byte
	nx           int
	lenHi, lenLo uint64
	v            Variant
	done         bool
}

var _ hash.Hash = (*Digest)(nil)

// New returns a new Digest computing the given variant.
// It panics if v is not available.
func New(v Variant) *Digest {
	v.info()
	d := &Digest{v: v}
	d.Reset()
	return d
}

// New224 returns a new Digest computing the SHA-224 checksum.
func New224() *Digest { return New(SHA224) }

// New256 returns a new Digest computing the SHA-256 checksum.
func New256() *Digest { return New(SHA256) }

// New384 returns a new Digest computing the SHA-384 checksum.
func New384() *Digest { return New(SHA384) }

// New512 returns a new Digest computing the SHA-512 checksum.
func New512() *Digest { return New(SHA512) }

// New512_224 returns a new Digest computing the SHA-512/224 checksum.
func New512_224() *Digest { return New(SHA512_224) }

// New512_256 returns a new Digest computing the SHA-512/256 checksum.
func New512_256() *Digest { return New(SHA512_256) }

// Reset restores the freshly created state.
func (d *Digest) Reset() {
	d.h = d.v.info().iv
	d.x = [maxBlock]byte{}
	d.nx = 0
	d.lenHi, d.lenLo = 0, 0
	d.done = false
}

// Variant returns the function d computes.
func (d *Digest) Variant() Variant { return d.v }

// Size returns the size of hash digest
func (d *Digest) Size() int { return d.v.Size() }

// BlockSize return the bytes of one block
func (d *Digest) BlockSize() int { return d.v.BlockSize() }

// Len returns the number of bytes absorbed so far, saturating at the
// maximum uint64 when the counter has grown past it.
func (d *Digest) Len() uint64 {
	if d.lenHi != 0 {
		return ^uint64(0)
	}
	return d.lenLo
}

// Write absorbs p. It never returns an error.
func (d *Digest) Write(p []byte) (nn int, err error) {
	d.Update(p)
	return len(p), nil
}

// Update absorbs p. Whole blocks are compressed straight from p; a tail
// shorter than one block stays buffered until the next call.
func (d *Digest) Update(p []byte) {
	d.checkLive()
	var carry uint64
	d.lenLo, carry = bits.Add64(d.lenLo, uint64(len(p)), 0)
	d.lenHi += carry

	chunk := d.BlockSize()
	if d.nx > 0 {
		n := copy(d.x[d.nx:chunk], p)
		d.nx += n
		if d.nx == chunk {
			d.block(d.x[:chunk])
			d.nx = 0
		}
		p = p[n:]
	}

	if len(p) >= chunk {
		n := len(p) &^ (chunk - 1)
		d.block(p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
}

// Sum appends the digest of the data so far to in. The internal state
// remains the same.
func (d *Digest) Sum(in []byte) []byte {
	d.checkLive()
	// checkSum will change internal states, so make a copy
	d0 := *d
	return append(in, d0.checkSum()...)
}

// Finalize returns the digest and ends the life of d. Later calls to
// Write, Update, Sum or Finalize panic until d is Reset.
func (d *Digest) Finalize() []byte {
	d.checkLive()
	sum := d.checkSum()
	d.h = [8]uint64{}
	d.x = [maxBlock]byte{}
	d.done = true
	return sum
}

// FinalizeReset returns the digest and resets d for reuse.
func (d *Digest) FinalizeReset() []byte {
	d.checkLive()
	sum := d.checkSum()
	d.Reset()
	return sum
}

func (d *Digest) checkLive() {
	if d.done {
		panic("sha2: use of finalized " + d.v.String() + " digest")
	}
}

// Hash returns the checksum of data under v.
func Hash(v Variant, data []byte) []byte {
	d := Digest{v: v}
	d.Reset()
	d.Update(data)
	return d.checkSum()
}

// Sum224 returns the SHA-224 checksum of the data.
func Sum224(data []byte) (sum [Size224]byte) {
	copy(sum[:], Hash(SHA224, data))
	return
}

// Sum256 returns the SHA-256 checksum of the data.
func Sum256(data []byte) (sum [Size256]byte) {
	copy(sum[:], Hash(SHA256, data))
	return
}

// Sum384 returns the SHA-384 checksum of the data.
func Sum384(data []byte) (sum [Size384]byte) {
	copy(sum[:], Hash(SHA384, data))
	return
}

// Sum512 returns the SHA-512 checksum of the data.
func Sum512(data []byte) (sum [Size512]byte) {
	copy(sum[:], Hash(SHA512, data))
	return
}

// Sum512_224 returns the SHA-512/224 checksum of the data.
func Sum512_224(data []byte) (sum [Size512_224]byte) {
	copy(sum[:], Hash(SHA512_224, data))
	return
}

// Sum512_256 returns the SHA-512/256 checksum of the data.
func Sum512_256(data []byte) (sum [Size512_256]byte) {
	copy(sum[:], Hash(SHA512_256, data))
	return
}
