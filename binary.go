// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package sha2

import (
	"encoding"
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrInvalidState is the cause of every UnmarshalBinary failure.
var ErrInvalidState = errors.New("sha2: invalid state")

const (
	magic = "sha2"
	// magic, variant, state words, length counter; the block follows
	marshaledHeader = len(magic) + 1 + 8*8 + 16
)

var (
	_ encoding.BinaryMarshaler   = (*Digest)(nil)
	_ encoding.BinaryUnmarshaler = (*Digest)(nil)
)

// MarshalBinary snapshots d so that hashing can be resumed later by
// UnmarshalBinary on a Digest of the same variant.
func (d *Digest) MarshalBinary() ([]byte, error) {
	d.checkLive()
	chunk := d.BlockSize()
	b := make([]byte, marshaledHeader+chunk)
	copy(b, magic)
	b[len(magic)] = byte(d.v)
	off := len(magic) + 1
	for _, s := range d.h {
		binary.BigEndian.PutUint64(b[off:], s)
		off += 8
	}
	binary.BigEndian.PutUint64(b[off:], d.lenHi)
	binary.BigEndian.PutUint64(b[off+8:], d.lenLo)
	off += 16
	copy(b[off:], d.x[:d.nx])
	return b, nil
}

// UnmarshalBinary restores a state produced by MarshalBinary. The receiver
// must already be set up for the same variant, as by New.
func (d *Digest) UnmarshalBinary(data []byte) error {
	if !d.v.Available() {
		return errors.Wrap(ErrInvalidState, "receiver has no variant")
	}
	if len(data) < marshaledHeader || string(data[:len(magic)]) != magic {
		return errors.Wrap(ErrInvalidState, "bad identifier")
	}
	if v := Variant(data[len(magic)]); v != d.v {
		return errors.Wrapf(ErrInvalidState, "state is %v, digest is %v", v, d.v)
	}
	chunk := d.BlockSize()
	if len(data) != marshaledHeader+chunk {
		return errors.Wrapf(ErrInvalidState, "size %d, want %d", len(data), marshaledHeader+chunk)
	}

	off := len(magic) + 1
	var h [8]uint64
	for i := range h {
		h[i] = binary.BigEndian.Uint64(data[off:])
		if d.v.info().core == core256 && h[i]>>32 != 0 {
			return errors.Wrapf(ErrInvalidState, "word %d exceeds 32 bits", i)
		}
		off += 8
	}
	d.h = h
	d.lenHi = binary.BigEndian.Uint64(data[off:])
	d.lenLo = binary.BigEndian.Uint64(data[off+8:])
	off += 16
	d.x = [maxBlock]byte{}
	d.nx = int(d.lenLo % uint64(chunk))
	copy(d.x[:], data[off:off+d.nx])
	d.done = false
	return nil
}
