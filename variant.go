// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package sha2

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Variant selects one of the six SHA-2 functions.
type Variant uint8

// The six SHA-2 functions.
const (
	SHA224 Variant = 1 + iota
	SHA256
	SHA384
	SHA512
	SHA512_224
	SHA512_256
	maxVariant
)

// ErrUnknownVariant is the cause of every ParseVariant failure.
var ErrUnknownVariant = errors.New("sha2: unknown variant")

type core uint8

const (
	core256 core = iota
	core512
)

type variantInfo struct {
	name string
	core core
	size int
	iv   [8]uint64
}

var variants = [maxVariant]variantInfo{
	SHA224: {
		name: "SHA-224",
		core: core256,
		size: Size224,
		iv: [8]uint64{
			0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
			0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
		},
	},
	SHA256: {
		name: "SHA-256",
		core: core256,
		size: Size256,
		iv: [8]uint64{
			0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
			0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
		},
	},
	SHA384: {
		name: "SHA-384",
		core: core512,
		size: Size384,
		iv: [8]uint64{
			0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
			0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
		},
	},
	SHA512: {
		name: "SHA-512",
		core: core512,
		size: Size512,
		iv: [8]uint64{
			0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
			0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
		},
	},
	SHA512_224: {
		name: "SHA-512/224",
		core: core512,
		size: Size512_224,
		iv: [8]uint64{
			0x8c3d37c819544da2, 0x73e1996689dcd4d6, 0x1dfab7ae32ff9c82, 0x679dd514582f9fcf,
			0x0f6d2b697bd44da8, 0x77e36f7304c48942, 0x3f9d85a86a1d36c8, 0x1112e6ad91d692a1,
		},
	},
	SHA512_256: {
		name: "SHA-512/256",
		core: core512,
		size: Size512_256,
		iv: [8]uint64{
			0x22312194fc2bf72c, 0x9f555fa3c84c64c2, 0x2393b86b6f53b151, 0x963877195940eabd,
			0x96283ee2a88effe3, 0xbe5e1e2553863992, 0x2b0199fc2c85b8aa, 0x0eb72ddc81c52ca2,
		},
	},
}

// Available reports whether v is one of the six defined variants.
func (v Variant) Available() bool { return v > 0 && v < maxVariant }

func (v Variant) info() *variantInfo {
	if !v.Available() {
		panic("sha2: requested variant #" + strconv.Itoa(int(v)) + " is unavailable")
	}
	return &variants[v]
}

func (v Variant) String() string {
	if !v.Available() {
		return "Variant(" + strconv.Itoa(int(v)) + ")"
	}
	return variants[v].name
}

// Size returns the digest length in bytes.
func (v Variant) Size() int { return v.info().size }

// BlockSize returns the block length in bytes of the core v runs on.
func (v Variant) BlockSize() int {
	if v.info().core == core256 {
		return BlockSize256
	}
	return BlockSize512
}

// New returns a fresh digest for v. It panics if v is not available.
func (v Variant) New() *Digest { return New(v) }

// ParseVariant maps a name such as "sha256", "SHA-512/224", "384" or
// "sha512_256" to its Variant.
func ParseVariant(name string) (Variant, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "sha")
	s = strings.TrimPrefix(s, "-")
	s = strings.Replace(s, "_", "/", 1)
	switch s {
	case "224", "2-224":
		return SHA224, nil
	case "256", "2-256":
		return SHA256, nil
	case "384", "2-384":
		return SHA384, nil
	case "512", "2-512":
		return SHA512, nil
	case "512/224", "2-512/224":
		return SHA512_224, nil
	case "512/256", "2-512/256":
		return SHA512_256, nil
	}
	return 0, errors.Wrapf(ErrUnknownVariant, "%q", name)
}
