// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package sha2

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant(t *testing.T) {
	cases := map[string]Variant{
		"sha224":      SHA224,
		"SHA-256":     SHA256,
		"384":         SHA384,
		"sha2-512":    SHA512,
		"SHA-512/224": SHA512_224,
		"sha512_256":  SHA512_256,
		" 512/256 ":   SHA512_256,
	}
	for name, want := range cases {
		got, err := ParseVariant(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	for _, name := range []string{"", "md5", "sha1", "512/384", "sha3-256"} {
		_, err := ParseVariant(name)
		require.Error(t, err, name)
		assert.Equal(t, ErrUnknownVariant, errors.Cause(err), name)
	}
}

func TestVariantNames(t *testing.T) {
	for _, v := range allVariants {
		got, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	assert.Equal(t, "Variant(0)", Variant(0).String())
	assert.False(t, maxVariant.Available())
	assert.Panics(t, func() { New(Variant(42)) })
}

func TestVariantTable(t *testing.T) {
	for _, v := range allVariants {
		info := v.info()
		for _, w := range info.iv {
			if info.core == core256 {
				assert.Zero(t, w>>32, "%v initial word exceeds 32 bits", v)
			}
		}
	}
	assert.Equal(t, 28, SHA512_224.Size())
	assert.Equal(t, BlockSize512, SHA512_224.BlockSize())
	assert.Equal(t, BlockSize256, SHA224.BlockSize())
}
