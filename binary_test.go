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

func TestResumeFromState(t *testing.T) {
	in := pattern(1000)
	for _, v := range allVariants {
		for _, split := range []int{0, 5, 64, 100, 128, 333} {
			d := New(v)
			d.Write(in[:split])
			state, err := d.MarshalBinary()
			require.NoError(t, err)
			assert.Len(t, state, marshaledHeader+v.BlockSize())

			r := New(v)
			require.NoError(t, r.UnmarshalBinary(state))
			r.Write(in[split:])
			assert.Equal(t, Hash(v, in), r.Finalize(), "%v split %d", v, split)
		}
	}
}

func TestUnmarshalRejects(t *testing.T) {
	d := New256()
	d.Write([]byte("some input"))
	good, err := d.MarshalBinary()
	require.NoError(t, err)

	other := New512()
	assert.Equal(t, ErrInvalidState, errors.Cause(other.UnmarshalBinary(good)))

	short := New256()
	assert.Equal(t, ErrInvalidState, errors.Cause(short.UnmarshalBinary(good[:len(good)-1])))

	badMagic := append([]byte(nil), good...)
	badMagic[0] = 'x'
	assert.Equal(t, ErrInvalidState, errors.Cause(New256().UnmarshalBinary(badMagic)))

	wide := append([]byte(nil), good...)
	wide[len(magic)+1] = 0xff
	assert.Equal(t, ErrInvalidState, errors.Cause(New256().UnmarshalBinary(wide)))

	var zero Digest
	assert.Equal(t, ErrInvalidState, errors.Cause(zero.UnmarshalBinary(good)))
}

func TestUnmarshalLeavesDigestOnError(t *testing.T) {
	d := New224()
	d.Write([]byte("Hello, "))
	before := d.Sum(nil)
	require.Error(t, d.UnmarshalBinary([]byte("sha2")))
	assert.Equal(t, before, d.Sum(nil))
}
