// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	helloSHA256 = "315f5bdb76d078c43b8ac0064e4a0164612b1fce77c869345bfc94c75894edd3"
	helloSHA224 = "8552d8b7a7dc5476cb9e25dee69a8091290764b7f2a64fe6e78e9568"
	emptySHA512 = "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand(&out, &errOut, strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestSumStdin(t *testing.T) {
	out, _, err := run(t, "Hello, world!")
	require.NoError(t, err)
	assert.Equal(t, helloSHA256+"  -\n", out)

	out, _, err = run(t, "Hello, world!", "-a", "sha224")
	require.NoError(t, err)
	assert.Equal(t, helloSHA224+"  -\n", out)
}

func TestSumFiles(t *testing.T) {
	dir := t.TempDir()
	hello := writeFile(t, dir, "hello.txt", "Hello, world!")
	empty := writeFile(t, dir, "empty", "")

	out, _, err := run(t, "", "--algorithm", "SHA-512", empty)
	require.NoError(t, err)
	assert.Equal(t, emptySHA512+"  "+empty+"\n", out)

	out, errOut, err := run(t, "", hello, filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.Equal(t, helloSHA256+"  "+hello+"\n", out)
	assert.Contains(t, errOut, "missing")
}

func TestUnknownAlgorithm(t *testing.T) {
	_, _, err := run(t, "", "-a", "md5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "md5")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	hello := writeFile(t, dir, "hello.txt", "Hello, world!")
	other := writeFile(t, dir, "other.txt", "something else")
	list := writeFile(t, dir, "SUMS",
		"# comment\n"+
			helloSHA256+"  "+hello+"\n"+
			helloSHA224+" *"+hello+"\n"+
			"not a checksum line\n")

	out, errOut, err := run(t, "", "-c", list)
	require.NoError(t, err)
	assert.Equal(t, hello+": OK\n"+hello+": OK\n", out)
	assert.Contains(t, errOut, "1 line(s) improperly formatted")

	out, _, err = run(t, "", "-c", "-q", list)
	require.NoError(t, err)
	assert.Empty(t, out)

	bad := writeFile(t, dir, "BAD", helloSHA256+"  "+other+"\n")
	out, _, err = run(t, "", "--check", bad)
	require.Error(t, err)
	assert.Equal(t, ErrChecksumMismatch, errors.Cause(err))
	assert.Equal(t, other+": FAILED\n", out)
}

func TestCheckExplicitAlgorithm(t *testing.T) {
	dir := t.TempDir()
	hello := writeFile(t, dir, "hello.txt", "Hello, world!")

	// SHA-512/256 digests have the SHA-256 length and need -a
	line := "330c723f25267587db0b9f493463e017011239169cb57a6db216c63774367115  " + hello + "\n"

	out, _, err := run(t, line, "-c", "-a", "sha512/256")
	require.NoError(t, err)
	assert.Equal(t, hello+": OK\n", out)

	_, _, err = run(t, line, "-c")
	assert.Equal(t, ErrChecksumMismatch, errors.Cause(err))
}

func TestCheckEmptyList(t *testing.T) {
	_, _, err := run(t, "\n# nothing\n", "-c")
	assert.Equal(t, ErrNoChecksums, err)
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := run(t, "", "--log-level", "loud")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "sha2sum "+Version+" "))
}

func TestParseCheckLine(t *testing.T) {
	cl, ok := parseCheckLine(helloSHA224 + "  name with spaces")
	require.True(t, ok)
	assert.Equal(t, "name with spaces", cl.name)
	assert.Len(t, cl.sum, 28)

	for _, line := range []string{"", "abc", "zz  file", helloSHA256 + " ", helloSHA256 + "  "} {
		_, ok := parseCheckLine(line)
		assert.False(t, ok, line)
	}
}
