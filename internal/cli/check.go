// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package cli

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/superwindstorm/sha2"
	"github.com/superwindstorm/sha2/internal/logging"
)

// ErrChecksumMismatch is the cause returned when any checked file fails.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// ErrNoChecksums is returned when a checksum list has no usable line.
var ErrNoChecksums = errors.New("no properly formatted checksum lines found")

type checkLine struct {
	sum  []byte
	name string
}

// parseCheckLine splits "<hex>  <name>" or "<hex> *<name>".
func parseCheckLine(line string) (checkLine, bool) {
	i := strings.IndexByte(line, ' ')
	if i <= 0 || i+1 >= len(line) {
		return checkLine{}, false
	}
	sum, err := hex.DecodeString(line[:i])
	if err != nil {
		return checkLine{}, false
	}
	name := line[i+1:]
	if name[0] == ' ' || name[0] == '*' {
		name = name[1:]
	}
	if name == "" {
		return checkLine{}, false
	}
	return checkLine{sum: sum, name: name}, true
}

// variantForSize guesses the algorithm of an untagged checksum line.
func variantForSize(n int) (sha2.Variant, bool) {
	switch n {
	case sha2.Size224:
		return sha2.SHA224, true
	case sha2.Size256:
		return sha2.SHA256, true
	case sha2.Size384:
		return sha2.SHA384, true
	case sha2.Size512:
		return sha2.SHA512, true
	}
	return 0, false
}

type checkResult struct {
	total, failed, unreadable, malformed int
}

func runCheck(cmd *cobra.Command, v sha2.Variant, quiet bool, lists []string) error {
	var res checkResult
	for _, list := range lists {
		if err := checkList(cmd, v, quiet, list, &res); err != nil {
			return err
		}
	}

	errOut := cmd.ErrOrStderr()
	if res.malformed > 0 {
		fmt.Fprintf(errOut, "sha2sum: WARNING: %d line(s) improperly formatted\n", res.malformed)
	}
	if res.unreadable > 0 {
		fmt.Fprintf(errOut, "sha2sum: WARNING: %d listed file(s) could not be read\n", res.unreadable)
	}
	switch {
	case res.total == 0:
		return ErrNoChecksums
	case res.failed > 0 || res.unreadable > 0:
		return errors.Wrapf(ErrChecksumMismatch, "%d of %d computed checksums did NOT match",
			res.failed+res.unreadable, res.total)
	}
	return nil
}

func checkList(cmd *cobra.Command, v sha2.Variant, quiet bool, list string, res *checkResult) error {
	var r io.Reader
	if list == stdinName {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(list)
		if err != nil {
			return errors.Wrapf(err, "open %s", list)
		}
		defer f.Close()
		r = f
	}

	logging.Print(logging.INFO, "checking", logging.LogFormat{"list": list})
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cl, ok := parseCheckLine(line)
		lv := v
		if ok && !lv.Available() {
			lv, ok = variantForSize(len(cl.sum))
		}
		if !ok || len(cl.sum) != lv.Size() {
			res.malformed++
			continue
		}

		res.total++
		sum, err := sumFile(cmd, lv, cl.name)
		switch {
		case err != nil:
			res.unreadable++
			fmt.Fprintf(cmd.ErrOrStderr(), "sha2sum: %v\n", err)
			fmt.Fprintf(out, "%s: FAILED open or read\n", cl.name)
		case !bytes.Equal(sum, cl.sum):
			res.failed++
			fmt.Fprintf(out, "%s: FAILED\n", cl.name)
		case !quiet:
			fmt.Fprintf(out, "%s: OK\n", cl.name)
		}
	}
	return errors.Wrapf(scanner.Err(), "read %s", list)
}
