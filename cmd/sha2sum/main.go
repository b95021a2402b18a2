// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Command sha2sum prints or checks SHA-2 checksums.
package main

import (
	"fmt"
	"os"

	"github.com/superwindstorm/sha2/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sha2sum: %v\n", err)
		os.Exit(1)
	}
}
