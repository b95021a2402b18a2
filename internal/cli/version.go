// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

// Version is set at link time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"

// cpuFeatures lists the instruction set extensions relevant to SHA-2
// block processing on the running machine.
func cpuFeatures() map[string]bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return map[string]bool{
			"avx2":  cpu.X86.HasAVX2,
			"bmi2":  cpu.X86.HasBMI2,
			"ssse3": cpu.X86.HasSSSE3,
		}
	case "arm64":
		return map[string]bool{
			"sha2":   cpu.ARM64.HasSHA2,
			"sha512": cpu.ARM64.HasSHA512,
		}
	}
	return map[string]bool{}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and CPU feature information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sha2sum %s %s/%s\n", Version, runtime.GOOS, runtime.GOARCH)
			features := cpuFeatures()
			for _, name := range []string{"avx2", "bmi2", "ssse3", "sha2", "sha512"} {
				if has, ok := features[name]; ok {
					fmt.Fprintf(out, "cpu.%s: %v\n", name, has)
				}
			}
			return nil
		},
	}
}
