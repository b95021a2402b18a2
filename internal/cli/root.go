// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package cli implements the sha2sum command line.
package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/superwindstorm/sha2"
	"github.com/superwindstorm/sha2/internal/logging"
)

const (
	defaultAlgorithm = "sha256"
	defaultLogLevel  = logging.WarnLevel
	stdinName        = "-"
)

type options struct {
	algorithm string
	check     bool
	quiet     bool
	logLevel  string
}

// NewRootCommand builds the sha2sum command writing results to out and
// diagnostics to errOut, reading stdin from in.
func NewRootCommand(out, errOut io.Writer, in io.Reader) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "sha2sum [flags] [file...]",
		Short: "Print or check SHA-2 checksums",
		Long: `Print or check SHA-2 checksums.

With no file, or when file is -, read standard input. Supported algorithms
are sha224, sha256, sha384, sha512, sha512/224 and sha512/256.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Init(opts.logLevel, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{stdinName}
			}
			if opts.check {
				var v sha2.Variant
				if cmd.Flags().Changed("algorithm") {
					var err error
					if v, err = sha2.ParseVariant(opts.algorithm); err != nil {
						return err
					}
				}
				return runCheck(cmd, v, opts.quiet, args)
			}
			v, err := sha2.ParseVariant(opts.algorithm)
			if err != nil {
				return err
			}
			return runSum(cmd, v, args)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(in)

	flags := cmd.Flags()
	flags.StringVarP(&opts.algorithm, "algorithm", "a", defaultAlgorithm, "hash algorithm")
	flags.BoolVarP(&opts.check, "check", "c", false, "read checksums from the files and check them")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "don't print OK for each successfully verified file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", defaultLogLevel, "level of logs (debug, info, warn, error)")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

// Execute runs the command against the process streams and arguments.
func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr, os.Stdin).Execute()
}

func runSum(cmd *cobra.Command, v sha2.Variant, names []string) error {
	var failed int
	for _, name := range names {
		sum, err := sumFile(cmd, v, name)
		if err != nil {
			logging.Print(logging.ERROR, "hash failed", logging.LogFormat{"file": name, "err": err})
			fmt.Fprintf(cmd.ErrOrStderr(), "sha2sum: %v\n", err)
			failed++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", hex.EncodeToString(sum), name)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d files could not be read", failed, len(names))
	}
	return nil
}

// sumFile hashes the named file, or the command input for "-".
func sumFile(cmd *cobra.Command, v sha2.Variant, name string) ([]byte, error) {
	var r io.Reader
	if name == stdinName {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrapf(err, "open %s", name)
		}
		defer f.Close()
		r = f
	}

	d := sha2.New(v)
	n, err := io.Copy(d, r)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	logging.Print(logging.DEBUG, "hashed", logging.LogFormat{"file": name, "bytes": n, "algorithm": v})
	return d.Finalize(), nil
}
