// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eval wires cobra commands around the num package for the bcnum
// driver binary.
package eval

import (
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	num "github.com/dnbern/bcnum"
)

// Root returns bcnum's top-level command, wired to sig so that a SIGINT/
// SIGTERM forwarded by main can interrupt a long-running operation
// mid-flight.
func Root(sig *atomic.Bool) *cobra.Command {
	root := &cobra.Command{
		Use:   "bcnum",
		Short: "Evaluate arbitrary-precision decimal expressions",
	}

	var scale, ibase, obase int
	var lineLen int

	evalCmd := &cobra.Command{
		Use:   "eval a op b",
		Short: "Evaluate a single binary expression: a {+,-,*,/,%,^,v} b",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := num.NewEnv(os.Stdout, sig)
			env.SetLineLen(lineLen)
			defer env.Flush()

			a, s, err := num.Parse(env, args[0], ibase, false)
			if s != num.Ok {
				return errors.Wrap(err, "bcnum: eval: parse a")
			}
			op := args[1]
			b, s, err := num.Parse(env, args[2], ibase, false)
			if s != num.Ok {
				return errors.Wrap(err, "bcnum: eval: parse b")
			}

			z := num.New(0)
			if s, err := apply(env, op, a, b, z, scale); err != nil {
				slog.Error("operation failed", "op", op, "status", s.String())
				return errors.Wrap(err, "bcnum: eval")
			}

			if _, err := num.Print(env, z, obase, true); err != nil {
				return errors.Wrap(err, "bcnum: eval: print")
			}
			return nil
		},
	}
	evalCmd.Flags().IntVar(&scale, "scale", 0, "fractional digits kept in the result")
	evalCmd.Flags().IntVar(&ibase, "ibase", 10, "input base")
	evalCmd.Flags().IntVar(&obase, "obase", 10, "output base")
	evalCmd.Flags().IntVar(&lineLen, "line-length", num.DefaultLineLen, "output line wrap column (0 disables wrapping)")

	root.AddCommand(evalCmd)
	return root
}

// apply dispatches op to the matching num package operation. Square root
// ("v", dc's convention) ignores b.
func apply(env *num.Env, op string, a, b, z *num.Number, scale int) (num.Status, error) {
	switch op {
	case "+":
		return num.Add(env, a, b, z, scale)
	case "-":
		return num.Sub(env, a, b, z, scale)
	case "*":
		return num.Mul(env, a, b, z, scale)
	case "/":
		return num.Div(env, a, b, z, scale)
	case "%":
		return num.Rem(env, a, b, z, scale)
	case "^":
		return num.Pow(env, a, b, z, scale)
	case "v":
		return num.Sqrt(env, a, z, scale)
	default:
		return num.Ok, errors.Errorf("bcnum: unknown operator %q", op)
	}
}
