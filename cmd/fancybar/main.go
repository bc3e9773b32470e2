// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fancybar renders grouped, stacked bar charts whose
// segments are shaded from color pairs, and prints the colormaps
// and palettes they are built from.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"cogentcore.org/fancybar/base/errors"
	"cogentcore.org/fancybar/base/logx"
)

var version = "v0.1.0"

type rootFlags struct {
	vv, v, q bool
}

// apply sets the log level from the flags. Without any flag the
// build default of [logx.UserLevel] is kept.
func (rf rootFlags) apply() {
	if rf.vv || rf.v || rf.q {
		logx.UserLevel = logx.LevelFromFlags(rf.vv, rf.v, rf.q)
	}
}

func newRootCmd() *cobra.Command {
	var rf rootFlags
	cmd := &cobra.Command{
		Use:           "fancybar",
		Short:         "fancybar renders stacked bar charts shaded from color pairs",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			rf.apply()
		},
	}
	pf := cmd.PersistentFlags()
	pf.BoolVar(&rf.vv, "vv", false, "print debug messages")
	pf.BoolVarP(&rf.v, "verbose", "v", false, "print informational messages")
	pf.BoolVarP(&rf.q, "quiet", "q", false, "print only errors")

	cmd.AddCommand(newRenderCmd(), newColormapCmd(), newPalettesCmd(), newExampleCmd())
	return cmd
}

func main() {
	logx.SetDefaultLogger()
	if err := newRootCmd().Execute(); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}
