// SPDX-License-Identifier: MIT

// Command drawgraph replays edit scripts against a planar graph and renders
// the result as SVG.
//
//	drawgraph run shapes.dg --svg shapes.svg
//	drawgraph info shapes.dg
//	drawgraph config > drawgraph.yaml
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		bad.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

var (
	good   = color.New(color.FgGreen)
	bad    = color.New(color.FgRed)
	subtle = color.New(color.FgHiBlack)
)
