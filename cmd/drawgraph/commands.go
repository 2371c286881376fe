// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/drawgraph/render"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		out    string
		scale  float64
		labels bool
	)
	cmd := &cobra.Command{
		Use:   "run SCRIPT...",
		Short: "Replay scripts and optionally write the drawing as SVG",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(scale > 0) || math.IsInf(scale, 0) {
				return fmt.Errorf("--scale=%v: must be a positive number", scale)
			}
			in, err := a.replay(cmd, args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			good.Fprintln(w, in.Graph().Stats())
			if out == "" {
				return nil
			}
			err = render.WriteFile(out, in.Graph(),
				render.WithScale(scale),
				render.WithLabels(labels),
				render.WithHighlight(in.Selection()),
				render.WithTitle(args[0]),
			)
			if err != nil {
				return err
			}
			subtle.Fprintln(w, "wrote", out)

			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "svg", "o", "", "write the drawing to this SVG file")
	cmd.Flags().Float64Var(&scale, "scale", render.DefaultScale, "SVG units per graph unit")
	cmd.Flags().BoolVar(&labels, "labels", false, "draw vertex labels")

	return cmd
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info SCRIPT...",
		Short: "Replay scripts and print the graph summary and history",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.replay(cmd, args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			good.Fprintln(w, in.Graph().Stats())
			subtle.Fprintln(w, "history:")

			return in.Exec("history")
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
