// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/drawgraph/config"
	"github.com/katalvlaran/drawgraph/core"
	"github.com/katalvlaran/drawgraph/script"
)

// app carries the state shared by all subcommands once the persistent
// flags are parsed.
type app struct {
	cfgPath string
	verbose bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "drawgraph",
		Short:         "Replay planar graph edit scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "editor settings (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "trace every command")

	root.AddCommand(newRunCmd(a), newInfoCmd(a), newConfigCmd(a))

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup() error {
	var err error
	if a.cfgPath == "" {
		a.cfg = config.Default()
	} else if a.cfg, err = config.Load(a.cfgPath); err != nil {
		return err
	}

	if a.verbose {
		a.log, err = zap.NewDevelopment()
	} else {
		a.log, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	return nil
}

// replay runs every script file, in order, against one fresh graph.
func (a *app) replay(cmd *cobra.Command, paths []string) (*script.Interpreter, error) {
	gopts, err := a.cfg.GraphOptions()
	if err != nil {
		return nil, err
	}
	in := script.New(core.NewGraph(gopts...),
		script.WithConfig(a.cfg),
		script.WithLogger(a.log),
		script.WithOutput(cmd.OutOrStdout()),
	)
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		err = in.Run(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		a.log.Debug("script done", zap.String("path", path))
	}

	return in, nil
}
