// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command orrery animates orbital hierarchies in the terminal and
// prints, checks and lists their configurations.
package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"cogentcore.org/orrery/base/errors"
	"cogentcore.org/orrery/logx"
	"cogentcore.org/orrery/orbit"
	"cogentcore.org/orrery/orbit/scenes"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	logx.SetDefaultLogger()
	loadEnv()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// loadEnv loads .env files (default ".env") into the environment.
// Variables that are already set win.
func loadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not load environment file", "err", err)
	}
}

// globalOptions are the flags shared by all commands.
type globalOptions struct {
	verbose     bool
	veryVerbose bool
	quiet       bool
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	root := &cobra.Command{
		Use:          "orrery",
		Short:        "Orbital hierarchy simulator",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(g.veryVerbose, g.verbose, g.quiet)
			logx.SetLogger(cmd.ErrOrStderr())
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "log informational messages")
	pf.BoolVar(&g.veryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&g.quiet, "quiet", "q", false, "log errors only")
	root.AddCommand(newRunCmd(), newTraceCmd(), newValidateCmd(), newScenesCmd())
	return root
}

// source selects the scene: a config file, or else a built-in scene.
type source struct {
	scene  string
	config string
}

func (s *source) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.scene, "scene", envString("ORRERY_SCENE", "solar"), "built-in scene name (see scenes)")
	cmd.Flags().StringVar(&s.config, "config", "", "TOML or YAML scene file; overrides --scene")
}

// build returns the hierarchy of the selected scene.
func (s *source) build() (*orbit.Hierarchy, error) {
	if s.config != "" {
		return orbit.Open(s.config)
	}
	return scenes.Build(s.scene)
}

// envString returns the value of the environment variable key,
// or def when it is unset or empty.
func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envFloat is like [envString] for numbers. Invalid values are
// logged and ignored.
func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("ignoring invalid environment value", "key", key, "value", v)
		return def
	}
	return f
}
