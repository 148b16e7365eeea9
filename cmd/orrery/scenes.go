// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"cogentcore.org/orrery/orbit/scenes"
	"github.com/spf13/cobra"
)

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, nm := range scenes.Names() {
				cfg, err := scenes.Open(nm)
				if err != nil {
					return err
				}
				bodies := make([]string, len(cfg.Bodies))
				for i := range cfg.Bodies {
					bodies[i] = cfg.Bodies[i].Name
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", nm, strings.Join(bodies, ", "))
			}
			return nil
		},
	}
}
