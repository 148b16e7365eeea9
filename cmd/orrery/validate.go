// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/orrery/orbit"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check scene files without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validate(cmd.OutOrStdout(), args)
		},
	}
}

// validate builds each file and reports the result on w. It fails if
// any file is invalid.
func validate(w io.Writer, files []string) error {
	bad := 0
	for _, fn := range files {
		h, err := orbit.Open(fn)
		if err != nil {
			bad++
			fmt.Fprintf(w, "FAIL %s\n     %v\n", fn, err)
			continue
		}
		fmt.Fprintf(w, "ok   %s (%d bodies)\n", fn, h.NumBodies())
	}
	if bad > 0 {
		return fmt.Errorf("validate: %d of %d files invalid", bad, len(files))
	}
	return nil
}
