// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"cogentcore.org/orrery/base/iox/yamlx"
	"cogentcore.org/orrery/loop"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/orbit"
	"github.com/spf13/cobra"
)

// Sample is the world position of one body after a number of frames.
type Sample struct {
	Frame int            `json:"frame" yaml:"frame"`
	Body  string         `json:"body" yaml:"body"`
	Pos   math32.Vector3 `json:"pos" yaml:"pos"`
}

type traceOptions struct {
	source
	frames int
	every  int
	format string
}

func newTraceCmd() *cobra.Command {
	o := &traceOptions{}
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print body world positions over fixed-step frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.trace(cmd.OutOrStdout())
		},
	}
	o.addFlags(cmd)
	f := cmd.Flags()
	f.IntVar(&o.frames, "frames", 100, "number of frames to simulate")
	f.IntVar(&o.every, "every", 0, "also sample every this many frames (0: first and last only)")
	f.StringVar(&o.format, "format", "table", "output format: table, json or yaml")
	return cmd
}

func (o *traceOptions) trace(w io.Writer) error {
	if o.frames < 0 {
		return fmt.Errorf("trace: negative --frames %d", o.frames)
	}
	h, err := o.build()
	if err != nil {
		return err
	}
	samples := sampleAt(h, 0, nil)
	loop.Simulate(h, loop.NewClock(loop.Fixed, h.FrameStep), o.frames, func(frame int) {
		if frame == o.frames || (o.every > 0 && frame%o.every == 0) {
			samples = sampleAt(h, frame, samples)
		}
	})
	switch o.format {
	case "table":
		return writeTable(w, samples)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(samples)
	case "yaml":
		return yamlx.Write(samples, w)
	}
	return fmt.Errorf("trace: unknown format %q (want table, json or yaml)", o.format)
}

// sampleAt appends the current position of every body of h.
func sampleAt(h *orbit.Hierarchy, frame int, samples []Sample) []Sample {
	for _, d := range h.Drawables() {
		samples = append(samples, Sample{Frame: frame, Body: d.Name, Pos: d.Pos})
	}
	return samples
}

func writeTable(w io.Writer, samples []Sample) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "frame\tbody\tx\ty\tz\t")
	for _, s := range samples {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\t%.4f\t\n", s.Frame, s.Body, s.Pos.X, s.Pos.Y, s.Pos.Z)
	}
	return tw.Flush()
}
