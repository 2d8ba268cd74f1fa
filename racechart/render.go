// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/aclements/racechart/chart"
	"github.com/aclements/racechart/internal/page"
	"github.com/aclements/racechart/internal/raster"
	"github.com/aclements/racechart/scene"
	"github.com/kballard/go-shellquote"
)

func init() {
	registerSubcommand("render", "write the chart as SVG, HTML, or PNG", cmdRender)
}

func cmdRender(e *env) error {
	cc, err := e.cfg.Chart()
	if err != nil {
		return err
	}
	container := scene.Elem("div").SetAttr("id", "container")
	c, err := chart.Build(container, e.records, cc)
	if err != nil {
		return err
	}

	out := e.stdout
	var f *os.File
	if e.cfg.Output != "" {
		if f, err = os.Create(e.cfg.Output); err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	bw := bufio.NewWriter(out)
	if err := writeChart(bw, c, e.cfg.Format, page.Options{Debug: e.cfg.Debug}); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if f != nil {
		if err := f.Close(); err != nil {
			return err
		}
	}
	e.log.Info().
		Str("format", e.cfg.Format).
		Str("variant", e.cfg.Variant).
		Int("dots", len(c.Dots())).
		Str("output", e.cfg.Output).
		Msg("rendered")

	if e.cfg.Viewer != "" {
		return openViewer(e, e.cfg.Viewer, e.cfg.Output)
	}
	return nil
}

func writeChart(w io.Writer, c *chart.Chart, format string, opts page.Options) error {
	switch format {
	case "svg", "":
		return scene.WriteSVG(w, c.Root())
	case "html":
		return page.Render(w, c, opts)
	case "png":
		return raster.Encode(w, c.Root())
	}
	return fmt.Errorf("unknown format %q", format)
}

// openViewer runs the shell-style command line viewer with path
// appended.
func openViewer(e *env, viewer, path string) error {
	if path == "" {
		return fmt.Errorf("-open requires an output file (-o)")
	}
	words, err := shellquote.Split(viewer)
	if err != nil {
		return fmt.Errorf("parsing viewer command %q: %w", viewer, err)
	}
	if len(words) == 0 {
		return fmt.Errorf("empty viewer command")
	}
	cmd := exec.Command(words[0], append(words[1:], path)...)
	cmd.Stdout = e.stdout
	cmd.Stderr = os.Stderr
	e.log.Debug().Strs("argv", cmd.Args).Msg("opening viewer")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", shellquote.Join(cmd.Args...), err)
	}
	return nil
}
