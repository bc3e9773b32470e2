// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"cogentcore.org/fancybar/base/errors"
	"cogentcore.org/fancybar/base/iox/imagex"
	"cogentcore.org/fancybar/chart"
	"cogentcore.org/fancybar/chart/chartfile"
	"cogentcore.org/fancybar/colors/colormap"
	"cogentcore.org/fancybar/render/rasterplot"
	"cogentcore.org/fancybar/render/svgplot"
)

type renderFlags struct {
	output        string
	format        string
	space         string
	width, height int
	watch         bool
}

func newRenderCmd() *cobra.Command {
	var rf renderFlags
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a chart file to SVG or a raster image",
		Long: "Render reads a chart in TOML or YAML and writes it as SVG, PNG, JPEG or BMP.\n" +
			"The format is taken from --format, then from the output extension.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := homedir.Expand(args[0])
			if err != nil {
				return err
			}
			if rf.output == "" {
				rf.output = strings.TrimSuffix(in, filepath.Ext(in)) + ".svg"
			}
			if rf.output, err = homedir.Expand(rf.output); err != nil {
				return err
			}
			if err := renderFile(in, rf); err != nil {
				return err
			}
			if !rf.watch {
				return nil
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return watch(ctx, in, func() {
				errors.Log(renderFile(in, rf))
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&rf.output, "output", "o", "", "output file (default: FILE with the extension .svg)")
	f.StringVar(&rf.format, "format", "", "output format: svg, png, jpeg or bmp")
	f.StringVar(&rf.space, "space", "", spaceUsage()+" (overrides the file)")
	f.IntVar(&rf.width, "width", 0, "output width in pixels (overrides the file)")
	f.IntVar(&rf.height, "height", 0, "output height in pixels (overrides the file)")
	f.BoolVarP(&rf.watch, "watch", "w", false, "render again whenever FILE changes")
	return cmd
}

// renderer returns the renderer for the given format name or,
// if it is empty, for the extension of the output path.
func renderer(format, output string) (chart.Renderer, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(output), ".")
	}
	if strings.EqualFold(format, "svg") {
		return svgplot.New(), nil
	}
	f, err := imagex.ExtToFormat(format)
	if err != nil {
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	r := rasterplot.New()
	r.Format = f
	return r, nil
}

// renderFile renders the chart file at in to rf.output.
func renderFile(in string, rf renderFlags) error {
	cf, err := chartfile.Load(in)
	if err != nil {
		return err
	}
	if rf.space != "" {
		cf.Options.Space = rf.space
	}
	sp, err := cf.Space()
	if err != nil {
		return err
	}
	opts, err := cf.ChartOptions()
	if err != nil {
		return err
	}
	l, err := chart.Build(cf.Chart, opts, colormap.New(sp))
	if err != nil {
		return err
	}
	r, err := renderer(rf.format, rf.output)
	if err != nil {
		return err
	}
	size := cf.Size()
	if rf.width > 0 {
		size.X = rf.width
	}
	if rf.height > 0 {
		size.Y = rf.height
	}
	if err := writeFile(rf.output, func(f *os.File) error {
		return r.Render(f, l, size)
	}); err != nil {
		return err
	}
	slog.Info("rendered chart", "input", in, "output", rf.output, "space", sp.Name(), "size", size)
	return nil
}

// writeFile writes to a temporary file next to path and renames it
// to path, so that viewers never see a partial file.
func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// watchDelay is how long to wait for more changes before rendering,
// as editors often write a file in several steps.
const watchDelay = 100 * time.Millisecond

// watch calls fn each time the file at path changes, until ctx is done.
// The directory is watched rather than the file, so that files
// replaced by renaming are still followed.
func watch(ctx context.Context, path string, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	slog.Info("watching for changes", "file", abs)

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			slog.Debug("file changed", "file", ev.Name, "op", ev.Op)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDelay, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			fn()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("file watcher error", "err", err)
		}
	}
}
