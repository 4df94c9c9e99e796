// SPDX-License-Identifier: EPL-2.0

package main

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ik5/audpeak"
	"github.com/ik5/audpeak/internal/ui"
	"github.com/ik5/audpeak/progressive"
	"github.com/ik5/audpeak/source"
	"github.com/ik5/audpeak/storage"
)

type watchCmd struct {
	Files []string `arg:"" help:"Audio files"`
	Width int      `help:"Number of envelope columns per file, 0 for ten per second of audio" default:"0"`
}

func (c *watchCmd) Run(g *globals) error {
	// decoders stay quiet while the screen is up, it shows failures itself
	quiet := log.New(io.Discard, "", 0)

	tracks := audpeak.NewTracks()
	defer tracks.Close()

	for _, path := range c.Files {
		src := source.New(storage.FileBackend{}, source.WithLogger(quiet))

		var opts []progressive.Option
		if c.Width > 0 {
			opts = append(opts, progressive.WithWidth(c.Width))
		}

		// failed tracks are kept and shown as Failed
		t, err := audpeak.NewTrack(src, path, opts...)
		if err != nil {
			g.logger.Printf("%s: %v", path, err)
		}
		tracks.Add(t)
	}

	_, err := tea.NewProgram(ui.NewWatchModel(tracks.All())).Run()
	return err
}
