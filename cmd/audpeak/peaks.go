// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ik5/audpeak"
	"github.com/ik5/audpeak/progressive"
)

type peaksCmd struct {
	File  string `arg:"" help:"Audio file (.wav, .wave, .aif, .aiff, .ogg, .mp3, .flac)"`
	Width int    `help:"Number of envelope columns, 0 for ten per second of audio" default:"0"`
	JSON  bool   `name:"json" help:"Print the envelope as JSON"`
}

// envelopeJSON is the --json document
type envelopeJSON struct {
	File       string `json:"file"`
	Format     string `json:"format"`
	SampleRate int    `json:"sample_rate"`
	Channels   int    `json:"channels"`
	Bits       int    `json:"bits_per_sample"`
	Frames     int    `json:"frames"`
	Left       []int  `json:"left"`
	Right      []int  `json:"right"`
}

func (c *peaksCmd) Run(g *globals) error {
	src := g.newSource()

	var opts []progressive.Option
	opts = append(opts, progressive.WithLogger(g.logger))
	if c.Width > 0 {
		opts = append(opts, progressive.WithWidth(c.Width))
	}

	env, err := audpeak.BuildEnvelope(src, c.File, opts...)
	if err != nil {
		return err
	}

	left, right := env.Snapshot()
	info := src.Info()

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(envelopeJSON{
			File:       c.File,
			Format:     info.Format.String(),
			SampleRate: info.SampleRate,
			Channels:   info.Channels,
			Bits:       info.BitsPerSample,
			Frames:     info.Frames(),
			Left:       left,
			Right:      right,
		})
	}

	for i := range left {
		fmt.Printf("%d\t%d\t%d\n", i, left[i], right[i])
	}
	return nil
}
