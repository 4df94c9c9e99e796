// SPDX-License-Identifier: EPL-2.0

package main

import (
	"strconv"

	"github.com/ik5/audpeak/internal/cli"
)

type infoCmd struct {
	File string `arg:"" help:"Audio file"`
}

func (c *infoCmd) Run(g *globals) error {
	src := g.newSource()
	if err := src.Open(c.File); err != nil {
		return err
	}
	defer src.Close()

	info := src.Info()

	cli.PrintInfo("File", c.File)
	cli.PrintInfo("Format", info.Format.String())
	cli.PrintInfo("Sample rate", strconv.Itoa(info.SampleRate)+" Hz")
	cli.PrintInfo("Channels", strconv.Itoa(info.Channels))
	cli.PrintInfo("Bits", strconv.Itoa(info.BitsPerSample))

	if info.TotalSamples > 0 {
		cli.PrintInfo("Frames", strconv.Itoa(info.Frames()))
		cli.PrintInfo("Duration", cli.FormatDuration(info.Duration()))
		cli.PrintInfo("PCM size", cli.FormatBytes(int64(info.TotalSamples*info.BytesPerSample())))
	} else {
		cli.PrintInfo("Frames", "unknown")
	}

	return nil
}
