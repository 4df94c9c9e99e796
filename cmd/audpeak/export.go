// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/ik5/audpeak/audio"
	"github.com/ik5/audpeak/formats/wav"
	"github.com/ik5/audpeak/internal/cli"
	"github.com/ik5/audpeak/internal/config"
	"github.com/ik5/audpeak/source"
)

type exportCmd struct {
	File   string `arg:"" help:"Audio file"`
	Output string `arg:"" help:"Output WAV file"`
}

func (c *exportCmd) Run(g *globals) error {
	src := g.newSource()
	if err := src.Open(c.File); err != nil {
		return err
	}

	pcm, err := readAll(src)
	if cerr := src.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	if err != nil {
		return err
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := wav.WritePCM(w, src.Info(), pcm); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", c.Output, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", c.Output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	cli.PrintInfo("Wrote", fmt.Sprintf("%s (%s)", c.Output, cli.FormatBytes(int64(len(pcm)))))
	return nil
}

// readAll decodes src to the end, one second of audio per pass.
func readAll(src *source.Source) ([]byte, error) {
	info := src.Info()
	budget := max(info.BytesPerSecond(), info.FrameSize())

	bs := audio.NewByteStream(config.DecodeChunk)
	var pcm []byte

	for {
		n, err := src.Read(bs, budget)
		pcm = append(pcm, bs.Bytes()...)
		bs.Clear()

		if err != nil {
			return pcm, err
		}
		if n == 0 {
			return pcm, nil
		}
	}
}
