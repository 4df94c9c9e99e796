// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ik5/audpeak/internal/cli"
	"github.com/ik5/audpeak/source"
	"github.com/ik5/audpeak/storage"
)

// version is set via ldflags at build time
var version = "dev"

// globals are bound into every command's Run
type globals struct {
	logger *log.Logger
}

// newSource opens files from the local file system
func (g *globals) newSource() *source.Source {
	return source.New(storage.FileBackend{}, source.WithLogger(g.logger))
}

var CLI struct {
	Quiet   bool             `help:"Do not log open and decode errors" short:"q"`
	Version kong.VersionFlag `help:"Show version information"`

	Peaks  peaksCmd  `cmd:"" help:"Print the peak envelope of an audio file"`
	Info   infoCmd   `cmd:"" help:"Show the format of an audio file"`
	Export exportCmd `cmd:"" help:"Decode an audio file into a PCM WAV file"`
	Watch  watchCmd  `cmd:"" help:"Decode files progressively and show their waveforms"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("audpeak"),
		kong.Description("Build waveform overviews of WAV, AIFF, Ogg Vorbis, MP3 and FLAC files."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	var out io.Writer = os.Stderr
	if CLI.Quiet {
		out = io.Discard
	}
	g := &globals{logger: log.New(out, "audpeak: ", 0)}

	if err := ctx.Run(g); err != nil {
		cli.PrintError(fmt.Sprintf("%s: %v", ctx.Command(), err))
		os.Exit(1)
	}
}
