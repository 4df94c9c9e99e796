// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"fmt"

	"github.com/ik5/audpeak/audio"
)

// Example_registry shows how decoders are resolved by file suffix.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("wav", audio.FormatWAV, nil)
	registry.Register("ogg", audio.FormatVorbis, nil)

	for _, path := range []string{"kick.wav", "pad.ogg", "lead.WAV"} {
		format, _, ok := registry.Lookup(path)
		fmt.Printf("%s: %v %v\n", path, format, ok)
	}
	// Output:
	// kick.wav: wav true
	// pad.ogg: ogg vorbis true
	// lead.WAV: unknown false
}

// Example_byteStream shows the producer / consumer use of ByteStream.
func Example_byteStream() {
	bs := audio.NewByteStream(16)

	bs.PutSample(1000, 2)
	bs.PutSample(-1000, 2)
	fmt.Printf("buffered: %d bytes\n", bs.Len())

	fmt.Printf("frame: % x\n", bs.Next(4))

	if _, err := bs.Get(); errors.Is(err, audio.ErrStreamEmpty) {
		fmt.Println("drained")
	}
	// Output:
	// buffered: 4 bytes
	// frame: e8 03 18 fc
	// drained
}

func ExampleInfo() {
	info := audio.Info{
		Format:        audio.FormatAIFF,
		Channels:      2,
		SampleRate:    48000,
		BitsPerSample: 16,
		TotalSamples:  96000,
	}

	fmt.Println(info)
	fmt.Println("bytes per second:", info.BytesPerSecond())
	// Output:
	// aiff: 48000 Hz, 2 ch, 16 bit, 48000 frames (1s)
	// bytes per second: 192000
}
