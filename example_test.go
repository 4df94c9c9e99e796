// SPDX-License-Identifier: EPL-2.0

package audpeak_test

import (
	"fmt"

	"github.com/ik5/audpeak"
	"github.com/ik5/audpeak/source"
	"github.com/ik5/audpeak/storage"
)

// Example_buildEnvelope decodes a whole file and prints its overview.
func Example_buildEnvelope() {
	src := source.New(storage.FileBackend{})

	env, err := audpeak.BuildEnvelope(src, "formats/wav/testdata/kick.wav")
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	left, right := env.Snapshot()
	fmt.Println(left)
	fmt.Println(right)
	// Output:
	// [32767 7355]
	// [32767 7355]
}

// Example_track drives a track by hand, the way a UI timer would.
func Example_track() {
	track, err := audpeak.NewTrack(source.New(storage.FileBackend{}), "formats/wav/testdata/kick.wav")
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	defer track.Close()

	fmt.Println(track.Status())
	for track.Status() == audpeak.StatusReading {
		if _, err := track.Tick(); err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}
	fmt.Printf("%s, %d columns, %.0f%%\n", track.Status(), track.Envelope().Len(), track.Progress()*100)
	// Output:
	// Reading..
	// Ready, 2 columns, 100%
}
