// SPDX-License-Identifier: EPL-2.0

package config

import "time"

// Decode loop settings
const (
	TickInterval = 10 * time.Millisecond // Delay between two decode passes
	DecodeChunk  = 4096                  // Initial ByteStream capacity in bytes
)

// Envelope settings
const (
	PixelsPerSecond = 10  // One envelope column per 100ms of audio
	DefaultHeight   = 100 // Rows available to a rendered waveform
)

// Appearance
const (
	// Waveform green and the light grey used for file names
	WaveColor  = "#6BD825"
	LabelColor = "#E4E4E4"
)
