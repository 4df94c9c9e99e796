// SPDX-License-Identifier: EPL-2.0

package source

import (
	"github.com/ik5/audpeak/audio"
	"github.com/ik5/audpeak/formats/aiff"
	"github.com/ik5/audpeak/formats/flac"
	"github.com/ik5/audpeak/formats/mp3"
	"github.com/ik5/audpeak/formats/vorbis"
	"github.com/ik5/audpeak/formats/wav"
)

// DefaultRegistry returns a registry with every built-in decoder. Each call
// returns a new registry, so callers may extend it freely.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", audio.FormatWAV, wav.Decoder{})
	r.Register("wave", audio.FormatWAV, wav.Decoder{})
	r.Register("aif", audio.FormatAIFF, aiff.Decoder{})
	r.Register("aiff", audio.FormatAIFF, aiff.Decoder{})
	r.Register("ogg", audio.FormatVorbis, vorbis.Decoder{})
	r.Register("mp3", audio.FormatMP3, mp3.Decoder{})
	r.Register("flac", audio.FormatFLAC, flac.Decoder{})

	return r
}
