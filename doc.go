// SPDX-License-Identifier: EPL-2.0

// Package audpeak builds waveform overviews of audio files without loading
// them into memory.
//
// A file is decoded a little at a time and reduced into a peak envelope:
// one pair of left and right magnitudes per display column. The envelope
// grows while decoding runs, so an overview can be drawn from the first
// tick on.
//
// # Supported Formats
//
// The file suffix selects the decoder (exact, case-sensitive match):
//   - WAV, 8/16/24-bit integer PCM (.wav, .wave) via formats/wav
//   - AIFF and uncompressed AIFC, 8/16/24-bit (.aif, .aiff) via formats/aiff
//   - Ogg Vorbis (.ogg) via formats/vorbis
//   - MP3 (.mp3) via formats/mp3
//   - FLAC, 8/16/24-bit (.flac) via formats/flac
//
// Compressed formats always decode to 16-bit PCM.
//
// # Quick Start
//
// The simplest way to get an overview is BuildEnvelope:
//
//	src := source.New(storage.FileBackend{})
//	env, err := audpeak.BuildEnvelope(src, "kick.wav")
//	if err != nil {
//	    // *audio.OpenError or *audio.DecodeError
//	}
//	left, right := env.Snapshot()
//
// # Progressive Decoding
//
// A Track decodes on external ticks and reports its status the way a
// track list would show it ("Reading..", "Ready", "Failed"):
//
//	track, err := audpeak.NewTrack(source.New(storage.FileBackend{}), "kick.wav")
//	if err != nil {
//	    // the track is Failed; show it anyway
//	}
//	go track.Run(ctx, progressive.NewTimeTicker(0))
//
//	// meanwhile, from a renderer:
//	env := track.Envelope()
//	for i := range env.Len() {
//	    l, r := env.At(i)
//	    // draw column i
//	}
//
// # Storage
//
// Files are reached through a storage.Backend. storage.FileBackend uses
// the local file system and storage.MemoryBackend serves byte slices;
// archives or network stores can be plugged in by implementing the five
// backend operations.
//
// # Writing WAV Files
//
// Decoded PCM can be written back as a canonical WAV file:
//
//	err := wav.WritePCM(out, src.Info(), pcm)
//
// See the individual subpackages for more detailed documentation.
package audpeak
