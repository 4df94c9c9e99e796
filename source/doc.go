// SPDX-License-Identifier: EPL-2.0

// Package source opens audio files through a storage.Backend and streams
// their PCM.
//
// The decoder is chosen by file suffix, matched exactly and
// case-sensitively:
//
//	.wav .wave   WAV (go-audio/wav)
//	.aif .aiff   AIFF and AIFC (go-audio/aiff)
//	.ogg         Ogg Vorbis (jfreymuth/oggvorbis)
//	.mp3         MP3 (hajimehoshi/go-mp3)
//	.flac        FLAC (mewkiz/flac)
//
// A path with any other suffix is rejected before the backend sees it.
//
//	src := source.New(storage.FileBackend{})
//	if err := src.Open("kick.wav"); err != nil {
//		// *audio.OpenError
//	}
//	defer src.Close()
//
//	bs := audio.NewByteStream(0)
//	for {
//		n, err := src.Read(bs, src.Info().BytesPerSecond())
//		...
//		if n == 0 {
//			break
//		}
//	}
//
// Open failures are also written to the logger given with WithLogger.
package source
