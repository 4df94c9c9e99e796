// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audpeak/audio"
)

const headerSize = 44

// WritePCM writes a canonical PCM WAV holding pcm, which must be
// interleaved little-endian signed samples as produced by audio.Stream.Read.
// 8-bit samples are stored unsigned, as the format requires.
func WritePCM(w io.Writer, info audio.Info, pcm []byte) error {
	if err := info.Validate(); err != nil {
		return err
	}
	if len(pcm)%info.FrameSize() != 0 {
		return fmt.Errorf("%w: %d bytes, frame size %d", ErrMisalignedPCM, len(pcm), info.FrameSize())
	}

	numChannels := uint16(info.Channels)
	bitsPerSample := uint16(info.BitsPerSample)
	byteRate := uint32(info.BytesPerSecond())
	blockAlign := uint16(info.FrameSize())
	dataSize := uint32(len(pcm))
	riffSize := 36 + dataSize

	header := make([]byte, headerSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], pcmFormatInteger)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(info.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return err
	}

	if info.BitsPerSample != 8 {
		if _, err := w.Write(pcm); err != nil {
			return err
		}
		return padChunk(w, len(pcm))
	}

	const chunkSize = 8192
	buf := make([]byte, min(len(pcm), chunkSize))
	for i := 0; i < len(pcm); i += chunkSize {
		chunk := pcm[i:min(i+chunkSize, len(pcm))]
		for j, b := range chunk {
			buf[j] = b + 128
		}
		if _, err := w.Write(buf[:len(chunk)]); err != nil {
			return err
		}
	}

	return padChunk(w, len(pcm))
}

// RIFF chunks are word aligned; the pad byte is not counted in the chunk size.
func padChunk(w io.Writer, size int) error {
	if size%2 == 0 {
		return nil
	}
	if _, err := w.Write([]byte{0}); err != nil {
		return err
	}
	return nil
}
