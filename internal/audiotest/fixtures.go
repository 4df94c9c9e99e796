// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"

	goaudio "github.com/go-audio/audio"
)

// WAV builds a canonical PCM WAV file. samples are interleaved signed
// values in the range of bits; 8-bit samples are stored unsigned.
func WAV(sampleRate, channels, bits int, samples []int) []byte {
	buf := new(bytes.Buffer)

	bps := bits / 8
	dataSize := uint32(len(samples) * bps)
	pad := dataSize % 2

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize+pad)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*channels*bps))
	binary.Write(buf, binary.LittleEndian, uint16(channels*bps))
	binary.Write(buf, binary.LittleEndian, uint16(bits))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	for _, s := range samples {
		putSample(buf, binary.LittleEndian, s, bps, bps == 1)
	}
	if pad > 0 {
		buf.WriteByte(0)
	}

	return buf.Bytes()
}

// AIFF builds a big-endian AIFF file.
func AIFF(sampleRate, channels, bits int, samples []int) []byte {
	return buildAIFF("AIFF", [4]byte{}, binary.BigEndian, sampleRate, channels, bits, samples)
}

// AIFC builds an AIFF-C file with the given compression type. Only "NONE"
// (big-endian) and "sowt" (little-endian) sample payloads are produced; any
// other type gets a big-endian payload.
func AIFC(compression string, sampleRate, channels, bits int, samples []int) []byte {
	var enc [4]byte
	copy(enc[:], compression)
	order := binary.ByteOrder(binary.BigEndian)
	if compression == "sowt" {
		order = binary.LittleEndian
	}
	return buildAIFF("AIFC", enc, order, sampleRate, channels, bits, samples)
}

func buildAIFF(form string, enc [4]byte, order binary.ByteOrder, sampleRate, channels, bits int, samples []int) []byte {
	bps := bits / 8
	frames := len(samples) / channels

	comm := new(bytes.Buffer)
	binary.Write(comm, binary.BigEndian, uint16(channels))
	binary.Write(comm, binary.BigEndian, uint32(frames))
	binary.Write(comm, binary.BigEndian, uint16(bits))
	rate := goaudio.IntToIEEEFloat(sampleRate)
	comm.Write(rate[:])
	if form == "AIFC" {
		comm.Write(enc[:])
		// empty pascal string plus its pad byte
		comm.Write([]byte{0, 0})
	}

	ssnd := new(bytes.Buffer)
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // offset
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // block size
	for _, s := range samples {
		putSample(ssnd, order, s, bps, false)
	}
	if ssnd.Len()%2 == 1 {
		ssnd.WriteByte(0)
	}

	body := new(bytes.Buffer)
	body.WriteString(form)
	writeChunk(body, "COMM", comm.Bytes())
	writeChunk(body, "SSND", ssnd.Bytes())

	out := new(bytes.Buffer)
	out.WriteString("FORM")
	binary.Write(out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

func writeChunk(buf *bytes.Buffer, id string, data []byte) {
	buf.WriteString(id)
	binary.Write(buf, binary.BigEndian, uint32(len(data)))
	buf.Write(data)
}

func putSample(buf *bytes.Buffer, order binary.ByteOrder, v, bps int, unsigned bool) {
	switch bps {
	case 1:
		if unsigned {
			buf.WriteByte(byte(v + 128))
		} else {
			buf.WriteByte(byte(int8(v)))
		}
	case 2:
		var b [2]byte
		order.PutUint16(b[:], uint16(int16(v)))
		buf.Write(b[:])
	case 3:
		u := uint32(int32(v))
		if order == binary.ByteOrder(binary.BigEndian) {
			buf.Write([]byte{byte(u >> 16), byte(u >> 8), byte(u)})
		} else {
			buf.Write([]byte{byte(u), byte(u >> 8), byte(u >> 16)})
		}
	}
}

// Sine returns frames of an interleaved sine wave at the given peak
// amplitude, one full cycle every period frames. Every channel carries the
// same signal.
func Sine(frames, channels, amplitude, period int) []int {
	out := make([]int, 0, frames*channels)
	for i := range frames {
		v := int(math.Round(float64(amplitude) * math.Sin(2*math.Pi*float64(i)/float64(period))))
		for range channels {
			out = append(out, v)
		}
	}
	return out
}

// Constant returns frames*channels copies of v.
func Constant(frames, channels, v int) []int {
	out := make([]int, frames*channels)
	for i := range out {
		out[i] = v
	}
	return out
}

// Silence returns frames*channels zero samples.
func Silence(frames, channels int) []int {
	return make([]int, frames*channels)
}
