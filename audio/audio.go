// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"sort"
	"sync"
)

// Stream is an open, decoding audio stream. Every container variant
// implements it the same way.
type Stream interface {
	// Info describes the stream. It is valid for the stream's lifetime.
	Info() Info
	// Read appends at most budget bytes of interleaved, little-endian,
	// signed PCM at Info().BytesPerSample() to dst. Only whole frames are
	// produced. It returns 0 once the stream is exhausted.
	Read(dst *ByteStream, budget int) (int, error)
	// Close releases decoder state. It does not close the underlying reader.
	Close() error
}

// Decoder parses a container header and returns a Stream positioned at the
// first sample.
type Decoder interface {
	Decode(r io.ReadSeeker) (Stream, error)
}

type codec struct {
	format  Format
	decoder Decoder
}

// Registry maps file suffixes (without the dot, case-sensitive) to decoders.
type Registry struct {
	codecs map[string]codec

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]codec),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(ext string, f Format, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[ext] = codec{format: f, decoder: d}
}

func (r *Registry) Get(ext string) (Format, Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	c, ok := r.codecs[ext]
	return c.format, c.decoder, ok
}

// Lookup resolves the decoder for path by its suffix.
func (r *Registry) Lookup(path string) (Format, Decoder, bool) {
	ext := filepath.Ext(path)
	if len(ext) < 2 {
		return FormatUnknown, nil, false
	}
	return r.Get(ext[1:])
}

// Extensions lists the registered suffixes in sorted order.
func (r *Registry) Extensions() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	exts := make([]string, 0, len(r.codecs))
	for ext := range r.codecs {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
