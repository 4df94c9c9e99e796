// SPDX-License-Identifier: EPL-2.0

package source

import (
	"errors"
	"io"
	"log"

	"github.com/ik5/audpeak/audio"
	"github.com/ik5/audpeak/storage"
)

type Option func(*Source)

// WithRegistry replaces the set of recognized suffixes.
func WithRegistry(r *audio.Registry) Option {
	return func(s *Source) { s.registry = r }
}

// WithLogger sets where open failures are reported. By default nothing is
// logged.
func WithLogger(l *log.Logger) Option {
	return func(s *Source) { s.logger = l }
}

// Source is an audio file reached through a storage backend. The variant
// is picked from the file suffix on Open and stays fixed until Close.
//
// A Source owns the backend handle it opened and releases it exactly
// once, on Close or on a failed Open.
type Source struct {
	backend  storage.Backend
	registry *audio.Registry
	logger   *log.Logger

	file   *storage.File
	stream audio.Stream
	info   audio.Info
	path   string
}

func New(backend storage.Backend, opts ...Option) *Source {
	s := &Source{
		backend: backend,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = DefaultRegistry()
	}
	return s
}

// Open selects the decoder for path and parses its header. The suffix is
// checked before the backend is touched. An already open source is closed
// first.
func (s *Source) Open(path string) error {
	if s.IsOpen() {
		if err := s.Close(); err != nil {
			s.logger.Printf("Error closing '%s': %v", s.path, err)
		}
	}

	_, dec, ok := s.registry.Lookup(path)
	if !ok {
		s.logger.Printf("Unknown audio format: '%s'", path)
		return &audio.OpenError{Path: path, Err: audio.ErrUnknownFormat}
	}

	f, err := storage.Open(s.backend, path)
	if err != nil {
		s.logger.Printf("Error opening '%s': %v", path, err)
		return &audio.OpenError{Path: path, Err: err}
	}

	stream, err := dec.Decode(f)
	if err != nil {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
		s.logger.Printf("Error opening '%s': %v", path, err)
		return &audio.OpenError{Path: path, Err: err}
	}

	s.file = f
	s.stream = stream
	s.info = stream.Info()
	s.path = path

	return nil
}

// Read appends at most budget bytes of PCM to dst. See audio.Stream.
func (s *Source) Read(dst *audio.ByteStream, budget int) (int, error) {
	if s.stream == nil {
		return 0, audio.ErrNotOpen
	}
	return s.stream.Read(dst, budget)
}

// Close releases the decoder and then the backend handle. The source is
// closed afterwards even when an error is returned. Closing a closed
// source does nothing.
func (s *Source) Close() error {
	if s.stream == nil {
		return nil
	}

	serr := s.stream.Close()
	ferr := s.file.Close()
	s.stream = nil
	s.file = nil

	return errors.Join(serr, ferr)
}

func (s *Source) IsOpen() bool { return s.stream != nil }

// Path is the path of the last successful Open.
func (s *Source) Path() string { return s.path }

// Info describes the last opened stream. It stays readable after Close.
func (s *Source) Info() audio.Info { return s.info }

func (s *Source) Format() audio.Format { return s.info.Format }
func (s *Source) Channels() int        { return s.info.Channels }
func (s *Source) SampleRate() int      { return s.info.SampleRate }
func (s *Source) BitsPerSample() int   { return s.info.BitsPerSample }
func (s *Source) BytesPerSample() int  { return s.info.BytesPerSample() }
func (s *Source) TotalSamples() int    { return s.info.TotalSamples }
