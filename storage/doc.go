// SPDX-License-Identifier: EPL-2.0

// Package storage abstracts where audio bytes come from.
//
// Decoders never touch the file system directly. They receive a *File,
// which wraps a Backend handle and exposes it as an io.ReadSeeker:
//
//	f, err := storage.Open(storage.FileBackend{}, "loop.ogg")
//	if err != nil {
//	    // Handle error
//	}
//	defer f.Close()
//
// FileBackend is the default implementation on top of os.File.
// MemoryBackend serves byte slices and tracks open handles, which makes it
// useful for embedding and for tests:
//
//	mem := storage.NewMemoryBackend()
//	mem.Add("intro.wav", data)
//	f, _ := storage.Open(mem, "intro.wav")
//	f.Close()
//	mem.OpenHandles() // 0
//
// Any other Backend (archives, network stores) can be substituted as long
// as it honors the read/seek/tell/close contract.
package storage
