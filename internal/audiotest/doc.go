// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures and fakes shared by the package tests:
// in-memory WAV and AIFF builders, PCM generators, a scripted audio.Stream
// and a storage backend that injects faults.
package audiotest
