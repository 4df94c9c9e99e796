// SPDX-License-Identifier: EPL-2.0

// Package progressive drives a source through a peak reducer in small,
// bounded steps so an overview can be shown while the file is still being
// decoded.
//
// A Loop moves through these states:
//
//	Idle -> Opening -> Streaming -> Done
//	           |           |
//	           +-> Failed <+
//
// Every Tick in Streaming decodes about one second of audio, folds it
// into the envelope and notifies the Observer. The pass that yields no
// data flushes the last partial column, closes the source and ends in
// Done. Ticks in Done or Failed do nothing.
//
// Ticks come from outside. Tests call Tick directly; programs usually hand
// a Ticker to Run:
//
//	l := progressive.New(source.New(storage.FileBackend{}))
//	if err := l.Attach("kick.wav"); err != nil {
//		return err
//	}
//	err := l.Run(ctx, progressive.NewTimeTicker(0))
//
// Close or a cancelled context stops the loop early. The source is closed
// exactly once and the envelope keeps the columns produced so far.
package progressive
