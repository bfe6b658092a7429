// Package transfer streams file content from a source to a destination.
//
// A transfer reads the source in fixed-size chunks and writes each chunk
// to the destination before reading the next one, so memory use is bounded
// by the buffer size no matter how large the file is. A Transform can be
// inserted on either side of the pipe (compression codecs use this).
//
// Failure semantics:
//   - Missing, unreadable or directory source: types.KindSourceNotFound
//   - Any fault after the destination is opened: types.KindTransferFailed
//   - A failed transfer removes the destination it created (best effort;
//     removal errors are logged, never returned)
//
// Example Usage:
//
//	t := transfer.New(afero.NewOsFs(), transfer.DefaultBufferSize, logger)
//	n, err := t.Transfer(ctx, "/tmp/a.txt", "/tmp/b.txt", nil)
package transfer
