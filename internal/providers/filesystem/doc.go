// Package filesystem provides the shell's file operations.
//
// This package is organized into specialized modules:
//   - directory: Navigation and listing (up, cd, ls)
//   - basic: Core file operations (cat, add, rm)
//   - operations: File manipulation (rn, cp, mv)
//   - archives: Streaming compression (compress, decompress)
//   - hash: Content digests (hash)
//
// All operations:
//   - Resolve operands against the session's current directory at call time
//   - Go through one afero.Fs, so tests can run on an in-memory filesystem
//   - Return a categorised *types.Error on failure
//
// Copy and move stream through transfer.Transferer. Move is a copy followed
// by removal of the source and is not atomic: if the removal fails both
// files remain.
//
// Example Usage:
//
//	ops := filesystem.NewOps(afero.NewOsFs(), transferer, codecs, logger)
//	provider := filesystem.NewProvider(ops)
//	err := provider.Handlers()["cp"](ctx, sess, []string{"a.txt", "backup"})
package filesystem
