// Package system answers the os command.
//
// Flags:
//   - --EOL: platform end-of-line, JSON-quoted
//   - --cpus: CPU count and per-CPU model
//   - --homedir: current user's home directory
//   - --username: current user's login name
//   - --architecture: Go architecture name (amd64, arm64, ...)
//
// Host queries go through InfoSource so they can be replaced in tests.
package system
