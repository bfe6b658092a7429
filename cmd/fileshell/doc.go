// Command fileshell is an interactive file manager.
//
// It starts in the user's home directory (or -dir / FILESHELL_START_DIR)
// and reads one command per line from stdin until .exit, end of input or
// Ctrl+C. Type help for the command list.
package main
