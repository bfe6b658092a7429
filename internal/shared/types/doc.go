// Package types provides shared data structures for fileshell.
//
// This package defines the types passed between the shell loop and the
// operation providers, so neither side depends on the other.
//
// Core Types:
//   - Service: Provider definition (a named group of commands)
//   - Tool: Command definition (name, usage, parameters)
//   - Invocation: One parsed input line
//   - Entry: One directory listing row
//
// Errors:
//   - Kind: Failure category (UnknownCommand, InvalidInput, ...)
//   - Error: Categorised failure carrying operation, path and cause
//
// Example Usage:
//
//	if err := handler(ctx, sess, args); err != nil {
//	    switch types.KindOf(err) {
//	    case types.KindInvalidInput:
//	        fmt.Fprintln(out, "Invalid input")
//	    default:
//	        fmt.Fprintln(out, "Operation failed")
//	    }
//	}
package types
