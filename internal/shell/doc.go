// Package shell implements the interactive read-eval-print loop.
//
// The shell owns one Session whose CurrentDir is the base for every
// relative operand. Input is read one line at a time; each command runs to
// completion before the next line is read.
//
// Dispatch:
//   - Commands come from providers registered once at start-up; each Tool
//     in a provider's Definition maps to a typed Handler
//   - Unknown names and validation failures print "Invalid input"
//   - Every other failure prints "Operation failed"
//   - The detail line and the current directory follow either message
//   - .exit, end of input and a cancelled context all end the loop with a
//     nil error; an over-long line is reported and skipped
//
// Example Usage:
//
//	sh := shell.New(shell.Options{In: os.Stdin, Out: os.Stdout, StartDir: home})
//	if err := sh.Register(filesystem.NewProvider(ops)); err != nil {
//	    return err
//	}
//	return sh.Run(ctx)
package shell
