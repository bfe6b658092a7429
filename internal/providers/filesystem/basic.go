package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"go.uber.org/zap"
)

// BasicOps handles basic file operations
type BasicOps struct {
	*FilesystemOps
}

// GetTools returns basic file operation tool definitions
func (b *BasicOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "cat",
			Name:        "Read File",
			Description: "Print file contents",
			Parameters: []types.Parameter{
				{Name: "file", Description: "File path", Required: true},
			},
		},
		{
			ID:          "add",
			Name:        "Create File",
			Description: "Create an empty file; fails if it already exists",
			Parameters: []types.Parameter{
				{Name: "file", Description: "New file name", Required: true},
			},
		},
		{
			ID:          "rm",
			Name:        "Delete File",
			Description: "Delete a file",
			Parameters: []types.Parameter{
				{Name: "file", Description: "File path", Required: true},
			},
		},
	}
}

// Cat streams a file to the session output
func (b *BasicOps) Cat(ctx context.Context, sess *types.Session, args []string) error {
	if err := requireArgs("cat", args, "file"); err != nil {
		return err
	}
	path := resolve(sess, args[0])

	if err := b.checkFile("cat", path); err != nil {
		return err
	}

	f, err := b.Fs.Open(path)
	if err != nil {
		return types.SourceNotFound("cat", path, err)
	}
	defer f.Close()

	out := &lastByteWriter{w: sess.Out}
	if _, err := io.Copy(out, f); err != nil {
		return types.Wrap(types.KindOperationError, "cat", path, err)
	}
	if out.last != '\n' {
		fmt.Fprintln(sess.Out)
	}
	return nil
}

// Add creates an empty file
func (b *BasicOps) Add(ctx context.Context, sess *types.Session, args []string) error {
	if err := requireArgs("add", args, "file"); err != nil {
		return err
	}
	path := resolve(sess, args[0])

	f, err := b.Fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return types.Wrap(types.KindOperationError, "add", path, err)
	}
	if err := f.Close(); err != nil {
		return types.Wrap(types.KindOperationError, "add", path, err)
	}

	b.Log.Debug("Created file", zap.String("path", path))
	return nil
}

// Rm deletes a file. Directories are refused.
func (b *BasicOps) Rm(ctx context.Context, sess *types.Session, args []string) error {
	if err := requireArgs("rm", args, "file"); err != nil {
		return err
	}
	path := resolve(sess, args[0])

	if err := b.checkFile("rm", path); err != nil {
		return err
	}
	if err := b.Fs.Remove(path); err != nil {
		return types.Wrap(types.KindOperationError, "rm", path, err)
	}

	b.Log.Debug("Deleted file", zap.String("path", path))
	return nil
}

// lastByteWriter remembers the final byte written through it
type lastByteWriter struct {
	w    io.Writer
	last byte
}

func (l *lastByteWriter) Write(p []byte) (int, error) {
	n, err := l.w.Write(p)
	if n > 0 {
		l.last = p[n-1]
	}
	return n, err
}
