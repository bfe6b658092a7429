package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"go.uber.org/zap"
)

// OperationsOps handles file manipulation operations
type OperationsOps struct {
	*FilesystemOps
}

// GetTools returns file operation tool definitions
func (o *OperationsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "rn",
			Name:        "Rename",
			Description: "Rename a file; refuses to overwrite",
			Parameters: []types.Parameter{
				{Name: "file", Description: "File path", Required: true},
				{Name: "new_name", Description: "New path, relative to the current directory", Required: true},
			},
		},
		{
			ID:          "cp",
			Name:        "Copy",
			Description: "Copy a file into a directory, creating the directory if needed",
			Parameters: []types.Parameter{
				{Name: "file", Description: "Source file", Required: true},
				{Name: "dest_dir", Description: "Destination directory", Required: true},
			},
		},
		{
			ID:          "mv",
			Name:        "Move",
			Description: "Copy a file into a directory, then delete the source (not atomic)",
			Parameters: []types.Parameter{
				{Name: "file", Description: "Source file", Required: true},
				{Name: "dest_dir", Description: "Destination directory", Required: true},
			},
		},
	}
}

// Rn renames a file. The new name resolves against the current directory,
// not the source's directory.
func (o *OperationsOps) Rn(ctx context.Context, sess *types.Session, args []string) error {
	if err := requireArgs("rn", args, "file", "new_name"); err != nil {
		return err
	}
	src := resolve(sess, args[0])
	dst := resolve(sess, args[1])

	if err := o.checkFile("rn", src); err != nil {
		return err
	}
	if _, err := o.Fs.Stat(dst); err == nil {
		return types.InvalidInput("rn", "%s already exists", dst)
	}
	if err := o.Fs.Rename(src, dst); err != nil {
		return types.Wrap(types.KindOperationError, "rn", src, err)
	}

	o.Log.Debug("Renamed file", zap.String("from", src), zap.String("to", dst))
	return nil
}

// Cp copies a file into a directory
func (o *OperationsOps) Cp(ctx context.Context, sess *types.Session, args []string) error {
	if err := requireArgs("cp", args, "file", "dest_dir"); err != nil {
		return err
	}
	_, err := o.copyInto(ctx, "cp", resolve(sess, args[0]), resolve(sess, args[1]))
	return err
}

// Mv copies a file into a directory and then deletes the source. A failed
// delete leaves both copies in place.
func (o *OperationsOps) Mv(ctx context.Context, sess *types.Session, args []string) error {
	if err := requireArgs("mv", args, "file", "dest_dir"); err != nil {
		return err
	}
	src := resolve(sess, args[0])

	dst, err := o.copyInto(ctx, "mv", src, resolve(sess, args[1]))
	if err != nil {
		return err
	}
	if err := o.Fs.Remove(src); err != nil {
		return types.Wrap(types.KindOperationError, "mv", src,
			fmt.Errorf("copied to %s but could not remove source: %w", dst, err))
	}

	o.Log.Debug("Moved file", zap.String("from", src), zap.String("to", dst))
	return nil
}

// copyInto streams src to destDir/<base(src)>, creating destDir as a plain
// directory when absent, and returns the destination path.
func (o *OperationsOps) copyInto(ctx context.Context, op, src, destDir string) (string, error) {
	if err := o.Transfer.CheckSource(op, src); err != nil {
		return "", err
	}
	if err := o.ensureDir(op, destDir); err != nil {
		return "", err
	}

	dst := filepath.Join(destDir, filepath.Base(src))
	n, err := o.Transfer.Transfer(ctx, src, dst, nil)
	if err != nil {
		return "", err
	}

	o.Log.Debug("Copied file", zap.String("from", src), zap.String("to", dst), zap.Int64("bytes", n))
	return dst, nil
}

// ensureDir creates dir unless it already exists as a directory
func (o *OperationsOps) ensureDir(op, dir string) error {
	err := o.Fs.Mkdir(dir, 0o755)
	if err != nil && !errors.Is(err, fs.ErrExist) {
		return types.Wrap(types.KindDestDirCreateFailed, op, dir, err)
	}
	if !o.isDir(dir) {
		return types.Wrap(types.KindDestDirCreateFailed, op, dir, fmt.Errorf("not a directory"))
	}
	return nil
}
