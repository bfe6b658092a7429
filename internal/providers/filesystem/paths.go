package filesystem

import (
	"fmt"

	"github.com/GriffinCanCode/fileshell/internal/shared/paths"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
)

// resolve resolves operand segments against the session's current directory
func resolve(sess *types.Session, segments ...string) string {
	return paths.Resolve(sess.CurrentDir, segments...)
}

// requireArgs reports the first missing positional argument
func requireArgs(op string, args []string, names ...string) error {
	if len(args) < len(names) {
		return types.InvalidInput(op, "%s parameter required", names[len(args)])
	}
	for i, name := range names {
		if args[i] == "" {
			return types.InvalidInput(op, "%s parameter required", name)
		}
	}
	return nil
}

// isDir reports whether path exists and is a directory
func (ops *FilesystemOps) isDir(path string) bool {
	info, err := ops.Fs.Stat(path)
	return err == nil && info.IsDir()
}

// checkFile verifies path names an existing regular file
func (ops *FilesystemOps) checkFile(op, path string) error {
	info, err := ops.Fs.Stat(path)
	if err != nil {
		return types.SourceNotFound(op, path, err)
	}
	if info.IsDir() {
		return types.SourceNotFound(op, path, fmt.Errorf("is a directory"))
	}
	return nil
}
