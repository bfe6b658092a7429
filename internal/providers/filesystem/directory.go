package filesystem

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/GriffinCanCode/fileshell/internal/shared/paths"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DirectoryOps handles navigation and listing
type DirectoryOps struct {
	*FilesystemOps
}

// GetTools returns navigation tool definitions
func (d *DirectoryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "up",
			Name:        "Up",
			Description: "Go to the parent of the current directory",
		},
		{
			ID:          "cd",
			Name:        "Change Directory",
			Description: "Go to a directory relative to the current one, or to an absolute path",
			Parameters: []types.Parameter{
				{Name: "path", Description: "Target directory", Required: false, Variadic: true},
			},
		},
		{
			ID:          "ls",
			Name:        "List Directory",
			Description: "List the current directory, folders first",
		},
	}
}

// Up moves to the parent directory. At a filesystem root it stays put.
func (d *DirectoryOps) Up(ctx context.Context, sess *types.Session, args []string) error {
	sess.CurrentDir = paths.Parent(sess.CurrentDir)
	return nil
}

// Cd moves to the resolved target if it is an existing directory.
// Otherwise the current directory is left unchanged.
func (d *DirectoryOps) Cd(ctx context.Context, sess *types.Session, args []string) error {
	target := resolve(sess, args...)

	info, err := d.Fs.Stat(target)
	if err != nil {
		return types.InvalidInput("cd", "no such directory: %s", target)
	}
	if !info.IsDir() {
		return types.InvalidInput("cd", "not a directory: %s", target)
	}

	d.Log.Debug("Changed directory", zap.String("from", sess.CurrentDir), zap.String("to", target))
	sess.CurrentDir = target
	return nil
}

// Entries returns the listing of dir: symbolic links dropped, directories
// first, each group sorted by name.
func (d *DirectoryOps) Entries(dir string) ([]types.Entry, error) {
	infos, err := afero.ReadDir(d.Fs, dir)
	if err != nil {
		return nil, types.Wrap(types.KindOperationError, "ls", dir, err)
	}

	entries := make([]types.Entry, 0, len(infos))
	for _, info := range infos {
		if info.Mode()&os.ModeSymlink != 0 {
			continue
		}
		kind := types.EntryFile
		if info.IsDir() {
			kind = types.EntryDirectory
		}
		entries = append(entries, types.Entry{Name: info.Name(), Kind: kind})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Kind != entries[j].Kind {
			return entries[i].Kind == types.EntryDirectory
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// Ls prints the current directory as a table
func (d *DirectoryOps) Ls(ctx context.Context, sess *types.Session, args []string) error {
	entries, err := d.Entries(sess.CurrentDir)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(sess.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "(index)\tName\tType")
	for i, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, e.Name, e.Kind)
	}
	return tw.Flush()
}
