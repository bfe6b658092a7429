package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolve joins base with each segment left to right and returns the
// normalized result. An absolute segment replaces everything before it,
// ".." ascends and "." is a no-op. The filesystem is never consulted, so a
// path that does not exist is only detected by whoever uses it.
func Resolve(base string, segments ...string) string {
	resolved := base
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if filepath.IsAbs(seg) {
			resolved = seg
			continue
		}
		resolved = filepath.Join(resolved, seg)
	}
	if !filepath.IsAbs(resolved) {
		if abs, err := filepath.Abs(resolved); err == nil {
			resolved = abs
		}
	}
	return filepath.Clean(resolved)
}

// Parent returns the normalized parent of dir. The parent of a root is the
// root itself.
func Parent(dir string) string {
	return filepath.Dir(filepath.Clean(dir))
}

// IsRoot reports whether dir is a filesystem root
func IsRoot(dir string) bool {
	clean := filepath.Clean(dir)
	return filepath.Dir(clean) == clean
}

// Ext returns the lowercased extension of path, including the dot
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// StartDirectory picks the directory a new session starts in: the
// requested one if set, else the user's home directory, else the process
// working directory.
func StartDirectory(requested string) (string, error) {
	if requested != "" {
		return Resolve(requested), nil
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return Resolve(home), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return Resolve(wd), nil
}
