package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		segments []string
		expected string
	}{
		{"no segments", "/home/user", nil, "/home/user"},
		{"relative child", "/home/user", []string{"docs"}, "/home/user/docs"},
		{"multiple segments", "/home/user", []string{"a", "b"}, "/home/user/a/b"},
		{"parent marker", "/home/user", []string{".."}, "/home"},
		{"parent then child", "/home/user", []string{"..", "tmp"}, "/home/tmp"},
		{"dot is no-op", "/home/user", []string{"."}, "/home/user"},
		{"absolute resets base", "/home/user", []string{"/etc"}, "/etc"},
		{"absolute in the middle", "/home/user", []string{"a", "/etc", "hosts"}, "/etc/hosts"},
		{"redundant separators", "/home/user", []string{"a//b/./"}, "/home/user/a/b"},
		{"ascend past root", "/", []string{"..", ".."}, "/"},
		{"empty segment ignored", "/home/user", []string{""}, "/home/user"},
		{"unclean base", "/home//user/", nil, "/home/user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(filepath.FromSlash(tt.base), tt.segments...)
			assert.Equal(t, filepath.FromSlash(tt.expected), got)
		})
	}
}

func TestResolveAlwaysAbsolute(t *testing.T) {
	got := Resolve("relative", "dir")
	assert.True(t, filepath.IsAbs(got))
}

func TestParent(t *testing.T) {
	assert.Equal(t, "/home", Parent("/home/user"))
	assert.Equal(t, "/home", Parent("/home/user/"))
	assert.Equal(t, "/", Parent("/home"))
}

func TestParentIdempotentAtRoot(t *testing.T) {
	dir := "/"
	for i := 0; i < 3; i++ {
		dir = Parent(dir)
		assert.Equal(t, "/", dir)
	}
	assert.True(t, IsRoot(dir))
	assert.False(t, IsRoot("/home"))
}

func TestResolveThenParent(t *testing.T) {
	base := "/home/user"
	for _, child := range []string{"a", "a/b", "a/b/c"} {
		d := Resolve(base, child)
		assert.Equal(t, filepath.Dir(d), Parent(d))
	}
}

func TestExt(t *testing.T) {
	assert.Equal(t, ".br", Ext("out.BR"))
	assert.Equal(t, ".gz", Ext("/tmp/a.tar.gz"))
	assert.Equal(t, "", Ext("README"))
}

func TestStartDirectory(t *testing.T) {
	dir := t.TempDir()

	got, err := StartDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(dir), got)

	got, err = StartDirectory("")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}
