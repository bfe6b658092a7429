// Package digest computes hex content digests of files.
//
// The whole file is read into memory before hashing; large files cost
// their full size in memory.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"github.com/spf13/afero"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm names a digest function
type Algorithm string

const (
	SHA256  Algorithm = "sha256"
	SHA512  Algorithm = "sha512"
	BLAKE2b Algorithm = "blake2b"
	SHA3    Algorithm = "sha3"
)

// Default is the algorithm used when none is requested
const Default = SHA256

var constructors = map[Algorithm]func() (hash.Hash, error){
	SHA256: func() (hash.Hash, error) { return sha256.New(), nil },
	SHA512: func() (hash.Hash, error) { return sha512.New(), nil },
	BLAKE2b: func() (hash.Hash, error) {
		return blake2b.New256(nil)
	},
	SHA3: func() (hash.Hash, error) { return sha3.New256(), nil },
}

// ParseAlgorithm maps a user-supplied name to an Algorithm. An empty name
// selects Default.
func ParseAlgorithm(name string) (Algorithm, error) {
	if name == "" {
		return Default, nil
	}
	algo := Algorithm(strings.ToLower(strings.ReplaceAll(name, "-", "")))
	if _, ok := constructors[algo]; !ok {
		return "", types.InvalidInput("hash", "unsupported algorithm %q (want one of %s)", name, strings.Join(Algorithms(), ", "))
	}
	return algo, nil
}

// Algorithms lists supported algorithm names, sorted
func Algorithms() []string {
	names := make([]string, 0, len(constructors))
	for a := range constructors {
		names = append(names, string(a))
	}
	sort.Strings(names)
	return names
}

// Engine hashes files on one filesystem
type Engine struct {
	fs afero.Fs
}

// New creates a digest engine
func New(fs afero.Fs) *Engine {
	return &Engine{fs: fs}
}

// Digest reads path fully and returns its lowercase hex digest
func (e *Engine) Digest(path string, algo Algorithm) (string, error) {
	const op = "hash"

	if _, ok := constructors[algo]; !ok {
		return "", types.InvalidInput(op, "unsupported algorithm %q", algo)
	}

	info, err := e.fs.Stat(path)
	if err != nil {
		return "", types.SourceNotFound(op, path, err)
	}
	if info.IsDir() {
		return "", types.SourceNotFound(op, path, fmt.Errorf("is a directory"))
	}

	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return "", types.SourceNotFound(op, path, err)
	}

	return Sum(data, algo)
}

// Sum returns the lowercase hex digest of data
func Sum(data []byte, algo Algorithm) (string, error) {
	newHash, ok := constructors[algo]
	if !ok {
		return "", types.InvalidInput("hash", "unsupported algorithm %q", algo)
	}
	h, err := newHash()
	if err != nil {
		return "", err
	}
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
