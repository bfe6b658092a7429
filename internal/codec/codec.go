package codec

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/GriffinCanCode/fileshell/internal/transfer"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
)

// Algorithm names a compression format
type Algorithm string

const (
	AlgorithmBrotli Algorithm = "brotli"
	AlgorithmGzip   Algorithm = "gzip"
)

// Default compression levels
const (
	DefaultBrotliLevel = brotli.DefaultCompression
	DefaultGzipLevel   = 6
)

// Codec pairs a compression format with the file extension it produces
type Codec interface {
	Algorithm() Algorithm
	Extension() string
	Encoder() transfer.Transform
	Decoder() transfer.Transform
}

// Levels configures encoder compression levels
type Levels struct {
	Brotli int
	Gzip   int
}

// DefaultLevels returns the default encoder levels
func DefaultLevels() Levels {
	return Levels{Brotli: DefaultBrotliLevel, Gzip: DefaultGzipLevel}
}

// Validate checks levels are within each library's range
func (l Levels) Validate() error {
	if l.Brotli < brotli.BestSpeed || l.Brotli > brotli.BestCompression {
		return fmt.Errorf("brotli level %d out of range [%d, %d]", l.Brotli, brotli.BestSpeed, brotli.BestCompression)
	}
	if l.Gzip != gzip.DefaultCompression && l.Gzip != gzip.HuffmanOnly &&
		(l.Gzip < gzip.NoCompression || l.Gzip > gzip.BestCompression) {
		return fmt.Errorf("gzip level %d out of range [%d, %d]", l.Gzip, gzip.NoCompression, gzip.BestCompression)
	}
	return nil
}

// Registry maps file extensions to codecs
type Registry struct {
	byExt map[string]Codec
}

// NewRegistry creates a registry holding the Brotli and gzip codecs
func NewRegistry(levels Levels) *Registry {
	r := &Registry{byExt: make(map[string]Codec)}
	r.Register(Brotli{Level: levels.Brotli})
	r.Register(Gzip{Level: levels.Gzip})
	return r
}

// Register adds c under its extension, replacing any previous codec
func (r *Registry) Register(c Codec) {
	r.byExt[strings.ToLower(c.Extension())] = c
}

// ForExtension returns the codec for ext (".br", ".gz"; case-insensitive)
func (r *Registry) ForExtension(ext string) (Codec, bool) {
	c, ok := r.byExt[strings.ToLower(ext)]
	return c, ok
}

// Extensions returns the recognized extensions, sorted
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// encoder wraps the write side of a transfer
type encoder struct {
	wrap func(io.Writer) (io.WriteCloser, error)
}

func (e encoder) Source(src io.Reader) (io.Reader, error) {
	return src, nil
}

func (e encoder) Sink(dst io.Writer) (io.WriteCloser, error) {
	return e.wrap(dst)
}

// decoder wraps the read side of a transfer
type decoder struct {
	wrap func(io.Reader) (io.Reader, error)
}

func (d decoder) Source(src io.Reader) (io.Reader, error) {
	return d.wrap(src)
}

func (d decoder) Sink(dst io.Writer) (io.WriteCloser, error) {
	return transfer.NopWriteCloser(dst), nil
}
