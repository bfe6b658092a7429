package codec

import (
	"io"

	"github.com/GriffinCanCode/fileshell/internal/transfer"
	"github.com/klauspost/compress/gzip"
)

// Gzip is the gzip codec
type Gzip struct {
	Level int
}

func (Gzip) Algorithm() Algorithm { return AlgorithmGzip }

func (Gzip) Extension() string { return ".gz" }

// Encoder compresses on the write side
func (g Gzip) Encoder() transfer.Transform {
	return encoder{wrap: func(w io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriterLevel(w, g.Level)
	}}
}

// Decoder decompresses on the read side. A missing gzip header fails
// when the transfer sets up its source stage.
func (Gzip) Decoder() transfer.Transform {
	return decoder{wrap: func(r io.Reader) (io.Reader, error) {
		return gzip.NewReader(r)
	}}
}
