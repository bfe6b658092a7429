package codec

import (
	"io"

	"github.com/GriffinCanCode/fileshell/internal/transfer"
	"github.com/andybalholm/brotli"
)

// Brotli is the Brotli codec
type Brotli struct {
	Level int
}

func (Brotli) Algorithm() Algorithm { return AlgorithmBrotli }

func (Brotli) Extension() string { return ".br" }

// Encoder compresses on the write side. Closing the sink flushes the
// final meta-block without closing the destination.
func (b Brotli) Encoder() transfer.Transform {
	return encoder{wrap: func(w io.Writer) (io.WriteCloser, error) {
		return brotli.NewWriterLevel(w, b.Level), nil
	}}
}

// Decoder decompresses on the read side
func (Brotli) Decoder() transfer.Transform {
	return decoder{wrap: func(r io.Reader) (io.Reader, error) {
		return brotli.NewReader(r), nil
	}}
}
