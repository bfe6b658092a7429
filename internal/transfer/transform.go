package transfer

import "io"

// Transform is a one-directional byte conversion inserted into a transfer.
// Encoders usually wrap the write side and decoders the read side; the
// other side is returned unchanged.
type Transform interface {
	// Source wraps the reader the transfer drains.
	Source(src io.Reader) (io.Reader, error)
	// Sink wraps the destination writer. Close must flush any trailing
	// output but must not close dst.
	Sink(dst io.Writer) (io.WriteCloser, error)
}

// Passthrough returns its inputs unchanged. It is the Transform of a
// plain copy.
type Passthrough struct{}

func (Passthrough) Source(src io.Reader) (io.Reader, error) {
	return src, nil
}

func (Passthrough) Sink(dst io.Writer) (io.WriteCloser, error) {
	return NopWriteCloser(dst), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NopWriteCloser returns a WriteCloser with a no-op Close wrapping w
func NopWriteCloser(w io.Writer) io.WriteCloser {
	return nopWriteCloser{w}
}
