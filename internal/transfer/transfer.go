package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/GriffinCanCode/fileshell/internal/logging"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultBufferSize is the chunk size used when none is configured
const DefaultBufferSize = 64 * 1024

// Transferer runs streaming transfers on one filesystem
type Transferer struct {
	fs         afero.Fs
	bufferSize int
	pool       sync.Pool
	log        *logging.Logger
}

// New creates a transferer. A non-positive bufferSize selects
// DefaultBufferSize.
func New(fs afero.Fs, bufferSize int, log *logging.Logger) *Transferer {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if log == nil {
		log = logging.NewNop()
	}
	t := &Transferer{fs: fs, bufferSize: bufferSize, log: log}
	t.pool.New = func() interface{} {
		buf := make([]byte, t.bufferSize)
		return &buf
	}
	return t
}

// BufferSize returns the chunk size
func (t *Transferer) BufferSize() int {
	return t.bufferSize
}

// CheckSource verifies src names a readable regular file
func (t *Transferer) CheckSource(op, src string) error {
	info, err := t.fs.Stat(src)
	if err != nil {
		return types.SourceNotFound(op, src, err)
	}
	if info.IsDir() {
		return types.SourceNotFound(op, src, fmt.Errorf("is a directory"))
	}
	return nil
}

// Transfer streams src into dst through tf and returns the number of bytes
// written to dst. A nil tf copies bytes unchanged. dst is created or
// truncated.
func (t *Transferer) Transfer(ctx context.Context, src, dst string, tf Transform) (written int64, err error) {
	const op = "transfer"
	if tf == nil {
		tf = Passthrough{}
	}

	if err := t.CheckSource(op, src); err != nil {
		return 0, err
	}
	if filepath.Clean(src) == filepath.Clean(dst) {
		return 0, types.InvalidInput(op, "source and destination are the same file: %s", src)
	}

	in, err := t.fs.Open(src)
	if err != nil {
		return 0, types.SourceNotFound(op, src, err)
	}
	defer in.Close()

	out, err := t.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, types.Wrap(types.KindTransferFailed, op, dst, err)
	}

	start := time.Now()
	defer func() {
		if err != nil {
			t.discard(dst)
			return
		}
		t.log.Debug("Transfer complete",
			zap.String("source", src),
			zap.String("destination", dst),
			zap.Int64("bytes", written),
			zap.Duration("duration", time.Since(start)))
	}()

	counter := &countingWriter{w: out}
	_, err = t.pipe(ctx, in, counter, tf)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return counter.n, types.Wrap(types.KindTransferFailed, op, dst, err)
	}
	return counter.n, nil
}

// pipe drains src into dst chunk by chunk. The write of one chunk
// completes before the next read starts.
func (t *Transferer) pipe(ctx context.Context, src io.Reader, dst io.Writer, tf Transform) (int64, error) {
	r, err := tf.Source(src)
	if err != nil {
		return 0, fmt.Errorf("source stage: %w", err)
	}
	w, err := tf.Sink(dst)
	if err != nil {
		return 0, fmt.Errorf("sink stage: %w", err)
	}

	bufp := t.pool.Get().(*[]byte)
	defer t.pool.Put(bufp)
	buf := *bufp

	var total int64
	for {
		if err := ctx.Err(); err != nil {
			w.Close()
			return total, err
		}

		n, rerr := r.Read(buf)
		if n > 0 {
			m, werr := w.Write(buf[:n])
			total += int64(m)
			if werr == nil && m != n {
				werr = io.ErrShortWrite
			}
			if werr != nil {
				w.Close()
				return total, fmt.Errorf("write: %w", werr)
			}
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			w.Close()
			return total, fmt.Errorf("read: %w", rerr)
		}
	}

	if err := w.Close(); err != nil {
		return total, fmt.Errorf("flush: %w", err)
	}
	return total, nil
}

// discard removes a partially written destination
func (t *Transferer) discard(dst string) {
	if err := t.fs.Remove(dst); err != nil && !os.IsNotExist(err) {
		t.log.Warn("Failed to remove partial destination",
			zap.String("destination", dst),
			zap.Error(err))
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
