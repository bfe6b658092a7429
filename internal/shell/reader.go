package shell

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/GriffinCanCode/fileshell/internal/shared/types"
)

// lineReader yields input lines without their terminators
type lineReader struct {
	r   *bufio.Reader
	max int
}

func newLineReader(in io.Reader, max int) *lineReader {
	return &lineReader{r: bufio.NewReaderSize(in, 4096), max: max}
}

// ReadLine returns the next line. A line longer than max bytes is consumed
// through its newline and reported as InvalidInput, so reading can go on.
// io.EOF is returned only once no bytes remain.
func (l *lineReader) ReadLine() (string, error) {
	var (
		line    []byte
		read    bool
		tooLong bool
	)
	for {
		chunk, err := l.r.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
		}
		if !tooLong {
			if len(line)+len(chunk) > l.max+1 {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !(errors.Is(err, io.EOF) && read) {
			return "", err
		}
		break
	}

	if tooLong {
		return "", types.InvalidInput("read", "line longer than %d bytes", l.max)
	}
	return strings.TrimSuffix(strings.TrimSuffix(string(line), "\n"), "\r"), nil
}
