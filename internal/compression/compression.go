// Package compression opens streams that may be xz, gzip or bzip2
// compressed, detected by their magic bytes.
package compression

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"io"

	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
)

// Format identifies a compression format.
type Format string

// Supported formats.
const (
	FormatNone  Format = "none"
	FormatXz    Format = "xz"
	FormatGzip  Format = "gzip"
	FormatBzip2 Format = "bzip2"
)

// ErrSizeLimit is returned when a stream decompresses to more than the
// allowed number of bytes.
var ErrSizeLimit = errors.New("decompressed size limit exceeded")

var magics = []struct {
	format Format
	magic  []byte
}{
	{FormatXz, []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}},
	{FormatGzip, []byte{0x1F, 0x8B}},
	{FormatBzip2, []byte("BZh")},
}

// Detect peeks at br and reports the stream's format without consuming it.
func Detect(br *bufio.Reader) Format {
	for _, m := range magics {
		head, err := br.Peek(len(m.magic))
		if err == nil && bytes.Equal(head, m.magic) {
			return m.format
		}
	}
	return FormatNone
}

// NewReader returns a reader over the decompressed contents of r, reading
// at most limit bytes of output. A non-positive limit disables the check.
func NewReader(r io.Reader, limit int64) (io.Reader, Format, error) {
	br := bufio.NewReader(r)
	format := Detect(br)

	var out io.Reader
	switch format {
	case FormatXz:
		xzr, err := xz.NewReader(br)
		if err != nil {
			return nil, format, errors.Wrap(err, "open xz stream")
		}
		out = xzr
	case FormatGzip:
		gzr, err := gzip.NewReader(br)
		if err != nil {
			return nil, format, errors.Wrap(err, "open gzip stream")
		}
		out = gzr
	case FormatBzip2:
		out = bzip2.NewReader(br)
	default:
		out = br
	}

	if limit > 0 {
		out = NewLimitedReader(out, limit)
	}
	return out, format, nil
}

// LimitedReader reads at most a fixed number of bytes from R. Unlike
// io.LimitReader it fails with ErrSizeLimit when more data is available,
// so truncated input is never mistaken for a complete stream.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		var probe [1]byte
		n, err := l.R.Read(probe[:])
		if n > 0 {
			return 0, ErrSizeLimit
		}
		return 0, err
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}
