package json

import (
	"io"

	"github.com/pkg/errors"
)

// maxPutBack bounds the push-back stack. The grammar needs two
// outstanding bytes at most (a peeked dispatch byte plus a number-token
// boundary byte).
const maxPutBack = 4

// byteReader layers single-byte reads with bounded push-back over an
// io.Reader, so scanning routines can look at a byte without committing
// to it.
type byteReader struct {
	r      io.Reader
	buf    []byte
	pos, n int
	back   [maxPutBack]byte
	nback  int
	off    int   // absolute offset of the next byte readByte returns
	err    error // sticky; io.EOF for clean end of stream
}

func newByteReader(r io.Reader) *byteReader {
	return &byteReader{r: r, buf: make([]byte, 4096)}
}

// readByte returns the next byte of the stream. Clean end of stream is
// io.EOF; any other error is a failure of the underlying reader.
func (b *byteReader) readByte() (byte, error) {
	if b.nback > 0 {
		b.nback--
		b.off++
		return b.back[b.nback], nil
	}
	for b.pos == b.n {
		if b.err != nil {
			return 0, b.err
		}
		n, err := b.r.Read(b.buf)
		b.pos, b.n = 0, n
		if err == io.EOF {
			b.err = io.EOF
		} else if err != nil {
			b.err = errors.Wrap(err, "json: read")
		}
		if n == 0 && b.err != nil {
			return 0, b.err
		}
	}
	c := b.buf[b.pos]
	b.pos++
	b.off++
	return c, nil
}

// putBack returns c to the front of the stream. Bytes come back out in
// reverse order of being put back. Exceeding maxPutBack outstanding
// bytes is a bug in the caller.
func (b *byteReader) putBack(c byte) {
	if b.nback == maxPutBack {
		panic("json: putBack overflow")
	}
	b.back[b.nback] = c
	b.nback++
	b.off--
}

// peekByte reads the next byte without consuming it.
func (b *byteReader) peekByte() (byte, error) {
	c, err := b.readByte()
	if err != nil {
		return 0, err
	}
	b.putBack(c)
	return c, nil
}

// offset is the number of bytes consumed so far.
func (b *byteReader) offset() int { return b.off }
