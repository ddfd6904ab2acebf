// frame.go - Splits an input buffer into fixed-size page frames
package page

import (
	"io"

	"github.com/wilhasse/go-mdb/format"
)

// Frame is one page-sized window of the input.
type Frame struct {
	Index  int
	Offset int64 // absolute offset of Data[0] in the input
	Data   []byte
}

// FrameReader walks a buffer one page at a time. It makes a single forward
// pass and is not safe for concurrent use.
type FrameReader struct {
	buf      []byte
	pageSize int
	off      int
	index    int
	err      error
}

func NewFrameReader(buf []byte, pageSize int) *FrameReader {
	return &FrameReader{buf: buf, pageSize: pageSize}
}

// Next returns the next frame, io.EOF once the input is exhausted, or a
// truncation error if fewer than pageSize bytes remain. Errors are sticky.
func (fr *FrameReader) Next() (Frame, error) {
	if fr.err != nil {
		return Frame{}, fr.err
	}
	remaining := len(fr.buf) - fr.off
	if remaining == 0 {
		fr.err = io.EOF
		return Frame{}, fr.err
	}
	if remaining < fr.pageSize {
		fr.err = format.Truncated(fr.index, int64(fr.off), "short page")
		return Frame{}, fr.err
	}
	f := Frame{
		Index:  fr.index,
		Offset: int64(fr.off),
		Data:   fr.buf[fr.off : fr.off+fr.pageSize : fr.off+fr.pageSize],
	}
	fr.off += fr.pageSize
	fr.index++
	return f, nil
}

// Offset is the number of bytes consumed so far.
func (fr *FrameReader) Offset() int64 { return int64(fr.off) }
