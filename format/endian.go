// endian.go - Little-endian byte reading utilities
package format

import (
	"encoding/binary"
	"errors"
)

// ErrOutOfBounds is returned by the readers below when the requested
// field does not fit in the buffer.
var ErrOutOfBounds = errors.New("read out of bounds")

func U8(b []byte, off int) (uint8, error) {
	if off < 0 || off+1 > len(b) {
		return 0, ErrOutOfBounds
	}
	return b[off], nil
}

func Le16(b []byte, off int) (uint16, error) {
	if off < 0 || off+2 > len(b) {
		return 0, ErrOutOfBounds
	}
	return binary.LittleEndian.Uint16(b[off : off+2]), nil
}

func Le32(b []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(b) {
		return 0, ErrOutOfBounds
	}
	return binary.LittleEndian.Uint32(b[off : off+4]), nil
}

// Bytes returns a sub-slice of n bytes starting at off. The result aliases b.
func Bytes(b []byte, off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off+n > len(b) {
		return nil, ErrOutOfBounds
	}
	return b[off : off+n : off+n], nil
}
