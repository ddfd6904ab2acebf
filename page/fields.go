// fields.go - Fixed-offset field reads that keep the first error
package page

import "github.com/wilhasse/go-mdb/format"

// fieldReader reads fixed-offset fields from one frame and keeps the first
// failure, so a decoder can read its whole layout and check err once.
type fieldReader struct {
	f   Frame
	err error
}

func (r *fieldReader) fail(off int, name string) {
	if r.err == nil {
		r.err = format.Truncated(r.f.Index, r.f.Offset+int64(off), name)
	}
}

func (r *fieldReader) u8(off int, name string) uint8 {
	if r.err != nil {
		return 0
	}
	v, err := format.U8(r.f.Data, off)
	if err != nil {
		r.fail(off, name)
	}
	return v
}

func (r *fieldReader) le16(off int, name string) uint16 {
	if r.err != nil {
		return 0
	}
	v, err := format.Le16(r.f.Data, off)
	if err != nil {
		r.fail(off, name)
	}
	return v
}

func (r *fieldReader) le32(off int, name string) uint32 {
	if r.err != nil {
		return 0
	}
	v, err := format.Le32(r.f.Data, off)
	if err != nil {
		r.fail(off, name)
	}
	return v
}

func (r *fieldReader) bytes(off, n int, name string) []byte {
	if r.err != nil {
		return nil
	}
	v, err := format.Bytes(r.f.Data, off, n)
	if err != nil {
		r.fail(off, name)
	}
	return v
}
