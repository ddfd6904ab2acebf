// body.go - Undecoded variable-length body of a table definition page
package record

// Fixed widths of the per-entry structures that follow the table definition
// header. Column names are variable length and have no fixed width.
const (
	RealIndexSize        = 12 // pad(4) + num_idx_rows u32 + pad(4)
	ColumnDescriptorSize = 25
)

// Body holds the bytes after the fixed table definition header. Its
// contents are not decoded; the counts come from the header and describe
// what a decoder would have to walk.
type Body struct {
	Offset     int // page-relative offset of the first body byte
	Raw        []byte
	NumColumns int
	NumIdx     int
	NumRealIdx int
}

// BodyDecoder is implemented by column/index descriptor decoders.
type BodyDecoder interface {
	DecodeBody(b Body) error
}

// Decoded is false: no decoder is wired for table definition bodies.
func (b Body) Decoded() bool { return false }

// MinLen is the number of bytes the fixed-width entries need: one real
// index entry per real index and one descriptor per column.
func (b Body) MinLen() int {
	return b.NumRealIdx*RealIndexSize + b.NumColumns*ColumnDescriptorSize
}

// Fits reports whether Raw is long enough for the fixed-width entries.
// A table definition that continues on NextPage may legitimately not fit.
func (b Body) Fits() bool {
	return len(b.Raw) >= b.MinLen()
}
