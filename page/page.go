// page.go - Decoded page and page-type dispatch
package page

import "github.com/wilhasse/go-mdb/format"

// Page is a decoded page. Type is the raw discriminant; at most one of the
// variant pointers is set, matching Type. Index pages and page-use bitmaps
// have no decoded fields. Any Type for which Type.Known() is false is the
// Unknown variant and carries nothing but its tag.
type Page struct {
	Index  int
	Offset int64
	Type   format.PageType

	DatabaseDefinition *DatabaseDefinition
	Data               *Data
	TableDefinition    *TableDefinition

	Raw []byte // the frame bytes; aliases the decoder input
}

// IsUnknown reports whether the page's discriminant is not modelled.
func (p *Page) IsUnknown() bool { return !p.Type.Known() }

// Decode dispatches on byte 0 of the frame. An unrecognized discriminant
// yields an Unknown page; a short or invalid required field is an error.
func Decode(f Frame) (*Page, error) {
	tag, err := format.U8(f.Data, 0)
	if err != nil {
		return nil, format.Truncated(f.Index, f.Offset, "page type")
	}
	p := &Page{Index: f.Index, Offset: f.Offset, Type: format.PageType(tag), Raw: f.Data}

	switch p.Type {
	case format.PageTypeDatabaseDefinition:
		p.DatabaseDefinition, err = ParseDatabaseDefinition(f)
	case format.PageTypeData:
		p.Data, err = ParseData(f)
	case format.PageTypeTableDefinition:
		p.TableDefinition, err = ParseTableDefinition(f)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
