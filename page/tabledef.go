// tabledef.go - Table definition page header
package page

import (
	"github.com/wilhasse/go-mdb/format"
	"github.com/wilhasse/go-mdb/record"
)

// Offsets within a table definition page. 0x0C..0x0F, 0x19..0x1B and
// 0x20..0x27 are pad.
const (
	offTDefID                = 0x02
	offTDefNextPage          = 0x04
	offTDefLength            = 0x08
	offTDefNumRows           = 0x10
	offTDefAutoNumber        = 0x14
	offTDefAutoNumberFlag    = 0x18
	offTDefComplexAutoNumber = 0x1C
	offTDefTableType         = 0x28
	offTDefMaxColumns        = 0x29
	offTDefNumVarColumns     = 0x2B
	offTDefNumColumns        = 0x2D
	offTDefNumIdx            = 0x2F
	offTDefNumRealIdx        = 0x33
	offTDefUsedPages         = 0x37
	offTDefFreePages         = 0x3B
)

type TableDefinition struct {
	TableDefID        uint16
	NextPage          uint32 // 0 when the definition fits in this page
	Length            uint32
	NumRows           uint32
	AutoNumber        uint32
	AutoNumberFlag    uint8
	ComplexAutoNumber uint32

	// TableType is nil when RawTableType is neither User nor System.
	TableType    *format.TableType
	RawTableType uint8

	MaxColumns            uint16
	NumberVariableColumns uint16
	NumColumns            uint16
	NumIdx                uint32
	NumRealIdx            uint32
	UsedPages             uint32
	FreePages             uint32

	Body record.Body
}

func ParseTableDefinition(f Frame) (*TableDefinition, error) {
	r := fieldReader{f: f}
	td := &TableDefinition{
		TableDefID:            r.le16(offTDefID, "table_def_id"),
		NextPage:              r.le32(offTDefNextPage, "next_page"),
		Length:                r.le32(offTDefLength, "length"),
		NumRows:               r.le32(offTDefNumRows, "num_rows"),
		AutoNumber:            r.le32(offTDefAutoNumber, "auto_number"),
		AutoNumberFlag:        r.u8(offTDefAutoNumberFlag, "auto_number_flag"),
		ComplexAutoNumber:     r.le32(offTDefComplexAutoNumber, "complex_auto_number"),
		RawTableType:          r.u8(offTDefTableType, "table_type"),
		MaxColumns:            r.le16(offTDefMaxColumns, "max_columns"),
		NumberVariableColumns: r.le16(offTDefNumVarColumns, "number_variable_columns"),
		NumColumns:            r.le16(offTDefNumColumns, "num_columns"),
		NumIdx:                r.le32(offTDefNumIdx, "num_idx"),
		NumRealIdx:            r.le32(offTDefNumRealIdx, "num_real_idx"),
		UsedPages:             r.le32(offTDefUsedPages, "used_pages"),
		FreePages:             r.le32(offTDefFreePages, "free_pages"),
	}
	if r.err != nil {
		return nil, r.err
	}
	if tt, ok := format.ParseTableType(td.RawTableType); ok {
		td.TableType = &tt
	}
	body := f.Data[format.TableDefinitionHeaderSize:len(f.Data):len(f.Data)]
	td.Body = record.Body{
		Offset:     format.TableDefinitionHeaderSize,
		Raw:        body,
		NumColumns: int(td.NumColumns),
		NumIdx:     int(td.NumIdx),
		NumRealIdx: int(td.NumRealIdx),
	}
	return td, nil
}

// HasNext reports whether the definition continues on another page.
func (td *TableDefinition) HasNext() bool { return td.NextPage != 0 }
