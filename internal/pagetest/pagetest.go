// Package pagetest builds synthetic Jet pages for tests.
package pagetest

import (
	"encoding/binary"

	"github.com/wilhasse/go-mdb/format"
)

func blank(tag format.PageType) []byte {
	b := make([]byte, format.PageSize)
	b[0] = byte(tag)
	return b
}

// DatabaseDefinition returns page 0 with the given version byte, secret and
// obfuscated counter.
func DatabaseDefinition(version uint8, secret []byte, counter uint32) []byte {
	b := blank(format.PageTypeDatabaseDefinition)
	b[0x13] = version
	copy(b[0x14:0x14+format.SecretSize], secret)
	binary.LittleEndian.PutUint32(b[0xBD:], counter)
	return b
}

func Data(freeSpace uint16, tableDefPage uint32, numRows uint16) []byte {
	b := blank(format.PageTypeData)
	binary.LittleEndian.PutUint16(b[0x02:], freeSpace)
	binary.LittleEndian.PutUint32(b[0x04:], tableDefPage)
	binary.LittleEndian.PutUint16(b[0x0C:], numRows)
	return b
}

// TableDef lists the header fields of a table definition page.
type TableDef struct {
	ID                uint16
	NextPage          uint32
	Length            uint32
	NumRows           uint32
	AutoNumber        uint32
	AutoNumberFlag    uint8
	ComplexAutoNumber uint32
	TableType         uint8
	MaxColumns        uint16
	NumVarColumns     uint16
	NumColumns        uint16
	NumIdx            uint32
	NumRealIdx        uint32
	UsedPages         uint32
	FreePages         uint32
}

func TableDefinition(td TableDef) []byte {
	b := blank(format.PageTypeTableDefinition)
	le := binary.LittleEndian
	le.PutUint16(b[0x02:], td.ID)
	le.PutUint32(b[0x04:], td.NextPage)
	le.PutUint32(b[0x08:], td.Length)
	le.PutUint32(b[0x10:], td.NumRows)
	le.PutUint32(b[0x14:], td.AutoNumber)
	b[0x18] = td.AutoNumberFlag
	le.PutUint32(b[0x1C:], td.ComplexAutoNumber)
	b[0x28] = td.TableType
	le.PutUint16(b[0x29:], td.MaxColumns)
	le.PutUint16(b[0x2B:], td.NumVarColumns)
	le.PutUint16(b[0x2D:], td.NumColumns)
	le.PutUint32(b[0x2F:], td.NumIdx)
	le.PutUint32(b[0x33:], td.NumRealIdx)
	le.PutUint32(b[0x37:], td.UsedPages)
	le.PutUint32(b[0x3B:], td.FreePages)
	return b
}

// Tagged returns an otherwise empty page carrying only the discriminant.
func Tagged(tag uint8) []byte {
	return blank(format.PageType(tag))
}

// Join concatenates pages into one file image.
func Join(pages ...[]byte) []byte {
	var out []byte
	for _, p := range pages {
		out = append(out, p...)
	}
	return out
}
