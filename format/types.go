// types.go - Page size, page tags and header enums of the Jet format
package format

import "fmt"

// PageSize is fixed for the format generations handled here; it is not
// read from the file.
const PageSize = 4096

const (
	// TableDefinitionHeaderSize is where the undecoded body starts.
	TableDefinitionHeaderSize = 0x3F
	SecretSize                = 128
)

// PageType is the discriminant stored in byte 0 of every page.
type PageType uint8

const (
	PageTypeDatabaseDefinition PageType = 0
	PageTypeData               PageType = 1
	PageTypeTableDefinition    PageType = 2
	PageTypeIntermediateIndex  PageType = 3
	PageTypeLeafIndex          PageType = 4
	PageTypePageUseBitmap      PageType = 5
)

// Known reports whether t is one of the modelled page kinds.
func (t PageType) Known() bool {
	return t <= PageTypePageUseBitmap
}

func (t PageType) String() string {
	switch t {
	case PageTypeDatabaseDefinition:
		return "DATABASE_DEFINITION"
	case PageTypeData:
		return "DATA"
	case PageTypeTableDefinition:
		return "TABLE_DEFINITION"
	case PageTypeIntermediateIndex:
		return "INTERMEDIATE_INDEX"
	case PageTypeLeafIndex:
		return "LEAF_INDEX"
	case PageTypePageUseBitmap:
		return "PAGE_USE_BITMAP"
	default:
		return fmt.Sprintf("UNKNOWN(0x%02x)", uint8(t))
	}
}

// Version is the release generation stored in the database definition page.
type Version uint8

const (
	V3 Version = iota
	V4
	V5
	Access2010
	Access2013
	Access2016
	Access2019
)

// ParseVersion maps the on-disk version byte to a generation.
func ParseVersion(b uint8) (Version, bool) {
	if b > uint8(Access2019) {
		return 0, false
	}
	return Version(b), true
}

func (v Version) String() string {
	switch v {
	case V3:
		return "Jet3"
	case V4:
		return "Jet4"
	case V5:
		return "Jet5"
	case Access2010:
		return "Access2010"
	case Access2013:
		return "Access2013"
	case Access2016:
		return "Access2016"
	case Access2019:
		return "Access2019"
	default:
		return fmt.Sprintf("Version(%d)", uint8(v))
	}
}

// TableType distinguishes user tables from system catalog tables.
type TableType uint8

const (
	TableTypeUser   TableType = 0x4e
	TableTypeSystem TableType = 0x53
)

// ParseTableType reports ok=false for bytes that are neither User nor System.
func ParseTableType(b uint8) (TableType, bool) {
	switch TableType(b) {
	case TableTypeUser, TableTypeSystem:
		return TableType(b), true
	}
	return 0, false
}

func (t TableType) String() string {
	switch t {
	case TableTypeUser:
		return "USER"
	case TableTypeSystem:
		return "SYSTEM"
	default:
		return fmt.Sprintf("TableType(0x%02x)", uint8(t))
	}
}
