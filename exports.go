// exports.go - Re-exports for main package API
package gomdb

import (
	"github.com/wilhasse/go-mdb/format"
	"github.com/wilhasse/go-mdb/obfuscation"
	"github.com/wilhasse/go-mdb/page"
	"github.com/wilhasse/go-mdb/record"
)

// Re-export types from format package
type (
	PageType    = format.PageType
	Version     = format.Version
	TableType   = format.TableType
	FormatError = format.FormatError
)

// Re-export constants from format package
const (
	PageSize                   = format.PageSize
	PageTypeDatabaseDefinition = format.PageTypeDatabaseDefinition
	PageTypeData               = format.PageTypeData
	PageTypeTableDefinition    = format.PageTypeTableDefinition
	PageTypeIntermediateIndex  = format.PageTypeIntermediateIndex
	PageTypeLeafIndex          = format.PageTypeLeafIndex
	PageTypePageUseBitmap      = format.PageTypePageUseBitmap
	V3                         = format.V3
	V4                         = format.V4
	V5                         = format.V5
	Access2010                 = format.Access2010
	Access2013                 = format.Access2013
	Access2016                 = format.Access2016
	Access2019                 = format.Access2019
	TableTypeUser              = format.TableTypeUser
	TableTypeSystem            = format.TableTypeSystem
)

// Re-export error sentinels from format package
var (
	ErrTruncated             = format.ErrTruncated
	ErrUnknownVersion        = format.ErrUnknownVersion
	ErrMissingDatabaseHeader = format.ErrMissingDatabaseHeader
)

// Re-export types from page package
type (
	Page               = page.Page
	Frame              = page.Frame
	DatabaseDefinition = page.DatabaseDefinition
	DataPage           = page.Data
	TableDefinition    = page.TableDefinition
)

// Re-export types from record package
type (
	TableBody   = record.Body
	BodyDecoder = record.BodyDecoder
)

// Re-export functions
var (
	DecodePage               = page.Decode
	NewFrameReader           = page.NewFrameReader
	ResolveCounter           = obfuscation.Resolve
	ResolveCounterWithKeyLen = obfuscation.ResolveWithKeyLength
)
