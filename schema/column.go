// column.go - Column definition for an expected table layout
package schema

// ColumnType is the SQL type name as written in the DDL, upper-cased.
type ColumnType string

const (
	TypeTinyInt   ColumnType = "TINYINT"
	TypeSmallInt  ColumnType = "SMALLINT"
	TypeInt       ColumnType = "INT"
	TypeBigInt    ColumnType = "BIGINT"
	TypeFloat     ColumnType = "FLOAT"
	TypeDouble    ColumnType = "DOUBLE"
	TypeDecimal   ColumnType = "DECIMAL"
	TypeBoolean   ColumnType = "BOOLEAN"
	TypeDate      ColumnType = "DATE"
	TypeDateTime  ColumnType = "DATETIME"
	TypeTimestamp ColumnType = "TIMESTAMP"
	TypeChar      ColumnType = "CHAR"
	TypeVarchar   ColumnType = "VARCHAR"
	TypeText      ColumnType = "TEXT"
	TypeBinary    ColumnType = "BINARY"
	TypeVarBinary ColumnType = "VARBINARY"
	TypeBlob      ColumnType = "BLOB"
)

// JetType is the column type code a Jet column descriptor stores.
type JetType uint8

const (
	JetBool     JetType = 0x01
	JetByte     JetType = 0x02
	JetInt      JetType = 0x03
	JetLongInt  JetType = 0x04
	JetMoney    JetType = 0x05
	JetFloat    JetType = 0x06
	JetDouble   JetType = 0x07
	JetDateTime JetType = 0x08
	JetBinary   JetType = 0x09
	JetText     JetType = 0x0A
	JetOLE      JetType = 0x0B
	JetMemo     JetType = 0x0C
	JetNumeric  JetType = 0x10
)

// Column represents one column of an expected table layout.
type Column struct {
	Name          string     // Column name
	Type          ColumnType // Column data type
	Ordinal       int        // Position in table (0-based)
	Length        int        // Length for CHAR, VARCHAR, etc.
	Nullable      bool       // Whether column can be NULL
	AutoIncrement bool       // AUTO_INCREMENT flag
	IsPrimaryKey  bool       // Part of primary key
}

// JetType maps the SQL type onto the Jet storage type.
func (c *Column) JetType() JetType {
	switch c.Type {
	case TypeBoolean:
		return JetBool
	case TypeTinyInt:
		return JetByte
	case TypeSmallInt:
		return JetInt
	case TypeInt:
		return JetLongInt
	case TypeBigInt, TypeDecimal:
		return JetNumeric
	case TypeFloat:
		return JetFloat
	case TypeDouble:
		return JetDouble
	case TypeDate, TypeDateTime, TypeTimestamp:
		return JetDateTime
	case TypeChar, TypeVarchar:
		if c.Length > 255 {
			return JetMemo
		}
		return JetText
	case TypeText:
		return JetMemo
	case TypeBinary, TypeVarBinary:
		return JetBinary
	case TypeBlob:
		return JetOLE
	default:
		return JetBinary
	}
}

// IsVariableLength returns true if Jet stores the column in the variable
// length area of a row.
func (c *Column) IsVariableLength() bool {
	switch c.JetType() {
	case JetText, JetMemo, JetOLE, JetBinary:
		return true
	default:
		return false
	}
}
