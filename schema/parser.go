// parser.go - Parse CREATE TABLE SQL statements to extract an expected layout
package schema

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xwb1989/sqlparser"
)

// ParseTableDefFromSQL parses a CREATE TABLE statement and returns TableDef
func ParseTableDefFromSQL(sql string) (*TableDef, error) {
	stmt, err := sqlparser.Parse(sql)
	if err != nil {
		return nil, fmt.Errorf("parse SQL failed: %w", err)
	}

	ddl, ok := stmt.(*sqlparser.DDL)
	if !ok || ddl.Action != sqlparser.CreateStr {
		return nil, fmt.Errorf("statement is not CREATE TABLE")
	}
	if ddl.TableSpec == nil {
		return nil, fmt.Errorf("no table spec in CREATE TABLE")
	}

	tableDef := NewTableDef(ddl.NewName.Name.String())

	for _, col := range ddl.TableSpec.Columns {
		column := parseColumn(col)
		if err := tableDef.AddColumn(column); err != nil {
			return nil, err
		}
	}

	var primaryKeys []string
	for _, idx := range ddl.TableSpec.Indexes {
		index := Index{
			Name:    idx.Info.Name.String(),
			Primary: idx.Info.Primary,
			Unique:  idx.Info.Unique,
		}
		for _, col := range idx.Columns {
			index.Columns = append(index.Columns, col.Column.String())
		}
		if index.Primary {
			primaryKeys = index.Columns
		}
		tableDef.Indexes = append(tableDef.Indexes, index)
	}

	if len(primaryKeys) > 0 {
		if err := tableDef.SetPrimaryKeys(primaryKeys); err != nil {
			return nil, err
		}
	}

	return tableDef, nil
}

// ParseTableDefFromSQLFile reads and parses CREATE TABLE from a SQL file
func ParseTableDefFromSQLFile(filename string) (*TableDef, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read SQL file failed: %w", err)
	}

	return ParseTableDefFromSQL(string(content))
}

// parseColumn converts sqlparser.ColumnDefinition to our Column type
func parseColumn(col *sqlparser.ColumnDefinition) *Column {
	column := &Column{
		Name: col.Name.String(),
		Type: ColumnType(strings.ToUpper(col.Type.Type)),
	}

	if col.Type.Length != nil {
		if length, err := strconv.Atoi(string(col.Type.Length.Val)); err == nil {
			column.Length = length
		}
	}

	column.Nullable = !bool(col.Type.NotNull)
	column.AutoIncrement = bool(col.Type.Autoincrement)
	column.Type = normalizeColumnType(column.Type, column.Length)

	return column
}

// normalizeColumnType folds SQL type aliases onto the types above
func normalizeColumnType(colType ColumnType, length int) ColumnType {
	switch colType {
	case "INTEGER", "MEDIUMINT":
		return TypeInt
	case "DOUBLE PRECISION", "REAL":
		return TypeDouble
	case "DEC", "NUMERIC":
		return TypeDecimal
	case "BOOL", "BIT":
		return TypeBoolean
	case "TINYTEXT", "MEDIUMTEXT", "LONGTEXT":
		return TypeText
	case "TINYBLOB", "MEDIUMBLOB", "LONGBLOB":
		return TypeBlob
	case "TINYINT":
		if length == 1 {
			return TypeBoolean // TINYINT(1) is often used as boolean
		}
		return TypeTinyInt
	default:
		return colType
	}
}
