// table_def.go - Expected table layout parsed from DDL
package schema

import (
	"fmt"
	"strings"
)

// TableDef is the layout a table definition page is expected to describe.
type TableDef struct {
	Name        string             // Table name
	Columns     []*Column          // All columns in order
	ColumnMap   map[string]*Column // Column name to column mapping
	PrimaryKeys []string           // Primary key column names in order
	Indexes     []Index            // PRIMARY, UNIQUE and plain indexes

	varLenColumns []*Column
}

// Index is one index declared in the DDL.
type Index struct {
	Name    string
	Primary bool
	Unique  bool
	Columns []string
}

// NewTableDef creates a new table definition
func NewTableDef(name string) *TableDef {
	return &TableDef{
		Name:      name,
		Columns:   make([]*Column, 0),
		ColumnMap: make(map[string]*Column),
	}
}

// AddColumn adds a column to the table definition
func (td *TableDef) AddColumn(col *Column) error {
	if _, exists := td.ColumnMap[col.Name]; exists {
		return fmt.Errorf("column %s already exists", col.Name)
	}

	col.Ordinal = len(td.Columns)
	td.Columns = append(td.Columns, col)
	td.ColumnMap[col.Name] = col

	if col.IsVariableLength() {
		td.varLenColumns = append(td.varLenColumns, col)
	}
	return nil
}

// SetPrimaryKeys sets the primary key columns
func (td *TableDef) SetPrimaryKeys(keys []string) error {
	for _, key := range keys {
		col, exists := td.ColumnMap[key]
		if !exists {
			return fmt.Errorf("primary key column %s not found", key)
		}
		col.IsPrimaryKey = true
	}
	td.PrimaryKeys = keys
	return nil
}

// ColumnCount returns the total number of columns
func (td *TableDef) ColumnCount() int {
	return len(td.Columns)
}

// VariableLengthColumns returns columns stored in the variable area
func (td *TableDef) VariableLengthColumns() []*Column {
	return td.varLenColumns
}

// HasAutoNumber reports whether any column is AUTO_INCREMENT
func (td *TableDef) HasAutoNumber() bool {
	for _, c := range td.Columns {
		if c.AutoIncrement {
			return true
		}
	}
	return false
}

// String returns a string representation of the table definition
func (td *TableDef) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Table: %s\n", td.Name))
	sb.WriteString("Columns:\n")
	for _, col := range td.Columns {
		nullable := " NOT NULL"
		if col.Nullable {
			nullable = " NULL"
		}
		pk := ""
		if col.IsPrimaryKey {
			pk = " PRIMARY KEY"
		}
		sb.WriteString(fmt.Sprintf("  %d. %s %s(%d)%s%s\n",
			col.Ordinal, col.Name, col.Type, col.Length, nullable, pk))
	}
	if len(td.Indexes) > 0 {
		sb.WriteString(fmt.Sprintf("Indexes: %d\n", len(td.Indexes)))
	}
	return sb.String()
}
