// check.go - Compare an expected layout with a decoded table definition
package schema

import (
	"fmt"

	"github.com/wilhasse/go-mdb/format"
	"github.com/wilhasse/go-mdb/page"
)

// Mismatch is one header field that disagrees with the DDL.
type Mismatch struct {
	Field    string
	Expected string
	Actual   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: expected %s, got %s", m.Field, m.Expected, m.Actual)
}

// Check compares the counts in td with def. num_idx counts logical
// indexes and must equal the DDL's primary, unique and plain indexes;
// num_real_idx may be smaller since logical indexes can share a real one.
// An empty result means the header is consistent with the DDL.
func Check(def *TableDef, td *page.TableDefinition) []Mismatch {
	var out []Mismatch
	add := func(field string, want, got any) {
		out = append(out, Mismatch{Field: field, Expected: fmt.Sprint(want), Actual: fmt.Sprint(got)})
	}

	if got := int(td.NumColumns); got != def.ColumnCount() {
		add("num_columns", def.ColumnCount(), got)
	}
	if got := int(td.NumberVariableColumns); got != len(def.VariableLengthColumns()) {
		add("number_variable_columns", len(def.VariableLengthColumns()), got)
	}
	if got := int(td.NumIdx); got != len(def.Indexes) {
		add("num_idx", len(def.Indexes), got)
	}
	if td.NumRealIdx > td.NumIdx {
		add("num_real_idx", fmt.Sprintf("<= %d", td.NumIdx), td.NumRealIdx)
	}
	if int(td.MaxColumns) < def.ColumnCount() {
		add("max_columns", fmt.Sprintf(">= %d", def.ColumnCount()), td.MaxColumns)
	}
	if td.TableType == nil {
		add("table_type", format.TableTypeUser, fmt.Sprintf("0x%02x", td.RawTableType))
	} else if *td.TableType != format.TableTypeUser {
		add("table_type", format.TableTypeUser, *td.TableType)
	}
	return out
}
