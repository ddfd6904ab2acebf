package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilhasse/go-mdb/format"
	"github.com/wilhasse/go-mdb/page"
)

const customersDDL = `CREATE TABLE customers (
	id int NOT NULL AUTO_INCREMENT,
	name varchar(50) NOT NULL,
	notes text,
	balance double,
	created datetime,
	photo blob,
	PRIMARY KEY (id),
	UNIQUE KEY uk_name (name)
)`

func TestParseTableDefFromSQL(t *testing.T) {
	def, err := ParseTableDefFromSQL(customersDDL)
	require.NoError(t, err)

	assert.Equal(t, "customers", def.Name)
	require.Equal(t, 6, def.ColumnCount())
	assert.Equal(t, []string{"id"}, def.PrimaryKeys)
	assert.True(t, def.ColumnMap["id"].IsPrimaryKey)
	assert.True(t, def.ColumnMap["id"].AutoIncrement)
	assert.False(t, def.ColumnMap["name"].Nullable)
	assert.Equal(t, 50, def.ColumnMap["name"].Length)
	assert.True(t, def.HasAutoNumber())

	require.Len(t, def.Indexes, 2)
	assert.True(t, def.Indexes[0].Primary)
	assert.True(t, def.Indexes[1].Unique)
	assert.Equal(t, []string{"name"}, def.Indexes[1].Columns)

	var varNames []string
	for _, c := range def.VariableLengthColumns() {
		varNames = append(varNames, c.Name)
	}
	assert.Equal(t, []string{"name", "notes", "photo"}, varNames)
	assert.Contains(t, def.String(), "PRIMARY KEY")
}

func TestParseTableName(t *testing.T) {
	def, err := ParseTableDefFromSQL("CREATE TABLE orders (id int, PRIMARY KEY (id))")
	require.NoError(t, err)
	assert.Equal(t, "orders", def.Name)
	assert.Contains(t, def.String(), "orders")
}

func TestParseRejectsNonCreate(t *testing.T) {
	_, err := ParseTableDefFromSQL("SELECT 1")
	assert.Error(t, err)

	_, err = ParseTableDefFromSQL("CREATE TABLE (")
	assert.Error(t, err)
}

func TestParseTableDefFromSQLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.sql")
	require.NoError(t, os.WriteFile(path, []byte(customersDDL), 0o644))

	def, err := ParseTableDefFromSQLFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, def.ColumnCount())

	_, err = ParseTableDefFromSQLFile(filepath.Join(t.TempDir(), "missing.sql"))
	assert.Error(t, err)
}

func TestJetTypeMapping(t *testing.T) {
	cases := []struct {
		col  Column
		want JetType
		vary bool
	}{
		{Column{Type: TypeInt}, JetLongInt, false},
		{Column{Type: TypeSmallInt}, JetInt, false},
		{Column{Type: TypeTinyInt}, JetByte, false},
		{Column{Type: TypeBoolean}, JetBool, false},
		{Column{Type: TypeDouble}, JetDouble, false},
		{Column{Type: TypeDateTime}, JetDateTime, false},
		{Column{Type: TypeVarchar, Length: 255}, JetText, true},
		{Column{Type: TypeVarchar, Length: 1000}, JetMemo, true},
		{Column{Type: TypeText}, JetMemo, true},
		{Column{Type: TypeBlob}, JetOLE, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.col.JetType(), "%s", c.col.Type)
		assert.Equal(t, c.vary, c.col.IsVariableLength(), "%s", c.col.Type)
	}
	assert.Equal(t, TypeBoolean, normalizeColumnType("TINYINT", 1))
	assert.Equal(t, TypeInt, normalizeColumnType("INTEGER", 0))
}

func matchingHeader() *page.TableDefinition {
	user := format.TableTypeUser
	return &page.TableDefinition{
		TableType:             &user,
		RawTableType:          uint8(user),
		MaxColumns:            6,
		NumberVariableColumns: 3,
		NumColumns:            6,
		NumIdx:                2,
		NumRealIdx:            2,
	}
}

func TestCheckConsistent(t *testing.T) {
	def, err := ParseTableDefFromSQL(customersDDL)
	require.NoError(t, err)
	assert.Empty(t, Check(def, matchingHeader()))
}

func TestCheckReportsMismatches(t *testing.T) {
	def, err := ParseTableDefFromSQL(customersDDL)
	require.NoError(t, err)

	td := matchingHeader()
	td.NumColumns = 5
	td.NumberVariableColumns = 1
	td.NumRealIdx = 3
	td.TableType = nil
	td.RawTableType = 0x01

	var fields []string
	for _, m := range Check(def, td) {
		fields = append(fields, m.Field)
	}
	assert.Equal(t, []string{"num_columns", "number_variable_columns", "num_real_idx", "table_type"}, fields)

	mm := Check(def, td)[0]
	assert.Equal(t, "num_columns: expected 6, got 5", mm.String())
}

func TestCheckIndexCounts(t *testing.T) {
	def, err := ParseTableDefFromSQL(customersDDL)
	require.NoError(t, err)

	td := matchingHeader()
	td.NumRealIdx = 1
	assert.Empty(t, Check(def, td))

	td.NumIdx = 3
	mm := Check(def, td)
	require.Len(t, mm, 1)
	assert.Equal(t, "num_idx: expected 2, got 3", mm[0].String())
}

func TestCheckSystemTable(t *testing.T) {
	def, err := ParseTableDefFromSQL(customersDDL)
	require.NoError(t, err)

	td := matchingHeader()
	sys := format.TableTypeSystem
	td.TableType = &sys
	mm := Check(def, td)
	require.Len(t, mm, 1)
	assert.Equal(t, "table_type", mm[0].Field)
	assert.Equal(t, "USER", mm[0].Expected)
	assert.Equal(t, "SYSTEM", mm[0].Actual)
}
