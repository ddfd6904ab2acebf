package page

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilhasse/go-mdb/format"
	"github.com/wilhasse/go-mdb/internal/pagetest"
)

func frameOf(b []byte) Frame {
	return Frame{Index: 0, Offset: 0, Data: b}
}

func TestDecodeDatabaseDefinition(t *testing.T) {
	secret := bytes.Repeat([]byte{0x5a}, format.SecretSize)
	p, err := Decode(frameOf(pagetest.DatabaseDefinition(2, secret, 0xdeadbeef)))
	require.NoError(t, err)

	assert.Equal(t, format.PageTypeDatabaseDefinition, p.Type)
	require.NotNil(t, p.DatabaseDefinition)
	assert.Nil(t, p.Data)
	assert.Nil(t, p.TableDefinition)
	assert.Equal(t, format.V5, p.DatabaseDefinition.Version)
	assert.Equal(t, secret, p.DatabaseDefinition.Secret[:])
	assert.Equal(t, uint32(0xdeadbeef), p.DatabaseDefinition.Counter)
}

func TestDecodeAllVersions(t *testing.T) {
	for b := uint8(0); b <= 6; b++ {
		p, err := Decode(frameOf(pagetest.DatabaseDefinition(b, nil, 0)))
		require.NoError(t, err)
		assert.Equal(t, format.Version(b), p.DatabaseDefinition.Version)
	}
}

func TestDecodeUnknownVersion(t *testing.T) {
	f := Frame{Index: 0, Offset: 0, Data: pagetest.DatabaseDefinition(7, nil, 0)}
	_, err := Decode(f)
	require.ErrorIs(t, err, format.ErrUnknownVersion)

	var fe *format.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, int64(0x13), fe.Offset)
}

func TestDecodeShortDatabaseDefinition(t *testing.T) {
	full := pagetest.DatabaseDefinition(1, nil, 0)
	f := Frame{Index: 0, Offset: 0, Data: full[:0x40]}
	_, err := Decode(f)
	require.ErrorIs(t, err, format.ErrTruncated)

	var fe *format.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, int64(0x14), fe.Offset)
	assert.Contains(t, fe.Detail, "secret")
}

func TestDecodeData(t *testing.T) {
	f := Frame{Index: 4, Offset: 4 * format.PageSize, Data: pagetest.Data(0x0123, 2, 17)}
	p, err := Decode(f)
	require.NoError(t, err)

	assert.Equal(t, 4, p.Index)
	assert.Equal(t, int64(4*format.PageSize), p.Offset)
	require.NotNil(t, p.Data)
	assert.Equal(t, uint16(0x0123), p.Data.FreeSpace)
	assert.Equal(t, uint32(2), p.Data.TableDefPage)
	assert.Equal(t, uint16(17), p.Data.NumRows)
}

func TestDecodeShortDataHeader(t *testing.T) {
	f := Frame{Index: 2, Offset: 2 * format.PageSize, Data: pagetest.Data(1, 2, 3)[:0x0D]}
	_, err := Decode(f)
	require.ErrorIs(t, err, format.ErrTruncated)

	var fe *format.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 2, fe.Page)
	assert.Equal(t, int64(2*format.PageSize+0x0C), fe.Offset)
}

var sampleTableDef = pagetest.TableDef{
	ID:                0x5643,
	NextPage:          9,
	Length:            0x2a0,
	NumRows:           1000,
	AutoNumber:        1001,
	AutoNumberFlag:    1,
	ComplexAutoNumber: 7,
	TableType:         0x4e,
	MaxColumns:        12,
	NumVarColumns:     3,
	NumColumns:        10,
	NumIdx:            2,
	NumRealIdx:        1,
	UsedPages:         33,
	FreePages:         34,
}

func assertTableDefFields(t *testing.T, td *TableDefinition) {
	t.Helper()
	assert.Equal(t, uint16(0x5643), td.TableDefID)
	assert.Equal(t, uint32(9), td.NextPage)
	assert.True(t, td.HasNext())
	assert.Equal(t, uint32(0x2a0), td.Length)
	assert.Equal(t, uint32(1000), td.NumRows)
	assert.Equal(t, uint32(1001), td.AutoNumber)
	assert.Equal(t, uint8(1), td.AutoNumberFlag)
	assert.Equal(t, uint32(7), td.ComplexAutoNumber)
	assert.Equal(t, uint16(12), td.MaxColumns)
	assert.Equal(t, uint16(3), td.NumberVariableColumns)
	assert.Equal(t, uint16(10), td.NumColumns)
	assert.Equal(t, uint32(2), td.NumIdx)
	assert.Equal(t, uint32(1), td.NumRealIdx)
	assert.Equal(t, uint32(33), td.UsedPages)
	assert.Equal(t, uint32(34), td.FreePages)
}

func TestDecodeTableDefinition(t *testing.T) {
	p, err := Decode(frameOf(pagetest.TableDefinition(sampleTableDef)))
	require.NoError(t, err)
	require.NotNil(t, p.TableDefinition)

	td := p.TableDefinition
	assertTableDefFields(t, td)
	require.NotNil(t, td.TableType)
	assert.Equal(t, format.TableTypeUser, *td.TableType)

	assert.Equal(t, format.TableDefinitionHeaderSize, td.Body.Offset)
	assert.Len(t, td.Body.Raw, format.PageSize-format.TableDefinitionHeaderSize)
	assert.Equal(t, 10, td.Body.NumColumns)
	assert.Equal(t, 1, td.Body.NumRealIdx)
	assert.False(t, td.Body.Decoded())
}

func TestDecodeSystemTable(t *testing.T) {
	def := sampleTableDef
	def.TableType = 0x53
	p, err := Decode(frameOf(pagetest.TableDefinition(def)))
	require.NoError(t, err)
	require.NotNil(t, p.TableDefinition.TableType)
	assert.Equal(t, format.TableTypeSystem, *p.TableDefinition.TableType)
}

func TestDecodeTableDefinitionUnknownTableType(t *testing.T) {
	def := sampleTableDef
	def.TableType = 0x01
	p, err := Decode(frameOf(pagetest.TableDefinition(def)))
	require.NoError(t, err)

	td := p.TableDefinition
	assert.Nil(t, td.TableType)
	assert.Equal(t, uint8(0x01), td.RawTableType)
	assertTableDefFields(t, td)
	assert.False(t, p.IsUnknown())
}

func TestDecodeShortTableDefinition(t *testing.T) {
	b := pagetest.TableDefinition(sampleTableDef)[:0x3C]
	_, err := Decode(frameOf(b))
	require.ErrorIs(t, err, format.ErrTruncated)
}

func TestDecodeHeaderlessKinds(t *testing.T) {
	for _, tag := range []format.PageType{
		format.PageTypeIntermediateIndex,
		format.PageTypeLeafIndex,
		format.PageTypePageUseBitmap,
	} {
		p, err := Decode(frameOf(pagetest.Tagged(uint8(tag))))
		require.NoError(t, err)
		assert.Equal(t, tag, p.Type)
		assert.False(t, p.IsUnknown())
		assert.Nil(t, p.DatabaseDefinition)
		assert.Nil(t, p.Data)
		assert.Nil(t, p.TableDefinition)
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	p, err := Decode(frameOf(pagetest.Tagged(9)))
	require.NoError(t, err)
	assert.True(t, p.IsUnknown())
	assert.Equal(t, format.PageType(9), p.Type)
}

func TestDecodeEmptyFrame(t *testing.T) {
	_, err := Decode(Frame{})
	assert.ErrorIs(t, err, format.ErrTruncated)
}

func TestDigest(t *testing.T) {
	a, err := Decode(frameOf(pagetest.Tagged(4)))
	require.NoError(t, err)
	b, err := Decode(Frame{Index: 7, Offset: 7 * format.PageSize, Data: pagetest.Tagged(4)})
	require.NoError(t, err)
	c, err := Decode(frameOf(pagetest.Tagged(5)))
	require.NoError(t, err)

	assert.Len(t, a.Digest(), 64)
	assert.Equal(t, a.Digest(), b.Digest())
	assert.NotEqual(t, a.Digest(), c.Digest())
}
