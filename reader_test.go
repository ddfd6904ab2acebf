package gomdb

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	"github.com/wilhasse/go-mdb/internal/pagetest"
)

func TestPageReader(t *testing.T) {
	buf := sampleFile()
	pr := NewPageReader(bytes.NewReader(buf))

	p, err := pr.ReadPage(2)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Index)
	assert.Equal(t, int64(2*PageSize), p.Offset)
	require.NotNil(t, p.Data)
	assert.Equal(t, uint16(5), p.Data.NumRows)

	p, err = pr.ReadPage(0)
	require.NoError(t, err)
	assert.Equal(t, V4, p.DatabaseDefinition.Version)
}

func TestPageReaderPastEnd(t *testing.T) {
	buf := sampleFile()
	pr := NewPageReader(bytes.NewReader(buf[:len(buf)-1]))

	_, err := pr.ReadPage(5)
	assert.ErrorIs(t, err, ErrTruncated)
	_, err = pr.ReadPage(100)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestLoadFilePlain(t *testing.T) {
	buf := sampleFile()
	path := filepath.Join(t.TempDir(), "db.mdb")
	require.NoError(t, os.WriteFile(path, buf, 0o644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf, got)
}

func TestLoadFileXZ(t *testing.T) {
	buf := sampleFile()
	var cbuf bytes.Buffer
	w, err := xz.NewWriter(&cbuf)
	require.NoError(t, err)
	_, err = w.Write(buf)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "db.mdb.xz")
	require.NoError(t, os.WriteFile(path, cbuf.Bytes(), 0o644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf, got)
}

func TestLoadFileGzip(t *testing.T) {
	buf := pagetest.DatabaseDefinition(6, nil, 1)
	var cbuf bytes.Buffer
	w := gzip.NewWriter(&cbuf)
	_, err := w.Write(buf)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "db.accdb.gz")
	require.NoError(t, os.WriteFile(path, cbuf.Bytes(), 0o644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	db, err := Decode(got)
	require.NoError(t, err)
	assert.Equal(t, Access2019, db.Version())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.mdb"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open database file")
}
