package gomdb

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"

	"github.com/wilhasse/go-mdb/format"
	"github.com/wilhasse/go-mdb/page"
)

// PageReader decodes single pages from a file without loading the rest.
type PageReader struct {
	r io.ReaderAt
}

func NewPageReader(r io.ReaderAt) *PageReader { return &PageReader{r: r} }

// ReadPage reads and dispatches page pageNo. A page that ends past the end
// of the file is a truncation error.
func (pr *PageReader) ReadPage(pageNo uint32) (*page.Page, error) {
	buf := make([]byte, format.PageSize)
	off := int64(pageNo) * int64(format.PageSize)
	n, err := pr.r.ReadAt(buf, off)
	if n < format.PageSize {
		if err == nil || errors.Is(err, io.EOF) {
			return nil, format.Truncated(int(pageNo), off+int64(n), "short page")
		}
		return nil, errors.Wrapf(err, "read page %d", pageNo)
	}
	return page.Decode(page.Frame{Index: int(pageNo), Offset: off, Data: buf})
}

// LoadFile returns the full content of path. Files ending in .xz or .gz
// are decompressed first.
func LoadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open database file")
	}
	defer f.Close()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(err, "xz reader")
		}
		r = xzr
	case strings.HasSuffix(path, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(err, "gzip reader")
		}
		defer gzr.Close()
		r = gzr
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return buf, nil
}
