// database.go - Whole-file decoding
package gomdb

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/wilhasse/go-mdb/format"
	"github.com/wilhasse/go-mdb/page"
)

// Database is a decoded file. Pages are in physical order; Pages[i].Index == i.
// Page raw bytes alias the decoded buffer, which must not be modified.
type Database struct {
	PageSize int
	Pages    []*page.Page
}

// Header returns page 0.
func (db *Database) Header() *page.DatabaseDefinition {
	return db.Pages[0].DatabaseDefinition
}

func (db *Database) Version() format.Version { return db.Header().Version }

func (db *Database) Count() int { return len(db.Pages) }

// Page returns page n, or false if n is out of range.
func (db *Database) Page(n int) (*page.Page, bool) {
	if n < 0 || n >= len(db.Pages) {
		return nil, false
	}
	return db.Pages[n], true
}

// Stats counts pages per discriminant.
func (db *Database) Stats() map[format.PageType]int {
	out := make(map[format.PageType]int)
	for _, p := range db.Pages {
		out[p.Type]++
	}
	return out
}

// Decoder turns a file image into a Database. A Decoder holds no per-call
// state and may be shared between goroutines.
type Decoder struct {
	log logrus.FieldLogger
}

type Option func(*Decoder)

// WithLogger routes soft-decode notices (unknown page kinds, unknown table
// types) to l at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(d *Decoder) { d.log = l }
}

func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, o := range opts {
		o(d)
	}
	if d.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		d.log = l
	}
	return d
}

// Decode decodes buf with a default Decoder.
func Decode(buf []byte) (*Database, error) {
	return NewDecoder().Decode(buf)
}

// Decode requires page 0 to be a database definition and decodes every
// following page until buf is exhausted. Any fatal error aborts the decode.
func (d *Decoder) Decode(buf []byte) (*Database, error) {
	fr := page.NewFrameReader(buf, format.PageSize)

	first, err := fr.Next()
	if errors.Is(err, io.EOF) {
		return nil, format.Truncated(0, 0, "empty input")
	}
	if err != nil {
		return nil, err
	}
	hdr, err := page.Decode(first)
	if err != nil {
		return nil, err
	}
	if hdr.Type != format.PageTypeDatabaseDefinition {
		return nil, format.MissingDatabaseHeader(hdr.Type)
	}

	db := &Database{
		PageSize: format.PageSize,
		Pages:    make([]*page.Page, 0, len(buf)/format.PageSize),
	}
	db.Pages = append(db.Pages, hdr)

	for {
		f, err := fr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		p, err := page.Decode(f)
		if err != nil {
			return nil, err
		}
		d.noteSoftFallbacks(p)
		db.Pages = append(db.Pages, p)
	}

	d.log.WithFields(logrus.Fields{
		"pages":   len(db.Pages),
		"version": hdr.DatabaseDefinition.Version.String(),
	}).Debug("decoded database")
	return db, nil
}

func (d *Decoder) noteSoftFallbacks(p *page.Page) {
	if p.IsUnknown() {
		d.log.WithFields(logrus.Fields{"page": p.Index, "tag": uint8(p.Type)}).Debug("unknown page type")
		return
	}
	if td := p.TableDefinition; td != nil && td.TableType == nil {
		d.log.WithFields(logrus.Fields{"page": p.Index, "table_type": td.RawTableType}).Debug("unrecognized table type")
	}
}
