// errors.go - Decode error kinds and sentinels
package format

import (
	"errors"
	"fmt"
)

// ErrorKind classifies fatal decode failures.
type ErrorKind uint8

const (
	KindTruncated ErrorKind = iota + 1
	KindUnknownVersion
	KindMissingDatabaseHeader
)

func (k ErrorKind) String() string {
	switch k {
	case KindTruncated:
		return "truncated"
	case KindUnknownVersion:
		return "unknown version"
	case KindMissingDatabaseHeader:
		return "missing database header"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Sentinels for errors.Is. A *FormatError matches the sentinel of its kind.
var (
	ErrTruncated             = errors.New("mdb: truncated")
	ErrUnknownVersion        = errors.New("mdb: unknown version")
	ErrMissingDatabaseHeader = errors.New("mdb: missing database header")
)

// FormatError is the single failure value surfaced by a decode.
// Offset is absolute within the input buffer.
type FormatError struct {
	Kind   ErrorKind
	Page   int
	Offset int64
	Detail string
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("mdb: %s at page %d offset 0x%x", e.Kind, e.Page, e.Offset)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *FormatError) Is(target error) bool {
	switch target {
	case ErrTruncated:
		return e.Kind == KindTruncated
	case ErrUnknownVersion:
		return e.Kind == KindUnknownVersion
	case ErrMissingDatabaseHeader:
		return e.Kind == KindMissingDatabaseHeader
	}
	return false
}

func Truncated(page int, off int64, detail string) *FormatError {
	return &FormatError{Kind: KindTruncated, Page: page, Offset: off, Detail: detail}
}

func UnknownVersion(page int, off int64, b uint8) *FormatError {
	return &FormatError{Kind: KindUnknownVersion, Page: page, Offset: off, Detail: fmt.Sprintf("version byte 0x%02x", b)}
}

func MissingDatabaseHeader(got PageType) *FormatError {
	return &FormatError{Kind: KindMissingDatabaseHeader, Detail: "page 0 is " + got.String()}
}
