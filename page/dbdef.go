// dbdef.go - Database definition page (always page 0)
package page

import "github.com/wilhasse/go-mdb/format"

const (
	offDBVersion = 0x13
	offDBSecret  = 0x14
	offDBCounter = offDBSecret + format.SecretSize + 0x29 // 0xBD
)

type DatabaseDefinition struct {
	Version format.Version
	Secret  [format.SecretSize]byte // RC4 secret, see package obfuscation
	Counter uint32                  // obfuscated
}

func ParseDatabaseDefinition(f Frame) (*DatabaseDefinition, error) {
	r := fieldReader{f: f}
	vb := r.u8(offDBVersion, "version")
	secret := r.bytes(offDBSecret, format.SecretSize, "secret")
	counter := r.le32(offDBCounter, "counter")
	if r.err != nil {
		return nil, r.err
	}
	v, ok := format.ParseVersion(vb)
	if !ok {
		return nil, format.UnknownVersion(f.Index, f.Offset+offDBVersion, vb)
	}
	dd := &DatabaseDefinition{Version: v, Counter: counter}
	copy(dd.Secret[:], secret)
	return dd, nil
}
