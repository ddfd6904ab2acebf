// Package obfuscation recovers the counter stored obfuscated in the
// database definition page.
//
// The counter is XORed with an RC4 keystream keyed by a prefix of the
// 128-byte secret that sits next to it. Applying the transform twice with
// the same secret yields the original value.
package obfuscation

import (
	"crypto/rc4"
	"encoding/binary"
	"fmt"

	"github.com/wilhasse/go-mdb/format"
)

// DefaultKeyLength is the number of secret bytes used as the RC4 key.
const DefaultKeyLength = 16

// Resolve returns the clear counter using the first DefaultKeyLength bytes
// of secret as the key. An all-zero key is not run through RC4: it marks a
// file without obfuscation and the counter is returned unchanged.
func Resolve(secret []byte, counter uint32) (uint32, error) {
	return ResolveWithKeyLength(secret, counter, DefaultKeyLength)
}

// ResolveWithKeyLength is Resolve with an explicit key length in
// [1, format.SecretSize]. A key of all zero bytes marks a file without
// obfuscation and leaves counter unchanged.
func ResolveWithKeyLength(secret []byte, counter uint32, keyLen int) (uint32, error) {
	if keyLen < 1 || keyLen > format.SecretSize {
		return 0, fmt.Errorf("obfuscation: key length %d outside [1, %d]", keyLen, format.SecretSize)
	}
	if len(secret) < keyLen {
		return 0, fmt.Errorf("obfuscation: secret has %d bytes, need %d", len(secret), keyLen)
	}
	key := secret[:keyLen]
	if isZero(key) {
		return counter, nil
	}
	c, err := rc4.NewCipher(key)
	if err != nil {
		return 0, fmt.Errorf("obfuscation: %w", err)
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], counter)
	c.XORKeyStream(buf[:], buf[:])
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
