package page

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest is the hex BLAKE3-256 of the page bytes. Identical pages across
// two files have identical digests.
func (p *Page) Digest() string {
	sum := blake3.Sum256(p.Raw)
	return hex.EncodeToString(sum[:])
}
