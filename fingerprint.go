package webdigest

import (
	"encoding/binary"
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes the deterministic digest of a source URL used as the
// dedup/upsert key. The URL is normalized before hashing: surrounding
// whitespace is trimmed and the fragment is stripped. Equal URLs always
// yield equal fingerprints.
func Fingerprint(rawURL string) string {
	normalized := strings.TrimSpace(rawURL)
	if u, err := url.Parse(normalized); err == nil {
		u.Fragment = ""
		normalized = u.String()
	}

	h := xxhash.Sum64String(normalized)
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h)
	return hex.EncodeToString(b)
}
