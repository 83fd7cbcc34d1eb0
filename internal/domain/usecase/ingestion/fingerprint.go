package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the lower-hex SHA-256 digest of the raw document bytes
func Fingerprint(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
