package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SHA256Hex returns the hex-encoded SHA256 hash of the input string.
func SHA256Hex(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// UserKey derives the stable binding-row key from the authenticated
// email. Emails are case-insensitive, so the input is lowercased and
// trimmed first; the raw address never reaches the database.
func UserKey(email string) string {
	return SHA256Hex(strings.ToLower(strings.TrimSpace(email)))
}

// LogPrefix returns a short, irreversible prefix of SHA256(input) for
// log correlation without writing PII.
func LogPrefix(input string) string {
	full := SHA256Hex(input)
	return full[:12]
}
