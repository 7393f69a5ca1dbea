package token

import (
	"crypto/rand"
	"encoding/hex"
)

// DefaultLength is the entropy in bytes for verification and reset tokens.
const DefaultLength = 32

// Generate returns byteLength random bytes from the CSPRNG, hex-encoded.
// Used for email verification and password reset tokens; predictability here
// would be a security defect, so math/rand is never acceptable.
func Generate(byteLength int) (string, error) {
	if byteLength <= 0 {
		byteLength = DefaultLength
	}
	buf := make([]byte, byteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
