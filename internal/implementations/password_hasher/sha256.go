package passwordhasher

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"resetme/internal/core/domain/user"
)

// Sha256 hashes passwords as an unsalted single-pass SHA-256 hex digest.
//
// This is a weak scheme: no per-user salt and no work factor, so equal
// passwords share a digest and offline cracking is cheap. It exists to stay
// byte-compatible with digests already stored by earlier deployments.
// New deployments should configure the bcrypt hasher instead.
type Sha256 struct{}

func NewSha256() *Sha256 {
	return &Sha256{}
}

func (h *Sha256) HashPassword(password user.RawPassword) (user.PasswordHash, error) {
	digest := sha256.Sum256([]byte(password))
	return user.PasswordHash(hex.EncodeToString(digest[:])), nil
}

func (h *Sha256) ValidatePassword(password user.RawPassword, hash user.PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(actualHash), []byte(hash)) == 1
}
