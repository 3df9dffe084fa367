package resettokengenerator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"resetme/internal/core/domain/user"
)

const tokenByteLength = 32

// Generator mints reset tokens from the system CSPRNG: 32 random bytes
// (256 bits) hex-encoded to a fixed 64-character string, safe to embed in
// a URL query parameter.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateResetToken() user.ResetToken {
	b := make([]byte, tokenByteLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(fmt.Sprintf("could not read random bytes: %v", err))
	}
	return user.ResetToken(hex.EncodeToString(b))
}
