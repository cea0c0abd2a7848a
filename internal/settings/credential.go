package settings

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/rs/zerolog/log"
)

// newSalt returns 16 random bytes, hex encoded.
func newSalt() string {
	salt := make([]byte, 16)
	_, _ = rand.Read(salt)
	return hex.EncodeToString(salt)
}

// hashPIN computes the stored "salt$hash" form: sha256 over salt + pin.
func hashPIN(salt, pin string) string {
	sum := sha256.Sum256([]byte(salt + pin))
	return salt + "$" + hex.EncodeToString(sum[:])
}

// VerifyPIN checks a submitted PIN against the stored credential. A missing
// or malformed credential verifies false, never errors: verification fails
// closed.
func (s *Store) VerifyPIN(submitted string) bool {
	doc := s.Load()
	if doc.AdminPINHashed == "" {
		return false
	}
	salt, storedHash, ok := strings.Cut(doc.AdminPINHashed, "$")
	if !ok || salt == "" || storedHash == "" {
		log.Error().Msg("stored admin PIN has invalid format")
		return false
	}
	sum := sha256.Sum256([]byte(salt + submitted))
	computed := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

// SetPIN replaces the stored credential with a freshly salted hash of pin.
func (s *Store) SetPIN(pin string) error {
	_, err := s.Update(func(doc *Document) {
		doc.AdminPINHashed = hashPIN(newSalt(), pin)
		doc.AdminPINPlain = ""
	})
	return err
}
