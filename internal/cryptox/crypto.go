// Package cryptox derives password verifiers for the seeded account table.
// Plain passwords never leave the seeding step; lookups compare verifiers.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/loginflow/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the random salt produced by NewVerifier.
const SaltSize = 16

// MakeVerifier hashes a derived key into the value stored alongside an account.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// DeriveMasterKey stretches password with salt using argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// NewVerifier generates a random salt and the verifier for password.
func NewVerifier(password []byte) (salt, verifier []byte) {
	salt = common.GenerateRandByteArray(SaltSize)
	key := DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)
	return salt, MakeVerifier(key)
}

// CheckPassword reports whether password matches the stored salt/verifier
// pair. The comparison runs in constant time.
func CheckPassword(password, salt, verifier []byte) bool {
	key := DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)
	return subtle.ConstantTimeCompare(MakeVerifier(key), verifier) == 1
}
