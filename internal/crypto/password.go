package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters; digests are only recomputed at sign-up and sign-in
// so the cost stays off the request hot path.
const (
	saltLength  = 16
	timeCost    = 1
	memoryCost  = 64 * 1024
	parallelism = 4
	digestLen   = 32
)

// HashPassword derives a digest from the plaintext. A nil salt requests a
// fresh random one; passing the stored salt back in reproduces the digest
// for verification.
func HashPassword(plain string, salt []byte) ([]byte, []byte, error) {
	if salt == nil {
		salt = make([]byte, saltLength)
		if _, err := rand.Read(salt); err != nil {
			return nil, nil, fmt.Errorf("generate salt: %w", err)
		}
	}
	digest := argon2.IDKey([]byte(plain), salt, timeCost, memoryCost, parallelism, digestLen)
	return salt, digest, nil
}

// VerifyPassword recomputes the digest with the stored salt and compares in
// constant time.
func VerifyPassword(plain string, salt, digest []byte) bool {
	_, computed, err := HashPassword(plain, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(computed, digest) == 1
}
