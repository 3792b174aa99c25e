// Package crypto holds the server-side credential hashing used by signup and login.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into slow, salted digests and
// checks plaintext candidates against stored digests.
//
// Implementations must be safe for concurrent use; the server shares one
// instance across all requests.
type PasswordHasher interface {
	// Hash returns a salted digest of plaintext. Two calls with the same
	// input yield different digests.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest.
	// A mismatch is (false, nil); a malformed digest is (false, ErrCorruptCredential).
	Verify(plaintext, digest string) (bool, error)
}
