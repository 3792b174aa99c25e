package utils

import "github.com/google/uuid"

// canonicalUUIDLen is the length of the 8-4-4-4-12 hex form.
const canonicalUUIDLen = 36

// TimeOrderedIDs hands out UUIDv7 strings, so ids sort by creation time.
type TimeOrderedIDs struct{}

// Generate falls back to a random v4 UUID when the v7 clock source fails.
func (TimeOrderedIDs) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// IsCanonicalUUID reports whether s is a UUID in the lowercase-or-uppercase
// 8-4-4-4-12 form. The braced and urn: forms accepted by uuid.Parse are
// rejected because stored ids never take them.
func IsCanonicalUUID(s string) bool {
	if len(s) != canonicalUUIDLen {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
