package engine

import "crypto/subtle"

// CheckAPIKey compares the caller's key with the configured one byte for byte.
// An unconfigured key rejects everything. This is a shared secret, not a
// security boundary.
func CheckAPIKey(configured, supplied string) error {
	if configured == "" || supplied == "" {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(configured), []byte(supplied)) != 1 {
		return ErrUnauthorized
	}
	return nil
}
