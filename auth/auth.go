// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

var ErrInvalidSessionKey = errors.New("invalid session key")

// GenerateSessionKey creates an HMAC-based ownership key for a session.
// This is deterministic and verifiable: issued once when the session starts,
// required on every subsequent operation against that session. Real identity
// lives in the surrounding platform; the key only proves the caller is the
// one who started this attempt.
func GenerateSessionKey(sessionID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(sessionID))
	sum := h.Sum(nil)
	// URL-safe base64 without padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateSessionKey checks if the provided key is valid for the session.
func ValidateSessionKey(sessionID, key, salt string) error {
	expected := GenerateSessionKey(sessionID, salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidSessionKey
	}
	return nil
}

// HashRef creates a one-way hash of a respondent reference for log lines,
// so raw references never land in logs. Salted to prevent rainbow tables.
func HashRef(ref, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ref))
	sum := h.Sum(nil)
	// First 16 hex chars (64 bits) - enough to correlate log lines
	return hex.EncodeToString(sum[:8])
}
