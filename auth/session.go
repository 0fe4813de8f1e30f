// Package auth implements the shared-secret admin session scheme: a
// single token derived from the server secret, carried in a browser
// cookie. There are no per-user sessions; whoever holds the token is
// the administrator until the secret rotates.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

const CookieName = "admin_session"

// CookieMaxAge is seven days, in seconds.
const CookieMaxAge = 7 * 24 * 60 * 60

// tokenMessage is the fixed HMAC input. The token identifies "the
// admin", not a user, so there is nothing per-session to sign.
const tokenMessage = "admin"

// SessionToken derives the admin session token from the server secret:
// lowercase hex of HMAC-SHA256(secret, "admin"). An empty secret yields
// an empty token, which VerifyToken never accepts.
func SessionToken(secret string) string {
	if secret == "" {
		return ""
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(tokenMessage))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyToken reports whether candidate matches expected. Both must be
// non-empty. The comparison is constant-time in the token contents:
// a length mismatch fails fast (length is not secret here, the token
// length is fixed and public), but equal-length inputs are always
// compared in full.
func VerifyToken(candidate, expected string) bool {
	if candidate == "" || expected == "" {
		return false
	}
	if len(candidate) != len(expected) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(expected)) == 1
}
