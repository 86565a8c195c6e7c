package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const SignatureHeader = "X-Webhook-Signature"

// Sign returns the hex HMAC-SHA256 of body under secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify is the receiver side of Sign.
func Verify(secret string, body []byte, signature string) bool {
	expected := Sign(secret, body)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}

// Matches reports whether a comma separated filter accepts eventType. An
// empty filter or "*" accepts everything.
func Matches(filter, eventType string) bool {
	if strings.TrimSpace(filter) == "" {
		return true
	}
	for _, t := range strings.Split(filter, ",") {
		t = strings.TrimSpace(t)
		if t == "*" || t == eventType {
			return true
		}
	}
	return false
}
