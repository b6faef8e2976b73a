package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// WebhookVerifier checks the HMAC-SHA256 signature the payment provider puts
// on inbound webhook bodies.
type WebhookVerifier struct {
	secret []byte
}

func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: []byte(secret)}
}

// Sign computes the hex-encoded HMAC-SHA256 of the raw body.
func (v *WebhookVerifier) Sign(body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares the provided signature against the computed one in
// constant time. An empty signature never verifies.
func (v *WebhookVerifier) Verify(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	expected := v.Sign(body)
	return hmac.Equal([]byte(expected), []byte(signature))
}
