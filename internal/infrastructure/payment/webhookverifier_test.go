package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebhookVerifier_AcceptsOwnSignature(t *testing.T) {
	v := NewWebhookVerifier("whsec_test")
	body := []byte(`{"event":"payment.succeeded","intent_id":"pi_1"}`)

	sig := v.Sign(body)

	assert.True(t, v.Verify(body, sig))
}

func TestWebhookVerifier_RejectsTamperedBody(t *testing.T) {
	v := NewWebhookVerifier("whsec_test")
	body := []byte(`{"event":"payment.succeeded","intent_id":"pi_1"}`)
	sig := v.Sign(body)

	tampered := []byte(`{"event":"payment.succeeded","intent_id":"pi_2"}`)

	assert.False(t, v.Verify(tampered, sig))
}

func TestWebhookVerifier_RejectsEmptySignature(t *testing.T) {
	v := NewWebhookVerifier("whsec_test")

	assert.False(t, v.Verify([]byte("{}"), ""))
}

func TestWebhookVerifier_RejectsWrongSecret(t *testing.T) {
	body := []byte(`{"event":"payment.failed"}`)
	sig := NewWebhookVerifier("whsec_a").Sign(body)

	assert.False(t, NewWebhookVerifier("whsec_b").Verify(body, sig))
}
