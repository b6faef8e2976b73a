package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	infraPayment "hoteltec/internal/infrastructure/payment"
	"hoteltec/internal/shared/logger"
)

func webhookRouter(t *testing.T, secret string) (*gin.Engine, *infraPayment.WebhookVerifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	verifier := infraPayment.NewWebhookVerifier(secret)
	h := NewPaymentHandler(nil, nil, nil, nil, verifier, logger.NewLogger())

	engine := gin.New()
	engine.POST("/api/whop/webhook", h.Webhook)
	return engine, verifier
}

func TestPaymentHandler_Webhook_MissingSignature(t *testing.T) {
	engine, _ := webhookRouter(t, "whsec_test")

	req := httptest.NewRequest(http.MethodPost, "/api/whop/webhook",
		bytes.NewBufferString(`{"event":"payment.succeeded"}`))
	rec := httptest.NewRecorder()

	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPaymentHandler_Webhook_BadSignature(t *testing.T) {
	engine, _ := webhookRouter(t, "whsec_test")

	req := httptest.NewRequest(http.MethodPost, "/api/whop/webhook",
		bytes.NewBufferString(`{"event":"payment.succeeded"}`))
	req.Header.Set("X-Whop-Signature", "deadbeef")
	rec := httptest.NewRecorder()

	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPaymentHandler_Webhook_SignatureOverDifferentBody(t *testing.T) {
	engine, verifier := webhookRouter(t, "whsec_test")

	sig := verifier.Sign([]byte(`{"event":"payment.failed"}`))

	req := httptest.NewRequest(http.MethodPost, "/api/whop/webhook",
		bytes.NewBufferString(`{"event":"payment.succeeded"}`))
	req.Header.Set("X-Whop-Signature", sig)
	rec := httptest.NewRecorder()

	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
