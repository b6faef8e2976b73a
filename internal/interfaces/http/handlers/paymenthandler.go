package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	paymentUC "hoteltec/internal/application/payment/usecases"
	subscriptionUC "hoteltec/internal/application/subscription/usecases"
	infraPayment "hoteltec/internal/infrastructure/payment"
	"hoteltec/internal/shared/logger"
	"hoteltec/internal/shared/utils"
)

const webhookSignatureHeader = "X-Whop-Signature"

type PaymentHandler struct {
	createIntent        *paymentUC.CreateIntentUseCase
	handleWebhook       *paymentUC.HandleWebhookUseCase
	rollbackIntent      *paymentUC.RollbackIntentUseCase
	confirmSubscription *subscriptionUC.ConfirmSubscriptionUseCase
	verifier            *infraPayment.WebhookVerifier
	logger              logger.Interface
}

func NewPaymentHandler(
	createIntent *paymentUC.CreateIntentUseCase,
	handleWebhook *paymentUC.HandleWebhookUseCase,
	rollbackIntent *paymentUC.RollbackIntentUseCase,
	confirmSubscription *subscriptionUC.ConfirmSubscriptionUseCase,
	verifier *infraPayment.WebhookVerifier,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		createIntent:        createIntent,
		handleWebhook:       handleWebhook,
		rollbackIntent:      rollbackIntent,
		confirmSubscription: confirmSubscription,
		verifier:            verifier,
		logger:              logger,
	}
}

type createIntentRequest struct {
	// Amount may legitimately be zero after a 100% coupon, so presence is
	// not enforced by binding.
	Amount   float64           `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	hotelID, err := utils.CurrentHotelID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createIntent.Execute(c.Request.Context(), paymentUC.CreateIntentCommand{
		UserID:   userID,
		HotelID:  hotelID,
		Amount:   req.Amount,
		Currency: req.Currency,
		Metadata: req.Metadata,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.NoPaymentNeeded {
		utils.SuccessResponse(c, http.StatusOK, "no payment needed", gin.H{
			"no_payment_needed": true,
		})
		return
	}

	utils.CreatedResponse(c, toIntentResponse(result.Intent), "payment intent created")
}

type confirmPaymentRequest struct {
	TransactionID     string `json:"transaction_id" binding:"required"`
	ProviderReference string `json:"provider_reference"`
}

// Confirm activates the pending subscription tied to a settled payment
// intent. Clients call it after checkout completes on their side; the
// webhook covers the cases where they never come back.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req confirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "transaction_id is required")
		return
	}

	sub, err := h.confirmSubscription.Execute(c.Request.Context(), subscriptionUC.ConfirmSubscriptionCommand{
		TransactionID:     req.TransactionID,
		ProviderReference: req.ProviderReference,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription activated", toSubscriptionResponse(sub))
}

type rollbackPaymentRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
}

// Rollback cancels a pending intent when checkout is abandoned client-side.
func (h *PaymentHandler) Rollback(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req rollbackPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "transaction_id is required")
		return
	}

	intent, err := h.rollbackIntent.Execute(c.Request.Context(), paymentUC.RollbackIntentCommand{
		TransactionID: req.TransactionID,
		UserID:        userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment rolled back", toIntentResponse(intent))
}

// Webhook receives provider payment events. The signature is checked against
// the raw body before anything is parsed; a bad or missing signature gets a
// 401 and no state changes.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "unable to read request body")
		return
	}

	signature := c.GetHeader(webhookSignatureHeader)
	if !h.verifier.Verify(body, signature) {
		h.logger.Warnw("webhook signature rejected", "remote_addr", c.ClientIP())
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid webhook signature")
		return
	}

	result, err := h.handleWebhook.Execute(c.Request.Context(), paymentUC.HandleWebhookCommand{
		Payload: body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"event_type": result.EventType,
		"handled":    result.Handled,
	})
}
