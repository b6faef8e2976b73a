package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteltec/internal/application/subscription/usecases"
	"hoteltec/internal/shared/utils"
)

type SubscriptionHandler struct {
	createSubscription *usecases.CreateSubscriptionUseCase
	listPlans          *usecases.ListPlansUseCase
	listSubscriptions  *usecases.ListSubscriptionsUseCase
	getStatus          *usecases.GetSubscriptionStatusUseCase
	updateSubscription *usecases.UpdateSubscriptionUseCase
	cancelSubscription *usecases.CancelSubscriptionUseCase
}

func NewSubscriptionHandler(
	createSubscription *usecases.CreateSubscriptionUseCase,
	listPlans *usecases.ListPlansUseCase,
	listSubscriptions *usecases.ListSubscriptionsUseCase,
	getStatus *usecases.GetSubscriptionStatusUseCase,
	updateSubscription *usecases.UpdateSubscriptionUseCase,
	cancelSubscription *usecases.CancelSubscriptionUseCase,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createSubscription: createSubscription,
		listPlans:          listPlans,
		listSubscriptions:  listSubscriptions,
		getStatus:          getStatus,
		updateSubscription: updateSubscription,
		cancelSubscription: cancelSubscription,
	}
}

// ListPlans is public so the pricing page can render before signup.
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	plans, err := h.listPlans.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPlanResponse(p))
	}
	utils.SuccessResponse(c, http.StatusOK, "", out)
}

type createSubscriptionRequest struct {
	PlanID     uint   `json:"plan_id" binding:"required"`
	CouponCode string `json:"coupon_code"`
	StartTrial bool   `json:"start_trial"`
}

func (h *SubscriptionHandler) Create(c *gin.Context) {
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

	var req createSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "plan_id is required")
		return
	}

	result, err := h.createSubscription.Execute(c.Request.Context(), usecases.CreateSubscriptionCommand{
		HotelID:    hotelID,
		UserID:     userID,
		PlanID:     req.PlanID,
		CouponCode: req.CouponCode,
		StartTrial: req.StartTrial,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	data := gin.H{
		"subscription":    toSubscriptionResponse(result.Subscription),
		"plan":            toPlanResponse(result.Plan),
		"discount_amount": result.DiscountAmount,
		"amount_due":      result.AmountDue,
	}
	if result.Intent != nil {
		data["payment_intent"] = toIntentResponse(result.Intent)
	}
	if result.NoPaymentNeeded {
		data["no_payment_needed"] = true
		utils.CreatedResponse(c, data, "subscription activated, no payment needed")
		return
	}

	utils.CreatedResponse(c, data, "subscription created")
}

// List returns the hotel's subscription history, newest first.
func (h *SubscriptionHandler) List(c *gin.Context) {
	hotelID, err := utils.CurrentHotelID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page := utils.GetPagination(c)
	result, err := h.listSubscriptions.Execute(c.Request.Context(), usecases.ListSubscriptionsCommand{
		HotelID:  hotelID,
		Status:   c.Query("status"),
		Page:     page.Page,
		PageSize: page.Limit(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]SubscriptionResponse, 0, len(result.Subscriptions))
	for _, sub := range result.Subscriptions {
		out = append(out, toSubscriptionResponse(sub))
	}
	utils.ListSuccessResponse(c, out, result.Total, page.Page, page.Limit())
}

func (h *SubscriptionHandler) Status(c *gin.Context) {
	hotelID, err := utils.CurrentHotelID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getStatus.Execute(c.Request.Context(), usecases.GetSubscriptionStatusCommand{
		HotelID: hotelID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	data := gin.H{
		"has_active":      result.HasActive,
		"on_trial":        result.OnTrial,
		"days_remaining":  result.DaysRemaining,
		"max_products":    result.MaxProducts,
		"product_count":   result.ProductCount,
		"can_add_product": result.CanAddProduct,
	}
	if result.Subscription != nil {
		data["subscription"] = toSubscriptionResponse(result.Subscription)
	}
	if result.Plan != nil {
		data["plan"] = toPlanResponse(result.Plan)
	}

	utils.SuccessResponse(c, http.StatusOK, "", data)
}

type updateSubscriptionRequest struct {
	Status *string `json:"status"`
}

func (h *SubscriptionHandler) Update(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
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

	var req updateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	sub, err := h.updateSubscription.Execute(c.Request.Context(), usecases.UpdateSubscriptionCommand{
		SubscriptionID: subscriptionID,
		HotelID:        hotelID,
		UserID:         userID,
		Status:         req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription updated", toSubscriptionResponse(sub))
}

func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
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

	sub, err := h.cancelSubscription.Execute(c.Request.Context(), usecases.CancelSubscriptionCommand{
		HotelID:        hotelID,
		UserID:         userID,
		SubscriptionID: subscriptionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription cancelled", toSubscriptionResponse(sub))
}
