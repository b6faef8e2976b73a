package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hoteltec/internal/application/coupon/usecases"
	"hoteltec/internal/shared/utils"
)

type CouponHandler struct {
	createCoupon   *usecases.CreateCouponUseCase
	listCoupons    *usecases.ListCouponsUseCase
	updateCoupon   *usecases.UpdateCouponUseCase
	deleteCoupon   *usecases.DeleteCouponUseCase
	validateCoupon *usecases.ValidateCouponUseCase
}

func NewCouponHandler(
	createCoupon *usecases.CreateCouponUseCase,
	listCoupons *usecases.ListCouponsUseCase,
	updateCoupon *usecases.UpdateCouponUseCase,
	deleteCoupon *usecases.DeleteCouponUseCase,
	validateCoupon *usecases.ValidateCouponUseCase,
) *CouponHandler {
	return &CouponHandler{
		createCoupon:   createCoupon,
		listCoupons:    listCoupons,
		updateCoupon:   updateCoupon,
		deleteCoupon:   deleteCoupon,
		validateCoupon: validateCoupon,
	}
}

type createCouponRequest struct {
	Code          string     `json:"code" binding:"required"`
	Description   string     `json:"description"`
	DiscountType  string     `json:"discount_type" binding:"required"`
	DiscountValue float64    `json:"discount_value" binding:"required"`
	MaxUses       int        `json:"max_uses"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

func (h *CouponHandler) Create(c *gin.Context) {
	var req createCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cp, err := h.createCoupon.Execute(c.Request.Context(), usecases.CreateCouponCommand{
		Code:          req.Code,
		Description:   req.Description,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		MaxUses:       req.MaxUses,
		ExpiresAt:     req.ExpiresAt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCouponResponse(cp), "coupon created")
}

func (h *CouponHandler) List(c *gin.Context) {
	page := utils.GetPagination(c)
	result, err := h.listCoupons.Execute(c.Request.Context(), usecases.ListCouponsCommand{
		Page:     page.Page,
		PageSize: page.Limit(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]CouponResponse, 0, len(result.Coupons))
	for _, cp := range result.Coupons {
		out = append(out, toCouponResponse(cp))
	}
	utils.ListSuccessResponse(c, out, result.Total, page.Page, page.Limit())
}

type updateCouponRequest struct {
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (h *CouponHandler) Update(c *gin.Context) {
	couponID, err := utils.ParseUintParam(c, "id", "coupon")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cp, err := h.updateCoupon.Execute(c.Request.Context(), usecases.UpdateCouponCommand{
		CouponID:    couponID,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "coupon updated", toCouponResponse(cp))
}

func (h *CouponHandler) Delete(c *gin.Context) {
	couponID, err := utils.ParseUintParam(c, "id", "coupon")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteCoupon.Execute(c.Request.Context(), couponID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "coupon deleted", nil)
}

type validateCouponRequest struct {
	Code   string  `json:"code" binding:"required"`
	Amount float64 `json:"amount"`
}

// Validate is public so the checkout page can preview a discount before the
// subscription is created. It never consumes a use.
func (h *CouponHandler) Validate(c *gin.Context) {
	var req validateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "code is required")
		return
	}

	result, err := h.validateCoupon.Execute(c.Request.Context(), usecases.ValidateCouponCommand{
		Code:   req.Code,
		Amount: req.Amount,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	data := gin.H{
		"valid": result.Valid,
	}
	if result.Valid {
		data["coupon"] = toCouponResponse(result.Coupon)
		data["discount_amount"] = result.DiscountAmount
		data["discounted_total"] = result.DiscountedTotal
	} else {
		data["reason"] = result.Reason
	}

	utils.SuccessResponse(c, http.StatusOK, "", data)
}
