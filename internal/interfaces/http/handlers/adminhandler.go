package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hoteltec/internal/application/admin/usecases"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/utils"
)

// respondUnprovisioned answers for tables that migrations have not created
// yet. Admin dashboards get an explicit capability flag instead of a 500 or
// fabricated zeros.
func respondUnprovisioned(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"provisioned": false,
		"data":        []any{},
	})
}

// AdminHandler serves the super-admin console: platform analytics, hotel
// and user management, and operational toggles.
type AdminHandler struct {
	getAnalytics   *usecases.GetAnalyticsUseCase
	getEarnings    *usecases.GetEarningsUseCase
	listHotels     *usecases.ListHotelsUseCase
	listUsers      *usecases.ListUsersUseCase
	setMaintenance *usecases.SetMaintenanceUseCase
	deleteHotel    *usecases.DeleteHotelUseCase
	healthCheck    *usecases.HealthCheckUseCase
	runMaintenance *usecases.RunMaintenanceUseCase
	cleanupAccount *usecases.CleanupAccountUseCase
}

func NewAdminHandler(
	getAnalytics *usecases.GetAnalyticsUseCase,
	getEarnings *usecases.GetEarningsUseCase,
	listHotels *usecases.ListHotelsUseCase,
	listUsers *usecases.ListUsersUseCase,
	setMaintenance *usecases.SetMaintenanceUseCase,
	deleteHotel *usecases.DeleteHotelUseCase,
	healthCheck *usecases.HealthCheckUseCase,
	runMaintenance *usecases.RunMaintenanceUseCase,
	cleanupAccount *usecases.CleanupAccountUseCase,
) *AdminHandler {
	return &AdminHandler{
		getAnalytics:   getAnalytics,
		getEarnings:    getEarnings,
		listHotels:     listHotels,
		listUsers:      listUsers,
		setMaintenance: setMaintenance,
		deleteHotel:    deleteHotel,
		healthCheck:    healthCheck,
		runMaintenance: runMaintenance,
		cleanupAccount: cleanupAccount,
	}
}

func (h *AdminHandler) Analytics(c *gin.Context) {
	result, err := h.getAnalytics.Execute(c.Request.Context())
	if err != nil {
		if apperrors.IsMissingTableError(err) {
			respondUnprovisioned(c)
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"total_hotels":         result.TotalHotels,
		"total_users":          result.TotalUsers,
		"active_subscriptions": result.ActiveSubscriptions,
		"trial_subscriptions":  result.TrialSubscriptions,
		"open_tickets":         result.OpenTickets,
		"orders_today":         result.OrdersToday,
		"orders_this_month":    result.OrdersThisMonth,
		"revenue_all_time":     result.RevenueAllTime,
	})
}

func (h *AdminHandler) Earnings(c *gin.Context) {
	period := usecases.EarningsPeriod(c.DefaultQuery("period", "today"))

	var hotelID *uint
	if raw := c.Query("hotel_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid hotel_id")
			return
		}
		v := uint(id)
		hotelID = &v
	}

	result, err := h.getEarnings.Execute(c.Request.Context(), usecases.GetEarningsCommand{
		Period:    period,
		StartDate: c.Query("start"),
		EndDate:   c.Query("end"),
		HotelID:   hotelID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	data := gin.H{
		"period":      string(result.Period),
		"order_total": result.OrderTotal,
		"order_count": result.OrderCount,
	}
	if result.From != nil {
		data["from"] = result.From.Format(time.RFC3339)
	}
	if result.To != nil {
		data["to"] = result.To.Format(time.RFC3339)
	}

	utils.SuccessResponse(c, http.StatusOK, "", data)
}

func (h *AdminHandler) ListHotels(c *gin.Context) {
	page := utils.GetPagination(c)
	result, err := h.listHotels.Execute(c.Request.Context(), usecases.ListHotelsCommand{
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Page:     page.Page,
		PageSize: page.Limit(),
	})
	if err != nil {
		if apperrors.IsMissingTableError(err) {
			respondUnprovisioned(c)
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]HotelResponse, 0, len(result.Hotels))
	for _, hl := range result.Hotels {
		out = append(out, toHotelResponse(hl))
	}
	utils.ListSuccessResponse(c, out, result.Total, page.Page, page.Limit())
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page := utils.GetPagination(c)
	result, err := h.listUsers.Execute(c.Request.Context(), usecases.ListUsersCommand{
		Role:     c.Query("role"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Page:     page.Page,
		PageSize: page.Limit(),
	})
	if err != nil {
		if apperrors.IsMissingTableError(err) {
			respondUnprovisioned(c)
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]UserResponse, 0, len(result.Users))
	for _, u := range result.Users {
		out = append(out, toUserResponse(u))
	}
	utils.ListSuccessResponse(c, out, result.Total, page.Page, page.Limit())
}

type setMaintenanceRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *AdminHandler) SetMaintenance(c *gin.Context) {
	hotelID, err := utils.ParseUintParam(c, "id", "hotel")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req setMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	hl, err := h.setMaintenance.Execute(c.Request.Context(), usecases.SetMaintenanceCommand{
		HotelID: hotelID,
		Enabled: req.Enabled,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "maintenance mode updated", toHotelResponse(hl))
}

func (h *AdminHandler) DeleteHotel(c *gin.Context) {
	hotelID, err := utils.ParseUintParam(c, "id", "hotel")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteHotel.Execute(c.Request.Context(), hotelID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "hotel deleted", nil)
}

func (h *AdminHandler) RunMaintenance(c *gin.Context) {
	result, err := h.runMaintenance.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "maintenance sweep completed", result)
}

type cleanupAccountRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AdminHandler) CleanupAccount(c *gin.Context) {
	var req cleanupAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "a valid email is required")
		return
	}

	if err := h.cleanupAccount.Execute(c.Request.Context(), usecases.CleanupAccountCommand{
		Email: req.Email,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "account cleaned up", nil)
}

func (h *AdminHandler) Health(c *gin.Context) {
	result := h.healthCheck.Execute(c.Request.Context())
	status := http.StatusOK
	if !result.Healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, result)
}
