package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteltec/internal/application/order/usecases"
	"hoteltec/internal/domain/hotel"
	"hoteltec/internal/shared/utils"
)

type OrderHandler struct {
	createOrder *usecases.CreateOrderUseCase
	listOrders  *usecases.ListOrdersUseCase
	getOrder    *usecases.GetOrderUseCase
	updateOrder *usecases.UpdateOrderStatusUseCase
	hotelRepo   hotel.HotelRepository
}

func NewOrderHandler(
	createOrder *usecases.CreateOrderUseCase,
	listOrders *usecases.ListOrdersUseCase,
	getOrder *usecases.GetOrderUseCase,
	updateOrder *usecases.UpdateOrderStatusUseCase,
	hotelRepo hotel.HotelRepository,
) *OrderHandler {
	return &OrderHandler{
		createOrder: createOrder,
		listOrders:  listOrders,
		getOrder:    getOrder,
		updateOrder: updateOrder,
		hotelRepo:   hotelRepo,
	}
}

type orderItemRequest struct {
	ProductID uint `json:"product_id"`
	ProductId uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// createOrderRequest accepts both snake_case and camelCase field spellings;
// guest clients in the wild send either. Normalization happens here so the
// use case sees one shape.
type createOrderRequest struct {
	HotelID       uint               `json:"hotel_id"`
	HotelId       uint               `json:"hotelId"`
	HotelSlug     string             `json:"hotel_slug"`
	RoomNumber    string             `json:"room_number"`
	RoomNumberCC  string             `json:"roomNumber"`
	GuestName     string             `json:"guest_name"`
	GuestNameCC   string             `json:"guestName"`
	PhoneNumber   string             `json:"phone_number"`
	PhoneNumberCC string             `json:"phoneNumber"`
	GuestEmail    string             `json:"guest_email"`
	GuestEmailCC  string             `json:"guestEmail"`
	PaymentMethod string             `json:"payment_method"`
	Notes         string             `json:"notes"`
	TotalAmount   float64            `json:"total_amount"`
	TotalAmountCC float64            `json:"totalAmount"`
	Items         []orderItemRequest `json:"items"`
}

func (r *createOrderRequest) normalize() {
	if r.HotelID == 0 {
		r.HotelID = r.HotelId
	}
	if r.RoomNumber == "" {
		r.RoomNumber = r.RoomNumberCC
	}
	if r.GuestName == "" {
		r.GuestName = r.GuestNameCC
	}
	if r.PhoneNumber == "" {
		r.PhoneNumber = r.PhoneNumberCC
	}
	if r.GuestEmail == "" {
		r.GuestEmail = r.GuestEmailCC
	}
	if r.TotalAmount == 0 {
		r.TotalAmount = r.TotalAmountCC
	}
	for i := range r.Items {
		if r.Items[i].ProductID == 0 {
			r.Items[i].ProductID = r.Items[i].ProductId
		}
	}
}

// Create places a guest order. Public endpoint.
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	req.normalize()

	if req.HotelID == 0 && req.HotelSlug != "" {
		resolved, err := h.hotelRepo.GetBySlug(c.Request.Context(), hotel.Slugify(req.HotelSlug))
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		req.HotelID = resolved.ID()
	}

	items := make([]usecases.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecases.OrderItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	result, err := h.createOrder.Execute(c.Request.Context(), usecases.CreateOrderCommand{
		HotelID:       req.HotelID,
		RoomNumber:    strings.TrimSpace(req.RoomNumber),
		GuestName:     strings.TrimSpace(req.GuestName),
		PhoneNumber:   strings.TrimSpace(req.PhoneNumber),
		GuestEmail:    strings.TrimSpace(req.GuestEmail),
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		TotalAmount:   req.TotalAmount,
		Items:         items,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toOrderResponse(result.Order), "order placed")
}

// List returns the authenticated hotel's orders.
func (h *OrderHandler) List(c *gin.Context) {
	hotelID, err := utils.CurrentHotelID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page := utils.GetPagination(c)
	result, err := h.listOrders.Execute(c.Request.Context(), usecases.ListOrdersCommand{
		HotelID:    hotelID,
		Status:     c.Query("status"),
		RoomNumber: c.Query("room_number"),
		Page:       page.Page,
		PageSize:   page.Limit(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toOrderResponses(result.Orders), result.Total, page.Page, page.Limit())
}

// Get returns a single order scoped to the authenticated hotel.
func (h *OrderHandler) Get(c *gin.Context) {
	hotelID, err := utils.CurrentHotelID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	o, err := h.getOrder.Execute(c.Request.Context(), usecases.GetOrderCommand{
		OrderID: c.Param("id"),
		HotelID: hotelID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toOrderResponse(o))
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves an order through its lifecycle.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	hotelID, err := utils.CurrentHotelID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "status is required")
		return
	}

	o, err := h.updateOrder.Execute(c.Request.Context(), usecases.UpdateOrderStatusCommand{
		OrderID: c.Param("id"),
		HotelID: hotelID,
		Status:  req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "order updated", toOrderResponse(o))
}
