package handlers

import (
	"time"

	"hoteltec/internal/domain/catalog"
	"hoteltec/internal/domain/coupon"
	"hoteltec/internal/domain/hotel"
	"hoteltec/internal/domain/notification"
	"hoteltec/internal/domain/order"
	"hoteltec/internal/domain/payment"
	"hoteltec/internal/domain/subscription"
	"hoteltec/internal/domain/ticket"
	"hoteltec/internal/domain/user"
)

type HotelResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	ContactEmail    string `json:"contact_email,omitempty"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	Address         string `json:"address,omitempty"`
	LogoURL         string `json:"logo_url,omitempty"`
	Status          string `json:"status"`
	MaintenanceMode bool   `json:"maintenance_mode"`
	CreatedAt       string `json:"created_at"`
}

func toHotelResponse(h *hotel.Hotel) HotelResponse {
	return HotelResponse{
		ID:              h.ID(),
		Name:            h.Name(),
		Slug:            h.Slug(),
		ContactEmail:    h.ContactEmail(),
		ContactPhone:    h.ContactPhone(),
		Address:         h.Address(),
		LogoURL:         h.LogoURL(),
		Status:          string(h.Status()),
		MaintenanceMode: h.MaintenanceMode(),
		CreatedAt:       h.CreatedAt().Format(time.RFC3339),
	}
}

type ProductResponse struct {
	ID          uint    `json:"id"`
	HotelID     uint    `json:"hotel_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url,omitempty"`
	IsAvailable bool    `json:"is_available"`
	CreatedAt   string  `json:"created_at"`
}

func toProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID(),
		HotelID:     p.HotelID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Category:    p.Category(),
		ImageURL:    p.ImageURL(),
		IsAvailable: p.IsAvailable(),
		CreatedAt:   p.CreatedAt().Format(time.RFC3339),
	}
}

func toProductResponses(products []*catalog.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

type OrderItemResponse struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type OrderResponse struct {
	ID            uint                `json:"id"`
	OrderID       string              `json:"order_id"`
	HotelID       uint                `json:"hotel_id"`
	OrderNumber   int64               `json:"order_number"`
	RoomNumber    string              `json:"room_number"`
	GuestName     string              `json:"guest_name"`
	PhoneNumber   string              `json:"phone_number"`
	GuestEmail    string              `json:"guest_email,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	Subtotal      float64             `json:"subtotal"`
	Total         float64             `json:"total"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     string              `json:"created_at"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal(),
		})
	}

	return OrderResponse{
		ID:            o.ID(),
		OrderID:       o.OrderID(),
		HotelID:       o.HotelID(),
		OrderNumber:   o.OrderNumber(),
		RoomNumber:    o.RoomNumber(),
		GuestName:     o.GuestName(),
		PhoneNumber:   o.PhoneNumber(),
		GuestEmail:    o.GuestEmail(),
		Items:         items,
		Subtotal:      o.Subtotal(),
		Total:         o.Total(),
		Status:        o.Status().String(),
		PaymentMethod: o.PaymentMethod(),
		Notes:         o.Notes(),
		CreatedAt:     o.CreatedAt().Format(time.RFC3339),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

type PlanResponse struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	DisplayName   string   `json:"display_name"`
	Price         float64  `json:"price"`
	BillingMonths int      `json:"billing_months"`
	MaxProducts   int      `json:"max_products"`
	Features      []string `json:"features,omitempty"`
}

func toPlanResponse(p *subscription.Plan) PlanResponse {
	return PlanResponse{
		ID:            p.ID(),
		Name:          p.Name(),
		DisplayName:   p.DisplayName(),
		Price:         p.Price(),
		BillingMonths: p.BillingMonths(),
		MaxProducts:   p.MaxProducts(),
		Features:      p.Features(),
	}
}

type SubscriptionResponse struct {
	ID            uint    `json:"id"`
	HotelID       uint    `json:"hotel_id"`
	PlanID        uint    `json:"plan_id"`
	Status        string  `json:"status"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	AmountPaid    float64 `json:"amount_paid"`
	TransactionID *string `json:"transaction_id,omitempty"`
}

func toSubscriptionResponse(s *subscription.Subscription) SubscriptionResponse {
	resp := SubscriptionResponse{
		ID:            s.ID(),
		HotelID:       s.HotelID(),
		PlanID:        s.PlanID(),
		Status:        s.Status().String(),
		AmountPaid:    s.AmountPaid(),
		TransactionID: s.TransactionID(),
	}
	if s.StartDate() != nil {
		v := s.StartDate().Format(time.RFC3339)
		resp.StartDate = &v
	}
	if s.EndDate() != nil {
		v := s.EndDate().Format(time.RFC3339)
		resp.EndDate = &v
	}
	return resp
}

type CouponResponse struct {
	ID            uint    `json:"id"`
	Code          string  `json:"code"`
	Description   string  `json:"description,omitempty"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
	MaxUses       int     `json:"max_uses"`
	CurrentUses   int     `json:"current_uses"`
	IsActive      bool    `json:"is_active"`
	ExpiresAt     *string `json:"expires_at,omitempty"`
}

func toCouponResponse(c *coupon.Coupon) CouponResponse {
	resp := CouponResponse{
		ID:            c.ID(),
		Code:          c.Code(),
		Description:   c.Description(),
		DiscountType:  string(c.DiscountType()),
		DiscountValue: c.DiscountValue(),
		MaxUses:       c.MaxUses(),
		CurrentUses:   c.CurrentUses(),
		IsActive:      c.IsActive(),
	}
	if c.ExpiresAt() != nil {
		v := c.ExpiresAt().Format(time.RFC3339)
		resp.ExpiresAt = &v
	}
	return resp
}

type IntentResponse struct {
	IntentID     string  `json:"intent_id"`
	ClientSecret string  `json:"client_secret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Status       string  `json:"status"`
	ExpiresAt    string  `json:"expires_at"`
}

func toIntentResponse(i *payment.Intent) IntentResponse {
	return IntentResponse{
		IntentID:     i.IntentID(),
		ClientSecret: i.ClientSecret(),
		Amount:       i.Amount(),
		Currency:     i.Currency(),
		Status:       string(i.Status()),
		ExpiresAt:    i.ExpiresAt().Format(time.RFC3339),
	}
}

type TicketResponse struct {
	ID           uint   `json:"id"`
	TicketNumber string `json:"ticket_number"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	CreatedAt    string `json:"created_at"`
}

func toTicketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
		ID:           t.ID(),
		TicketNumber: t.TicketNumber(),
		Title:        t.Title(),
		Description:  t.Description(),
		Status:       t.Status().String(),
		Priority:     t.Priority().String(),
		CreatedAt:    t.CreatedAt().Format(time.RFC3339),
	}
}

func toTicketResponses(tickets []*ticket.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketResponse(t))
	}
	return out
}

type CommentResponse struct {
	ID          uint   `json:"id"`
	TicketID    uint   `json:"ticket_id"`
	Content     string `json:"content"`
	ContentHTML string `json:"content_html,omitempty"`
	IsAdmin     bool   `json:"is_admin"`
	CreatedAt   string `json:"created_at"`
}

func toCommentResponse(c *ticket.Comment) CommentResponse {
	return CommentResponse{
		ID:          c.ID(),
		TicketID:    c.TicketID(),
		Content:     c.Content(),
		ContentHTML: c.ContentHTML(),
		IsAdmin:     c.IsAdmin(),
		CreatedAt:   c.CreatedAt().Format(time.RFC3339),
	}
}

type NotificationResponse struct {
	ID        uint   `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

func toNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID(),
		Type:      string(n.Type()),
		Title:     n.Title(),
		Message:   n.Message(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt().Format(time.RFC3339),
	}
}

type UserResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	HotelID   *uint  `json:"hotel_id,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		Email:     u.Email(),
		Name:      u.Name(),
		Role:      string(u.Role()),
		HotelID:   u.HotelID(),
		Status:    string(u.Status()),
		CreatedAt: u.CreatedAt().Format(time.RFC3339),
	}
}
