package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteltec/internal/application/ticket/usecases"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/utils"
)

type TicketHandler struct {
	createTicket *usecases.CreateTicketUseCase
	listTickets  *usecases.ListTicketsUseCase
	getTicket    *usecases.GetTicketUseCase
	addComment   *usecases.AddCommentUseCase
	updateStatus *usecases.UpdateTicketStatusUseCase
}

func NewTicketHandler(
	createTicket *usecases.CreateTicketUseCase,
	listTickets *usecases.ListTicketsUseCase,
	getTicket *usecases.GetTicketUseCase,
	addComment *usecases.AddCommentUseCase,
	updateStatus *usecases.UpdateTicketStatusUseCase,
) *TicketHandler {
	return &TicketHandler{
		createTicket: createTicket,
		listTickets:  listTickets,
		getTicket:    getTicket,
		addComment:   addComment,
		updateStatus: updateStatus,
	}
}

type createTicketRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority"`
}

func (h *TicketHandler) Create(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "title and description are required")
		return
	}

	// The hotel link is optional; tickets can predate provisioning.
	var hotelID *uint
	if id, err := utils.CurrentHotelID(c); err == nil {
		hotelID = &id
	}

	t, err := h.createTicket.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		UserID:      userID,
		HotelID:     hotelID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toTicketResponse(t), "ticket created")
}

func (h *TicketHandler) List(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page := utils.GetPagination(c)
	result, err := h.listTickets.Execute(c.Request.Context(), usecases.ListTicketsCommand{
		UserID:   userID,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Page:     page.Page,
		PageSize: page.Limit(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toTicketResponses(result.Tickets), result.Total, page.Page, page.Limit())
}

func (h *TicketHandler) Get(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicket.Execute(c.Request.Context(), usecases.GetTicketCommand{
		TicketID: ticketID,
		UserID:   userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comments := make([]CommentResponse, 0, len(result.Comments))
	for _, cm := range result.Comments {
		comments = append(comments, toCommentResponse(cm))
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"ticket":   toTicketResponse(result.Ticket),
		"comments": comments,
	})
}

type addCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *TicketHandler) AddComment(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "content is required")
		return
	}

	cm, err := h.addComment.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: ticketID,
		UserID:   &userID,
		Content:  req.Content,
		IsAdmin:  false,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCommentResponse(cm), "comment added")
}

type updateTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "status is required")
		return
	}

	t, err := h.updateStatus.Execute(c.Request.Context(), usecases.UpdateTicketStatusCommand{
		TicketID: ticketID,
		Status:   req.Status,
		UserID:   userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated", toTicketResponse(t))
}

// AdminList returns tickets across all users for the operator console.
func (h *TicketHandler) AdminList(c *gin.Context) {
	page := utils.GetPagination(c)
	result, err := h.listTickets.Execute(c.Request.Context(), usecases.ListTicketsCommand{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
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

	utils.ListSuccessResponse(c, toTicketResponses(result.Tickets), result.Total, page.Page, page.Limit())
}

func (h *TicketHandler) AdminGet(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicket.Execute(c.Request.Context(), usecases.GetTicketCommand{
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comments := make([]CommentResponse, 0, len(result.Comments))
	for _, cm := range result.Comments {
		comments = append(comments, toCommentResponse(cm))
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"ticket":   toTicketResponse(result.Ticket),
		"comments": comments,
	})
}

// AdminAddComment posts an operator reply. Replies reopen resolved tickets
// and notify the owner.
func (h *TicketHandler) AdminAddComment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "content is required")
		return
	}

	cm, err := h.addComment.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: ticketID,
		Content:  req.Content,
		IsAdmin:  true,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCommentResponse(cm), "comment added")
}

func (h *TicketHandler) AdminUpdateStatus(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "status is required")
		return
	}

	t, err := h.updateStatus.Execute(c.Request.Context(), usecases.UpdateTicketStatusCommand{
		TicketID: ticketID,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated", toTicketResponse(t))
}
