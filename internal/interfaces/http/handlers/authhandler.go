package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteltec/internal/application/auth/usecases"
	"hoteltec/internal/shared/utils"
)

type AuthHandler struct {
	signup          *usecases.SignupUseCase
	login           *usecases.LoginUseCase
	superAdminLogin *usecases.SuperAdminLoginUseCase
}

func NewAuthHandler(
	signup *usecases.SignupUseCase,
	login *usecases.LoginUseCase,
	superAdminLogin *usecases.SuperAdminLoginUseCase,
) *AuthHandler {
	return &AuthHandler{
		signup:          signup,
		login:           login,
		superAdminLogin: superAdminLogin,
	}
}

type signupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	HotelName string `json:"hotel_name"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.signup.Execute(c.Request.Context(), usecases.SignupCommand{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		HotelName: req.HotelName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	data := gin.H{
		"user":  toUserResponse(result.User),
		"hotel": toHotelResponse(result.Hotel),
		"token": result.Token,
	}
	if result.Subscription != nil {
		data["subscription"] = toSubscriptionResponse(result.Subscription)
	}

	utils.CreatedResponse(c, data, "account created")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.login.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "logged in", gin.H{
		"user":  toUserResponse(result.User),
		"token": result.Token,
	})
}

func (h *AuthHandler) SuperAdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.superAdminLogin.Execute(c.Request.Context(), usecases.SuperAdminLoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "logged in", gin.H{
		"token": result.Token,
	})
}
