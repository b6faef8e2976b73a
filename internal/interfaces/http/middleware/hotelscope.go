package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteltec/internal/domain/user"
	"hoteltec/internal/shared/constants"
	"hoteltec/internal/shared/logger"
	"hoteltec/internal/shared/utils"
)

// HotelScope resolves the authenticated user's hotel and puts its ID on the
// context. Must run after RequireAuth. Users without a hotel (suspended
// signups, half-finished onboarding) are rejected.
type HotelScope struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewHotelScope(userRepo user.UserRepository, logger logger.Interface) *HotelScope {
	return &HotelScope{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (m *HotelScope) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.CurrentUserID(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		u, err := m.userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			m.logger.Warnw("failed to load user for hotel scope", "error", err, "user_id", userID)
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not found")
			c.Abort()
			return
		}

		if u.HotelID() == nil {
			utils.ErrorResponse(c, http.StatusForbidden, "no hotel is linked to this account")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyHotelID, *u.HotelID())

		c.Next()
	}
}
