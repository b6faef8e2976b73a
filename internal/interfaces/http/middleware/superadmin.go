package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteltec/internal/infrastructure/auth"
	"hoteltec/internal/shared/constants"
	"hoteltec/internal/shared/logger"
	"hoteltec/internal/shared/utils"
)

type SuperAdminMiddleware struct {
	verifier *auth.SuperAdminVerifier
	logger   logger.Interface
}

func NewSuperAdminMiddleware(verifier *auth.SuperAdminVerifier, logger logger.Interface) *SuperAdminMiddleware {
	return &SuperAdminMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireSuperAdmin checks the shared operator token. The expected header is
// "Authorization: SuperAdmin <token>"; the comparison is constant time.
func (m *SuperAdminMiddleware) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "SuperAdmin" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "super admin authorization required")
			c.Abort()
			return
		}

		if !m.verifier.VerifyToken(parts[1]) {
			m.logger.Warnw("rejected super admin token", "client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid super admin token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeySuperAdmin, true)

		c.Next()
	}
}
