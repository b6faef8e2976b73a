package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteltec/internal/application/storefront/usecases"
	"hoteltec/internal/shared/utils"
)

// StorefrontHandler serves the public, unauthenticated guest surface.
type StorefrontHandler struct {
	resolveHotel *usecases.ResolveHotelUseCase
}

func NewStorefrontHandler(resolveHotel *usecases.ResolveHotelUseCase) *StorefrontHandler {
	return &StorefrontHandler{resolveHotel: resolveHotel}
}

// GetStorefront resolves a hotel slug and returns its branding plus menu.
func (h *StorefrontHandler) GetStorefront(c *gin.Context) {
	result, err := h.resolveHotel.Execute(c.Request.Context(), usecases.ResolveHotelCommand{
		Slug: c.Param("slug"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := ""
	if result.Maintenance {
		message = "this storefront is temporarily under maintenance"
	} else if !result.CatalogSeeded && len(result.Products) == 0 {
		message = "the menu is being prepared, please check back shortly"
	}

	utils.SuccessResponse(c, http.StatusOK, message, gin.H{
		"hotel":            toHotelResponse(result.Hotel),
		"products":         toProductResponses(result.Products),
		"ordering_enabled": result.OrderingEnabled,
		"maintenance":      result.Maintenance,
	})
}
