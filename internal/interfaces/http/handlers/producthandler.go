package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteltec/internal/application/catalog/usecases"
	"hoteltec/internal/shared/utils"
)

type ProductHandler struct {
	createProduct *usecases.CreateProductUseCase
	listProducts  *usecases.ListProductsUseCase
	updateProduct *usecases.UpdateProductUseCase
	deleteProduct *usecases.DeleteProductUseCase
}

func NewProductHandler(
	createProduct *usecases.CreateProductUseCase,
	listProducts *usecases.ListProductsUseCase,
	updateProduct *usecases.UpdateProductUseCase,
	deleteProduct *usecases.DeleteProductUseCase,
) *ProductHandler {
	return &ProductHandler{
		createProduct: createProduct,
		listProducts:  listProducts,
		updateProduct: updateProduct,
		deleteProduct: deleteProduct,
	}
}

type createProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	hotelID, err := utils.CurrentHotelID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.createProduct.Execute(c.Request.Context(), usecases.CreateProductCommand{
		HotelID:     hotelID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toProductResponse(p), "product created")
}

func (h *ProductHandler) List(c *gin.Context) {
	hotelID, err := utils.CurrentHotelID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page := utils.GetPagination(c)
	result, err := h.listProducts.Execute(c.Request.Context(), usecases.ListProductsCommand{
		HotelID:  hotelID,
		Category: c.Query("category"),
		Page:     page.Page,
		PageSize: page.Limit(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toProductResponses(result.Products), result.Total, page.Page, page.Limit())
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"image_url"`
	IsAvailable *bool    `json:"is_available"`
}

func (h *ProductHandler) Update(c *gin.Context) {
	hotelID, err := utils.CurrentHotelID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	productID, err := utils.ParseUintParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.updateProduct.Execute(c.Request.Context(), usecases.UpdateProductCommand{
		HotelID:     hotelID,
		ProductID:   productID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "product updated", toProductResponse(p))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	hotelID, err := utils.CurrentHotelID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	productID, err := utils.ParseUintParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteProduct.Execute(c.Request.Context(), hotelID, productID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "product deleted", nil)
}
