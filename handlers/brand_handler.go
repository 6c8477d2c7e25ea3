package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Francesco-Napolitano/WebAppApi/services"
	"github.com/Francesco-Napolitano/WebAppApi/utils"

	"github.com/gin-gonic/gin"
)

// BrandHandler routes brand requests.
type BrandHandler struct {
	brandService *services.BrandService
}

// NewBrandHandler creates a brand handler.
func NewBrandHandler() *BrandHandler {
	return &BrandHandler{
		brandService: services.NewBrandService(),
	}
}

type brandRequest struct {
	Code        string `json:"code" binding:"required,max=50"`
	Description string `json:"description" binding:"required,max=250"`
}

// GetBrands lists all brands.
func (h *BrandHandler) GetBrands(c *gin.Context) {
	brands, err := h.brandService.GetAllBrands()
	if err != nil {
		utils.InternalServerError(c, "failed to list brands")
		return
	}

	c.JSON(http.StatusOK, brands)
}

// GetBrand returns one brand.
func (h *BrandHandler) GetBrand(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid brand id")
		return
	}

	brand, err := h.brandService.GetBrandByID(id)
	if err != nil {
		utils.HandleServiceError(c, err, "failed to get brand")
		return
	}

	c.JSON(http.StatusOK, brand)
}

// CreateBrand creates a brand.
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req brandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	brand, err := h.brandService.CreateBrand(req.Code, req.Description)
	if err != nil {
		utils.HandleServiceError(c, err, "failed to create brand")
		return
	}

	utils.Created(c, fmt.Sprintf("/api/brands/%d", brand.ID), brand)
}

// UpdateBrand updates a brand.
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid brand id")
		return
	}

	var req brandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	brand, err := h.brandService.UpdateBrand(id, req.Code, req.Description)
	if err != nil {
		utils.HandleServiceError(c, err, "failed to update brand")
		return
	}

	c.JSON(http.StatusOK, brand)
}

// DeleteBrand deletes a brand without collections.
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid brand id")
		return
	}

	if err := h.brandService.DeleteBrand(id); err != nil {
		utils.HandleServiceError(c, err, "failed to delete brand")
		return
	}

	c.Status(http.StatusNoContent)
}
