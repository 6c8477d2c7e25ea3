package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Francesco-Napolitano/WebAppApi/models"
	"github.com/Francesco-Napolitano/WebAppApi/services"
	"github.com/Francesco-Napolitano/WebAppApi/utils"

	"github.com/gin-gonic/gin"
)

// ProductHandler routes product and product-file requests.
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler creates a product handler.
func NewProductHandler() *ProductHandler {
	return &ProductHandler{
		productService: services.NewProductService(),
	}
}

// productRequest is the body for create and update.
type productRequest struct {
	ID                  int     `json:"id"`
	Code                string  `json:"code" binding:"required,max=50"`
	Description         string  `json:"description" binding:"required,max=250"`
	ExtendedDescription *string `json:"extendedDescription" binding:"omitempty,max=250"`
	BrandID             *int    `json:"brandId"`
	CollectionID        *int    `json:"collectionId"`
}

func (r *productRequest) toModel() *models.Product {
	return &models.Product{
		ID:                  r.ID,
		Code:                r.Code,
		Description:         r.Description,
		ExtendedDescription: r.ExtendedDescription,
		BrandID:             r.BrandID,
		CollectionID:        r.CollectionID,
	}
}

// GetProducts lists all products with brand and collection.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		utils.InternalServerError(c, "failed to list products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct returns one product with its files.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid product id")
		return
	}

	product, err := h.productService.GetProductByID(id)
	if err != nil {
		utils.HandleServiceError(c, err, "failed to get product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct creates a product and points at it with a Location header.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.CreateProduct(req.toModel())
	if err != nil {
		utils.HandleServiceError(c, err, "failed to create product")
		return
	}

	utils.Created(c, fmt.Sprintf("/api/products/%d", product.ID), product)
}

// UpdateProduct updates a product's mutable fields.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid product id")
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if err := h.productService.UpdateProduct(id, req.toModel()); err != nil {
		utils.HandleServiceError(c, err, "failed to update product")
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteProduct deletes a product and, by cascade, its file links.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid product id")
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		utils.HandleServiceError(c, err, "failed to delete product")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetProductFiles lists the files linked to a product.
func (h *ProductHandler) GetProductFiles(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid product id")
		return
	}

	files, err := h.productService.GetFilesForProduct(id)
	if err != nil {
		utils.HandleServiceError(c, err, "failed to list product files")
		return
	}

	c.JSON(http.StatusOK, files)
}

// AttachFiles links one or more files to a product.
func (h *ProductHandler) AttachFiles(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid product id")
		return
	}

	var items []services.FileAttachment
	if err := c.ShouldBindJSON(&items); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	added, err := h.productService.AttachFiles(id, items)
	if err != nil {
		utils.HandleServiceError(c, err, "failed to attach files")
		return
	}

	c.JSON(http.StatusOK, gin.H{"added": added})
}

// RemoveFile detaches one file from a product. With removeFile=true the
// file record is deleted too once nothing else links to it.
func (h *ProductHandler) RemoveFile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid product id")
		return
	}
	fileID, err := strconv.Atoi(c.Param("fileId"))
	if err != nil {
		utils.BadRequest(c, "invalid file id")
		return
	}

	removeFile, err := strconv.ParseBool(c.DefaultQuery("removeFile", "false"))
	if err != nil {
		utils.BadRequest(c, "invalid removeFile value")
		return
	}

	if err := h.productService.RemoveFile(id, fileID, removeFile); err != nil {
		utils.HandleServiceError(c, err, "failed to remove file")
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveFiles detaches several files from a product in one request. The
// body is a plain array of file ids.
func (h *ProductHandler) RemoveFiles(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid product id")
		return
	}

	removeOrphans, err := strconv.ParseBool(c.DefaultQuery("removeOrphanFiles", "false"))
	if err != nil {
		utils.BadRequest(c, "invalid removeOrphanFiles value")
		return
	}

	var fileIDs []int
	if err := c.ShouldBindJSON(&fileIDs); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if err := h.productService.RemoveFiles(id, fileIDs, removeOrphans); err != nil {
		utils.HandleServiceError(c, err, "failed to remove files")
		return
	}

	c.Status(http.StatusNoContent)
}
