package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Francesco-Napolitano/WebAppApi/services"
	"github.com/Francesco-Napolitano/WebAppApi/utils"

	"github.com/gin-gonic/gin"
)

// CollectionHandler routes collection requests.
type CollectionHandler struct {
	collectionService *services.CollectionService
}

// NewCollectionHandler creates a collection handler.
func NewCollectionHandler() *CollectionHandler {
	return &CollectionHandler{
		collectionService: services.NewCollectionService(),
	}
}

type collectionRequest struct {
	BrandID     int    `json:"brandId" binding:"required"`
	Code        string `json:"code" binding:"required,max=50"`
	Description string `json:"description" binding:"required,max=250"`
}

// GetCollections lists all collections with their brand.
func (h *CollectionHandler) GetCollections(c *gin.Context) {
	collections, err := h.collectionService.GetAllCollections()
	if err != nil {
		utils.InternalServerError(c, "failed to list collections")
		return
	}

	c.JSON(http.StatusOK, collections)
}

// GetCollection returns one collection.
func (h *CollectionHandler) GetCollection(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid collection id")
		return
	}

	collection, err := h.collectionService.GetCollectionByID(id)
	if err != nil {
		utils.HandleServiceError(c, err, "failed to get collection")
		return
	}

	c.JSON(http.StatusOK, collection)
}

// CreateCollection creates a collection under an existing brand.
func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	var req collectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	collection, err := h.collectionService.CreateCollection(req.BrandID, req.Code, req.Description)
	if err != nil {
		utils.HandleServiceError(c, err, "failed to create collection")
		return
	}

	utils.Created(c, fmt.Sprintf("/api/collections/%d", collection.ID), collection)
}

// UpdateCollection updates a collection.
func (h *CollectionHandler) UpdateCollection(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid collection id")
		return
	}

	var req collectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	collection, err := h.collectionService.UpdateCollection(id, req.BrandID, req.Code, req.Description)
	if err != nil {
		utils.HandleServiceError(c, err, "failed to update collection")
		return
	}

	c.JSON(http.StatusOK, collection)
}

// DeleteCollection deletes a collection.
func (h *CollectionHandler) DeleteCollection(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid collection id")
		return
	}

	if err := h.collectionService.DeleteCollection(id); err != nil {
		utils.HandleServiceError(c, err, "failed to delete collection")
		return
	}

	c.Status(http.StatusNoContent)
}
