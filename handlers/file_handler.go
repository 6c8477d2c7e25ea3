package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Francesco-Napolitano/WebAppApi/services"
	"github.com/Francesco-Napolitano/WebAppApi/utils"

	"github.com/gin-gonic/gin"
)

// FileHandler routes file-metadata requests.
type FileHandler struct {
	fileService *services.FileService
}

// NewFileHandler creates a file handler.
func NewFileHandler() *FileHandler {
	return &FileHandler{
		fileService: services.NewFileService(),
	}
}

type fileRequest struct {
	FileName     string `json:"fileName" binding:"omitempty,max=250"`
	AbsolutePath string `json:"absolutePath" binding:"required,max=250"`
}

// GetFiles lists all file records.
func (h *FileHandler) GetFiles(c *gin.Context) {
	files, err := h.fileService.GetAllFiles()
	if err != nil {
		utils.InternalServerError(c, "failed to list files")
		return
	}

	c.JSON(http.StatusOK, files)
}

// GetFile returns one file record.
func (h *FileHandler) GetFile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid file id")
		return
	}

	file, err := h.fileService.GetFileByID(id)
	if err != nil {
		utils.HandleServiceError(c, err, "failed to get file")
		return
	}

	c.JSON(http.StatusOK, file)
}

// CreateFile registers a file record for an absolute path.
func (h *FileHandler) CreateFile(c *gin.Context) {
	var req fileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	file, err := h.fileService.CreateFile(req.FileName, req.AbsolutePath)
	if err != nil {
		utils.HandleServiceError(c, err, "failed to create file")
		return
	}

	utils.Created(c, fmt.Sprintf("/api/files/%d", file.ID), file)
}

// DeleteFile removes a file record and, by cascade, its product links.
func (h *FileHandler) DeleteFile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid file id")
		return
	}

	if err := h.fileService.DeleteFile(id); err != nil {
		utils.HandleServiceError(c, err, "failed to delete file")
		return
	}

	c.Status(http.StatusNoContent)
}
