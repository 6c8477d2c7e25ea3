package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body sent with every non-2xx status.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Error writes an error response with the given status code.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Message: message})
}

// BadRequest writes a 400 response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound writes a 404 response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict writes a 409 response.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalServerError writes a 500 response.
func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// Created writes a 201 response with a Location header pointing at the
// new resource.
func Created(c *gin.Context, location string, body interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, body)
}

// HandleServiceError maps a service error onto the HTTP status it
// represents. Unrecognized errors become 500s; the caller supplies the
// message shown in that case.
func HandleServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, ErrValidation):
		BadRequest(c, err.Error())
	case errors.Is(err, ErrConflict):
		Conflict(c, err.Error())
	default:
		InternalServerError(c, fmt.Sprintf("%s: %v", fallback, err))
	}
}
