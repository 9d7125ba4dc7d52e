// Package response writes the plain JSON bodies the surveillance backend
// speaks: raw payloads on success, {"error": "..."} on failure.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/exd-tools/surveil-admin/pkg/errors"
)

// JSON writes a payload verbatim with the given status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// OK writes a payload with status 200.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Created writes a payload with status 201.
func Created(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// Message writes {"message": msg} with status 200.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Error writes {"error": msg} with the given status.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// BadRequest writes {"error": msg} with status 400.
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}

// NotFound writes {"error": msg} with status 404.
func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, msg)
}

// Conflict writes {"error": msg} with status 409.
func Conflict(c *gin.Context, msg string) {
	Error(c, http.StatusConflict, msg)
}

// FromError maps an application error to its HTTP rendering.
func FromError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	Error(c, appErr.Status, appErr.Message)
}
