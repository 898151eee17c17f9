package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huddleapp/huddle/pkg/errors"
)

// Envelope is the uniform response body returned by every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty" example:"List created successfully"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a 200 with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// SuccessMessage sends a 200 with a message and data.
func SuccessMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created sends a 201 with a message and data.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Fail sends an error envelope with the given status.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}

// BadRequest sends a 400.
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401.
func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403.
func Forbidden(c *gin.Context, message string) {
	Fail(c, http.StatusForbidden, message)
}

// NotFound sends a 404.
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

// InternalServerError sends a 500 with the fault's description in the error
// field.
func InternalServerError(c *gin.Context, message string, err error) {
	body := Envelope{Success: false, Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// FromError maps an application error to its envelope. fallback is used as
// the message for faults that did not come from pkg/errors.
func FromError(c *gin.Context, err error, fallback string) {
	message := errors.MessageOf(err, fallback)
	switch errors.KindOf(err) {
	case errors.KindValidation:
		BadRequest(c, message)
	case errors.KindNotFound:
		NotFound(c, message)
	case errors.KindForbidden:
		Forbidden(c, message)
	default:
		InternalServerError(c, message, errors.CauseOf(err))
	}
}
