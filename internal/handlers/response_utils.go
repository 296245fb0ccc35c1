package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/models"
)

// RespondWithError sends a standardized JSON error response.
func RespondWithError(c *gin.Context, httpStatus int, appErrorCode string, message string, details interface{}) {
	if httpStatus >= 500 {
		log.Printf("[%s] Error response: HTTPStatus=%d, AppErrorCode=%s, Message=%s", RequestID(c), httpStatus, appErrorCode, message)
	}

	errResp := models.APIError{
		Code:    appErrorCode,
		Message: message,
		Details: details,
	}
	c.JSON(httpStatus, errResp)
}

// RespondWithSuccess sends a JSON success response, or no body when data is nil.
func RespondWithSuccess(c *gin.Context, httpStatus int, data interface{}) {
	if data != nil {
		c.JSON(httpStatus, data)
	} else {
		c.Status(httpStatus)
	}
}
