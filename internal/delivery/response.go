package delivery

import (
	"github.com/gin-gonic/gin"

	"github.com/SupreetAmrad/e-commerce-backend/internal/domain"
)

// Response is the JSON envelope for the storefront's action endpoints.
// Message and Level together describe the notice the page shows for the
// action; Message may be empty when an operation silently no-ops.
type Response struct {
	Status  string             `json:"Status"`
	Message string             `json:"Message"`
	Level   domain.NoticeLevel `json:"Level,omitempty"`
	Data    interface{}        `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, level domain.NoticeLevel, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Level:   level,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
		Level:   domain.NoticeDanger,
	})
}
