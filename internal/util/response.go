package util

import (
	"habit_tracker/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Success 直接返回资源本身（不包一层 code/message）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message 返回纯文本消息
func Message(c *gin.Context, code int, message string) {
	c.String(code, message)
}

func Error(c *gin.Context, code int, message string) {
	Message(c, code, message)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 返回 404，响应体为空
func NotFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, MsgInternalError)
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(RequestIDKey)),
		zap.Error(err),
	)
	InternalServerError(c)
}
