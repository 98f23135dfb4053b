package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope は全レスポンス共通の形。
// 成否に関わらず同じ形で返し、status・success・message・dataだけが変わる。
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respondOK(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondError(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Data:    data,
	})
}
