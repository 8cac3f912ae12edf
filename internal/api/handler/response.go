package handler

import "github.com/labstack/echo/v4"

// Envelope is the JSON shape of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func ok(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// Fail renders a failure envelope. The central error handler uses it too.
func Fail(c echo.Context, status int, message string, detail any) error {
	return c.JSON(status, Envelope{Success: false, Message: message, Error: detail})
}
