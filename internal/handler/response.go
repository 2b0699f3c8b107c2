package handler

import "github.com/labstack/echo/v4"

// Envelope is the uniform {success, message, data, error} response wrapper.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respond(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// respondList includes the item count alongside the data, matching the list
// response shape of the API.
func respondList(c echo.Context, status int, count int, data interface{}) error {
	return c.JSON(status, Envelope{Success: true, Count: &count, Data: data})
}
