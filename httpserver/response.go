package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
)

// APIResponse is the envelope of every JSON response.
type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func writeSuccess(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, APIResponse{
		Status:  statusSuccess,
		Message: message,
		Data:    data,
	})
}

func writeFail(c echo.Context, status int, message string) error {
	return c.JSON(status, APIResponse{
		Status:  statusFail,
		Message: message,
	})
}

// IDResult is the data of a successful create.
type IDResult struct {
	ID int64 `json:"id"`
}
