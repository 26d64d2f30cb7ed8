package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

// requireQueryID backs the DELETE contract: `?id=` or 400.
func requireQueryID(c *gin.Context) (string, bool) {
	id := c.Query("id")
	if id == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "Handler", "id query parameter is required", nil))
		return "", false
	}
	return id, true
}
