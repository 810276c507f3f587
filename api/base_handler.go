package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tvstore/catalog/internal/apperror"
)

type BaseResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
	Success bool   `json:"success"`
}

// fail writes the error through the apperror status mapping.
func fail(c *gin.Context, err error) {
	c.JSON(apperror.HTTPStatus(err), BaseResponse{Success: false, Message: err.Error()})
}

// idParam parses the :id path parameter as a surrogate id.
func idParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperror.NewInvalidInput("id must be an integer")
	}
	return id, nil
}
