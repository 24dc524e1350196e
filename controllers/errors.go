package controllers

import (
	"errors"

	"tillpoint/pkg/resp"
	"tillpoint/services"

	"github.com/gin-gonic/gin"
)

// writeErr maps service failures onto HTTP statuses. Everything the user can
// fix is a 400, missing records are 404, the rest is a 500.
func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case services.IsValidation(err):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
