package controllers

import (
	"tillpoint/pkg/resp"
	"tillpoint/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req services.LoginIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Login(&req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, out)
}
