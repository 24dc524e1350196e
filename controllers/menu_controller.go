package controllers

import (
	"strconv"

	"tillpoint/pkg/resp"
	"tillpoint/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.CatalogService }

func NewMenuController(s *services.CatalogService) *MenuController { return &MenuController{Svc: s} }

// GET /menu
func (h *MenuController) List(c *gin.Context) {
	items, err := h.Svc.List()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu/:id
func (h *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := h.Svc.Get(uint(id))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu
func (h *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.Create(&req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /menu/:id
func (h *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.Update(uint(id), &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/:id
func (h *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.Delete(uint(id)); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
