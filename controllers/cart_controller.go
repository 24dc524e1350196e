package controllers

import (
	"net/http"
	"strconv"

	"tillpoint/pkg/resp"
	"tillpoint/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc     *services.CartService
	Billing *services.BillingService
}

func NewCartController(s *services.CartService, b *services.BillingService) *CartController {
	return &CartController{Svc: s, Billing: b}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	items, totals, err := h.Svc.Get()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "subtotal": totals.Subtotal, "total": totals.Total})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var body struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Add(body.MenuItemID); err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "added"})
}

// PATCH /cart/items/qty
func (h *CartController) AdjustQty(c *gin.Context) {
	var body struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
		Delta      int  `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.AdjustQty(body.MenuItemID, body.Delta); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "updated"})
}

// DELETE /cart/items/:menuItemId
func (h *CartController) Remove(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("menuItemId"))

	if err := h.Svc.Remove(uint(id)); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "removed"})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart cleared"})
}

// GET /cart/bill
func (h *CartController) Bill(c *gin.Context) {
	items, totals, err := h.Svc.Get()
	if err != nil {
		writeErr(c, err)
		return
	}

	doc, err := h.Billing.RenderBill(items, totals)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}
