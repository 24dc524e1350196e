package controllers

import (
	"strconv"

	"tillpoint/pkg/resp"
	"tillpoint/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders/checkout
func (h *OrderController) Checkout(c *gin.Context) {
	out, err := h.Svc.Checkout()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	o, err := h.Svc.Detail(uint(id))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, o)
}

// GET /orders?year=2024&month=3
func (h *OrderController) ListMonth(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		resp.BadRequest(c, "year and month query params are required")
		return
	}

	orders, err := h.Svc.ListMonth(year, month)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}
