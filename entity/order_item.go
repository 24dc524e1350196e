package entity

import "time"

// OrderItem is a frozen copy of a cart line at checkout time.
type OrderItem struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unitPrice"`
	Qty        int    `json:"qty"`
	Total      int64  `json:"total"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
