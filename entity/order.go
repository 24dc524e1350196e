package entity

import "time"

// Order is a committed transaction. Rows are append-only: nothing in the
// system updates or deletes an order after checkout.
type Order struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Code     string    `gorm:"uniqueIndex" json:"code"`
	PlacedAt time.Time `json:"placedAt"`
	Subtotal int64     `json:"subtotal"`
	Total    int64     `json:"total"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
