package entity

import "time"

// CartItem is one line of the terminal's single shared cart.
// Name and UnitPrice are snapshots taken when the line was created;
// later catalog edits do not reprice lines already in the cart.
//
// Lines are ephemeral: no soft delete, so a removed line frees its
// menu_item_id slot under the unique index and the item can be rung
// up again.
type CartItem struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	MenuItemID uint   `gorm:"uniqueIndex" json:"menuItemId"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unitPrice"`
	Qty        int    `json:"qty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (ci CartItem) Total() int64 {
	return ci.UnitPrice * int64(ci.Qty)
}
