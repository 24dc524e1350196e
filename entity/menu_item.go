package entity

import "time"

// MenuItem is a catalog row. The primary key is assigned from Counter, not
// by autoincrement, so ids keep increasing even after deletes.
type MenuItem struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"` // paise
	Image string `json:"image"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
