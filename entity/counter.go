package entity

// Counter holds the next menu item id. Single row; the value only ever
// advances, so deleted ids are never handed out again.
type Counter struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	NextMenuID uint `json:"nextMenuId"`
}
