package repository

import (
	"errors"

	"tillpoint/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// Items returns the cart lines oldest-first so the bill reads in the order
// things were rung up.
func (r *CartRepository) Items() ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Order("id").Find(&items).Error
	return items, err
}

func (r *CartRepository) FindByMenuItem(menuItemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	if err := r.DB.Where("menu_item_id = ?", menuItemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertLine bumps the quantity of an existing line for the same menu item,
// or creates a new one. At most one line per menu item.
func (r *CartRepository) UpsertLine(tx *gorm.DB, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("menu_item_id = ?", row.MenuItemID).First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(row).Error
}

func (r *CartRepository) SetQty(tx *gorm.DB, menuItemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveLine(tx, menuItemID)
	}
	return tx.Model(&entity.CartItem{}).
		Where("menu_item_id = ?", menuItemID).
		Update("qty", qty).Error
}

func (r *CartRepository) RemoveLine(tx *gorm.DB, menuItemID uint) error {
	return tx.Where("menu_item_id = ?", menuItemID).Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) Clear(tx *gorm.DB) error {
	return tx.Where("1 = 1").Delete(&entity.CartItem{}).Error
}
