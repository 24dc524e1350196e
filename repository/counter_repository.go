package repository

import (
	"errors"

	"tillpoint/entity"

	"gorm.io/gorm"
)

type CounterRepository struct{ DB *gorm.DB }

func NewCounterRepository(db *gorm.DB) *CounterRepository { return &CounterRepository{DB: db} }

// NextMenuID reserves the next menu item id and advances the counter inside
// the caller's transaction. The counter only moves forward, so deleted ids
// never come back; gaps from rolled-back creates are allowed.
func (r *CounterRepository) NextMenuID(tx *gorm.DB) (uint, error) {
	var c entity.Counter
	err := tx.First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// fresh store without seed data: start counting above whatever exists
		var maxID int64
		if err := tx.Model(&entity.MenuItem{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return 0, err
		}
		next := uint(maxID) + 1
		c = entity.Counter{NextMenuID: next + 1}
		if err := tx.Create(&c).Error; err != nil {
			return 0, err
		}
		return next, nil
	}
	if err != nil {
		return 0, err
	}

	id := c.NextMenuID
	if err := tx.Model(&c).Update("next_menu_id", id+1).Error; err != nil {
		return 0, err
	}
	return id, nil
}
