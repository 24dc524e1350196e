package repository

import (
	"tillpoint/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// List returns the catalog in id order, which is insertion order because
// ids are handed out by the counter and never reused.
func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(tx *gorm.DB, item *entity.MenuItem) error {
	return tx.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	fields := map[string]interface{}{
		"name":  item.Name,
		"price": item.Price,
		"image": item.Image,
	}
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", item.ID).Updates(fields).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
