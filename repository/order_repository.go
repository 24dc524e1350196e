package repository

import (
	"time"

	"tillpoint/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListBetween filters the ledger by the closed interval [start, end].
// Results come back in id order, which is chronological: the ledger is
// append-only and ids are monotonic.
func (r *OrderRepository) ListBetween(start, end time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("placed_at >= ? AND placed_at <= ?", start, end).
		Order("id").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).Count(&n).Error
	return n, err
}
