package services

import (
	"errors"

	"tillpoint/entity"
	"tillpoint/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type CartTotals struct {
	Subtotal int64 `json:"subtotal"`
	Total    int64 `json:"total"`
}

func (s *CartService) Get() ([]entity.CartItem, CartTotals, error) {
	items, err := s.CartRepo.Items()
	if err != nil {
		return nil, CartTotals{}, err
	}
	return items, totalsOf(items), nil
}

// No tax or discount model: total is the subtotal.
func totalsOf(items []entity.CartItem) CartTotals {
	var subtotal int64
	for _, it := range items {
		subtotal += it.Total()
	}
	return CartTotals{Subtotal: subtotal, Total: subtotal}
}

// Add rings up one unit of a menu item. Name and price are copied from the
// catalog row as it stands right now; edits after this point do not touch
// the line.
func (s *CartService) Add(menuItemID uint) error {
	m, err := s.MenuRepo.FindByID(menuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	line := &entity.CartItem{
		MenuItemID: m.ID,
		Name:       m.Name,
		UnitPrice:  m.Price,
		Qty:        1,
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertLine(tx, line)
	})
}

// AdjustQty applies delta to a line's quantity. A line that drops to zero or
// below is removed; an id that is not in the cart is a silent no-op.
func (s *CartService) AdjustQty(menuItemID uint, delta int) error {
	line, err := s.CartRepo.FindByMenuItem(menuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.SetQty(tx, menuItemID, line.Qty+delta)
	})
}

func (s *CartService) Remove(menuItemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveLine(tx, menuItemID)
	})
}

func (s *CartService) Clear() error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx)
	})
}
