package services

import (
	"errors"
	"time"

	"tillpoint/entity"
	"tillpoint/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notifier receives committed orders. The websocket feed implements it;
// delivery is best-effort and never affects checkout.
type Notifier interface {
	OrderPlaced(o *entity.Order)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository

	Notifier Notifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo}
}

type CheckoutRes struct {
	ID       uint      `json:"id"`
	Code     string    `json:"code"`
	PlacedAt time.Time `json:"placedAt"`
	Subtotal int64     `json:"subtotal"`
	Total    int64     `json:"total"`
}

// Checkout freezes the current cart into an order and clears the cart, as a
// single transaction: a failure anywhere leaves both untouched.
func (s *OrderService) Checkout() (*CheckoutRes, error) {
	items, err := s.CartRepo.Items()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var subtotal int64
	for _, it := range items {
		subtotal += it.Total()
	}

	order := entity.Order{
		Code:     uuid.NewString(),
		PlacedAt: time.Now(),
		Subtotal: subtotal,
		Total:    subtotal,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		for _, it := range items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Name:       it.Name,
				UnitPrice:  it.UnitPrice,
				Qty:        it.Qty,
				Total:      it.Total(),
			}
			if err := s.Repo.CreateItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}
		return s.CartRepo.Clear(tx)
	})
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.OrderPlaced(&order)
	}

	return &CheckoutRes{
		ID:       order.ID,
		Code:     order.Code,
		PlacedAt: order.PlacedAt,
		Subtotal: order.Subtotal,
		Total:    order.Total,
	}, nil
}

func (s *OrderService) Detail(id uint) (*entity.Order, error) {
	o, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return o, err
}

func (s *OrderService) ListBetween(start, end time.Time) ([]entity.Order, error) {
	return s.Repo.ListBetween(start, end)
}

func (s *OrderService) ListMonth(year, month int) ([]entity.Order, error) {
	start, end, err := MonthRange(year, month)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListBetween(start, end)
}

// MonthRange returns the closed interval covering a calendar month in local
// time. AddDate normalizes month 13, so December rolls into January of the
// next year, and month lengths come out calendar-correct.
func MonthRange(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, ErrBadMonth
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end, nil
}
