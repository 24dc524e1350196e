package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"tillpoint/entity"
	"tillpoint/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// testDB opens a throwaway in-memory store. Each call gets its own DSN so
// tests cannot see each other's data; cache=shared keeps the database alive
// across the pool's connections.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:tptest%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Operator{},
		&entity.Counter{},
		&entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newCatalog(db *gorm.DB) *CatalogService {
	return NewCatalogService(db, repository.NewMenuRepository(db), repository.NewCounterRepository(db))
}

func newCart(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrders(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db))
}

func newReports(db *gorm.DB) *ReportService {
	return NewReportService(repository.NewOrderRepository(db))
}

func mustCreateItem(t *testing.T, svc *CatalogService, name string, price int64) *entity.MenuItem {
	t.Helper()
	item, err := svc.Create(&MenuItemIn{Name: name, Price: price, Image: "img"})
	if err != nil {
		t.Fatalf("create %q: %v", name, err)
	}
	return item
}

func mustAdd(t *testing.T, cart *CartService, menuItemID uint) {
	t.Helper()
	if err := cart.Add(menuItemID); err != nil {
		t.Fatalf("add %d: %v", menuItemID, err)
	}
}
