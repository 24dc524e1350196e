package configs

import (
	"log"

	"tillpoint/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedOperator creates the terminal account on first boot.
func SeedOperator(cfg *Config) error {
	db := DB()
	if cfg.OperatorEmail == "" || cfg.OperatorPassword == "" {
		log.Println("skip seeding operator: missing OPERATOR_EMAIL/OPERATOR_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Operator{}).Where("email = ?", cfg.OperatorEmail).Count(&count)
	if count > 0 {
		log.Println("operator already exists:", cfg.OperatorEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.OperatorPassword), bcrypt.DefaultCost)
	op := entity.Operator{
		Email:    cfg.OperatorEmail,
		Password: string(hash),
		Role:     "operator",
	}
	return db.Create(&op).Error
}

// Starter catalog for a fresh terminal. Prices are paise.
var defaultMenu = []entity.MenuItem{
	{ID: 1, Name: "Idli", Price: 3000, Image: "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=400&h=300&fit=crop&auto=format"},
	{ID: 2, Name: "Dosai", Price: 5000, Image: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400&h=300&fit=crop&auto=format"},
	{ID: 3, Name: "Poori", Price: 4000, Image: "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=400&h=300&fit=crop&auto=format"},
	{ID: 4, Name: "Appam", Price: 4500, Image: "https://images.unsplash.com/photo-1555507036-ab1f4038808a?w=400&h=300&fit=crop&auto=format"},
	{ID: 5, Name: "Vadai", Price: 3500, Image: "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=400&h=300&fit=crop&auto=format"},
	{ID: 6, Name: "Vadai", Price: 4000, Image: "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=400&h=300&fit=crop&auto=format"},
	{ID: 7, Name: "Muttai", Price: 6000, Image: "https://images.unsplash.com/photo-1582722872445-44dc5f7e3c8f?w=400&h=300&fit=crop&auto=format"},
}

// SeedMenu fills an untouched catalog with the starter items and primes the
// id counter. "Untouched" means no counter row exists yet: once the counter
// is written the catalog may legitimately be empty (everything deleted) and
// must stay that way.
func SeedMenu() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Counter{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, item := range defaultMenu {
		row := item
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}

	counter := entity.Counter{NextMenuID: uint(len(defaultMenu)) + 1}
	if err := db.Create(&counter).Error; err != nil {
		return err
	}

	log.Println("starter menu seeded")
	return nil
}
