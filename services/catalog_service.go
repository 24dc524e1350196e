package services

import (
	"errors"
	"fmt"
	"strings"

	"tillpoint/entity"
	"tillpoint/repository"

	"gorm.io/gorm"
)

type CatalogService struct {
	DB          *gorm.DB
	Repo        *repository.MenuRepository
	CounterRepo *repository.CounterRepository
}

func NewCatalogService(db *gorm.DB, mr *repository.MenuRepository, cr *repository.CounterRepository) *CatalogService {
	return &CatalogService{DB: db, Repo: mr, CounterRepo: cr}
}

type MenuItemIn struct {
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price"`
	Image string `json:"image"`
}

func (s *CatalogService) List() ([]entity.MenuItem, error) {
	return s.Repo.List()
}

func (s *CatalogService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}

// Create validates the input, reserves an id from the counter and appends
// the item, all in one transaction.
func (s *CatalogService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if in.Price < 0 {
		return nil, ErrNegativePrice
	}

	image := strings.TrimSpace(in.Image)
	if image == "" {
		image = fmt.Sprintf("https://via.placeholder.com/400x300?text=%s", name)
	}

	item := entity.MenuItem{Name: name, Price: in.Price, Image: image}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		id, err := s.CounterRepo.NextMenuID(tx)
		if err != nil {
			return err
		}
		item.ID = id
		return s.Repo.Create(tx, &item)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces the record in place; the id does not change, so the item
// keeps its position in the listing.
func (s *CatalogService) Update(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if in.Price < 0 {
		return nil, ErrNegativePrice
	}

	existing, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	existing.Name = name
	existing.Price = in.Price
	existing.Image = strings.TrimSpace(in.Image)
	if existing.Image == "" {
		existing.Image = fmt.Sprintf("https://via.placeholder.com/400x300?text=%s", name)
	}
	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CatalogService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.Delete(id)
}
