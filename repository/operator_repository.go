package repository

import (
	"tillpoint/entity"

	"gorm.io/gorm"
)

type OperatorRepository struct{ DB *gorm.DB }

func NewOperatorRepository(db *gorm.DB) *OperatorRepository { return &OperatorRepository{DB: db} }

func (r *OperatorRepository) FindByEmail(email string) (*entity.Operator, error) {
	var op entity.Operator
	if err := r.DB.Where("email = ?", email).First(&op).Error; err != nil {
		return nil, err
	}
	return &op, nil
}
