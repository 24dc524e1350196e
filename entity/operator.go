package entity

import (
	"gorm.io/gorm"
)

// Operator is the single terminal account seeded from the environment.
type Operator struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `json:"-"` // bcrypt hash
	Role     string `json:"role"`
}
