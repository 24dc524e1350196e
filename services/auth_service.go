package services

import (
	"errors"
	"time"

	"tillpoint/repository"
	"tillpoint/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Repo      *repository.OperatorRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(repo *repository.OperatorRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Repo: repo, JWTSecret: secret, JWTTTL: ttl}
}

type LoginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginOut struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *AuthService) Login(in *LoginIn) (*LoginOut, error) {
	op, err := s.Repo.FindByEmail(in.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(op.Password), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(op.ID, op.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &LoginOut{Token: token, Email: op.Email, Role: op.Role}, nil
}
