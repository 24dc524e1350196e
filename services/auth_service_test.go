package services

import (
	"errors"
	"testing"
	"time"

	"tillpoint/entity"
	"tillpoint/repository"

	"golang.org/x/crypto/bcrypt"
)

func TestAuthLogin(t *testing.T) {
	db := testDB(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("counter123"), bcrypt.DefaultCost)
	op := entity.Operator{Email: "till@example.com", Password: string(hash), Role: "operator"}
	if err := db.Create(&op).Error; err != nil {
		t.Fatalf("seed operator: %v", err)
	}

	svc := NewAuthService(repository.NewOperatorRepository(db), "secret", time.Hour)

	out, err := svc.Login(&LoginIn{Email: "till@example.com", Password: "counter123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.Token == "" || out.Role != "operator" {
		t.Fatalf("login out = %#v", out)
	}

	if _, err := svc.Login(&LoginIn{Email: "till@example.com", Password: "nope"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(&LoginIn{Email: "ghost@example.com", Password: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}
