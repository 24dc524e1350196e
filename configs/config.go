package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	OperatorEmail    string
	OperatorPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as-is")
	}

	return &Config{
		DBDriver:         getEnv("DB_DRIVER", "sqlite"),
		DBSource:         getEnv("DB_SOURCE", "tillpoint.db"),
		Port:             getEnv("PORT", "8000"),
		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		JWTTTL:           time.Duration(24) * time.Hour,
		OperatorEmail:    os.Getenv("OPERATOR_EMAIL"),
		OperatorPassword: os.Getenv("OPERATOR_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
