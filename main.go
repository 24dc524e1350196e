package main

import (
	"fmt"
	"log"

	"tillpoint/configs"
	"tillpoint/middlewares"
	"tillpoint/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedOperator(cfg); err != nil {
		log.Fatalf("seed operator failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("tillpoint running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
