package main

import (
	"context"
	_ "embed"
	"log"
	"time"

	"github.com/edupoint/edupoint-backend-go/internal/config"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/database"
)

//go:embed schema.sql
var schema string

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Applying schema...")
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		log.Fatal("Error applying schema: ", err)
	}
	log.Println("Schema applied successfully")
}
