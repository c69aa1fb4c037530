package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/repforge/repforge/internal/config"
	"github.com/repforge/repforge/internal/domain"
	"github.com/repforge/repforge/internal/repository"
	"github.com/repforge/repforge/internal/service"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		log.Fatalf("Failed to connect to Mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB.Database)
	repo := repository.NewMongoExerciseRepository(db)

	for _, ex := range service.DefaultExercises() {
		if err := repo.Create(context.Background(), ex); err != nil {
			if err == domain.ErrDuplicateExercise {
				fmt.Printf("Skipping duplicate: %s\n", ex.Name)
			} else {
				log.Printf("Error creating %s: %v\n", ex.Name, err)
			}
		} else {
			fmt.Printf("Created: %s\n", ex.Name)
		}
	}
	fmt.Println("Seeding Exercises Complete.")
}
