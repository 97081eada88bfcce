package main

import (
	"context"
	"log"
	"os"
	"time"

	"notely-be/internal/entity"
	"notely-be/internal/pkg/password"
	"notely-be/internal/repository/specification"
	"notely-be/internal/repository/unitofwork"
	"notely-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds a demo account with a handful of notes. Safe to run repeatedly.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByIdentifier{Value: "demo"})
	if err != nil {
		log.Fatal("Error: Lookup failed:", err)
	}
	if existing != nil {
		log.Println("Seed user already present, nothing to do")
		return
	}

	hash, err := password.Hash("demo1234")
	if err != nil {
		log.Fatal("Error: Hashing failed:", err)
	}

	now := time.Now()
	demo := &entity.User{
		Id:                uuid.New(),
		Username:          "demo",
		Email:             "demo@example.com",
		PasswordHash:      hash,
		FirstName:         "Demo",
		LastName:          "User",
		DateJoined:        now,
		LastProfileUpdate: now,
	}
	if err := uow.UserRepository().Create(ctx, demo); err != nil {
		log.Fatal("Error: Failed to create seed user:", err)
	}

	notes := []struct {
		title, synopsis, content string
	}{
		{"Welcome to Notely", "A short tour of what notes look like here", "Create, edit, trash, and restore notes. Search covers titles, synopses, content, and author names."},
		{"Keyboard habits", "Small editor habits that compound over time", "Write the synopsis last. It is easier to summarize something that already exists."},
	}
	for _, n := range notes {
		entry := &entity.Entry{
			Id:        uuid.New(),
			Title:     n.title,
			Synopsis:  n.synopsis,
			Content:   n.content,
			AuthorId:  demo.Id,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uow.EntryRepository().Create(ctx, entry); err != nil {
			log.Fatal("Error: Failed to create seed note:", err)
		}
	}

	log.Printf("✅ Seeded demo user (%s) with %d notes", demo.Email, len(notes))
}
