package main

import (
	"context"
	"log"

	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/domain"
	"blogapi/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	categories := repository.NewCategoryRepository(db)

	exists, err := users.ExistsByEmail(ctx, "admin@example.com")
	if err != nil {
		log.Fatal("admin lookup failed: ", err)
	}
	if exists {
		log.Println("Admin already exists, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		log.Fatal("hash failed: ", err)
	}

	admin := &domain.User{
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		FirstName:    "Admin",
		LastName:     "User",
		Gender:       domain.GenderUnspecified,
		IsVerified:   true,
		IsAdmin:      true,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal("admin create failed: ", err)
	}

	for _, c := range []domain.Category{
		{Name: "General", Description: "Anything that fits nowhere else"},
		{Name: "Technology", Description: "Software, hardware and the internet"},
		{Name: "Lifestyle", Description: "Travel, food and everyday life"},
	} {
		taken, err := categories.ExistsByName(ctx, c.Name)
		if err != nil {
			log.Fatal("category lookup failed: ", err)
		}
		if taken {
			continue
		}
		category := c
		if err := categories.Create(ctx, &category); err != nil {
			log.Fatal("category create failed: ", err)
		}
	}

	log.Println("Seed completed")
	log.Println("Admin: admin@example.com / admin123")
}
