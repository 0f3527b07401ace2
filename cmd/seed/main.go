package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"bistroboss/internal/config"
	"bistroboss/internal/db"
	"bistroboss/internal/model"
	"bistroboss/internal/repository"
)

// SeedMenuItem is the fixture shape for a menu entry.
type SeedMenuItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Recipe   string `json:"recipe"`
	Image    string `json:"image"`
}

// SeedReview is the fixture shape for a review.
type SeedReview struct {
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}

func main() {
	menuPath := flag.String("menu", "menu.json", "menu fixture file")
	reviewsPath := flag.String("reviews", "reviews.json", "reviews fixture file")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.MenuItem{}, &model.Review{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	menuRepo := repository.NewMenuRepository(gormDB)
	seeded, skipped, err := seedMenu(ctx, menuRepo, *menuPath)
	if err != nil {
		log.Fatalf("Failed to seed menu: %v", err)
	}
	log.Printf("Menu: %d items seeded, %d skipped", seeded, skipped)

	reviewRepo := repository.NewReviewRepository(gormDB)
	reviews, err := seedReviews(ctx, reviewRepo, *reviewsPath)
	if err != nil {
		log.Fatalf("Failed to seed reviews: %v", err)
	}
	log.Printf("Reviews: %d seeded", reviews)

	log.Println("Seed completed successfully!")
}

// seedMenu loads the fixture and inserts items, skipping entries whose
// price does not parse.
func seedMenu(ctx context.Context, repo repository.MenuRepository, path string) (seeded, skipped int, err error) {
	var items []SeedMenuItem
	if err := readFixture(path, &items); err != nil {
		return 0, 0, err
	}

	for _, item := range items {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			log.Printf("Skipping menu item %q with invalid price: %s", item.Name, item.Price)
			skipped++
			continue
		}

		menuItem := &model.MenuItem{
			Name:     item.Name,
			Category: item.Category,
			Price:    price,
			Recipe:   item.Recipe,
			Image:    item.Image,
		}
		if err := repo.Create(ctx, menuItem); err != nil {
			return seeded, skipped, fmt.Errorf("create menu item %q: %w", item.Name, err)
		}
		seeded++
	}
	return seeded, skipped, nil
}

func seedReviews(ctx context.Context, repo repository.ReviewRepository, path string) (int, error) {
	var reviews []SeedReview
	if err := readFixture(path, &reviews); err != nil {
		return 0, err
	}

	count := 0
	for _, review := range reviews {
		r := &model.Review{
			Name:    review.Name,
			Details: review.Details,
			Rating:  review.Rating,
		}
		if err := repo.Create(ctx, r); err != nil {
			return count, fmt.Errorf("create review by %q: %w", review.Name, err)
		}
		count++
	}
	return count, nil
}

func readFixture(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return nil
}
