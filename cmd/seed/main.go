// seed populates a fresh database with a demo store: an owner account, the
// common kirana categories, a small catalog and a couple of customers.
//
// Usage: go run ./cmd/seed
// Reads the same configuration as the API (DATABASE_URL / DB_* env vars).
// Safe to re-run: rows that already exist are skipped.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/skumaran/petti-kadai-api/internal/domain"
	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
	"github.com/skumaran/petti-kadai-api/internal/infrastructure/postgres"
	"github.com/skumaran/petti-kadai-api/pkg/config"
)

type seedProduct struct {
	name     string
	category string
	cost     string
	price    string
	qty      string
	unit     string
	discount string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("load configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("PostgreSQL connection: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fail("schema migration: %v", err)
	}

	now := time.Now()

	// Owner account: demo@pettikadai.in / password123
	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.FindByEmail("demo@pettikadai.in")
	if err != nil {
		fail("look up demo user: %v", err)
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			fail("hash password: %v", err)
		}
		err = userRepo.Create(&entity.User{
			ID:           uuid.NewString(),
			Email:        "demo@pettikadai.in",
			PasswordHash: string(hash),
			Name:         "Demo Owner",
			Role:         entity.RoleOwner,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil && !errors.Is(err, domain.ErrEmailAlreadyExists) {
			fail("create demo user: %v", err)
		}
		fmt.Println("created user demo@pettikadai.in (password: password123)")
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	categoryIDs := map[string]string{}
	for _, name := range []string{"Groceries", "Snacks", "Beverages", "Household", "Dairy"} {
		c, err := categoryRepo.GetByName(name)
		if err != nil {
			fail("look up category %s: %v", name, err)
		}
		if c == nil {
			c = &entity.Category{ID: uuid.NewString(), Name: name, CreatedAt: now, UpdatedAt: now}
			if err := categoryRepo.Create(c); err != nil && !errors.Is(err, domain.ErrDuplicate) {
				fail("create category %s: %v", name, err)
			}
			fmt.Println("created category", name)
		}
		categoryIDs[name] = c.ID
	}

	products := []seedProduct{
		{"Rice 5kg", "Groceries", "280", "340", "40", "pack", "0"},
		{"Toor Dal 1kg", "Groceries", "120", "155", "30", "pack", "0"},
		{"Sunflower Oil 1l", "Groceries", "130", "165", "25", "pcs", "5"},
		{"Murukku 200g", "Snacks", "28", "45", "50", "pack", "0"},
		{"Mixture 250g", "Snacks", "35", "55", "45", "pack", "0"},
		{"Tea Powder 500g", "Beverages", "160", "210", "20", "pack", "0"},
		{"Filter Coffee 200g", "Beverages", "95", "130", "18", "pack", "0"},
		{"Soda 750ml", "Beverages", "12", "20", "60", "pcs", "0"},
		{"Detergent Bar", "Household", "18", "28", "80", "pcs", "0"},
		{"Matchbox Bundle", "Household", "8", "12", "100", "pack", "0"},
		{"Milk 500ml", "Dairy", "22", "27", "35", "pcs", "0"},
		{"Curd 500g", "Dairy", "30", "40", "25", "pcs", "0"},
	}

	productRepo := postgres.NewProductRepository(pool)
	for _, sp := range products {
		p, err := productRepo.GetActiveByName(sp.name)
		if err != nil {
			fail("look up product %s: %v", sp.name, err)
		}
		if p != nil {
			continue
		}
		err = productRepo.Create(&entity.Product{
			ID:           uuid.NewString(),
			CategoryID:   categoryIDs[sp.category],
			Name:         sp.name,
			CostPrice:    decimal.RequireFromString(sp.cost),
			SellingPrice: decimal.RequireFromString(sp.price),
			Quantity:     decimal.RequireFromString(sp.qty),
			Unit:         sp.unit,
			IsActive:     true,
			Discount:     decimal.RequireFromString(sp.discount),
			Rating:       decimal.Zero,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil && !errors.Is(err, domain.ErrDuplicate) {
			fail("create product %s: %v", sp.name, err)
		}
		fmt.Println("created product", sp.name)
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	customers := []*entity.Customer{
		{
			ID: uuid.NewString(), Name: "Lakshmi Amma", Phone: "9840011111",
			CreditLimit: decimal.NewFromInt(2000),
			CreatedAt:   now, UpdatedAt: now,
		},
		{
			ID: uuid.NewString(), Name: "Murugan Stores", Phone: "9840022222",
			Email:       "murugan@example.com",
			CreditLimit: decimal.NewFromInt(5000),
			CreatedAt:   now, UpdatedAt: now,
		},
	}
	for _, c := range customers {
		found, err := customerRepo.GetByPhone(c.Phone)
		if err != nil {
			fail("look up customer %s: %v", c.Phone, err)
		}
		if found != nil {
			continue
		}
		if err := customerRepo.Create(c); err != nil && !errors.Is(err, domain.ErrDuplicate) {
			fail("create customer %s: %v", c.Name, err)
		}
		fmt.Println("created customer", c.Name)
	}

	fmt.Println("seed complete")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
