package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"platina/pkg/config"
	app "platina/services/content/internal/app"
)

func main() {
	var (
		skipAdmin bool
		timeout   time.Duration
	)
	flag.BoolVar(&skipAdmin, "skip-admin", false, "Do not create the ADMIN_EMAIL user")
	flag.DurationVar(&timeout, "timeout", 2*time.Minute, "Give up after this long")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if !cfg.BackendConfigured() {
		panic("DB_HOST and DB_PASSWORD must be set to seed the database")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}
	defer application.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if !skipAdmin && cfg.AdminEmail != "" {
		user, err := application.AuthUseCase.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			panic(fmt.Sprintf("Failed to ensure admin user: %v", err))
		}
		fmt.Printf("Admin user ready: %s\n", user.Email)
	}

	result, err := application.ContentUseCase.SeedIfEmpty(ctx)
	if err != nil {
		panic(fmt.Sprintf("Failed to seed database: %v", err))
	}
	if result.Skipped {
		fmt.Println("Database already has content, nothing seeded")
		return
	}
	fmt.Printf("Seeded %d authors, %d reviews, %d news, %d guides\n",
		result.Authors, result.Reviews, result.News, result.Guides)
}
