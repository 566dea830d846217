package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	"platina/migrations"
	"platina/pkg/config"
	"platina/pkg/database"
	"platina/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		dir     = flag.String("dir", "", "read migrations from this directory instead of the embedded set")
		command = flag.String("command", "up", "goose command (up, up-by-one, down, redo, reset, status, version, create)")
		name    = flag.String("name", "", "name for new migration (used with create command)")
		timeout = flag.Duration("timeout", 5*time.Minute, "abort the migration after this long")
	)
	flag.Parse()

	log := logger.New()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config: %v", err)
		panic(err)
	}
	if !cfg.BackendConfigured() {
		panic("DB_HOST and DB_PASSWORD must be set to run migrations")
	}

	migrationsDir := "."
	if *dir != "" {
		migrationsDir = *dir
	} else {
		goose.SetBaseFS(migrations.FS)
	}

	if *command == "create" {
		if *dir == "" || *name == "" {
			panic("create needs -dir pointing at the migrations source directory and -name")
		}
		if err := goose.Create(nil, *dir, *name, "sql"); err != nil {
			log.Error("Failed to create migration: %v", err)
			panic(err)
		}
		log.Info("Created migration %s in %s", *name, *dir)
		return
	}

	db, err := sql.Open("postgres", database.DSN(cfg))
	if err != nil {
		log.Error("Failed to open database: %v", err)
		panic(err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Error("Failed to set dialect: %v", err)
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := goose.RunContext(ctx, *command, db, migrationsDir); err != nil {
		log.Error("goose %s failed: %v", *command, err)
		panic(err)
	}
	log.Infow("Migration command finished", "command", *command, "embedded", *dir == "")
}
