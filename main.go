package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Karoll-e/career-boost/internal/ai"
	"github.com/Karoll-e/career-boost/internal/config"
	"github.com/Karoll-e/career-boost/internal/database"
	"github.com/Karoll-e/career-boost/internal/expcache"
	"github.com/Karoll-e/career-boost/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if err := ensureDir(cfg.Cache.Dir); err != nil {
		log.Fatalf("create cache dir: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// generation client and explanation cache
	gen := ai.NewClient(cfg.AI)
	cacheStore, err := expcache.NewFileStore(cfg.Cache.Dir)
	if err != nil {
		log.Fatalf("init explanation cache: %v", err)
	}
	cache := expcache.NewManager(gen, cacheStore)

	// setup router
	r := router.SetupRouter(cfg, db, gen, cache)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
