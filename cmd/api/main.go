package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	apidcf "madlab_dcf/pkg/api/dcf"
	"madlab_dcf/pkg/core/cache"
	"madlab_dcf/pkg/core/store"
)

type workerConfig struct {
	Port        int    `yaml:"port"`
	ExportDir   string `yaml:"export_dir"`
	ArchiveDir  string `yaml:"archive_dir"`
	DatabaseURL string `yaml:"database_url"`
	RedisAddr   string `yaml:"redis_addr"`
}

func main() {
	// Load environment variables
	godotenv.Load()

	cfg := workerConfig{Port: 8080}
	if data, err := os.ReadFile("config/worker.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			fmt.Printf("[WARNING] Bad config/worker.yaml: %v\n", err)
		}
	}
	// Env overrides for deploys
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = os.TempDir()
	}

	if cfg.DatabaseURL != "" {
		if err := store.InitDB(context.Background(), cfg.DatabaseURL); err != nil {
			fmt.Printf("[WARNING] Postgres unavailable, using file archive: %v\n", err)
		} else {
			defer store.Close()
			fmt.Println("[ARCHIVE] Postgres archive enabled")
		}
	}
	archive := store.NewArchive(store.GetPool(), cfg.ArchiveDir)

	var respCache cache.Cache = cache.NewMemory()
	if cfg.RedisAddr != "" {
		respCache = cache.NewRedis(cfg.RedisAddr)
		fmt.Printf("[CACHE] Redis response cache at %s\n", cfg.RedisAddr)
	}

	handler := apidcf.NewHandler(respCache, archive, cfg.ExportDir)
	http.HandleFunc("/dcf", handler.HandleDCF)
	http.HandleFunc("/health", handler.HandleHealth)

	fmt.Printf("DCF worker starting on :%d...\n", cfg.Port)
	fmt.Println("  - POST /dcf")
	fmt.Println("  - GET  /health")

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
