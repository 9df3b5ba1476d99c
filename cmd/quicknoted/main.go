// quicknoted serves a read-only JSON view of the local note database,
// for scripts and other tooling on the same machine.
package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/nnl3336/QuickNote/internal/config"
	"github.com/nnl3336/QuickNote/internal/store"
	"github.com/nnl3336/QuickNote/internal/web"
)

func main() {
	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if v := os.Getenv("QUICKNOTE_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("QUICKNOTE_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer st.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := web.New(st, logger)

	log.Printf("Starting viewer on %s", cfg.ListenAddr)
	log.Printf("Database: %s", cfg.DBPath)

	if err := http.ListenAndServe(cfg.ListenAddr, srv); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
