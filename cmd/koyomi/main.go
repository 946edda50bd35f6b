package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/koyomi-ui/koyomi/app"
	"github.com/koyomi-ui/koyomi/core"
	"github.com/koyomi-ui/koyomi/internal/config"
	"github.com/koyomi-ui/koyomi/internal/database"
	"github.com/koyomi-ui/koyomi/internal/holiday"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Holiday.CachePath), 0o755); err != nil {
		log.Fatalf("mkdir cache dir: %v", err)
	}
	db, err := database.Open(cfg.Holiday.CachePath)
	if err != nil {
		log.Fatalf("open cache: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(db, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// One fetch per process, shared by every picker. Failure degrades to
	// the cache and then to an empty set; it never blocks the UI.
	fetchCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	holidays := holiday.Loader{URL: cfg.Holiday.SourceURL, DB: db}.Load(fetchCtx)
	cancel()

	fields, coord, errs := app.BuildFields(cfg, holidays.Contains, time.Now())
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "koyomi: %v\n", err)
	}

	keys := core.NewKeyRegistry(core.DefaultBindings())
	m := app.NewModel(fields, coord, keys)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
