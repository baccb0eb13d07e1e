package main

import (
	"log"

	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/config"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/bootstrap"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/clause"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	store := clause.NewStore()
	janitor := clause.NewJanitor(store, cfg.App.ClauseTTL)
	if err := janitor.Start(); err != nil {
		log.Fatalf("failed to start clause janitor: %v", err)
	}
	defer janitor.Stop()

	rdb := bootstrap.NewRedisClient(cfg.Redis)
	var sessions *session.Repository
	if rdb != nil {
		sessions = session.NewRepository(rdb, cfg.App.SessionTTL)
	} else {
		log.Println("REDIS_ADDR not set, last-doc persistence disabled")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "legal-review-backend",
		Version:     cfg.App.Version,
		EngineURL:   cfg.Engine.URL,
		CORSOrigins: cfg.Server.CORSOrigins,
		Facade:      bootstrap.NewFacade(cfg, store),
		Store:       store,
		Sessions:    sessions,
		Redis:       rdb,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
