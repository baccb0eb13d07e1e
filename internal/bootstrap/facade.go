package bootstrap

import (
	"log"

	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/config"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/clause"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/facade"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/service"
)

// NewFacade selects the facade implementation once, at construction time:
// remote when an engine URL is configured, local fixture otherwise.
func NewFacade(cfg *config.Config, store *clause.Store) facade.Facade {
	if cfg.Engine.URL != "" {
		log.Printf("document facade: remote engine at %s", cfg.Engine.URL)
		engine := service.NewEngineClient(cfg.Engine.URL, cfg.Engine.RateLimitRPS, cfg.Engine.RateLimitBurst)
		return facade.NewRemoteFacade(engine, store)
	}
	log.Println("document facade: no ENGINE_URL configured, using local fixture mode")
	return facade.NewLocalFixtureFacade(store)
}
