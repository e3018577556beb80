package services

import (
	"github.com/ghuser/linentrack/pkg/app"
	"github.com/ghuser/linentrack/pkg/cache"
	"github.com/ghuser/linentrack/services/cartlog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	CartLog *CartLogService
}

// New wires all cart-log application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	catalog := postgres.NewCatalogRepository(a.Db)
	repo := postgres.NewCartLogRepository(a.Db, catalog, a.EventBus)
	viewCache := cache.NewCartLogCache(a.Redis)
	return &Services{
		CartLog: NewCartLogService(repo, catalog, viewCache),
	}
}
