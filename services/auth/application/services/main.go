package services

import (
	"github.com/ghuser/linentrack/pkg/app"
	"github.com/ghuser/linentrack/services/auth/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Auth *AuthService
}

// New wires the auth application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewEmployeeRepository(a.Db)
	return &Services{
		Auth: NewAuthService(repo, a.Tokens),
	}
}
