package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hollowpine/frontier/internal/database/postgres"
	"github.com/hollowpine/frontier/internal/repository"
)

// Repositories holds the repository implementations used by the application.
type Repositories struct {
	Store       repository.Store
	Definitions repository.Definition
}

// InitializeRepositories creates all repository implementations over the pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Store:       postgres.NewStore(dbPool),
		Definitions: postgres.NewDefinitionRepo(dbPool),
	}
}
