package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/hollowpine/frontier/internal/domain"
	"github.com/hollowpine/frontier/internal/repository"
)

// DefinitionCacheTTL bounds how long a cached definition may serve lookups.
// Definitions only change through a config re-sync, so staleness is rare but
// must still expire.
const DefinitionCacheTTL = 5 * time.Minute

// Service is the read-side catalog: definition lookups by ID and name, backed
// by an expiring LRU over the repository. It satisfies the transfer engine's
// DefinitionSource.
type Service struct {
	repo repository.Definition

	byID   *expirable.LRU[string, *domain.ItemDefinition]
	byName *expirable.LRU[string, *domain.ItemDefinition]
}

// NewService creates a catalog service over a definition repository
func NewService(repo repository.Definition) *Service {
	return &Service{
		repo:   repo,
		byID:   expirable.NewLRU[string, *domain.ItemDefinition](DefinitionCacheSize, nil, DefinitionCacheTTL),
		byName: expirable.NewLRU[string, *domain.ItemDefinition](DefinitionCacheSize, nil, DefinitionCacheTTL),
	}
}

// DefinitionByID returns the definition for an ID, cached
func (s *Service) DefinitionByID(ctx context.Context, id int) (*domain.ItemDefinition, error) {
	key := strconv.Itoa(id)
	if def, ok := s.byID.Get(key); ok {
		return def, nil
	}

	def, err := s.repo.GetDefinitionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache(def)
	return def, nil
}

// DefinitionByName returns the definition for a unique name, cached
func (s *Service) DefinitionByName(ctx context.Context, name string) (*domain.ItemDefinition, error) {
	if def, ok := s.byName.Get(name); ok {
		return def, nil
	}

	def, err := s.repo.GetDefinitionByName(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cache(def)
	return def, nil
}

// AllDefinitions returns the full catalog, uncached
func (s *Service) AllDefinitions(ctx context.Context) ([]domain.ItemDefinition, error) {
	defs, err := s.repo.GetAllDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list definitions: %w", err)
	}
	return defs, nil
}

// Invalidate drops all cached definitions, for use after a config re-sync
func (s *Service) Invalidate() {
	s.byID.Purge()
	s.byName.Purge()
}

func (s *Service) cache(def *domain.ItemDefinition) {
	s.byID.Add(strconv.Itoa(def.ID), def)
	s.byName.Add(def.Name, def)
}
