package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/linentrack/pkg/cache"
	cartlogdomain "github.com/ghuser/linentrack/services/cartlog/domain"
	"github.com/ghuser/linentrack/services/cartlog/domain/models"
	"github.com/ghuser/linentrack/services/cartlog/domain/repositories"
	domainsvcs "github.com/ghuser/linentrack/services/cartlog/domain/services"
)

// CartLogService is the reconciliation engine and query projector for the
// cart-log aggregate. Mutations take the caller's employee id explicitly;
// nothing here reads identity from ambient context. Event publishing is
// handled by the repository layer (outbox pattern). Reads are served from
// the Redis view cache when available.
type CartLogService struct {
	repo    repositories.CartLogRepository
	catalog repositories.CatalogRepository
	cache   *pkgcache.CartLogCache
}

// NewCartLogService returns a CartLogService wired with the given
// repositories and cache. cache may be nil (tests, worker).
func NewCartLogService(repo repositories.CartLogRepository, catalog repositories.CatalogRepository, cache *pkgcache.CartLogCache) *CartLogService {
	return &CartLogService{repo: repo, catalog: catalog, cache: cache}
}

// Upsert creates or updates a cart log together with its line items.
//
// A submitted id of 0 inserts a new header; otherwise the stored header is
// overwritten in place, but only when callerID matches the stored header's
// employee — ErrNotOwner otherwise, with no partial writes. Line items
// present in the snapshot are inserted or updated; items in storage but
// absent from the snapshot are left alone. Returns the persisted header
// with generated ids filled in.
func (s *CartLogService) Upsert(ctx context.Context, log *models.CartLog, callerID int64) (*models.CartLog, error) {
	log.Normalize()
	if err := domainsvcs.ValidateForUpsert(log); err != nil {
		return nil, fmt.Errorf("%w: %w", cartlogdomain.ErrValidation, err)
	}
	if err := s.checkCatalogRefs(ctx, log); err != nil {
		return nil, err
	}

	if !log.IsNew() {
		stored, err := s.repo.GetHeader(ctx, log.ID)
		if err != nil {
			return nil, fmt.Errorf("load cart log: %w", err)
		}
		if stored.EmployeeID != callerID {
			return nil, cartlogdomain.ErrNotOwner
		}
	}

	persisted, err := s.repo.Upsert(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("upsert cart log: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), persisted.ID)
	}
	return persisted, nil
}

// checkCatalogRefs verifies the header's catalog references exist. Linen
// references are exempt: an unknown linen id is created, not rejected.
func (s *CartLogService) checkCatalogRefs(ctx context.Context, log *models.CartLog) error {
	if _, err := s.catalog.FindCart(ctx, log.CartID); err != nil {
		return err
	}
	if _, err := s.catalog.FindLocation(ctx, log.LocationID); err != nil {
		return err
	}
	if _, err := s.catalog.FindEmployee(ctx, log.EmployeeID); err != nil {
		return err
	}
	return nil
}

// GetByID retrieves the joined projection using a read-through cache:
//  1. Check Redis first.
//  2. On miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *CartLogService) GetByID(ctx context.Context, id int64) (*models.CartLogView, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cached, nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache error — fall through to Postgres.
			_ = err
		}
	}

	view, err := s.repo.GetView(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get cart log: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), view)
		}()
	}
	return view, nil
}

// List returns projections matching the filter, newest weigh date first,
// ties broken by ascending id. An empty result is an empty slice.
func (s *CartLogService) List(ctx context.Context, f repositories.Filter) ([]*models.CartLogView, error) {
	views, err := s.repo.ListViews(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list cart logs: %w", err)
	}
	return views, nil
}

// Delete removes a cart log and cascades to its line items and to linen
// catalog rows no other log references. Returns (false, ErrCartLogNotFound)
// for a missing id and (false, ErrNotOwner) when callerID is not the
// recording employee; storage is untouched in both cases.
func (s *CartLogService) Delete(ctx context.Context, id, callerID int64) (bool, error) {
	stored, err := s.repo.GetHeader(ctx, id)
	if err != nil {
		if errors.Is(err, cartlogdomain.ErrCartLogNotFound) {
			return false, cartlogdomain.ErrCartLogNotFound
		}
		return false, fmt.Errorf("load cart log: %w", err)
	}
	if stored.EmployeeID != callerID {
		return false, cartlogdomain.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return false, fmt.Errorf("delete cart log: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return true, nil
}
