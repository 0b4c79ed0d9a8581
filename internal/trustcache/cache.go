// Package trustcache memoises trust-directory lookups for the lifetime of a
// single request, so an export touching hundreds of projects makes one bulk
// directory call instead of one call per row.
package trustcache

import (
	"context"
	"fmt"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// Directory is the external trust directory the cache sits in front of.
// Unknown identifiers return (nil, nil); transport failures return an error.
type Directory interface {
	GetByUkprn(ctx context.Context, ukprn domain.Ukprn) (*domain.Trust, error)
	GetByTrn(ctx context.Context, trn string) (*domain.Trust, error)
	GetByUkprns(ctx context.Context, ukprns []domain.Ukprn) ([]*domain.Trust, error)
}

// Cache resolves trusts by UKPRN or TRN, calling the directory at most once
// per key. Only successful lookups are remembered.
//
// A Cache is not safe for concurrent use. Create one per request.
type Cache struct {
	dir     Directory
	byUkprn map[domain.Ukprn]*domain.Trust
	byTrn   map[string]*domain.Trust
}

// New returns an empty Cache backed by dir.
func New(dir Directory) *Cache {
	return &Cache{
		dir:     dir,
		byUkprn: make(map[domain.Ukprn]*domain.Trust),
		byTrn:   make(map[string]*domain.Trust),
	}
}

// GetTrust returns the trust with the given UKPRN. A nil ukprn yields
// (nil, nil) without touching the directory.
func (c *Cache) GetTrust(ctx context.Context, ukprn *domain.Ukprn) (*domain.Trust, error) {
	if ukprn == nil {
		return nil, nil
	}
	if t, ok := c.byUkprn[*ukprn]; ok {
		return t, nil
	}

	t, err := c.dir.GetByUkprn(ctx, *ukprn)
	if err != nil {
		return nil, fmt.Errorf("trustcache.GetTrust: ukprn %d: %w", *ukprn, err)
	}
	if t != nil {
		c.byUkprn[*ukprn] = t
	}
	return t, nil
}

// GetTrustByTrn returns the trust with the given trust reference number.
// An empty trn yields (nil, nil) without touching the directory.
func (c *Cache) GetTrustByTrn(ctx context.Context, trn string) (*domain.Trust, error) {
	if trn == "" {
		return nil, nil
	}
	if t, ok := c.byTrn[trn]; ok {
		return t, nil
	}

	t, err := c.dir.GetByTrn(ctx, trn)
	if err != nil {
		return nil, fmt.Errorf("trustcache.GetTrustByTrn: trn %s: %w", trn, err)
	}
	if t != nil {
		c.byTrn[trn] = t
	}
	return t, nil
}

// Hydrate loads every trust in ukprns with a single bulk call and indexes
// each result under both its UKPRN and its TRN.
func (c *Cache) Hydrate(ctx context.Context, ukprns []domain.Ukprn) error {
	if len(ukprns) == 0 {
		return nil
	}

	trusts, err := c.dir.GetByUkprns(ctx, ukprns)
	if err != nil {
		return fmt.Errorf("trustcache.Hydrate: %w", err)
	}
	for _, t := range trusts {
		if t == nil {
			continue
		}
		if t.Ukprn != 0 {
			c.byUkprn[t.Ukprn] = t
		}
		if t.ReferenceNumber != "" {
			c.byTrn[t.ReferenceNumber] = t
		}
	}
	return nil
}
