package csvexport

import (
	"context"
	"fmt"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// TrustLookup resolves trusts for builders. *trustcache.Cache satisfies it.
type TrustLookup interface {
	GetTrust(ctx context.Context, ukprn *domain.Ukprn) (*domain.Trust, error)
	GetTrustByTrn(ctx context.Context, trn string) (*domain.Trust, error)
}

// IncomingTrustData renders one field of the project's incoming trust.
// The trust is resolved by UKPRN when the project has one, otherwise by the
// new trust reference number. An unresolved trust renders "".
func IncomingTrustData[T any](trusts TrustLookup, sel func(T) *domain.Project, field func(*domain.Trust) string) Builder[T] {
	return BuilderFunc[T](func(ctx context.Context, m T) (string, error) {
		p := sel(m)
		if p == nil {
			return "", nil
		}

		var (
			t   *domain.Trust
			err error
		)
		if p.IncomingTrustUkprn != nil {
			t, err = trusts.GetTrust(ctx, p.IncomingTrustUkprn)
		} else {
			t, err = trusts.GetTrustByTrn(ctx, p.NewTrustReferenceNumber)
		}
		if err != nil {
			return "", fmt.Errorf("incoming trust: %w", err)
		}
		if t == nil {
			return "", nil
		}
		return field(t), nil
	})
}
