package csvexport_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfe-complete/complete-api/internal/csvexport"
	"github.com/dfe-complete/complete-api/internal/domain"
	"github.com/dfe-complete/complete-api/internal/trustcache"
)

// mockTrusts is a hand-written test double for csvexport.TrustLookup.
type mockTrusts struct {
	getTrust      func(ctx context.Context, ukprn *domain.Ukprn) (*domain.Trust, error)
	getTrustByTrn func(ctx context.Context, trn string) (*domain.Trust, error)
}

func (m *mockTrusts) GetTrust(ctx context.Context, ukprn *domain.Ukprn) (*domain.Trust, error) {
	if m.getTrust == nil {
		return nil, nil
	}
	return m.getTrust(ctx, ukprn)
}

func (m *mockTrusts) GetTrustByTrn(ctx context.Context, trn string) (*domain.Trust, error) {
	if m.getTrustByTrn == nil {
		return nil, nil
	}
	return m.getTrustByTrn(ctx, trn)
}

var (
	_ csvexport.TrustLookup = (*mockTrusts)(nil)
	_ csvexport.TrustLookup = (*trustcache.Cache)(nil)
)

func companiesHouse(t *domain.Trust) string { return t.CompaniesHouseNumber }

func TestIncomingTrustData_ByUkprn(t *testing.T) {
	trust := trustFixture()
	lookup := &mockTrusts{
		getTrust: func(_ context.Context, u *domain.Ukprn) (*domain.Trust, error) {
			require.NotNil(t, u)
			assert.Equal(t, trust.Ukprn, *u)
			return trust, nil
		},
	}
	b := csvexport.IncomingTrustData(lookup, identity[*domain.Project], companiesHouse)

	got := build(t, b, &domain.Project{IncomingTrustUkprn: domain.UkprnPtr(trust.Ukprn)})

	assert.Equal(t, trust.CompaniesHouseNumber, got)
}

func TestIncomingTrustData_BlankIfNotFound(t *testing.T) {
	b := csvexport.IncomingTrustData(&mockTrusts{}, identity[*domain.Project], companiesHouse)

	got := build(t, b, &domain.Project{IncomingTrustUkprn: domain.UkprnPtr(1)})

	assert.Equal(t, "", got)
}

func TestIncomingTrustData_ByTrn(t *testing.T) {
	trust := trustFixture()
	lookup := &mockTrusts{
		getTrust: func(context.Context, *domain.Ukprn) (*domain.Trust, error) {
			t.Fatal("UKPRN lookup must not be used without a UKPRN")
			return nil, nil
		},
		getTrustByTrn: func(_ context.Context, trn string) (*domain.Trust, error) {
			assert.Equal(t, trust.ReferenceNumber, trn)
			return trust, nil
		},
	}
	b := csvexport.IncomingTrustData(lookup, identity[*domain.Project], companiesHouse)

	got := build(t, b, &domain.Project{NewTrustReferenceNumber: trust.ReferenceNumber})

	assert.Equal(t, trust.CompaniesHouseNumber, got)
}

func TestIncomingTrustData_BlankIfTrnNotFound(t *testing.T) {
	b := csvexport.IncomingTrustData(&mockTrusts{}, identity[*domain.Project], companiesHouse)

	got := build(t, b, &domain.Project{NewTrustReferenceNumber: "TR00000"})

	assert.Equal(t, "", got)
}

func TestIncomingTrustData_BlankIfFieldEmpty(t *testing.T) {
	lookup := &mockTrusts{
		getTrust: func(context.Context, *domain.Ukprn) (*domain.Trust, error) { return trustFixture(), nil },
	}
	b := csvexport.IncomingTrustData(lookup, identity[*domain.Project], func(*domain.Trust) string { return "" })

	got := build(t, b, &domain.Project{IncomingTrustUkprn: domain.UkprnPtr(1)})

	assert.Equal(t, "", got)
}

func TestIncomingTrustData_LookupErrorPropagates(t *testing.T) {
	boom := errors.New("directory unavailable")
	lookup := &mockTrusts{
		getTrust: func(context.Context, *domain.Ukprn) (*domain.Trust, error) { return nil, boom },
	}
	b := csvexport.IncomingTrustData(lookup, identity[*domain.Project], companiesHouse)

	_, err := b.Build(context.Background(), &domain.Project{IncomingTrustUkprn: domain.UkprnPtr(1)})

	assert.ErrorIs(t, err, boom)
}
