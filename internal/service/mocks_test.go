package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/dfe-complete/complete-api/internal/domain"
	"github.com/dfe-complete/complete-api/internal/repo"
	"github.com/dfe-complete/complete-api/internal/service"
	"github.com/dfe-complete/complete-api/internal/trustcache"
)

// mockRepo is a hand-written test double for repo.Repository[T].
// Each method delegates to a function field; an unset field behaves like an
// empty table.
type mockRepo[T any] struct {
	get    func(ctx context.Context, f repo.Filter) (T, error)
	find   func(ctx context.Context, id uuid.UUID) (T, error)
	fetch  func(ctx context.Context, f repo.Filter) ([]T, error)
	count  func(ctx context.Context, f repo.Filter) (int64, error)
	add    func(ctx context.Context, entity T) (T, error)
	remove func(ctx context.Context, f repo.Filter) (int64, error)

	added []T
}

func (m *mockRepo[T]) Get(ctx context.Context, f repo.Filter) (T, error) {
	if m.get == nil {
		var zero T
		return zero, domain.ErrNotFound
	}
	return m.get(ctx, f)
}

func (m *mockRepo[T]) Find(ctx context.Context, id uuid.UUID) (T, error) {
	if m.find == nil {
		var zero T
		return zero, domain.ErrNotFound
	}
	return m.find(ctx, id)
}

func (m *mockRepo[T]) Fetch(ctx context.Context, f repo.Filter) ([]T, error) {
	if m.fetch == nil {
		return nil, nil
	}
	return m.fetch(ctx, f)
}

func (m *mockRepo[T]) Count(ctx context.Context, f repo.Filter) (int64, error) {
	if m.count == nil {
		return 0, nil
	}
	return m.count(ctx, f)
}

func (m *mockRepo[T]) Add(ctx context.Context, entity T) (T, error) {
	m.added = append(m.added, entity)
	if m.add == nil {
		return entity, nil
	}
	return m.add(ctx, entity)
}

func (m *mockRepo[T]) Remove(ctx context.Context, f repo.Filter) (int64, error) {
	if m.remove == nil {
		return 0, nil
	}
	return m.remove(ctx, f)
}

var _ repo.ProjectRepo = (*mockRepo[domain.Project])(nil)

// mockDirectory is a hand-written test double for trustcache.Directory.
type mockDirectory struct {
	getByUkprns func(ctx context.Context, ukprns []domain.Ukprn) ([]*domain.Trust, error)

	bulkCalls   int
	singleCalls int
	requested   []domain.Ukprn
}

func (m *mockDirectory) GetByUkprn(context.Context, domain.Ukprn) (*domain.Trust, error) {
	m.singleCalls++
	return nil, nil
}

func (m *mockDirectory) GetByTrn(context.Context, string) (*domain.Trust, error) {
	m.singleCalls++
	return nil, nil
}

func (m *mockDirectory) GetByUkprns(ctx context.Context, ukprns []domain.Ukprn) ([]*domain.Trust, error) {
	m.bulkCalls++
	m.requested = append(m.requested, ukprns...)
	if m.getByUkprns == nil {
		return nil, nil
	}
	return m.getByUkprns(ctx, ukprns)
}

var _ trustcache.Directory = (*mockDirectory)(nil)

// mockArchiver is a hand-written test double for service.Archiver.
type mockArchiver struct {
	err  error
	keys []string
	body []byte
}

func (m *mockArchiver) Store(_ context.Context, key string, body []byte) error {
	m.keys = append(m.keys, key)
	m.body = body
	return m.err
}

var _ service.Archiver = (*mockArchiver)(nil)

// emptyRepos returns Repos whose every repository is an empty mock.
func emptyRepos() service.Repos {
	return service.Repos{
		Projects:         &mockRepo[domain.Project]{},
		Establishments:   &mockRepo[domain.Establishment]{},
		LocalAuthorities: &mockRepo[domain.LocalAuthority]{},
		Users:            &mockRepo[domain.User]{},
		Contacts:         &mockRepo[domain.Contact]{},
		KeyContacts:      &mockRepo[domain.KeyContact]{},
		Histories:        &mockRepo[domain.SignificantDateHistory]{},
		ConversionTasks:  &mockRepo[domain.ConversionTasksData]{},
	}
}
