package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/dfe-complete/complete-api/internal/domain"
	"github.com/dfe-complete/complete-api/internal/repo"
	"github.com/dfe-complete/complete-api/internal/trustcache"
)

// TrustService implements business logic for incoming trusts.
type TrustService struct {
	projects  repo.ProjectRepo
	directory trustcache.Directory
}

// NewTrustService constructs a TrustService.
func NewTrustService(projects repo.ProjectRepo, directory trustcache.Directory) *TrustService {
	return &TrustService{projects: projects, directory: directory}
}

// ListAllWithProjects returns every incoming trust with active projects,
// sorted by name, with conversion and transfer counts. Trust names come from
// the directory through one bulk lookup.
func (s *TrustService) ListAllWithProjects(ctx context.Context) ([]domain.TrustWithProjects, error) {
	projects, err := s.projects.Fetch(ctx, repo.All().
		NotNull("incoming_trust_ukprn").
		Ne("state", string(domain.ProjectStateDeleted)))
	if err != nil {
		return nil, fmt.Errorf("service.TrustService.ListAllWithProjects: %w", err)
	}

	byUkprn := make(map[domain.Ukprn]*domain.TrustWithProjects)
	var ukprns []domain.Ukprn
	for _, p := range projects {
		u := *p.IncomingTrustUkprn
		t, ok := byUkprn[u]
		if !ok {
			t = &domain.TrustWithProjects{Ukprn: u}
			byUkprn[u] = t
			ukprns = append(ukprns, u)
		}
		switch p.Type {
		case domain.ProjectTypeConversion:
			t.ConversionsCount++
		case domain.ProjectTypeTransfer:
			t.TransfersCount++
		}
	}

	cache := trustcache.New(s.directory)
	if err := cache.Hydrate(ctx, ukprns); err != nil {
		return nil, fmt.Errorf("service.TrustService.ListAllWithProjects: %w", err)
	}

	out := make([]domain.TrustWithProjects, 0, len(ukprns))
	for _, u := range ukprns {
		t := byUkprn[u]
		trust, err := cache.GetTrust(ctx, &u)
		if err != nil {
			return nil, fmt.Errorf("service.TrustService.ListAllWithProjects: %w", err)
		}
		if trust != nil {
			t.Name = trust.Name
		}
		out = append(out, *t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Ukprn < out[j].Ukprn
	})
	return out, nil
}
