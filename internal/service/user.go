package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dfe-complete/complete-api/internal/domain"
	"github.com/dfe-complete/complete-api/internal/repo"
)

// UserService implements business logic for user operations.
type UserService struct {
	users    repo.UserRepo
	projects repo.ProjectRepo
}

// NewUserService constructs a UserService backed by the provided repos.
func NewUserService(users repo.UserRepo, projects repo.ProjectRepo) *UserService {
	return &UserService{users: users, projects: projects}
}

// GetWithProjects returns a user with counts of the projects assigned to them.
func (s *UserService) GetWithProjects(ctx context.Context, id uuid.UUID) (domain.UserWithProjects, error) {
	u, err := s.users.Find(ctx, id)
	if err != nil {
		return domain.UserWithProjects{}, fmt.Errorf("service.UserService.GetWithProjects: %w", err)
	}
	out, err := s.withProjects(ctx, u)
	if err != nil {
		return domain.UserWithProjects{}, fmt.Errorf("service.UserService.GetWithProjects: %w", err)
	}
	return out, nil
}

// ListAllWithProjects returns one page of users ordered by name, each with
// assigned project counts.
func (s *UserService) ListAllWithProjects(ctx context.Context, page domain.PaginationParams) ([]domain.UserWithProjects, error) {
	users, err := s.users.Fetch(ctx, repo.All().OrderBy("first_name, last_name").Page(page))
	if err != nil {
		return nil, fmt.Errorf("service.UserService.ListAllWithProjects: %w", err)
	}

	out := make([]domain.UserWithProjects, 0, len(users))
	for _, u := range users {
		w, err := s.withProjects(ctx, u)
		if err != nil {
			return nil, fmt.Errorf("service.UserService.ListAllWithProjects: %w", err)
		}
		out = append(out, w)
	}
	return out, nil
}

func (s *UserService) withProjects(ctx context.Context, u domain.User) (domain.UserWithProjects, error) {
	assigned := repo.Eq("assigned_to_id", u.ID).Ne("state", string(domain.ProjectStateDeleted))

	conversions, err := s.projects.Count(ctx, assigned.Eq("type", string(domain.ProjectTypeConversion)))
	if err != nil {
		return domain.UserWithProjects{}, err
	}
	transfers, err := s.projects.Count(ctx, assigned.Eq("type", string(domain.ProjectTypeTransfer)))
	if err != nil {
		return domain.UserWithProjects{}, err
	}

	return domain.UserWithProjects{
		User:                       u,
		ConversionProjectsAssigned: int(conversions),
		TransferProjectsAssigned:   int(transfers),
	}, nil
}
