package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dfe-complete/complete-api/internal/domain"
	"github.com/dfe-complete/complete-api/internal/repo"
)

// LocalAuthorityService implements lookups of local authorities.
type LocalAuthorityService struct {
	repo repo.LocalAuthorityRepo
}

// NewLocalAuthorityService constructs a LocalAuthorityService.
func NewLocalAuthorityService(r repo.LocalAuthorityRepo) *LocalAuthorityService {
	return &LocalAuthorityService{repo: r}
}

// GetByCode returns the local authority with the given code, e.g. "202".
func (s *LocalAuthorityService) GetByCode(ctx context.Context, code string) (domain.LocalAuthority, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.LocalAuthority{}, fmt.Errorf("%w: code is required", domain.ErrValidation)
	}

	la, err := s.repo.Get(ctx, repo.Eq("code", code))
	if err != nil {
		return domain.LocalAuthority{}, fmt.Errorf("service.LocalAuthorityService.GetByCode: %w", err)
	}
	return la, nil
}
