package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dfe-complete/complete-api/internal/domain"
	"github.com/dfe-complete/complete-api/internal/repo"
)

// ProjectService implements business logic for project operations.
type ProjectService struct {
	repos Repos
	now   func() time.Time
}

// NewProjectService constructs a ProjectService backed by repos.
func NewProjectService(repos Repos) *ProjectService {
	return &ProjectService{repos: repos, now: time.Now}
}

// ListResult is one page of projects plus the total across all pages.
type ListResult struct {
	Items []domain.ProjectListItem
	Total int64
}

// CreateConversion validates and persists a new conversion project together
// with its empty task-list data.
//
// The creating user is resolved from their Active Directory id. Handing over
// to regional casework services leaves the project unassigned in that team;
// otherwise the creator owns it in their own team.
func (s *ProjectService) CreateConversion(ctx context.Context, in domain.CreateConversionProject) (domain.Project, error) {
	if err := validateConversion(in); err != nil {
		return domain.Project{}, err
	}

	user, err := s.repos.Users.Get(ctx, repo.Eq("active_directory_user_id", in.UserAdID))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Project{}, fmt.Errorf("%w: no user with that Active Directory id", domain.ErrValidation)
	}
	if err != nil {
		return domain.Project{}, fmt.Errorf("service.ProjectService.CreateConversion: %w", err)
	}

	school, err := s.repos.Establishments.Get(ctx, repo.Eq("urn", int(in.Urn)))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Project{}, fmt.Errorf("%w: no establishment with URN %d", domain.ErrValidation, in.Urn)
	}
	if err != nil {
		return domain.Project{}, fmt.Errorf("service.ProjectService.CreateConversion: %w", err)
	}

	la, err := s.repos.LocalAuthorities.Get(ctx, repo.Eq("code", school.LocalAuthorityCode))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Project{}, fmt.Errorf("%w: no local authority for establishment %d", domain.ErrValidation, in.Urn)
	}
	if err != nil {
		return domain.Project{}, fmt.Errorf("service.ProjectService.CreateConversion: %w", err)
	}

	tasks, err := s.repos.ConversionTasks.Add(ctx, domain.ConversionTasksData{})
	if err != nil {
		return domain.Project{}, fmt.Errorf("service.ProjectService.CreateConversion: %w", err)
	}

	significant := in.SignificantDate
	advisory := in.AdvisoryBoardDate
	twoRI := in.IsDueTo2Ri
	p := domain.Project{
		Urn:                         in.Urn,
		Type:                        domain.ProjectTypeConversion,
		State:                       domain.ProjectStateActive,
		IncomingTrustUkprn:          domain.UkprnPtr(in.IncomingTrustUkprn),
		SignificantDate:             &significant,
		SignificantDateProvisional:  in.IsSignificantDateProvisional,
		DirectiveAcademyOrder:       in.HasAcademyOrderBeenIssued,
		TwoRequiresImprovement:      &twoRI,
		AdvisoryBoardDate:           &advisory,
		AdvisoryBoardConditions:     in.AdvisoryBoardConditions,
		EstablishmentSharepointLink: in.EstablishmentSharepointLink,
		IncomingTrustSharepointLink: in.IncomingTrustSharepointLink,
		Region:                      domain.Region(school.RegionName),
		LocalAuthorityID:            &la.ID,
		TasksDataID:                 &tasks.ID,
		RegionalDeliveryOfficerID:   &user.ID,
	}

	if in.HandingOverToRegionalCaseworkService {
		p.Team = domain.TeamRegionalCaseworkServices
	} else {
		now := s.now().UTC()
		p.Team = user.Team
		p.AssignedToID = &user.ID
		p.AssignedAt = &now
	}

	created, err := s.repos.Projects.Add(ctx, p)
	if err != nil {
		return domain.Project{}, fmt.Errorf("service.ProjectService.CreateConversion: %w", err)
	}
	return created, nil
}

func validateConversion(in domain.CreateConversionProject) error {
	switch {
	case in.Urn < 100000 || in.Urn > 999999:
		return fmt.Errorf("%w: urn must be a 6 digit number", domain.ErrValidation)
	case in.IncomingTrustUkprn < 10000000 || in.IncomingTrustUkprn > 19999999:
		return fmt.Errorf("%w: incoming trust ukprn must be an 8 digit number starting with 1", domain.ErrValidation)
	case in.SignificantDate.IsZero():
		return fmt.Errorf("%w: significant date is required", domain.ErrValidation)
	case in.SignificantDate.Day() != 1:
		return fmt.Errorf("%w: significant date must be the first day of a month", domain.ErrValidation)
	case in.AdvisoryBoardDate.IsZero():
		return fmt.Errorf("%w: advisory board date is required", domain.ErrValidation)
	case in.UserAdID == "":
		return fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	return nil
}

// GetByURN returns the project for a school URN.
func (s *ProjectService) GetByURN(ctx context.Context, urn domain.Urn) (domain.Project, error) {
	p, err := s.repos.Projects.Get(ctx, repo.Eq("urn", int(urn)).OrderBy("created_at DESC"))
	if err != nil {
		return domain.Project{}, fmt.Errorf("service.ProjectService.GetByURN: %w", err)
	}
	return p, nil
}

// ListAll returns one page of projects, earliest significant date first,
// joined with the school name and assignee.
func (s *ProjectService) ListAll(ctx context.Context, filter domain.ProjectFilter, page domain.PaginationParams) (ListResult, error) {
	f, err := projectFilter(filter)
	if err != nil {
		return ListResult{}, err
	}

	total, err := s.repos.Projects.Count(ctx, f)
	if err != nil {
		return ListResult{}, fmt.Errorf("service.ProjectService.ListAll: %w", err)
	}

	projects, err := s.repos.Projects.Fetch(ctx, f.OrderBy("significant_date ASC NULLS LAST, urn").Page(page))
	if err != nil {
		return ListResult{}, fmt.Errorf("service.ProjectService.ListAll: %w", err)
	}

	items, err := s.listItems(ctx, projects)
	if err != nil {
		return ListResult{}, fmt.Errorf("service.ProjectService.ListAll: %w", err)
	}
	return ListResult{Items: items, Total: total}, nil
}

// Count returns the number of projects matching filter.
func (s *ProjectService) Count(ctx context.Context, filter domain.ProjectFilter) (int64, error) {
	f, err := projectFilter(filter)
	if err != nil {
		return 0, err
	}
	n, err := s.repos.Projects.Count(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("service.ProjectService.Count: %w", err)
	}
	return n, nil
}

// RemoveByURN deletes every project for a school URN along with its
// contacts and history. Returns domain.ErrNotFound when none exist.
func (s *ProjectService) RemoveByURN(ctx context.Context, urn domain.Urn) error {
	n, err := s.repos.Projects.Remove(ctx, repo.Eq("urn", int(urn)))
	if err != nil {
		return fmt.Errorf("service.ProjectService.RemoveByURN: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("service.ProjectService.RemoveByURN: %w", domain.ErrNotFound)
	}
	return nil
}

// projectFilter translates the request filter. Deleted projects are hidden
// unless explicitly asked for.
func projectFilter(filter domain.ProjectFilter) (repo.Filter, error) {
	f := repo.All()
	if filter.State != "" {
		if !filter.State.Valid() {
			return f, fmt.Errorf("%w: unknown project state %q", domain.ErrValidation, filter.State)
		}
		f = f.Eq("state", string(filter.State))
	} else {
		f = f.Ne("state", string(domain.ProjectStateDeleted))
	}
	if filter.Type != "" {
		if !filter.Type.Valid() {
			return f, fmt.Errorf("%w: unknown project type %q", domain.ErrValidation, filter.Type)
		}
		f = f.Eq("type", string(filter.Type))
	}
	return f, nil
}

func (s *ProjectService) listItems(ctx context.Context, projects []domain.Project) ([]domain.ProjectListItem, error) {
	items := make([]domain.ProjectListItem, 0, len(projects))
	if len(projects) == 0 {
		return items, nil
	}

	urns := make([]int, 0, len(projects))
	for _, p := range projects {
		urns = append(urns, int(p.Urn))
	}
	schools, err := s.repos.Establishments.Fetch(ctx, repo.All().In("urn", urns))
	if err != nil {
		return nil, err
	}
	names := make(map[domain.Urn]string, len(schools))
	for _, e := range schools {
		names[e.Urn] = e.Name
	}

	users := make(map[string]*domain.User)
	for _, p := range projects {
		item := domain.ProjectListItem{
			EstablishmentName: names[p.Urn],
			ProjectID:         p.ID,
			Urn:               p.Urn,
			SignificantDate:   p.SignificantDate,
			State:             p.State,
			Type:              p.Type,
			FormAMat:          p.FormAMat(),
		}
		if p.AssignedToID != nil {
			key := p.AssignedToID.String()
			u, ok := users[key]
			if !ok {
				if u, err = optional(s.repos.Users.Find(ctx, *p.AssignedToID)); err != nil {
					return nil, err
				}
				users[key] = u
			}
			item.AssignedToName = u.FullName()
		}
		items = append(items, item)
	}
	return items, nil
}
