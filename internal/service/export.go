package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dfe-complete/complete-api/internal/csvexport"
	"github.com/dfe-complete/complete-api/internal/domain"
	"github.com/dfe-complete/complete-api/internal/repo"
	"github.com/dfe-complete/complete-api/internal/trustcache"
)

// Archiver stores a copy of a generated export. The S3 archiver in
// internal/archive satisfies it.
type Archiver interface {
	Store(ctx context.Context, key string, body []byte) error
}

// ExportService builds the monthly CSV exports.
type ExportService struct {
	repos     Repos
	directory trustcache.Directory
	archiver  Archiver
	tracer    trace.Tracer
}

// NewExportService constructs an ExportService. directory backs the trust
// cache created for each export.
func NewExportService(repos Repos, directory trustcache.Directory) *ExportService {
	return &ExportService{
		repos:     repos,
		directory: directory,
		tracer:    otel.Tracer("github.com/dfe-complete/complete-api/internal/service"),
	}
}

// WithArchiver makes every successful export also be stored through a.
func (s *ExportService) WithArchiver(a Archiver) *ExportService {
	s.archiver = a
	return s
}

// ConversionCSV returns the conversion export for projects whose significant
// date falls in the given month.
func (s *ExportService) ConversionCSV(ctx context.Context, month, year int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: month must be between 1 and 12", domain.ErrValidation)
	}
	if year < 2000 || year > 2100 {
		return "", fmt.Errorf("%w: year must be between 2000 and 2100", domain.ErrValidation)
	}

	ctx, span := s.tracer.Start(ctx, "service.ExportService.ConversionCSV", trace.WithAttributes(
		attribute.Int("export.month", month),
		attribute.Int("export.year", year),
	))
	defer span.End()

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	projects, err := s.repos.Projects.Fetch(ctx, repo.
		Eq("type", string(domain.ProjectTypeConversion)).
		Ne("state", string(domain.ProjectStateDeleted)).
		Gte("significant_date", from).
		Lt("significant_date", from.AddDate(0, 1, 0)).
		OrderBy("significant_date, urn"))
	if err != nil {
		return "", fmt.Errorf("service.ExportService.ConversionCSV: %w", err)
	}

	models := make([]domain.ConversionCSVModel, 0, len(projects))
	seen := make(map[domain.Ukprn]struct{})
	var ukprns []domain.Ukprn
	for _, p := range projects {
		m, err := s.conversionModel(ctx, p)
		if err != nil {
			return "", fmt.Errorf("service.ExportService.ConversionCSV: project %d: %w", p.Urn, err)
		}
		models = append(models, m)

		if u := p.IncomingTrustUkprn; u != nil {
			if _, ok := seen[*u]; !ok {
				seen[*u] = struct{}{}
				ukprns = append(ukprns, *u)
			}
		}
	}
	span.SetAttributes(attribute.Int("export.rows", len(models)))

	cache := trustcache.New(s.directory)
	if err := cache.Hydrate(ctx, ukprns); err != nil {
		return "", fmt.Errorf("service.ExportService.ConversionCSV: %w", err)
	}

	content, err := csvexport.NewContentGenerator(csvexport.ConversionColumns(cache)).Generate(ctx, models)
	if err != nil {
		return "", fmt.Errorf("service.ExportService.ConversionCSV: %w", err)
	}

	if s.archiver != nil {
		key := fmt.Sprintf("conversions/%04d-%02d.csv", year, month)
		if err := s.archiver.Store(ctx, key, []byte(content)); err != nil {
			slog.WarnContext(ctx, "archive export", "key", key, "error", err)
		}
	}

	return content, nil
}

// conversionModel joins everything the conversion columns read for p.
func (s *ExportService) conversionModel(ctx context.Context, p domain.Project) (domain.ConversionCSVModel, error) {
	m := domain.ConversionCSVModel{Project: p}
	var err error

	if m.CurrentSchool, err = optional(s.repos.Establishments.Get(ctx, repo.Eq("urn", int(p.Urn)))); err != nil {
		return m, err
	}
	if p.AcademyUrn != nil {
		if m.Academy, err = optional(s.repos.Establishments.Get(ctx, repo.Eq("urn", int(*p.AcademyUrn)))); err != nil {
			return m, err
		}
	}
	if p.LocalAuthorityID != nil {
		if m.LocalAuthority, err = optional(s.repos.LocalAuthorities.Find(ctx, *p.LocalAuthorityID)); err != nil {
			return m, err
		}
	}
	if m.SignificantDateHistory, err = optional(s.repos.Histories.Get(ctx,
		repo.Eq("project_id", p.ID).OrderBy("created_at ASC"))); err != nil {
		return m, err
	}
	if p.TasksDataID != nil {
		if m.ConversionTasks, err = optional(s.repos.ConversionTasks.Find(ctx, *p.TasksDataID)); err != nil {
			return m, err
		}
	}
	if m.CreatedBy, err = s.findUser(ctx, p.RegionalDeliveryOfficerID); err != nil {
		return m, err
	}
	if m.AssignedTo, err = s.findUser(ctx, p.AssignedToID); err != nil {
		return m, err
	}

	contacts, err := s.repos.Contacts.Fetch(ctx, repo.Eq("project_id", p.ID).OrderBy("created_at ASC"))
	if err != nil {
		return m, err
	}
	byID := make(map[uuid.UUID]*domain.Contact, len(contacts))
	byCategory := make(map[domain.ContactCategory]*domain.Contact)
	for i := range contacts {
		c := &contacts[i]
		byID[c.ID] = c
		if _, ok := byCategory[c.Category]; !ok {
			byCategory[c.Category] = c
		}
	}
	contact := func(id *uuid.UUID) *domain.Contact {
		if id == nil {
			return nil
		}
		return byID[*id]
	}

	m.MainContact = contact(p.MainContactID)
	m.IncomingContact = contact(p.IncomingTrustMainContactID)
	m.OutgoingContact = contact(p.OutgoingTrustMainContactID)
	m.LocalAuthorityContact = byCategory[domain.ContactCategoryLocalAuthority]
	m.SolicitorContact = byCategory[domain.ContactCategorySolicitor]
	m.DioceseContact = byCategory[domain.ContactCategoryDiocese]

	keys, err := optional(s.repos.KeyContacts.Get(ctx, repo.Eq("project_id", p.ID)))
	if err != nil {
		return m, err
	}
	if keys != nil {
		m.Headteacher = contact(keys.HeadteacherID)
		m.IncomingCEOContact = contact(keys.IncomingTrustCeoID)
	}

	if m.LocalAuthority != nil {
		if m.DirectorOfServicesContact, err = optional(s.repos.Contacts.Get(ctx,
			repo.Eq("local_authority_id", m.LocalAuthority.ID).OrderBy("created_at ASC"))); err != nil {
			return m, err
		}
	}

	return m, nil
}

func (s *ExportService) findUser(ctx context.Context, id *uuid.UUID) (*domain.User, error) {
	if id == nil {
		return nil, nil
	}
	return optional(s.repos.Users.Find(ctx, *id))
}
