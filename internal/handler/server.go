// Package handler implements the HTTP handlers for the Complete API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, project.go, export.go, etc.) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/dfe-complete/complete-api/internal/domain"
	"github.com/dfe-complete/complete-api/internal/service"
)

// ProjectServicer defines the project operations the handlers depend on.
// Defining the interface in the consumer package lets handler tests inject a
// mock without touching the database or service layer.
type ProjectServicer interface {
	CreateConversion(ctx context.Context, in domain.CreateConversionProject) (domain.Project, error)
	GetByURN(ctx context.Context, urn domain.Urn) (domain.Project, error)
	ListAll(ctx context.Context, filter domain.ProjectFilter, page domain.PaginationParams) (service.ListResult, error)
	Count(ctx context.Context, filter domain.ProjectFilter) (int64, error)
	RemoveByURN(ctx context.Context, urn domain.Urn) error
}

// UserServicer defines the user operations the handlers depend on.
type UserServicer interface {
	GetWithProjects(ctx context.Context, id uuid.UUID) (domain.UserWithProjects, error)
	ListAllWithProjects(ctx context.Context, page domain.PaginationParams) ([]domain.UserWithProjects, error)
}

// TrustServicer defines the trust operations the handlers depend on.
type TrustServicer interface {
	ListAllWithProjects(ctx context.Context) ([]domain.TrustWithProjects, error)
}

// LocalAuthorityServicer defines the local authority lookups the handlers depend on.
type LocalAuthorityServicer interface {
	GetByCode(ctx context.Context, code string) (domain.LocalAuthority, error)
}

// ExportServicer defines the export operations the handlers depend on.
type ExportServicer interface {
	ConversionCSV(ctx context.Context, month, year int) (string, error)
}

// Services bundles the dependencies of Server. Tests set only the fields
// their routes use.
type Services struct {
	Projects         ProjectServicer
	Users            UserServicer
	Trusts           TrustServicer
	LocalAuthorities LocalAuthorityServicer
	Export           ExportServicer
}

// Server implements every API endpoint.
// Wire it in main.go via handler.HandlerFromMux(server, router).
type Server struct {
	projects ProjectServicer
	users    UserServicer
	trusts   TrustServicer
	las      LocalAuthorityServicer
	export   ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(svc Services) *Server {
	return &Server{
		projects: svc.Projects,
		users:    svc.Users,
		trusts:   svc.Trusts,
		las:      svc.LocalAuthorities,
		export:   svc.Export,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(Services{})
}
