package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dfe-complete/complete-api/internal/domain"
	"github.com/dfe-complete/complete-api/internal/handler"
	"github.com/dfe-complete/complete-api/internal/service"
)

// ---- mock servicers --------------------------------------------------------
// Set only the method fields your test needs.

type mockProjectServicer struct {
	createConversion func(ctx context.Context, in domain.CreateConversionProject) (domain.Project, error)
	getByURN         func(ctx context.Context, urn domain.Urn) (domain.Project, error)
	listAll          func(ctx context.Context, f domain.ProjectFilter, p domain.PaginationParams) (service.ListResult, error)
	count            func(ctx context.Context, f domain.ProjectFilter) (int64, error)
	removeByURN      func(ctx context.Context, urn domain.Urn) error
}

func (m *mockProjectServicer) CreateConversion(ctx context.Context, in domain.CreateConversionProject) (domain.Project, error) {
	return m.createConversion(ctx, in)
}
func (m *mockProjectServicer) GetByURN(ctx context.Context, urn domain.Urn) (domain.Project, error) {
	return m.getByURN(ctx, urn)
}
func (m *mockProjectServicer) ListAll(ctx context.Context, f domain.ProjectFilter, p domain.PaginationParams) (service.ListResult, error) {
	return m.listAll(ctx, f, p)
}
func (m *mockProjectServicer) Count(ctx context.Context, f domain.ProjectFilter) (int64, error) {
	return m.count(ctx, f)
}
func (m *mockProjectServicer) RemoveByURN(ctx context.Context, urn domain.Urn) error {
	return m.removeByURN(ctx, urn)
}

type mockUserServicer struct {
	getWithProjects     func(ctx context.Context, id uuid.UUID) (domain.UserWithProjects, error)
	listAllWithProjects func(ctx context.Context, p domain.PaginationParams) ([]domain.UserWithProjects, error)
}

func (m *mockUserServicer) GetWithProjects(ctx context.Context, id uuid.UUID) (domain.UserWithProjects, error) {
	return m.getWithProjects(ctx, id)
}
func (m *mockUserServicer) ListAllWithProjects(ctx context.Context, p domain.PaginationParams) ([]domain.UserWithProjects, error) {
	return m.listAllWithProjects(ctx, p)
}

type mockTrustServicer struct {
	listAllWithProjects func(ctx context.Context) ([]domain.TrustWithProjects, error)
}

func (m *mockTrustServicer) ListAllWithProjects(ctx context.Context) ([]domain.TrustWithProjects, error) {
	return m.listAllWithProjects(ctx)
}

type mockLocalAuthorityServicer struct {
	getByCode func(ctx context.Context, code string) (domain.LocalAuthority, error)
}

func (m *mockLocalAuthorityServicer) GetByCode(ctx context.Context, code string) (domain.LocalAuthority, error) {
	return m.getByCode(ctx, code)
}

type mockExportServicer struct {
	conversionCSV func(ctx context.Context, month, year int) (string, error)
}

func (m *mockExportServicer) ConversionCSV(ctx context.Context, month, year int) (string, error) {
	return m.conversionCSV(ctx, month, year)
}

// compile-time checks: the mocks and the real services satisfy the interfaces.
var (
	_ handler.ProjectServicer        = (*mockProjectServicer)(nil)
	_ handler.UserServicer           = (*mockUserServicer)(nil)
	_ handler.TrustServicer          = (*mockTrustServicer)(nil)
	_ handler.LocalAuthorityServicer = (*mockLocalAuthorityServicer)(nil)
	_ handler.ExportServicer         = (*mockExportServicer)(nil)

	_ handler.ProjectServicer        = (*service.ProjectService)(nil)
	_ handler.UserServicer           = (*service.UserService)(nil)
	_ handler.TrustServicer          = (*service.TrustService)(nil)
	_ handler.LocalAuthorityServicer = (*service.LocalAuthorityService)(nil)
	_ handler.ExportServicer         = (*service.ExportService)(nil)
)

// ---- helpers ---------------------------------------------------------------

// serve routes req through the same router main.go uses and returns the
// recorded response.
func serve(svc handler.Services, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.Handler(handler.NewServer(svc)).ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}
