package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// UserWithProjects is the JSON representation of a user and their workload.
type UserWithProjects struct {
	Id                         openapi_types.UUID `json:"id"`
	FirstName                  string             `json:"firstName"`
	LastName                   string             `json:"lastName"`
	Email                      string             `json:"email"`
	Team                       string             `json:"team"`
	TeamName                   string             `json:"teamName"`
	ConversionProjectsAssigned int                `json:"conversionProjectsAssigned"`
	TransferProjectsAssigned   int                `json:"transferProjectsAssigned"`
}

// GetUser handles GET /v1/users?id=.
func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	var raw string
	if err := queryParam(r, "id", true, &raw); err != nil {
		badRequest(w, err)
		return
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		badRequest(w, fmt.Errorf("invalid format for parameter id: %w", err))
		return
	}

	u, err := s.users.GetWithProjects(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, userToResponse(u))
}

// ListAllUsers handles GET /v1/users/list/all?page=&limit=.
func (s *Server) ListAllUsers(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	if err := queryParam(r, "page", false, &page); err != nil {
		badRequest(w, err)
		return
	}
	if err := queryParam(r, "limit", false, &limit); err != nil {
		badRequest(w, err)
		return
	}

	users, err := s.users.ListAllWithProjects(r.Context(), domain.NewPaginationParams(page, limit))
	if err != nil {
		writeServiceError(w, r, err, "users not found")
		return
	}

	out := make([]UserWithProjects, len(users))
	for i, u := range users {
		out[i] = userToResponse(u)
	}
	writeJSON(w, http.StatusOK, out)
}

func userToResponse(u domain.UserWithProjects) UserWithProjects {
	return UserWithProjects{
		Id:                         u.User.ID,
		FirstName:                  u.User.FirstName,
		LastName:                   u.User.LastName,
		Email:                      u.User.Email,
		Team:                       string(u.User.Team),
		TeamName:                   u.User.Team.DisplayName(),
		ConversionProjectsAssigned: u.ConversionProjectsAssigned,
		TransferProjectsAssigned:   u.TransferProjectsAssigned,
	}
}
