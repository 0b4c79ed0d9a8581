// Package service contains the business logic for the Complete API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"errors"

	"github.com/dfe-complete/complete-api/internal/domain"
	"github.com/dfe-complete/complete-api/internal/repo"
)

// Repos bundles the repositories shared by the services. main builds one
// from the pool; tests fill in only the fields a service touches.
type Repos struct {
	Projects         repo.ProjectRepo
	Establishments   repo.EstablishmentRepo
	LocalAuthorities repo.LocalAuthorityRepo
	Users            repo.UserRepo
	Contacts         repo.ContactRepo
	KeyContacts      repo.KeyContactRepo
	Histories        repo.SignificantDateHistoryRepo
	ConversionTasks  repo.ConversionTasksRepo
}

// optional turns a not-found lookup into a nil result.
func optional[T any](v T, err error) (*T, error) {
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}
