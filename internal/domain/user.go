package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a member of staff who creates or is assigned projects.
type User struct {
	ID                    uuid.UUID
	Email                 string
	FirstName             string
	LastName              string
	Team                  ProjectTeam
	ActiveDirectoryUserID string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// FullName returns "First Last", or "" for a nil user.
func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	return u.FirstName + " " + u.LastName
}

// GetEmail returns the email address, or "" for a nil user.
func (u *User) GetEmail() string {
	if u == nil {
		return ""
	}
	return u.Email
}

// UserWithProjects summarises a user's current workload.
type UserWithProjects struct {
	User                       User
	ConversionProjectsAssigned int
	TransferProjectsAssigned   int
}
