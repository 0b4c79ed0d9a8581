package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectType distinguishes conversions from transfers.
type ProjectType string

const (
	ProjectTypeConversion ProjectType = "conversion"
	ProjectTypeTransfer   ProjectType = "transfer"
)

// Valid reports whether t is a known project type.
func (t ProjectType) Valid() bool {
	return t == ProjectTypeConversion || t == ProjectTypeTransfer
}

// ProjectState is the lifecycle state of a project.
type ProjectState string

const (
	ProjectStateActive     ProjectState = "active"
	ProjectStateCompleted  ProjectState = "completed"
	ProjectStateCancelled  ProjectState = "cancelled"
	ProjectStateDeleted    ProjectState = "deleted"
	ProjectStateDaoRevoked ProjectState = "dao_revoked"
	ProjectStateInactive   ProjectState = "inactive"
)

// Valid reports whether s is a known project state.
func (s ProjectState) Valid() bool {
	switch s {
	case ProjectStateActive, ProjectStateCompleted, ProjectStateCancelled,
		ProjectStateDeleted, ProjectStateDaoRevoked, ProjectStateInactive:
		return true
	}
	return false
}

// Region is the government region a school belongs to.
type Region string

// Project is a single conversion or transfer case.
//
// Optional associations are pointers; nil means "not set". Free-text fields use
// the empty string for "not set".
type Project struct {
	ID    uuid.UUID
	Urn   Urn
	Type  ProjectType
	State ProjectState

	// IncomingTrustUkprn is nil when the school is forming a new trust; in that
	// case NewTrustReferenceNumber identifies the trust instead.
	IncomingTrustUkprn      *Ukprn
	NewTrustReferenceNumber string
	NewTrustName            string

	// AcademyUrn is nil until the new academy has been opened.
	AcademyUrn *Urn

	SignificantDate            *time.Time
	SignificantDateProvisional bool
	DirectiveAcademyOrder      bool
	TwoRequiresImprovement     *bool
	AdvisoryBoardDate          *time.Time
	AdvisoryBoardConditions    string
	AllConditionsMet           *bool

	EstablishmentSharepointLink string
	IncomingTrustSharepointLink string

	Team   ProjectTeam
	Region Region

	LocalAuthorityID           *uuid.UUID
	TasksDataID                *uuid.UUID
	RegionalDeliveryOfficerID  *uuid.UUID
	AssignedToID               *uuid.UUID
	AssignedAt                 *time.Time
	MainContactID              *uuid.UUID
	IncomingTrustMainContactID *uuid.UUID
	OutgoingTrustMainContactID *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FormAMat reports whether the project creates a new multi-academy trust
// rather than joining an existing one.
func (p *Project) FormAMat() bool {
	return p.IncomingTrustUkprn == nil
}

// ProjectListItem is the summary row returned when listing projects.
type ProjectListItem struct {
	EstablishmentName string
	ProjectID         uuid.UUID
	Urn               Urn
	SignificantDate   *time.Time
	State             ProjectState
	Type              ProjectType
	FormAMat          bool
	AssignedToName    string
}

// ProjectFilter narrows project listings and counts. Zero values match everything.
type ProjectFilter struct {
	State ProjectState
	Type  ProjectType
}

// CreateConversionProject is the input for opening a new conversion project.
type CreateConversionProject struct {
	Urn                                  Urn
	SignificantDate                      time.Time
	IsSignificantDateProvisional         bool
	IncomingTrustUkprn                   Ukprn
	IsDueTo2Ri                           bool
	HasAcademyOrderBeenIssued            bool
	AdvisoryBoardDate                    time.Time
	AdvisoryBoardConditions              string
	EstablishmentSharepointLink          string
	IncomingTrustSharepointLink          string
	HandingOverToRegionalCaseworkService bool

	// UserAdID is the directory identifier of the user creating the project.
	UserAdID string
}
