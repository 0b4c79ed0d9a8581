package domain

import "github.com/google/uuid"

// ContactCategory classifies a contact attached to a project.
type ContactCategory string

const (
	ContactCategoryOther             ContactCategory = "other"
	ContactCategorySchoolOrAcademy   ContactCategory = "school_or_academy"
	ContactCategoryIncomingTrust     ContactCategory = "incoming_trust"
	ContactCategoryOutgoingTrust     ContactCategory = "outgoing_trust"
	ContactCategoryLocalAuthority    ContactCategory = "local_authority"
	ContactCategorySolicitor         ContactCategory = "solicitor"
	ContactCategoryDiocese           ContactCategory = "diocese"
	ContactCategoryDirectorOfService ContactCategory = "director_of_child_services"
)

// Contact is a person involved in a project. A contact belongs either to a
// project or, for directors of child services, to a local authority.
type Contact struct {
	ID               uuid.UUID
	ProjectID        *uuid.UUID
	LocalAuthorityID *uuid.UUID
	Name             string
	Title            string
	Email            string
	Phone            string
	Category         ContactCategory
}

func (c *Contact) GetName() string {
	if c == nil {
		return ""
	}
	return c.Name
}

func (c *Contact) GetEmail() string {
	if c == nil {
		return ""
	}
	return c.Email
}

func (c *Contact) GetTitle() string {
	if c == nil {
		return ""
	}
	return c.Title
}

// KeyContact links a project to its headteacher and incoming trust CEO.
type KeyContact struct {
	ID                 uuid.UUID
	ProjectID          uuid.UUID
	HeadteacherID      *uuid.UUID
	IncomingTrustCeoID *uuid.UUID
}
