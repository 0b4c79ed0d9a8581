package repo

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// ContactRepo is the repository for project and local-authority contacts.
type ContactRepo = Repository[domain.Contact]

// NewContactRepo constructs a ContactRepo backed by db.
func NewContactRepo(db db) ContactRepo {
	return newRepository(db, table[domain.Contact]{
		name:  "contacts",
		label: "ContactRepo",
		columns: []string{
			"id", "project_id", "local_authority_id",
			"name", "title", "email", "phone", "category",
		},
		scan: func(s scanner) (domain.Contact, error) {
			var (
				c                domain.Contact
				id, projID, laID pgtype.UUID
			)
			err := s.Scan(&id, &projID, &laID,
				&c.Name, &c.Title, &c.Email, &c.Phone, (*string)(&c.Category))
			if err != nil {
				return domain.Contact{}, err
			}
			c.ID = uuid.UUID(id.Bytes)
			c.ProjectID = uuidOrNil(projID)
			c.LocalAuthorityID = uuidOrNil(laID)
			return c, nil
		},
		values: func(c domain.Contact) pgx.NamedArgs {
			category := c.Category
			if category == "" {
				category = domain.ContactCategoryOther
			}
			return withID(pgx.NamedArgs{
				"project_id":         c.ProjectID,
				"local_authority_id": c.LocalAuthorityID,
				"name":               c.Name,
				"title":              c.Title,
				"email":              c.Email,
				"phone":              c.Phone,
				"category":           string(category),
			}, c.ID)
		},
	})
}

// KeyContactRepo is the repository for the per-project key contact pointers.
type KeyContactRepo = Repository[domain.KeyContact]

// NewKeyContactRepo constructs a KeyContactRepo backed by db.
func NewKeyContactRepo(db db) KeyContactRepo {
	return newRepository(db, table[domain.KeyContact]{
		name:    "key_contacts",
		label:   "KeyContactRepo",
		columns: []string{"id", "project_id", "headteacher_id", "incoming_trust_ceo_id"},
		scan: func(s scanner) (domain.KeyContact, error) {
			var (
				kc                        domain.KeyContact
				id, projID, headID, ceoID pgtype.UUID
			)
			if err := s.Scan(&id, &projID, &headID, &ceoID); err != nil {
				return domain.KeyContact{}, err
			}
			kc.ID = uuid.UUID(id.Bytes)
			kc.ProjectID = uuid.UUID(projID.Bytes)
			kc.HeadteacherID = uuidOrNil(headID)
			kc.IncomingTrustCeoID = uuidOrNil(ceoID)
			return kc, nil
		},
		values: func(kc domain.KeyContact) pgx.NamedArgs {
			return withID(pgx.NamedArgs{
				"project_id":            kc.ProjectID,
				"headteacher_id":        kc.HeadteacherID,
				"incoming_trust_ceo_id": kc.IncomingTrustCeoID,
			}, kc.ID)
		},
	})
}
