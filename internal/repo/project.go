package repo

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// ProjectRepo is the repository for conversion and transfer projects.
type ProjectRepo = Repository[domain.Project]

// NewProjectRepo constructs a ProjectRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewProjectRepo(db db) ProjectRepo {
	return newRepository(db, table[domain.Project]{
		name:  "projects",
		label: "ProjectRepo",
		columns: []string{
			"id", "urn", "type", "state",
			"incoming_trust_ukprn", "new_trust_reference_number", "new_trust_name",
			"academy_urn",
			"significant_date", "significant_date_provisional", "directive_academy_order",
			"two_requires_improvement", "advisory_board_date", "advisory_board_conditions",
			"all_conditions_met",
			"establishment_sharepoint_link", "incoming_trust_sharepoint_link",
			"team", "region",
			"local_authority_id", "tasks_data_id", "regional_delivery_officer_id",
			"assigned_to_id", "assigned_at",
			"main_contact_id", "incoming_trust_main_contact_id", "outgoing_trust_main_contact_id",
			"created_at", "updated_at",
		},
		scan:   scanProject,
		values: projectValues,
	})
}

func scanProject(s scanner) (domain.Project, error) {
	var (
		p                                  domain.Project
		id                                 pgtype.UUID
		incomingUkprn, academyUrn          pgtype.Int4
		significantDate, advisoryDate      pgtype.Date
		twoRI, allConditionsMet            pgtype.Bool
		laID, tasksID, rdoID, assignedToID pgtype.UUID
		assignedAt                         pgtype.Timestamptz
		mainID, inMainID, outMainID        pgtype.UUID
	)

	err := s.Scan(
		&id, (*int)(&p.Urn), (*string)(&p.Type), (*string)(&p.State),
		&incomingUkprn, &p.NewTrustReferenceNumber, &p.NewTrustName,
		&academyUrn,
		&significantDate, &p.SignificantDateProvisional, &p.DirectiveAcademyOrder,
		&twoRI, &advisoryDate, &p.AdvisoryBoardConditions,
		&allConditionsMet,
		&p.EstablishmentSharepointLink, &p.IncomingTrustSharepointLink,
		(*string)(&p.Team), (*string)(&p.Region),
		&laID, &tasksID, &rdoID,
		&assignedToID, &assignedAt,
		&mainID, &inMainID, &outMainID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Project{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.IncomingTrustUkprn = ukprnOrNil(incomingUkprn)
	p.AcademyUrn = urnOrNil(academyUrn)
	p.SignificantDate = dateOrNil(significantDate)
	p.AdvisoryBoardDate = dateOrNil(advisoryDate)
	p.TwoRequiresImprovement = boolOrNil(twoRI)
	p.AllConditionsMet = boolOrNil(allConditionsMet)
	p.LocalAuthorityID = uuidOrNil(laID)
	p.TasksDataID = uuidOrNil(tasksID)
	p.RegionalDeliveryOfficerID = uuidOrNil(rdoID)
	p.AssignedToID = uuidOrNil(assignedToID)
	p.AssignedAt = timestampOrNil(assignedAt)
	p.MainContactID = uuidOrNil(mainID)
	p.IncomingTrustMainContactID = uuidOrNil(inMainID)
	p.OutgoingTrustMainContactID = uuidOrNil(outMainID)

	return p, nil
}

func projectValues(p domain.Project) pgx.NamedArgs {
	state := p.State
	if state == "" {
		state = domain.ProjectStateActive
	}

	return withID(pgx.NamedArgs{
		"urn":                            int(p.Urn),
		"type":                           string(p.Type),
		"state":                          string(state),
		"incoming_trust_ukprn":           nullInt(p.IncomingTrustUkprn),
		"new_trust_reference_number":     p.NewTrustReferenceNumber,
		"new_trust_name":                 p.NewTrustName,
		"academy_urn":                    nullInt(p.AcademyUrn),
		"significant_date":               p.SignificantDate, // nil becomes NULL
		"significant_date_provisional":   p.SignificantDateProvisional,
		"directive_academy_order":        p.DirectiveAcademyOrder,
		"two_requires_improvement":       p.TwoRequiresImprovement,
		"advisory_board_date":            p.AdvisoryBoardDate,
		"advisory_board_conditions":      p.AdvisoryBoardConditions,
		"all_conditions_met":             p.AllConditionsMet,
		"establishment_sharepoint_link":  p.EstablishmentSharepointLink,
		"incoming_trust_sharepoint_link": p.IncomingTrustSharepointLink,
		"team":                           string(p.Team),
		"region":                         string(p.Region),
		"local_authority_id":             p.LocalAuthorityID,
		"tasks_data_id":                  p.TasksDataID,
		"regional_delivery_officer_id":   p.RegionalDeliveryOfficerID,
		"assigned_to_id":                 p.AssignedToID,
		"assigned_at":                    p.AssignedAt,
		"main_contact_id":                p.MainContactID,
		"incoming_trust_main_contact_id": p.IncomingTrustMainContactID,
		"outgoing_trust_main_contact_id": p.OutgoingTrustMainContactID,
	}, p.ID)
}
