package repo

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// ConversionTasksRepo is the repository for conversion task-list data.
type ConversionTasksRepo = Repository[domain.ConversionTasksData]

// NewConversionTasksRepo constructs a ConversionTasksRepo backed by db.
func NewConversionTasksRepo(db db) ConversionTasksRepo {
	return newRepository(db, table[domain.ConversionTasksData]{
		name:  "conversion_tasks_data",
		label: "ConversionTasksRepo",
		columns: []string{
			"id",
			"risk_protection_arrangement_option", "risk_protection_arrangement_reason",
			"receive_grant_payment_certificate_date_received",
			"proposed_capacity_pupils_reception_to_year_six",
			"proposed_capacity_pupils_years_seven_to_eleven",
			"proposed_capacity_students_year_twelve_or_above",
			"created_at", "updated_at",
		},
		scan: func(s scanner) (domain.ConversionTasksData, error) {
			var (
				td       domain.ConversionTasksData
				id       pgtype.UUID
				rpa      pgtype.Text
				received pgtype.Date
			)
			err := s.Scan(&id, &rpa, &td.RiskProtectionArrangementReason, &received,
				&td.ProposedCapacityOfTheAcademyReceptionToSixYears,
				&td.ProposedCapacityOfTheAcademySevenToElevenYears,
				&td.ProposedCapacityOfTheAcademyTwelveOrAboveYears,
				&td.CreatedAt, &td.UpdatedAt)
			if err != nil {
				return domain.ConversionTasksData{}, err
			}
			td.ID = uuid.UUID(id.Bytes)
			if rpa.Valid {
				opt := domain.RiskProtectionArrangementOption(rpa.String)
				td.RiskProtectionArrangementOption = &opt
			}
			td.ReceiveGrantPaymentCertificateDateReceived = dateOrNil(received)
			return td, nil
		},
		values: func(td domain.ConversionTasksData) pgx.NamedArgs {
			return withID(pgx.NamedArgs{
				"risk_protection_arrangement_option":              nullString(td.RiskProtectionArrangementOption),
				"risk_protection_arrangement_reason":              td.RiskProtectionArrangementReason,
				"receive_grant_payment_certificate_date_received": td.ReceiveGrantPaymentCertificateDateReceived,
				"proposed_capacity_pupils_reception_to_year_six":  td.ProposedCapacityOfTheAcademyReceptionToSixYears,
				"proposed_capacity_pupils_years_seven_to_eleven":  td.ProposedCapacityOfTheAcademySevenToElevenYears,
				"proposed_capacity_students_year_twelve_or_above": td.ProposedCapacityOfTheAcademyTwelveOrAboveYears,
			}, td.ID)
		},
	})
}

// SignificantDateHistoryRepo is the repository for significant-date changes.
type SignificantDateHistoryRepo = Repository[domain.SignificantDateHistory]

// NewSignificantDateHistoryRepo constructs a SignificantDateHistoryRepo backed by db.
func NewSignificantDateHistoryRepo(db db) SignificantDateHistoryRepo {
	return newRepository(db, table[domain.SignificantDateHistory]{
		name:    "significant_date_histories",
		label:   "SignificantDateHistoryRepo",
		columns: []string{"id", "project_id", "previous_date", "revised_date", "created_at"},
		scan: func(s scanner) (domain.SignificantDateHistory, error) {
			var (
				h          domain.SignificantDateHistory
				id, projID pgtype.UUID
				prev, rev  pgtype.Date
			)
			if err := s.Scan(&id, &projID, &prev, &rev, &h.CreatedAt); err != nil {
				return domain.SignificantDateHistory{}, err
			}
			h.ID = uuid.UUID(id.Bytes)
			h.ProjectID = uuid.UUID(projID.Bytes)
			h.PreviousDate = prev.Time
			h.RevisedDate = rev.Time
			return h, nil
		},
		values: func(h domain.SignificantDateHistory) pgx.NamedArgs {
			return withID(pgx.NamedArgs{
				"project_id":    h.ProjectID,
				"previous_date": h.PreviousDate,
				"revised_date":  h.RevisedDate,
			}, h.ID)
		},
	})
}
