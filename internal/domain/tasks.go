package domain

import (
	"time"

	"github.com/google/uuid"
)

// RiskProtectionArrangementOption is the insurance route chosen for a new academy.
type RiskProtectionArrangementOption string

const (
	RPAStandard      RiskProtectionArrangementOption = "standard"
	RPAChurchOrTrust RiskProtectionArrangementOption = "church_or_trust"
	RPACommercial    RiskProtectionArrangementOption = "commercial"
)

// ConversionTasksData holds the task-list answers recorded against a conversion.
type ConversionTasksData struct {
	ID uuid.UUID

	RiskProtectionArrangementOption *RiskProtectionArrangementOption
	RiskProtectionArrangementReason string

	ReceiveGrantPaymentCertificateDateReceived *time.Time

	ProposedCapacityOfTheAcademyReceptionToSixYears string
	ProposedCapacityOfTheAcademySevenToElevenYears  string
	ProposedCapacityOfTheAcademyTwelveOrAboveYears  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SignificantDateHistory records a change to a project's significant date.
type SignificantDateHistory struct {
	ID           uuid.UUID
	ProjectID    uuid.UUID
	PreviousDate time.Time
	RevisedDate  time.Time
	CreatedAt    time.Time
}
