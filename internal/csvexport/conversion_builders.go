package csvexport

import "github.com/dfe-complete/complete-api/internal/domain"

// Builders that only make sense for the joined conversion model.

// DfeNumberLAESTAB renders the academy's "{LA code}/{establishment number}".
// It is blank until the project has an academy URN and the academy is known.
func DfeNumberLAESTAB() Func[domain.ConversionCSVModel] {
	return func(m domain.ConversionCSVModel) string {
		if m.Project.AcademyUrn == nil || m.Academy == nil {
			return ""
		}
		return m.Academy.LocalAuthorityCode + "/" + m.Academy.EstablishmentNumber
	}
}

// ProvisionalDate renders the first significant date ever recorded: the
// previous date of the earliest history entry, or the project's current
// significant date when it has never moved.
func ProvisionalDate() Func[domain.ConversionCSVModel] {
	return func(m domain.ConversionCSVModel) string {
		if m.SignificantDateHistory != nil {
			return m.SignificantDateHistory.PreviousDate.Format(DateLayout)
		}
		return formatDate(m.Project.SignificantDate)
	}
}

// ProjectType renders "Conversion" or "Transfer".
func ProjectType() Func[domain.ConversionCSVModel] {
	return func(m domain.ConversionCSVModel) string {
		switch m.Project.Type {
		case domain.ProjectTypeConversion:
			return "Conversion"
		case domain.ProjectTypeTransfer:
			return "Transfer"
		}
		return ""
	}
}
