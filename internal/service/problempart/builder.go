package problempart

import (
	"slices"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// Build assembles the submission payload for a problematic-part report.
//
// Common fields are copied as entered. Only the type-specific fields of
// problemType are carried over. The replacement is attached only when the
// customer asked for a replacement and one was supplied. Build performs no
// I/O and never modifies its arguments.
func Build(
	orderID string,
	problemType domain.ProblemType,
	common domain.ProblemCommon,
	fields domain.ProblemFields,
	replacement *domain.Replacement,
) domain.ProblematicPart {
	common.Photos = slices.Clone(common.Photos)

	p := domain.ProblematicPart{
		OrderID:     orderID,
		ProblemType: problemType,
		Common:      common,
	}

	switch problemType {
	case domain.ProblemDamaged:
		p.Details = domain.DamagedDetails{}
	case domain.ProblemDefective:
		p.Details = domain.DefectiveDetails{
			DefectCategory:    fields.DefectCategory,
			DefectDescription: fields.DefectDescription,
			ServiceDocuments:  slices.Clone(fields.ServiceDocuments),
		}
	case domain.ProblemWrong:
		p.Details = domain.WrongItemDetails{
			WrongMake:          fields.WrongMake,
			WrongModel:         fields.WrongModel,
			WrongYear:          fields.WrongYear,
			WrongPart:          fields.WrongPart,
			WrongSpecification: fields.WrongSpecification,
		}
	}

	if common.RequestFromCustomer == domain.RequestReplacement && replacement != nil {
		r := *replacement
		p.Replacement = &r
	}

	return p
}
