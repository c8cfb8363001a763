package problempart

import (
	"strings"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// SubmitInput is the dashboard form state for a problematic-part report.
// A nil ID creates a new report; otherwise the report is replaced.
type SubmitInput struct {
	ID          *string
	OrderID     string
	ProblemType domain.ProblemType
	Common      domain.ProblemCommon
	Fields      domain.ProblemFields
	Replacement *domain.Replacement
}

// Validate checks all fields and collects all errors. Amount fields are
// checked for parseability but sent as entered.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.OrderID) == "" {
		errs = append(errs, domain.FieldError{Field: "orderId", Message: "required"})
	}
	if !i.ProblemType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "problemType", Message: "must be damaged, defective or wrong"})
	}
	if i.ID != nil && strings.TrimSpace(*i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must not be blank"})
	}

	errs = checkAmount(errs, "customerRefundAmount", i.Common.CustomerRefundAmount)
	errs = checkAmount(errs, "returnShippingCost", i.Common.ReturnShippingCost)
	if i.Replacement != nil {
		errs = checkAmount(errs, "replacement.shippingCost", i.Replacement.ShippingCost)
		errs = checkAmount(errs, "replacement.yardPrice", i.Replacement.YardPrice)
		errs = checkAmount(errs, "replacement.partPrice", i.Replacement.PartPrice)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkAmount(errs []domain.FieldError, field, value string) []domain.FieldError {
	if _, err := domain.ParseMoney(value); err != nil {
		errs = append(errs, domain.FieldError{Field: field, Message: "must be an amount like 125.50"})
	}
	return errs
}
