package order

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
	"github.com/heartmarshall/partsdesk-backend/internal/paycard"
)

// MaxImportBatch caps the number of orders accepted by one Import call.
const MaxImportBatch = 1000

// UpdateInput is an edited order. CardNumber, when set, is reduced to its
// network and last four digits before the order leaves this service.
type UpdateInput struct {
	ID         string
	Order      domain.Order
	CardNumber string
}

func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	id := strings.TrimSpace(i.ID)
	if id == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Order.ID != "" && i.Order.ID != id {
		errs = append(errs, domain.FieldError{Field: "order.id", Message: "does not match path id"})
	}
	if i.CardNumber != "" && !paycard.IsValid(i.CardNumber) {
		errs = append(errs, domain.FieldError{Field: "cardNumber", Message: "invalid card number"})
	}
	errs = append(errs, orderFieldErrors("order", i.Order)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ImportInput is a batch of orders to store and add to the snapshot.
type ImportInput struct {
	Orders []domain.Order
}

func (i ImportInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Orders) == 0 {
		errs = append(errs, domain.FieldError{Field: "orders", Message: "at least one order required"})
	}
	if len(i.Orders) > MaxImportBatch {
		errs = append(errs, domain.FieldError{Field: "orders", Message: fmt.Sprintf("at most %d orders per import", MaxImportBatch)})
	}
	for n, o := range i.Orders {
		prefix := fmt.Sprintf("orders[%d]", n)
		if strings.TrimSpace(o.ID) == "" {
			errs = append(errs, domain.FieldError{Field: prefix + ".id", Message: "required"})
		}
		errs = append(errs, orderFieldErrors(prefix, o)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func orderFieldErrors(prefix string, o domain.Order) []domain.FieldError {
	var errs []domain.FieldError
	if o.TotalAmount < 0 {
		errs = append(errs, domain.FieldError{Field: prefix + ".totalAmount", Message: "must be >= 0"})
	}
	if o.PaidAmount < 0 {
		errs = append(errs, domain.FieldError{Field: prefix + ".paidAmount", Message: "must be >= 0"})
	}
	if o.CardLast4 != "" && (len(o.CardLast4) != 4 || paycard.Digits(o.CardLast4) != o.CardLast4) {
		errs = append(errs, domain.FieldError{Field: prefix + ".cardLast4", Message: "must be 4 digits"})
	}
	for n, p := range o.Products {
		if p.Quantity < 0 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("%s.products[%d].quantity", prefix, n), Message: "must be >= 0"})
		}
		if p.Price < 0 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("%s.products[%d].price", prefix, n), Message: "must be >= 0"})
		}
	}
	return errs
}
