package mapper

import (
	"github.com/Apurer/delish-express/internal/domains/checkout/domain"
)

// CheckoutForm is the submitted delivery and payment form.
type CheckoutForm struct {
	Name          string `json:"name" form:"name"`
	Address       string `json:"address" form:"address"`
	City          string `json:"city" form:"city"`
	PostalCode    string `json:"postalCode" form:"postalCode"`
	PaymentMethod string `json:"paymentMethod" form:"paymentMethod"`
}

// FieldCheck asks whether one field's value is acceptable.
type FieldCheck struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// FieldResult is the live-feedback answer.
type FieldResult struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidationResult reports every failing field of a form.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Fields map[string]string `json:"fields,omitempty"`
}

// PaymentOption is one payment radio button.
type PaymentOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func ToDomainForm(f CheckoutForm) domain.Form {
	return domain.Form{
		Name:          f.Name,
		Address:       f.Address,
		City:          f.City,
		PostalCode:    f.PostalCode,
		PaymentMethod: domain.PaymentMethod(f.PaymentMethod),
	}
}

// DefaultForm is what an untouched checkout page shows.
func DefaultForm() CheckoutForm {
	return CheckoutForm{PaymentMethod: string(domain.PaymentCreditCard)}
}

func FromFieldErrors(errs domain.FieldErrors) ValidationResult {
	if len(errs) == 0 {
		return ValidationResult{Valid: true}
	}
	return ValidationResult{Fields: map[string]string(errs)}
}

func PaymentOptions() []PaymentOption {
	methods := domain.PaymentMethods()
	out := make([]PaymentOption, 0, len(methods))
	for _, m := range methods {
		out = append(out, PaymentOption{Value: string(m), Label: m.Label()})
	}
	return out
}
