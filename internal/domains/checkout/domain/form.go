package domain

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// PaymentMethod is how the customer pays on delivery.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "creditCard"
	PaymentPayPal     PaymentMethod = "paypal"
)

// PaymentMethods lists the accepted methods in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCreditCard, PaymentPayPal}
}

func (p PaymentMethod) Label() string {
	switch p {
	case PaymentCreditCard:
		return "Credit Card"
	case PaymentPayPal:
		return "PayPal"
	default:
		return string(p)
	}
}

// Form is the delivery and payment form. Field rules live in the validate tags.
type Form struct {
	Name          string        `json:"name" form:"name" validate:"min=2"`
	Address       string        `json:"address" form:"address" validate:"min=5"`
	City          string        `json:"city" form:"city" validate:"min=2"`
	PostalCode    string        `json:"postalCode" form:"postalCode" validate:"min=4"`
	PaymentMethod PaymentMethod `json:"paymentMethod" form:"paymentMethod" validate:"oneof=creditCard paypal"`
}

var messages = map[string]string{
	"name":          "Name must be at least 2 characters.",
	"address":       "Please enter a valid address.",
	"city":          "Please enter a valid city.",
	"postalCode":    "Please enter a valid postal code.",
	"paymentMethod": "You need to select a payment method.",
}

// FieldErrors maps a field's wire name to its message.
type FieldErrors map[string]string

// Fields returns the failing field names, sorted.
func (f FieldErrors) Fields() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidationError carries every failing field of a form.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := e.Fields.Fields()
	return "invalid checkout form: " + strings.Join(names, ", ")
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
	fieldTags    map[string]string
)

func engine() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonName)
		fieldTags = map[string]string{}
		t := reflect.TypeOf(Form{})
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			fieldTags[jsonName(f)] = f.Tag.Get("validate")
		}
	})
	return validate
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// Validate checks every field and returns the failures; nil means valid.
func Validate(form Form) FieldErrors {
	err := engine().Struct(form)
	if err == nil {
		return nil
	}
	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return FieldErrors{"form": err.Error()}
	}
	out := FieldErrors{}
	for _, fe := range failures {
		out[fe.Field()] = messages[fe.Field()]
	}
	return out
}

// ValidateField checks a single field for live feedback. Unknown fields are
// reported as not found.
func ValidateField(field, value string) (message string, known bool) {
	v := engine()
	tag, ok := fieldTags[field]
	if !ok {
		return "", false
	}
	if err := v.Var(value, tag); err != nil {
		return messages[field], true
	}
	return "", true
}

// NewForm returns the populated form or a *ValidationError.
func NewForm(name, address, city, postalCode string, payment PaymentMethod) (Form, error) {
	form := Form{Name: name, Address: address, City: city, PostalCode: postalCode, PaymentMethod: payment}
	if errs := Validate(form); len(errs) > 0 {
		return Form{}, &ValidationError{Fields: errs}
	}
	return form, nil
}
