package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{Name: "Al", Address: "123 St", City: "NY", PostalCode: "1234", PaymentMethod: PaymentCreditCard}
}

func TestValidate_MinimalFormPasses(t *testing.T) {
	assert.Empty(t, Validate(validForm()))
}

func TestValidate_ShortNameFailsOnlyName(t *testing.T) {
	form := validForm()
	form.Name = "A"
	errs := Validate(form)
	require.Len(t, errs, 1)
	assert.Equal(t, "Name must be at least 2 characters.", errs["name"])
}

func TestValidate_EmptyFormReportsEveryField(t *testing.T) {
	errs := Validate(Form{})
	assert.Equal(t, []string{"address", "city", "name", "paymentMethod", "postalCode"}, errs.Fields())
	assert.Equal(t, "You need to select a payment method.", errs["paymentMethod"])
}

func TestValidate_RejectsUnknownPaymentMethod(t *testing.T) {
	form := validForm()
	form.PaymentMethod = "cash"
	errs := Validate(form)
	require.Len(t, errs, 1)
	assert.Contains(t, errs, "paymentMethod")
}

func TestValidateField(t *testing.T) {
	msg, known := ValidateField("postalCode", "123")
	assert.True(t, known)
	assert.Equal(t, "Please enter a valid postal code.", msg)

	msg, known = ValidateField("postalCode", "12345")
	assert.True(t, known)
	assert.Empty(t, msg)

	msg, known = ValidateField("paymentMethod", "paypal")
	assert.True(t, known)
	assert.Empty(t, msg)

	_, known = ValidateField("email", "x")
	assert.False(t, known)
}

func TestNewForm(t *testing.T) {
	form, err := NewForm("Al", "123 St", "NY", "1234", PaymentPayPal)
	require.NoError(t, err)
	assert.Equal(t, PaymentPayPal, form.PaymentMethod)

	_, err = NewForm("A", "1", "N", "1", "")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 5)
}
