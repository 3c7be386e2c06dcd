package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushq/studentms/internal/app/models"
)

func TestParsePaymentMethod(t *testing.T) {
	for _, valid := range []string{"CASH", "CARD", "BANK_TRANSFER", "UPI", "CHEQUE", "ONLINE"} {
		method, ok := models.ParsePaymentMethod(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, models.PaymentMethod(valid), method)
	}

	for _, invalid := range []string{"", "cash", "BARTER", "CRYPTO"} {
		_, ok := models.ParsePaymentMethod(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestStatusValidation(t *testing.T) {
	assert.True(t, models.StudentStatusActive.Valid())
	assert.True(t, models.StudentStatusGraduated.Valid())
	assert.False(t, models.StudentStatus("Expelled").Valid())
	assert.False(t, models.StudentStatus("active").Valid())

	assert.True(t, models.AddressTypePermanent.Valid())
	assert.False(t, models.AddressType("Vacation").Valid())

	assert.True(t, models.EnrollmentStatusWithdrawn.Valid())
	assert.False(t, models.EnrollmentStatus("Paused").Valid())

	assert.True(t, models.PaymentStatusPartial.Valid())
	assert.False(t, models.PaymentStatus("Overpaid").Valid())
}
