package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushq/studentms/internal/app/models"
)

func TestFee_Outstanding(t *testing.T) {
	fee := &models.Fee{Amount: 1000, PaidAmount: 400}
	assert.Equal(t, 600.0, fee.Outstanding())

	fee.PaidAmount = 1000
	assert.Zero(t, fee.Outstanding())
}

func TestFee_DeriveStatus(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		paid   float64
		want   models.PaymentStatus
	}{
		{"nothing paid", 1000, 0, models.PaymentStatusPending},
		{"partially paid", 1000, 400, models.PaymentStatusPartial},
		{"exactly covered", 1000, 1000, models.PaymentStatusPaid},
		{"covered after a correction", 1000, 1000.01, models.PaymentStatusPaid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fee := &models.Fee{Amount: tc.amount, PaidAmount: tc.paid}
			assert.Equal(t, tc.want, fee.DeriveStatus())
		})
	}
}
