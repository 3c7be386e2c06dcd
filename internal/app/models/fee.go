package models

import "time"

// Fee represents a charge billed to a student for a semester. PaymentStatus
// is derived from PaidAmount against Amount: Pending when nothing is paid,
// Partial while 0 < paid < amount, Paid when the fee is exactly covered.
type Fee struct {
	ID            int64          `json:"id" db:"id"`
	StudentID     int64          `json:"studentId" db:"student_id"`
	Semester      string         `json:"semester" db:"semester" example:"2025-FALL"`
	FeeType       FeeType        `json:"feeType" db:"fee_type" example:"TUITION"`
	Amount        float64        `json:"amount" db:"amount"`
	PaidAmount    float64        `json:"paidAmount" db:"paid_amount"`
	DueDate       time.Time      `json:"dueDate" db:"due_date"`
	PaymentDate   *time.Time     `json:"paymentDate,omitempty" db:"payment_date"`
	PaymentStatus PaymentStatus  `json:"paymentStatus" db:"payment_status" example:"Pending"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty" db:"payment_method"`
	TransactionID *string        `json:"transactionId,omitempty" db:"transaction_id"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time      `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
}

// Outstanding returns the unpaid remainder of the fee.
func (f *Fee) Outstanding() float64 {
	return f.Amount - f.PaidAmount
}

// DeriveStatus computes the payment status implied by the current amounts.
func (f *Fee) DeriveStatus() PaymentStatus {
	switch {
	case f.PaidAmount >= f.Amount:
		return PaymentStatusPaid
	case f.PaidAmount > 0:
		return PaymentStatusPartial
	default:
		return PaymentStatusPending
	}
}
