package dto

import "time"

// CreateFeeRequest represents fee creation data
type CreateFeeRequest struct {
	StudentID int64     `json:"studentId" binding:"required,gt=0"`
	Semester  string    `json:"semester" binding:"required"`
	FeeType   string    `json:"feeType" binding:"required,oneof=TUITION HOSTEL LIBRARY LAB EXAM OTHER"`
	Amount    float64   `json:"amount" binding:"required,gt=0"`
	DueDate   time.Time `json:"dueDate" binding:"required"`
}

// UpdateFeeRequest overwrites the full fee record. Payment status is taken
// as given, including a regression from Paid.
type UpdateFeeRequest struct {
	StudentID     int64      `json:"studentId" binding:"required,gt=0"`
	Semester      string     `json:"semester" binding:"required"`
	FeeType       string     `json:"feeType" binding:"required,oneof=TUITION HOSTEL LIBRARY LAB EXAM OTHER"`
	Amount        float64    `json:"amount" binding:"required,gt=0"`
	PaidAmount    float64    `json:"paidAmount" binding:"gte=0"`
	DueDate       time.Time  `json:"dueDate" binding:"required"`
	PaymentDate   *time.Time `json:"paymentDate"`
	PaymentStatus string     `json:"paymentStatus" binding:"required,oneof=Pending Partial Paid"`
	PaymentMethod *string    `json:"paymentMethod" binding:"omitempty,oneof=CASH CARD BANK_TRANSFER UPI CHEQUE ONLINE"`
	TransactionID *string    `json:"transactionId"`
}

// UpdatePaymentStatusRequest represents a status-only fee update
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required,oneof=Pending Partial Paid"`
}

// MakePaymentRequest represents a partial or full payment against a fee
type MakePaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
	TransactionID string  `json:"transactionId"`
}

// MakeFullPaymentRequest settles the outstanding balance of a fee
type MakeFullPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	TransactionID string `json:"transactionId"`
}

// FeeSummaryResponse aggregates a student's fee totals
type FeeSummaryResponse struct {
	StudentID          int64   `json:"studentId"`
	TotalFees          float64 `json:"totalFees"`
	TotalPaid          float64 `json:"totalPaid"`
	OutstandingBalance float64 `json:"outstandingBalance"`
	PendingFeeCount    int64   `json:"pendingFeeCount"`
}
