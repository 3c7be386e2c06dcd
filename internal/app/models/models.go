package models

// StudentStatus defines the lifecycle state of a student record
type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "Active"
	StudentStatusInactive  StudentStatus = "Inactive"
	StudentStatusGraduated StudentStatus = "Graduated"
	StudentStatusSuspended StudentStatus = "Suspended"
)

// Valid reports whether the status is a known value
func (s StudentStatus) Valid() bool {
	switch s {
	case StudentStatusActive, StudentStatusInactive, StudentStatusGraduated, StudentStatusSuspended:
		return true
	}
	return false
}

// AddressType distinguishes a student's permanent and current addresses
type AddressType string

const (
	AddressTypePermanent AddressType = "Permanent"
	AddressTypeCurrent   AddressType = "Current"
)

// Valid reports whether the address type is a known value
func (t AddressType) Valid() bool {
	return t == AddressTypePermanent || t == AddressTypeCurrent
}

// EnrollmentStatus defines the lifecycle state of an enrollment
type EnrollmentStatus string

const (
	EnrollmentStatusEnrolled  EnrollmentStatus = "Enrolled"
	EnrollmentStatusCompleted EnrollmentStatus = "Completed"
	EnrollmentStatusWithdrawn EnrollmentStatus = "Withdrawn"
	EnrollmentStatusDropped   EnrollmentStatus = "Dropped"
)

// Valid reports whether the enrollment status is a known value
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentStatusEnrolled, EnrollmentStatusCompleted, EnrollmentStatusWithdrawn, EnrollmentStatusDropped:
		return true
	}
	return false
}

// PaymentStatus is derived from paidAmount vs amount on a fee
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPartial PaymentStatus = "Partial"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

// Valid reports whether the payment status is a known value
func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPending || s == PaymentStatusPartial || s == PaymentStatusPaid
}

// FeeType categorizes a fee
type FeeType string

const (
	FeeTypeTuition FeeType = "TUITION"
	FeeTypeHostel  FeeType = "HOSTEL"
	FeeTypeLibrary FeeType = "LIBRARY"
	FeeTypeLab     FeeType = "LAB"
	FeeTypeExam    FeeType = "EXAM"
	FeeTypeOther   FeeType = "OTHER"
)

// PaymentMethod enumerates the accepted payment channels
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodUPI          PaymentMethod = "UPI"
	PaymentMethodCheque       PaymentMethod = "CHEQUE"
	PaymentMethodOnline       PaymentMethod = "ONLINE"
)

// ParsePaymentMethod converts a caller-supplied string into a PaymentMethod,
// reporting whether it matched a known value.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer,
		PaymentMethodUPI, PaymentMethodCheque, PaymentMethodOnline:
		return PaymentMethod(s), true
	}
	return "", false
}
