package models

import "time"

// Address represents a postal address belonging to a student. At most one
// address per student carries IsPrimary = true; the address service maintains
// that invariant on every create/update.
type Address struct {
	ID            int64       `json:"id" db:"id"`
	StudentID     int64       `json:"studentId" db:"student_id"`
	Type          AddressType `json:"type" db:"address_type" example:"Permanent"`
	StreetAddress *string     `json:"streetAddress,omitempty" db:"street_address"`
	City          *string     `json:"city,omitempty" db:"city"`
	State         *string     `json:"state,omitempty" db:"state"`
	PostalCode    *string     `json:"postalCode,omitempty" db:"postal_code"`
	Country       string      `json:"country" db:"country"`
	IsPrimary     bool        `json:"isPrimary" db:"is_primary"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`
}
