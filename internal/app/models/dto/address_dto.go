package dto

// CreateAddressRequest represents address creation data
type CreateAddressRequest struct {
	StudentID     int64   `json:"studentId" binding:"required,gt=0"`
	Type          string  `json:"type" binding:"required,oneof=Permanent Current"`
	StreetAddress *string `json:"streetAddress"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	PostalCode    *string `json:"postalCode"`
	Country       string  `json:"country"`
	IsPrimary     bool    `json:"isPrimary"`
}

// UpdateAddressRequest represents address update data
type UpdateAddressRequest struct {
	Type          string  `json:"type" binding:"required,oneof=Permanent Current"`
	StreetAddress *string `json:"streetAddress"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	PostalCode    *string `json:"postalCode"`
	Country       string  `json:"country"`
	IsPrimary     bool    `json:"isPrimary"`
}

// SetPrimaryAddressRequest identifies the owning student when promoting an
// address to primary
type SetPrimaryAddressRequest struct {
	StudentID int64 `json:"studentId" binding:"required,gt=0"`
}
