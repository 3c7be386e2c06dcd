package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Code            string  `json:"code" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	HeadOfDepartment *string `json:"headOfDepartment"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Phone           *string `json:"phone"`
	Building        *string `json:"building"`
	EstablishedYear *int    `json:"establishedYear" binding:"omitempty,gt=0"`
}

// UpdateDepartmentRequest represents department update data
type UpdateDepartmentRequest struct {
	Code            string  `json:"code" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	HeadOfDepartment *string `json:"headOfDepartment"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Phone           *string `json:"phone"`
	Building        *string `json:"building"`
	EstablishedYear *int    `json:"establishedYear" binding:"omitempty,gt=0"`
}
