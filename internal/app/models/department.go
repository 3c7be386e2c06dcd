package models

import "time"

// Department represents an academic department
type Department struct {
	ID              int64     `json:"id" db:"id"`
	Code            string    `json:"code" db:"code"`
	Name            string    `json:"name" db:"name"`
	HeadOfDepartment *string  `json:"headOfDepartment,omitempty" db:"head_of_department"`
	Email           *string   `json:"email,omitempty" db:"email"`
	Phone           *string   `json:"phone,omitempty" db:"phone"`
	Building        *string   `json:"building,omitempty" db:"building"`
	EstablishedYear *int      `json:"establishedYear,omitempty" db:"established_year"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
