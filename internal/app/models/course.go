package models

import "time"

// Course represents a course offered by a department.
type Course struct {
	ID             int64     `json:"id" db:"id"`
	Code           string    `json:"code" db:"code"` // Unique course code
	Name           string    `json:"name" db:"name"`
	Description    *string   `json:"description,omitempty" db:"description"` // Nullable
	Credits        int       `json:"credits" db:"credits"`
	DepartmentID   int64     `json:"departmentId" db:"department_id"`
	InstructorName *string   `json:"instructorName,omitempty" db:"instructor_name"`
	MaxStudents    int       `json:"maxStudents" db:"max_students"` // Capacity; defaults to 50
	Semester       *string   `json:"semester,omitempty" db:"semester"`
	IsActive       bool      `json:"isActive" db:"is_active"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
