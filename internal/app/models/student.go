package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64         `json:"id" db:"id" example:"1"`
	StudentNumber  string        `json:"studentNumber" db:"student_number" example:"S2024001"` // Unique student number
	FirstName      string        `json:"firstName" db:"first_name"`
	LastName       string        `json:"lastName" db:"last_name"`
	Email          string        `json:"email" db:"email"` // Unique across all students
	Phone          *string       `json:"phone,omitempty" db:"phone"`
	DateOfBirth    *time.Time    `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Gender         *string       `json:"gender,omitempty" db:"gender"`
	DepartmentID   int64         `json:"departmentId" db:"department_id"`
	EnrollmentDate *time.Time    `json:"enrollmentDate,omitempty" db:"enrollment_date"`
	Status         StudentStatus `json:"status" db:"status" example:"Active"`
	GPA            float64       `json:"gpa" db:"gpa"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time     `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
