package dto

import "time"

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	StudentNumber  string     `json:"studentNumber" binding:"required"`
	FirstName      string     `json:"firstName" binding:"required"`
	LastName       string     `json:"lastName" binding:"required"`
	Email          string     `json:"email" binding:"required,email"`
	Phone          *string    `json:"phone"`
	DateOfBirth    *time.Time `json:"dateOfBirth"`
	Gender         *string    `json:"gender"`
	DepartmentID   int64      `json:"departmentId" binding:"required,gt=0"`
	EnrollmentDate *time.Time `json:"enrollmentDate"`
	Status         string     `json:"status" binding:"omitempty,oneof=Active Inactive Graduated Suspended"`
	GPA            float64    `json:"gpa"`
}

// UpdateStudentRequest represents student update data
type UpdateStudentRequest struct {
	StudentNumber  string     `json:"studentNumber" binding:"required"`
	FirstName      string     `json:"firstName" binding:"required"`
	LastName       string     `json:"lastName" binding:"required"`
	Email          string     `json:"email" binding:"required,email"`
	Phone          *string    `json:"phone"`
	DateOfBirth    *time.Time `json:"dateOfBirth"`
	Gender         *string    `json:"gender"`
	DepartmentID   int64      `json:"departmentId" binding:"required,gt=0"`
	EnrollmentDate *time.Time `json:"enrollmentDate"`
	Status         string     `json:"status" binding:"required,oneof=Active Inactive Graduated Suspended"`
	GPA            float64    `json:"gpa"`
}

// UpdateStudentStatusRequest represents a status-only update
type UpdateStudentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active Inactive Graduated Suspended"`
}

// StudentFilter carries the optional conjunctive filters for student listing.
// Nil fields are no-ops.
type StudentFilter struct {
	Status       *string
	DepartmentID *int64
	MinGPA       *float64
}
