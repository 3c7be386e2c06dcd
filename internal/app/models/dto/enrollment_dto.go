package dto

import "time"

// CreateEnrollmentRequest represents enrollment creation data
type CreateEnrollmentRequest struct {
	StudentID      int64      `json:"studentId" binding:"required,gt=0"`
	CourseID       int64      `json:"courseId" binding:"required,gt=0"`
	EnrollmentDate *time.Time `json:"enrollmentDate"`
	Status         string     `json:"status" binding:"omitempty,oneof=Enrolled Completed Withdrawn Dropped"`
}

// UpdateEnrollmentRequest carries the mutable enrollment fields. Nil fields
// are left unchanged, matching partial-update semantics.
type UpdateEnrollmentRequest struct {
	Grade                *string  `json:"grade"`
	GradePoints          *float64 `json:"gradePoints"`
	AttendancePercentage *float64 `json:"attendancePercentage"`
	Status               *string  `json:"status" binding:"omitempty,oneof=Enrolled Completed Withdrawn Dropped"`
}

// UpdateGradeRequest represents a grade assignment
type UpdateGradeRequest struct {
	Grade       string   `json:"grade" binding:"required"`
	GradePoints *float64 `json:"gradePoints"`
}

// UpdateAttendanceRequest represents an attendance overwrite
type UpdateAttendanceRequest struct {
	AttendancePercentage float64 `json:"attendancePercentage"`
}

// CanEnrollResponse reports whether a student may enroll in a course
type CanEnrollResponse struct {
	StudentID int64 `json:"studentId"`
	CourseID  int64 `json:"courseId"`
	CanEnroll bool  `json:"canEnroll"`
}

// StudentGPAResponse reports the computed GPA for a student
type StudentGPAResponse struct {
	StudentID int64   `json:"studentId"`
	GPA       float64 `json:"gpa"`
}
