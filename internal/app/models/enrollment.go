package models

import "time"

// Enrollment links a student to a course. A (student, course) pair is
// enrolled at most once regardless of status.
type Enrollment struct {
	ID                   int64            `json:"id" db:"id"`
	StudentID            int64            `json:"studentId" db:"student_id"`
	CourseID             int64            `json:"courseId" db:"course_id"`
	EnrollmentDate       time.Time        `json:"enrollmentDate" db:"enrollment_date"`
	Grade                *string          `json:"grade,omitempty" db:"grade"` // Free text, set with grade points
	GradePoints          *float64         `json:"gradePoints,omitempty" db:"grade_points"`
	AttendancePercentage float64          `json:"attendancePercentage" db:"attendance_percentage"`
	Status               EnrollmentStatus `json:"status" db:"status" example:"Enrolled"`
	CreatedAt            time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time        `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}
