package dto

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Code           string  `json:"code" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Description    *string `json:"description"`
	Credits        int     `json:"credits" binding:"required,gt=0"`
	DepartmentID   int64   `json:"departmentId" binding:"required,gt=0"`
	InstructorName *string `json:"instructorName"`
	MaxStudents    *int    `json:"maxStudents" binding:"omitempty,gt=0"`
	Semester       *string `json:"semester"`
	IsActive       *bool   `json:"isActive"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Code           string  `json:"code" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Description    *string `json:"description"`
	Credits        int     `json:"credits" binding:"required,gt=0"`
	DepartmentID   int64   `json:"departmentId" binding:"required,gt=0"`
	InstructorName *string `json:"instructorName"`
	MaxStudents    int     `json:"maxStudents" binding:"required,gt=0"`
	Semester       *string `json:"semester"`
	IsActive       bool    `json:"isActive"`
}
