package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/studentms/internal/app/models/dto"
	"github.com/campushq/studentms/internal/app/services"
	"github.com/campushq/studentms/internal/middleware"
)

// EnrollmentController handles enrollment-related operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// CreateEnrollment enrolls a student in a course
// @Summary Enroll a student in a course
// @Description Creates an enrollment, refusing duplicates and full courses
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment} "Enrollment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled or course full"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	enrollment, err := c.enrollmentService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(enrollment))
}

// GetEnrollmentByID retrieves an enrollment by ID
// @Summary Get enrollment by ID
// @Tags enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Enrollment retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// GetAllEnrollments retrieves enrollments, optionally filtered by status
// @Summary List enrollments
// @Tags enrollments
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	var enrollments interface{}
	var err error
	if status := ctx.Query("status"); status != "" {
		enrollments, err = c.enrollmentService.GetByStatus(ctx, status)
	} else {
		enrollments, err = c.enrollmentService.GetAll(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}

// GetEnrollmentsByStudent lists a student's enrollments
// @Summary List enrollments by student
// @Tags enrollments
// @Produce json
// @Param studentId path int true "Student ID"
// @Param completed query bool false "Only completed enrollments"
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /enrollments/student/{studentId} [get]
func (c *EnrollmentController) GetEnrollmentsByStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	var enrollments interface{}
	var err error
	if ctx.Query("completed") == "true" {
		enrollments, err = c.enrollmentService.GetCompletedByStudent(ctx, studentID)
	} else {
		enrollments, err = c.enrollmentService.GetByStudent(ctx, studentID)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}

// GetEnrollmentsByCourse lists the enrollments in a course
// @Summary List enrollments by course
// @Tags enrollments
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /enrollments/course/{courseId} [get]
func (c *EnrollmentController) GetEnrollmentsByCourse(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetByCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}

// CanEnroll reports whether a student could enroll in a course right now
// @Summary Check enrollment eligibility
// @Tags enrollments
// @Produce json
// @Param studentId path int true "Student ID"
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CanEnrollResponse} "Eligibility computed"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Router /enrollments/can-enroll/{studentId}/{courseId} [get]
func (c *EnrollmentController) CanEnroll(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	canEnroll, err := c.enrollmentService.CanEnroll(ctx, studentID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CanEnrollResponse{
		StudentID: studentID,
		CourseID:  courseID,
		CanEnroll: canEnroll,
	}))
}

// GetStudentGPA computes the GPA over a student's completed enrollments
// @Summary Calculate student GPA
// @Description Averages the grade points of completed enrollments; 0.0 when none exist
// @Tags enrollments
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentGPAResponse} "GPA computed"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /enrollments/student/{studentId}/gpa [get]
func (c *EnrollmentController) GetStudentGPA(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	gpa, err := c.enrollmentService.CalculateStudentGPA(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.StudentGPAResponse{
		StudentID: studentID,
		GPA:       gpa,
	}))
}

// UpdateEnrollment applies a partial update to an enrollment
// @Summary Update enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param request body dto.UpdateEnrollmentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Enrollment updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [put]
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	enrollment, err := c.enrollmentService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// UpdateGrade records the final grade and completes the enrollment
// @Summary Record grade
// @Description Records the grade and grade points and marks the enrollment completed
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param request body dto.UpdateGradeRequest true "Grade information"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Grade recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id}/grade [patch]
func (c *EnrollmentController) UpdateGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	enrollment, err := c.enrollmentService.UpdateGrade(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// UpdateAttendance overwrites the attendance percentage
// @Summary Record attendance
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param request body dto.UpdateAttendanceRequest true "Attendance percentage"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Attendance recorded"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id}/attendance [patch]
func (c *EnrollmentController) UpdateAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	enrollment, err := c.enrollmentService.UpdateAttendance(ctx, id, req.AttendancePercentage)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// WithdrawEnrollment withdraws a student from a course
// @Summary Withdraw enrollment
// @Tags enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Enrollment withdrawn"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id}/withdraw [post]
func (c *EnrollmentController) WithdrawEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.Withdraw(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// DeleteEnrollment deletes an enrollment
// @Summary Delete enrollment
// @Tags enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 204 "Enrollment deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.enrollmentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteStudentEnrollments deletes all enrollments of a student
// @Summary Delete all enrollments of a student
// @Tags enrollments
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Enrollments deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /enrollments/student/{studentId} [delete]
func (c *EnrollmentController) DeleteStudentEnrollments(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	deleted, err := c.enrollmentService.DeleteAllByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deleted": deleted}))
}
