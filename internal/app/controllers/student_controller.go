package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushq/studentms/internal/app/models/dto"
	"github.com/campushq/studentms/internal/app/services"
	"github.com/campushq/studentms/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Creates a student with a unique student number and email
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 409 {object} dto.ErrorResponse "Student number or email already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	student, err := c.studentService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// GetStudentByID retrieves a student by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// GetStudentByNumber retrieves a student by the unique student number
// @Summary Get student by student number
// @Tags students
// @Produce json
// @Param studentNumber path string true "Student number"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/number/{studentNumber} [get]
func (c *StudentController) GetStudentByNumber(ctx *gin.Context) {
	student, err := c.studentService.GetByStudentNumber(ctx, ctx.Param("studentNumber"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// GetStudentByEmail retrieves a student by email
// @Summary Get student by email
// @Tags students
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/email/{email} [get]
func (c *StudentController) GetStudentByEmail(ctx *gin.Context) {
	student, err := c.studentService.GetByEmail(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// GetAllStudents retrieves students, optionally filtered by status,
// department, and minimum GPA
// @Summary List students
// @Description Lists all students; status, departmentId, and minGpa query parameters narrow the result conjunctively
// @Tags students
// @Produce json
// @Param status query string false "Filter by status"
// @Param departmentId query int false "Filter by department ID"
// @Param minGpa query number false "Filter by minimum GPA"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	var filter dto.StudentFilter

	if status := ctx.Query("status"); status != "" {
		filter.Status = &status
	}
	if departmentIDStr := ctx.Query("departmentId"); departmentIDStr != "" {
		departmentID, err := strconv.ParseInt(departmentIDStr, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid departmentId parameter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.DepartmentID = &departmentID
	}
	if minGpaStr := ctx.Query("minGpa"); minGpaStr != "" {
		minGpa, err := strconv.ParseFloat(minGpaStr, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid minGpa parameter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.MinGPA = &minGpa
	}

	var students interface{}
	var err error
	if filter.Status == nil && filter.DepartmentID == nil && filter.MinGPA == nil {
		students, err = c.studentService.GetAll(ctx)
	} else {
		students, err = c.studentService.Filter(ctx, filter)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// SearchStudents finds students matching a keyword. An empty keyword
// returns every student.
// @Summary Search students
// @Description Searches first name, last name, email, and student number for the keyword
// @Tags students
// @Produce json
// @Param keyword query string false "Search keyword (q works as an alias)"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Router /students/search [get]
func (c *StudentController) SearchStudents(ctx *gin.Context) {
	keyword := ctx.Query("keyword")
	if keyword == "" {
		keyword = ctx.Query("q")
	}

	students, err := c.studentService.Search(ctx, keyword)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// GetStudentsByDepartment lists the students of a department
// @Summary List students by department
// @Tags students
// @Produce json
// @Param departmentId path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /students/department/{departmentId} [get]
func (c *StudentController) GetStudentsByDepartment(ctx *gin.Context) {
	departmentID, ok := parseIDParam(ctx, "departmentId")
	if !ok {
		return
	}

	students, err := c.studentService.GetByDepartment(ctx, departmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// GetStudentsByStatus lists students with a given status
// @Summary List students by status
// @Tags students
// @Produce json
// @Param status path string true "Student status"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Router /students/status/{status} [get]
func (c *StudentController) GetStudentsByStatus(ctx *gin.Context) {
	students, err := c.studentService.GetByStatus(ctx, ctx.Param("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// UpdateStudent updates an existing student
// @Summary Update student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Student information"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or department not found"
// @Failure 409 {object} dto.ErrorResponse "Student number or email already exists"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	student, err := c.studentService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// UpdateStudentStatus updates only the status of a student
// @Summary Update student status
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse "Status updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/status [patch]
func (c *StudentController) UpdateStudentStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	if err := c.studentService.UpdateStatus(ctx, id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"id": id, "status": req.Status}))
}

// ActivateStudent sets a student's status to Active
// @Summary Activate student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student activated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/activate [post]
func (c *StudentController) ActivateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.Activate(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"id": id, "status": "Active"}))
}

// DeactivateStudent sets a student's status to Inactive
// @Summary Deactivate student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deactivated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/deactivate [post]
func (c *StudentController) DeactivateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.Deactivate(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"id": id, "status": "Inactive"}))
}

// DeleteStudent deletes a student and the records that depend on it
// @Summary Delete student
// @Description Deletes a student together with its addresses, enrollments, and fees
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 204 "Student deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
