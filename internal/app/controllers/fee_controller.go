package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/studentms/internal/app/models/dto"
	"github.com/campushq/studentms/internal/app/services"
	"github.com/campushq/studentms/internal/middleware"
)

// FeeController handles fee-related operations
type FeeController struct {
	feeService services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService services.FeeService) *FeeController {
	return &FeeController{
		feeService: feeService,
	}
}

// CreateFee handles fee creation
// @Summary Create a new fee
// @Description Creates a fee for a student; the fee starts Pending with nothing paid
// @Tags fees
// @Accept json
// @Produce json
// @Param request body dto.CreateFeeRequest true "Fee information"
// @Success 201 {object} dto.APIResponse{data=models.Fee} "Fee created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /fees [post]
func (c *FeeController) CreateFee(ctx *gin.Context) {
	var req dto.CreateFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	fee, err := c.feeService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(fee))
}

// GetFeeByID retrieves a fee by ID
// @Summary Get fee by ID
// @Tags fees
// @Produce json
// @Param id path int true "Fee ID"
// @Success 200 {object} dto.APIResponse{data=models.Fee} "Fee retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Router /fees/{id} [get]
func (c *FeeController) GetFeeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fee, err := c.feeService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fee))
}

// GetAllFees retrieves fees, optionally narrowed by query parameters
// @Summary List fees
// @Description Lists all fees; status, semester, and overdue query parameters narrow the result
// @Tags fees
// @Produce json
// @Param status query string false "Filter by payment status"
// @Param semester query string false "Filter by semester"
// @Param overdue query bool false "Only overdue fees"
// @Success 200 {object} dto.APIResponse{data=[]models.Fee} "Fees retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown payment status"
// @Router /fees [get]
func (c *FeeController) GetAllFees(ctx *gin.Context) {
	var fees interface{}
	var err error

	switch {
	case ctx.Query("overdue") == "true":
		fees, err = c.feeService.GetOverdue(ctx)
	case ctx.Query("status") != "":
		fees, err = c.feeService.GetByStatus(ctx, ctx.Query("status"))
	case ctx.Query("semester") != "":
		fees, err = c.feeService.GetBySemester(ctx, ctx.Query("semester"))
	default:
		fees, err = c.feeService.GetAll(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fees))
}

// GetFeesByStudent lists a student's fees
// @Summary List fees by student
// @Tags fees
// @Produce json
// @Param studentId path int true "Student ID"
// @Param semester query string false "Filter by semester"
// @Param pending query bool false "Only fees that are not fully paid"
// @Success 200 {object} dto.APIResponse{data=[]models.Fee} "Fees retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /fees/student/{studentId} [get]
func (c *FeeController) GetFeesByStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	var fees interface{}
	var err error
	switch {
	case ctx.Query("pending") == "true":
		fees, err = c.feeService.GetPendingByStudent(ctx, studentID)
	case ctx.Query("semester") != "":
		fees, err = c.feeService.GetByStudentAndSemester(ctx, studentID, ctx.Query("semester"))
	default:
		fees, err = c.feeService.GetByStudent(ctx, studentID)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fees))
}

// GetStudentFeeSummary aggregates a student's fee totals
// @Summary Get a student's fee summary
// @Tags fees
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.FeeSummaryResponse} "Summary computed"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /fees/student/{studentId}/summary [get]
func (c *FeeController) GetStudentFeeSummary(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	summary, err := c.feeService.GetStudentFeeSummary(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}

// UpdateFee overwrites a fee record
// @Summary Update fee
// @Tags fees
// @Accept json
// @Produce json
// @Param id path int true "Fee ID"
// @Param request body dto.UpdateFeeRequest true "Fee information"
// @Success 200 {object} dto.APIResponse{data=models.Fee} "Fee updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Fee or student not found"
// @Router /fees/{id} [put]
func (c *FeeController) UpdateFee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	fee, err := c.feeService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fee))
}

// UpdatePaymentStatus overrides the payment status of a fee
// @Summary Update payment status
// @Tags fees
// @Accept json
// @Produce json
// @Param id path int true "Fee ID"
// @Param request body dto.UpdatePaymentStatusRequest true "New payment status"
// @Success 200 {object} dto.APIResponse{data=models.Fee} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Unknown payment status"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Router /fees/{id}/status [patch]
func (c *FeeController) UpdatePaymentStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	fee, err := c.feeService.UpdatePaymentStatus(ctx, id, req.PaymentStatus)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fee))
}

// MakePayment records a payment against a fee
// @Summary Make a payment
// @Description Records a payment; the amount must be positive and within the outstanding balance
// @Tags fees
// @Accept json
// @Produce json
// @Param id path int true "Fee ID"
// @Param request body dto.MakePaymentRequest true "Payment information"
// @Success 200 {object} dto.APIResponse{data=models.Fee} "Payment recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid amount or payment method"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Failure 409 {object} dto.ErrorResponse "Fee already fully paid"
// @Router /fees/{id}/payments [post]
func (c *FeeController) MakePayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.MakePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	fee, err := c.feeService.MakePayment(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fee))
}

// MakeFullPayment settles the outstanding balance of a fee
// @Summary Pay a fee in full
// @Tags fees
// @Accept json
// @Produce json
// @Param id path int true "Fee ID"
// @Param request body dto.MakeFullPaymentRequest true "Payment information"
// @Success 200 {object} dto.APIResponse{data=models.Fee} "Payment recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid payment method"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Failure 409 {object} dto.ErrorResponse "Fee already fully paid"
// @Router /fees/{id}/payments/full [post]
func (c *FeeController) MakeFullPayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.MakeFullPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	fee, err := c.feeService.MakeFullPayment(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fee))
}

// DeleteFee deletes a fee
// @Summary Delete fee
// @Tags fees
// @Produce json
// @Param id path int true "Fee ID"
// @Success 204 "Fee deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Router /fees/{id} [delete]
func (c *FeeController) DeleteFee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.feeService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteStudentFees deletes all fees of a student
// @Summary Delete all fees of a student
// @Tags fees
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Fees deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /fees/student/{studentId} [delete]
func (c *FeeController) DeleteStudentFees(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	deleted, err := c.feeService.DeleteAllByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deleted": deleted}))
}
