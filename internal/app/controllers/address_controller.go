package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/studentms/internal/app/models/dto"
	"github.com/campushq/studentms/internal/app/services"
	"github.com/campushq/studentms/internal/middleware"
)

// AddressController handles address-related operations
type AddressController struct {
	addressService services.AddressService
}

// NewAddressController creates a new AddressController
func NewAddressController(addressService services.AddressService) *AddressController {
	return &AddressController{
		addressService: addressService,
	}
}

// CreateAddress handles address creation
// @Summary Create a new address
// @Description Creates an address for a student; marking it primary demotes the student's other addresses
// @Tags addresses
// @Accept json
// @Produce json
// @Param request body dto.CreateAddressRequest true "Address information"
// @Success 201 {object} dto.APIResponse{data=models.Address} "Address created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /addresses [post]
func (c *AddressController) CreateAddress(ctx *gin.Context) {
	var req dto.CreateAddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	address, err := c.addressService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(address))
}

// GetAddressByID retrieves an address by ID
// @Summary Get address by ID
// @Tags addresses
// @Produce json
// @Param id path int true "Address ID"
// @Success 200 {object} dto.APIResponse{data=models.Address} "Address retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Address not found"
// @Router /addresses/{id} [get]
func (c *AddressController) GetAddressByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	address, err := c.addressService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(address))
}

// GetAllAddresses retrieves addresses, optionally filtered by city or state
// @Summary List addresses
// @Tags addresses
// @Produce json
// @Param city query string false "Filter by city"
// @Param state query string false "Filter by state"
// @Success 200 {object} dto.APIResponse{data=[]models.Address} "Addresses retrieved successfully"
// @Router /addresses [get]
func (c *AddressController) GetAllAddresses(ctx *gin.Context) {
	var addresses interface{}
	var err error

	switch {
	case ctx.Query("city") != "":
		addresses, err = c.addressService.GetByCity(ctx, ctx.Query("city"))
	case ctx.Query("state") != "":
		addresses, err = c.addressService.GetByState(ctx, ctx.Query("state"))
	default:
		addresses, err = c.addressService.GetAll(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(addresses))
}

// GetAddressesByStudent lists a student's addresses, optionally narrowed by type
// @Summary List student addresses
// @Tags addresses
// @Produce json
// @Param studentId path int true "Student ID"
// @Param type query string false "Filter by address type (Permanent or Current)"
// @Success 200 {object} dto.APIResponse{data=[]models.Address} "Addresses retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /addresses/student/{studentId} [get]
func (c *AddressController) GetAddressesByStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	var addresses interface{}
	var err error
	if addressType := ctx.Query("type"); addressType != "" {
		addresses, err = c.addressService.GetByStudentAndType(ctx, studentID, addressType)
	} else {
		addresses, err = c.addressService.GetByStudent(ctx, studentID)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(addresses))
}

// GetPrimaryAddress retrieves the primary address of a student
// @Summary Get a student's primary address
// @Tags addresses
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Address} "Primary address retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student or primary address not found"
// @Router /addresses/student/{studentId}/primary [get]
func (c *AddressController) GetPrimaryAddress(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	address, err := c.addressService.GetPrimaryByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(address))
}

// UpdateAddress updates an existing address
// @Summary Update address
// @Tags addresses
// @Accept json
// @Produce json
// @Param id path int true "Address ID"
// @Param request body dto.UpdateAddressRequest true "Address information"
// @Success 200 {object} dto.APIResponse{data=models.Address} "Address updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Address not found"
// @Router /addresses/{id} [put]
func (c *AddressController) UpdateAddress(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	address, err := c.addressService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(address))
}

// SetPrimaryAddress promotes an address to the student's primary address
// @Summary Set primary address
// @Description Marks the address primary and demotes the student's other addresses
// @Tags addresses
// @Accept json
// @Produce json
// @Param id path int true "Address ID"
// @Param request body dto.SetPrimaryAddressRequest true "Owning student"
// @Success 200 {object} dto.APIResponse{data=models.Address} "Primary address updated"
// @Failure 403 {object} dto.ErrorResponse "Address belongs to a different student"
// @Failure 404 {object} dto.ErrorResponse "Address not found"
// @Router /addresses/{id}/primary [patch]
func (c *AddressController) SetPrimaryAddress(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SetPrimaryAddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	address, err := c.addressService.SetPrimary(ctx, id, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(address))
}

// DeleteAddress deletes an address
// @Summary Delete address
// @Tags addresses
// @Produce json
// @Param id path int true "Address ID"
// @Success 204 "Address deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Address not found"
// @Router /addresses/{id} [delete]
func (c *AddressController) DeleteAddress(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.addressService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteStudentAddresses deletes all addresses of a student
// @Summary Delete all addresses of a student
// @Tags addresses
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Addresses deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /addresses/student/{studentId} [delete]
func (c *AddressController) DeleteStudentAddresses(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	deleted, err := c.addressService.DeleteAllByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deleted": deleted}))
}
