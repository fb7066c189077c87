// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/usecase/property"
	"github.com/pgdesk/backend/internal/integration/entrypoint/dto"
)

// PropertyController handles property and manager endpoints.
type PropertyController struct {
	createUseCase        *property.CreatePropertyUseCase
	listUseCase          *property.ListPropertiesUseCase
	updateUseCase        *property.UpdatePropertyUseCase
	deleteUseCase        *property.DeletePropertyUseCase
	selectUseCase        *property.SelectPropertyUseCase
	getSelectedUseCase   *property.GetSelectedPropertyUseCase
	assignManagerUseCase *property.AssignManagerUseCase
	removeManagerUseCase *property.RemoveManagerUseCase
	listManagersUseCase  *property.ListManagersUseCase
}

// NewPropertyController creates a new property controller instance.
func NewPropertyController(
	createUseCase *property.CreatePropertyUseCase,
	listUseCase *property.ListPropertiesUseCase,
	updateUseCase *property.UpdatePropertyUseCase,
	deleteUseCase *property.DeletePropertyUseCase,
	selectUseCase *property.SelectPropertyUseCase,
	getSelectedUseCase *property.GetSelectedPropertyUseCase,
	assignManagerUseCase *property.AssignManagerUseCase,
	removeManagerUseCase *property.RemoveManagerUseCase,
	listManagersUseCase *property.ListManagersUseCase,
) *PropertyController {
	return &PropertyController{
		createUseCase:        createUseCase,
		listUseCase:          listUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		selectUseCase:        selectUseCase,
		getSelectedUseCase:   getSelectedUseCase,
		assignManagerUseCase: assignManagerUseCase,
		removeManagerUseCase: removeManagerUseCase,
		listManagersUseCase:  listManagersUseCase,
	}
}

// Create handles POST /properties requests.
func (c *PropertyController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := property.CreatePropertyInput{
		OwnerID: userID,
		Name:    req.Name,
		Address: req.Address,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPropertyResponse(output.Property))
}

// List handles GET /properties requests.
func (c *PropertyController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), property.ListPropertiesInput{UserID: userID})
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	properties := make([]dto.PropertyResponse, len(output.Properties))
	for i, prop := range output.Properties {
		properties[i] = dto.ToPropertyResponse(prop)
	}
	ctx.JSON(http.StatusOK, dto.PropertyListResponse{Properties: properties})
}

// Update handles PATCH /properties/:property_id requests.
func (c *PropertyController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}

	var req dto.UpdatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := property.UpdatePropertyInput{
		UserID:     userID,
		PropertyID: propertyID,
		Name:       req.Name,
		Address:    req.Address,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPropertyResponse(output.Property))
}

// Delete handles DELETE /properties/:property_id requests.
func (c *PropertyController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}

	input := property.DeletePropertyInput{
		UserID:     userID,
		PropertyID: propertyID,
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// Select handles POST /properties/:property_id/select requests.
func (c *PropertyController) Select(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}

	input := property.SelectPropertyInput{
		UserID:     userID,
		PropertyID: propertyID,
	}

	output, err := c.selectUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPropertyResponse(output.Property))
}

// GetSelected handles GET /properties/selected requests.
func (c *PropertyController) GetSelected(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getSelectedUseCase.Execute(ctx.Request.Context(), property.GetSelectedPropertyInput{UserID: userID})
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	response := dto.SelectedPropertyResponse{}
	if output.Property != nil {
		prop := dto.ToPropertyResponse(output.Property)
		response.Property = &prop
	}
	ctx.JSON(http.StatusOK, response)
}

// AssignManager handles POST /properties/:property_id/managers requests.
func (c *PropertyController) AssignManager(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}

	var req dto.AssignManagerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := property.AssignManagerInput{
		UserID:     userID,
		PropertyID: propertyID,
		Email:      req.Email,
	}

	output, err := c.assignManagerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToManagerResponse(output.Manager))
}

// RemoveManager handles DELETE /properties/:property_id/managers/:manager_id requests.
func (c *PropertyController) RemoveManager(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}
	managerID, err := uuid.Parse(ctx.Param("manager_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid manager_id",
		})
		return
	}

	input := property.RemoveManagerInput{
		UserID:     userID,
		PropertyID: propertyID,
		ManagerID:  managerID,
	}

	output, errExec := c.removeManagerUseCase.Execute(ctx.Request.Context(), input)
	if errExec != nil {
		c.handlePropertyError(ctx, errExec)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// ListManagers handles GET /properties/:property_id/managers requests.
func (c *PropertyController) ListManagers(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}

	input := property.ListManagersInput{
		UserID:     userID,
		PropertyID: propertyID,
	}

	output, err := c.listManagersUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	managers := make([]dto.ManagerResponse, len(output.Managers))
	for i, manager := range output.Managers {
		managers[i] = dto.ToManagerResponse(manager)
	}
	ctx.JSON(http.StatusOK, dto.ManagerListResponse{Managers: managers})
}

// handlePropertyError handles property errors and returns appropriate HTTP responses.
func (c *PropertyController) handlePropertyError(ctx *gin.Context, err error) {
	if respondPropertyError(ctx, err) {
		return
	}
	respondInternalError(ctx)
}
