// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pgdesk/backend/internal/application/usecase/guest"
	"github.com/pgdesk/backend/internal/domain/entity"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
	"github.com/pgdesk/backend/internal/integration/entrypoint/dto"
)

// GuestController handles guest endpoints.
type GuestController struct {
	checkInUseCase *guest.CheckInGuestUseCase
	listUseCase    *guest.ListGuestsUseCase
	updateUseCase  *guest.UpdateGuestUseCase
	moveOutUseCase *guest.MoveOutGuestUseCase
	deleteUseCase  *guest.DeleteGuestUseCase
}

// NewGuestController creates a new guest controller instance.
func NewGuestController(
	checkInUseCase *guest.CheckInGuestUseCase,
	listUseCase *guest.ListGuestsUseCase,
	updateUseCase *guest.UpdateGuestUseCase,
	moveOutUseCase *guest.MoveOutGuestUseCase,
	deleteUseCase *guest.DeleteGuestUseCase,
) *GuestController {
	return &GuestController{
		checkInUseCase: checkInUseCase,
		listUseCase:    listUseCase,
		updateUseCase:  updateUseCase,
		moveOutUseCase: moveOutUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// CheckIn handles POST /properties/:property_id/guests requests.
func (c *GuestController) CheckIn(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}

	var req dto.CheckInGuestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingGuestFields),
		})
		return
	}

	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid joining_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingGuestFields),
		})
		return
	}

	roomID, ok := parseOptionalRoomID(ctx, req.RoomID)
	if !ok {
		return
	}

	input := guest.CheckInGuestInput{
		UserID:      userID,
		PropertyID:  propertyID,
		RoomID:      roomID,
		FullName:    req.FullName,
		Phone:       req.Phone,
		BedNumber:   req.BedNumber,
		JoiningDate: joiningDate,
		MonthlyRent: decimal.NewFromFloat(req.MonthlyRent),
	}

	output, err := c.checkInUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGuestError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGuestResponse(output.Guest))
}

// List handles GET /properties/:property_id/guests requests.
// An optional "status" query parameter narrows the list.
func (c *GuestController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}

	input := guest.ListGuestsInput{
		UserID:     userID,
		PropertyID: propertyID,
	}
	if status := ctx.Query("status"); status != "" {
		guestStatus := entity.GuestStatus(status)
		input.Status = &guestStatus
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGuestError(ctx, err)
		return
	}

	guests := make([]dto.GuestResponse, len(output.Guests))
	for i, gw := range output.Guests {
		guests[i] = dto.ToGuestWithRoomResponse(gw)
	}
	ctx.JSON(http.StatusOK, dto.GuestListResponse{Guests: guests})
}

// Update handles PATCH /properties/:property_id/guests/:guest_id requests.
func (c *GuestController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}
	guestID, ok := parseUUIDParam(ctx, "guest_id")
	if !ok {
		return
	}

	var req dto.UpdateGuestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingGuestFields),
		})
		return
	}

	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid joining_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingGuestFields),
		})
		return
	}

	roomID, ok := parseOptionalRoomID(ctx, req.RoomID)
	if !ok {
		return
	}

	input := guest.UpdateGuestInput{
		UserID:      userID,
		PropertyID:  propertyID,
		GuestID:     guestID,
		RoomID:      roomID,
		FullName:    req.FullName,
		Phone:       req.Phone,
		BedNumber:   req.BedNumber,
		JoiningDate: joiningDate,
		MonthlyRent: decimal.NewFromFloat(req.MonthlyRent),
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGuestError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGuestResponse(output.Guest))
}

// MoveOut handles POST /properties/:property_id/guests/:guest_id/move-out requests.
func (c *GuestController) MoveOut(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}
	guestID, ok := parseUUIDParam(ctx, "guest_id")
	if !ok {
		return
	}

	input := guest.MoveOutGuestInput{
		UserID:     userID,
		PropertyID: propertyID,
		GuestID:    guestID,
	}

	output, err := c.moveOutUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGuestError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGuestResponse(output.Guest))
}

// Delete handles DELETE /properties/:property_id/guests/:guest_id requests.
func (c *GuestController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}
	guestID, ok := parseUUIDParam(ctx, "guest_id")
	if !ok {
		return
	}

	input := guest.DeleteGuestInput{
		UserID:     userID,
		PropertyID: propertyID,
		GuestID:    guestID,
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGuestError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// parseOptionalRoomID parses an optional room UUID from a request body.
func parseOptionalRoomID(ctx *gin.Context, raw *string) (*uuid.UUID, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	roomID, err := uuid.Parse(*raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid room_id",
		})
		return nil, false
	}
	return &roomID, true
}

// handleGuestError handles guest errors and returns appropriate HTTP responses.
func (c *GuestController) handleGuestError(ctx *gin.Context, err error) {
	var guestErr *domainerror.GuestError
	if errors.As(err, &guestErr) {
		ctx.JSON(c.getStatusCodeForGuestError(guestErr.Code), dto.ErrorResponse{
			Error: guestErr.Message,
			Code:  string(guestErr.Code),
		})
		return
	}

	// Check-in and room moves surface room capacity errors.
	var roomErr *domainerror.RoomError
	if errors.As(err, &roomErr) {
		status := http.StatusInternalServerError
		switch roomErr.Code {
		case domainerror.ErrCodeRoomAtCapacity:
			status = http.StatusConflict
		case domainerror.ErrCodeRoomNotFound, domainerror.ErrCodeRoomNotInProperty:
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: roomErr.Message,
			Code:  string(roomErr.Code),
		})
		return
	}

	if respondPropertyError(ctx, err) {
		return
	}
	respondInternalError(ctx)
}

// getStatusCodeForGuestError maps guest error codes to HTTP status codes.
func (c *GuestController) getStatusCodeForGuestError(code domainerror.GuestErrorCode) int {
	switch code {
	case domainerror.ErrCodeGuestNameRequired,
		domainerror.ErrCodeGuestPhoneRequired,
		domainerror.ErrCodeInvalidGuestStatus,
		domainerror.ErrCodeMissingGuestFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeGuestNotFound,
		domainerror.ErrCodeGuestNotLinked:
		return http.StatusNotFound
	case domainerror.ErrCodeGuestNotActive:
		return http.StatusConflict
	case domainerror.ErrCodeOccupancyUpdateFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
