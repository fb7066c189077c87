// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pgdesk/backend/internal/application/usecase/room"
	"github.com/pgdesk/backend/internal/domain/entity"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
	"github.com/pgdesk/backend/internal/integration/entrypoint/dto"
)

// RoomController handles room endpoints.
type RoomController struct {
	createUseCase *room.CreateRoomUseCase
	listUseCase   *room.ListRoomsUseCase
	updateUseCase *room.UpdateRoomUseCase
	deleteUseCase *room.DeleteRoomUseCase
}

// NewRoomController creates a new room controller instance.
func NewRoomController(
	createUseCase *room.CreateRoomUseCase,
	listUseCase *room.ListRoomsUseCase,
	updateUseCase *room.UpdateRoomUseCase,
	deleteUseCase *room.DeleteRoomUseCase,
) *RoomController {
	return &RoomController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /properties/:property_id/rooms requests.
func (c *RoomController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}

	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRoomFields),
		})
		return
	}

	input := room.CreateRoomInput{
		UserID:       userID,
		PropertyID:   propertyID,
		RoomNumber:   req.RoomNumber,
		RoomType:     entity.RoomType(req.RoomType),
		MonthlyRent:  decimal.NewFromFloat(req.MonthlyRent),
		MaxOccupancy: req.MaxOccupancy,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRoomError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRoomResponse(output.Room))
}

// List handles GET /properties/:property_id/rooms requests.
func (c *RoomController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}

	input := room.ListRoomsInput{
		UserID:     userID,
		PropertyID: propertyID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRoomError(ctx, err)
		return
	}

	rooms := make([]dto.RoomResponse, len(output.Rooms))
	for i, r := range output.Rooms {
		rooms[i] = dto.ToRoomResponse(r)
	}
	ctx.JSON(http.StatusOK, dto.RoomListResponse{Rooms: rooms})
}

// Update handles PATCH /properties/:property_id/rooms/:room_id requests.
func (c *RoomController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}
	roomID, ok := parseUUIDParam(ctx, "room_id")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRoomFields),
		})
		return
	}

	input := room.UpdateRoomInput{
		UserID:       userID,
		PropertyID:   propertyID,
		RoomID:       roomID,
		RoomNumber:   req.RoomNumber,
		RoomType:     entity.RoomType(req.RoomType),
		MonthlyRent:  decimal.NewFromFloat(req.MonthlyRent),
		MaxOccupancy: req.MaxOccupancy,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRoomError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRoomResponse(output.Room))
}

// Delete handles DELETE /properties/:property_id/rooms/:room_id requests.
func (c *RoomController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}
	roomID, ok := parseUUIDParam(ctx, "room_id")
	if !ok {
		return
	}

	input := room.DeleteRoomInput{
		UserID:     userID,
		PropertyID: propertyID,
		RoomID:     roomID,
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRoomError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// handleRoomError handles room errors and returns appropriate HTTP responses.
func (c *RoomController) handleRoomError(ctx *gin.Context, err error) {
	var roomErr *domainerror.RoomError
	if errors.As(err, &roomErr) {
		ctx.JSON(c.getStatusCodeForRoomError(roomErr.Code), dto.ErrorResponse{
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

// getStatusCodeForRoomError maps room error codes to HTTP status codes.
func (c *RoomController) getStatusCodeForRoomError(code domainerror.RoomErrorCode) int {
	switch code {
	case domainerror.ErrCodeRoomNumberRequired,
		domainerror.ErrCodeInvalidRoomType,
		domainerror.ErrCodeInvalidMaxOccupancy,
		domainerror.ErrCodeMissingRoomFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeRoomNotFound,
		domainerror.ErrCodeRoomNotInProperty:
		return http.StatusNotFound
	case domainerror.ErrCodeRoomAtCapacity:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
