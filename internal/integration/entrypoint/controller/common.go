// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/pgdesk/backend/internal/domain/error"
	"github.com/pgdesk/backend/internal/integration/entrypoint/dto"
	"github.com/pgdesk/backend/internal/integration/entrypoint/middleware"
)

// requireUserID extracts the authenticated user ID or writes a 401 response.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// parseUUIDParam parses a UUID path parameter or writes a 400 response.
func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name,
		})
		return uuid.Nil, false
	}
	return id, true
}

// respondPropertyError writes a response for property scope errors. It
// reports whether the error was handled, so feature-specific handlers can
// fall through to their own mapping.
func respondPropertyError(ctx *gin.Context, err error) bool {
	var propErr *domainerror.PropertyError
	if !errors.As(err, &propErr) {
		return false
	}
	ctx.JSON(getStatusCodeForPropertyError(propErr.Code), dto.ErrorResponse{
		Error: propErr.Message,
		Code:  string(propErr.Code),
	})
	return true
}

// getStatusCodeForPropertyError maps property error codes to HTTP status codes.
func getStatusCodeForPropertyError(code domainerror.PropertyErrorCode) int {
	switch code {
	case domainerror.ErrCodePropertyNameRequired,
		domainerror.ErrCodeMissingPropertyFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeNotPropertyOwner,
		domainerror.ErrCodeNotPropertyMember:
		return http.StatusForbidden
	case domainerror.ErrCodePropertyNotFound,
		domainerror.ErrCodeNoPropertySelected,
		domainerror.ErrCodeManagerNotFound,
		domainerror.ErrCodeManagerUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeManagerAlreadyAssigned:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondInternalError writes the generic server error response.
func respondInternalError(ctx *gin.Context) {
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
