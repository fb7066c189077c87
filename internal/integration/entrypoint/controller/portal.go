// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pgdesk/backend/internal/application/usecase/portal"
	"github.com/pgdesk/backend/internal/domain/entity"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
	"github.com/pgdesk/backend/internal/integration/entrypoint/dto"
)

// PortalController handles the guest-facing portal endpoints. The guest is
// always resolved from the authenticated user; no IDs are accepted from the
// client.
type PortalController struct {
	profileUseCase       *portal.GetProfileUseCase
	myPaymentsUseCase    *portal.ListMyPaymentsUseCase
	payRentUseCase       *portal.PayRentUseCase
	submitUseCase        *portal.SubmitMaintenanceUseCase
	myMaintenanceUseCase *portal.ListMyMaintenanceUseCase
	houseRulesUseCase    *portal.ListHouseRulesUseCase
	announcementsUseCase *portal.ListAnnouncementsUseCase
}

// NewPortalController creates a new portal controller instance.
func NewPortalController(
	profileUseCase *portal.GetProfileUseCase,
	myPaymentsUseCase *portal.ListMyPaymentsUseCase,
	payRentUseCase *portal.PayRentUseCase,
	submitUseCase *portal.SubmitMaintenanceUseCase,
	myMaintenanceUseCase *portal.ListMyMaintenanceUseCase,
	houseRulesUseCase *portal.ListHouseRulesUseCase,
	announcementsUseCase *portal.ListAnnouncementsUseCase,
) *PortalController {
	return &PortalController{
		profileUseCase:       profileUseCase,
		myPaymentsUseCase:    myPaymentsUseCase,
		payRentUseCase:       payRentUseCase,
		submitUseCase:        submitUseCase,
		myMaintenanceUseCase: myMaintenanceUseCase,
		houseRulesUseCase:    houseRulesUseCase,
		announcementsUseCase: announcementsUseCase,
	}
}

// GetProfile handles GET /portal/profile requests.
func (c *PortalController) GetProfile(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.profileUseCase.Execute(ctx.Request.Context(), portal.GetProfileInput{UserID: userID})
	if err != nil {
		c.handlePortalError(ctx, err)
		return
	}

	response := dto.ProfileResponse{
		Guest: dto.ToGuestResponse(output.Guest),
	}
	if output.Room != nil {
		room := dto.ToRoomResponse(output.Room)
		response.Room = &room
	}
	if output.Property != nil {
		property := dto.ToPropertyResponse(output.Property)
		response.Property = &property
	}
	ctx.JSON(http.StatusOK, response)
}

// ListMyPayments handles GET /portal/payments requests.
func (c *PortalController) ListMyPayments(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.myPaymentsUseCase.Execute(ctx.Request.Context(), portal.ListMyPaymentsInput{UserID: userID})
	if err != nil {
		c.handlePortalError(ctx, err)
		return
	}

	payments := make([]dto.PaymentResponse, len(output.Payments))
	for i, p := range output.Payments {
		payments[i] = dto.ToPaymentResponse(p)
	}
	ctx.JSON(http.StatusOK, dto.MyPaymentsResponse{
		Payments: payments,
		Summary:  dto.ToPaymentSummaryResponse(output.Summary),
	})
}

// PayRent handles POST /portal/payments requests.
func (c *PortalController) PayRent(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.PayRentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingPaymentFields),
		})
		return
	}

	paymentMonth, err := time.Parse("2006-01", req.PaymentMonth)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment_month, expected YYYY-MM",
			Code:  string(domainerror.ErrCodeMissingPaymentFields),
		})
		return
	}

	input := portal.PayRentInput{
		UserID:        userID,
		Amount:        decimal.NewFromFloat(req.Amount),
		PaymentMonth:  paymentMonth,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
	}

	output, err := c.payRentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePortalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(output.Payment))
}

// SubmitMaintenance handles POST /portal/maintenance requests.
func (c *PortalController) SubmitMaintenance(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.SubmitMaintenanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingMaintenanceFields),
		})
		return
	}

	input := portal.SubmitMaintenanceInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    entity.MaintenancePriority(req.Priority),
	}

	output, err := c.submitUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePortalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMaintenanceRequestResponse(output.Request))
}

// ListMyMaintenance handles GET /portal/maintenance requests.
func (c *PortalController) ListMyMaintenance(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.myMaintenanceUseCase.Execute(ctx.Request.Context(), portal.ListMyMaintenanceInput{UserID: userID})
	if err != nil {
		c.handlePortalError(ctx, err)
		return
	}

	requests := make([]dto.MaintenanceRequestResponse, len(output.Requests))
	for i, request := range output.Requests {
		requests[i] = dto.ToMaintenanceRequestResponse(request)
	}
	ctx.JSON(http.StatusOK, dto.MaintenanceListResponse{Requests: requests})
}

// ListHouseRules handles GET /portal/house-rules requests.
func (c *PortalController) ListHouseRules(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.houseRulesUseCase.Execute(ctx.Request.Context(), portal.ListHouseRulesInput{UserID: userID})
	if err != nil {
		c.handlePortalError(ctx, err)
		return
	}

	groups := make([]dto.RuleGroupResponse, len(output.Groups))
	for i, group := range output.Groups {
		groups[i] = dto.ToRuleGroupResponse(group)
	}
	ctx.JSON(http.StatusOK, dto.HouseRulesResponse{Groups: groups})
}

// ListAnnouncements handles GET /portal/announcements requests.
func (c *PortalController) ListAnnouncements(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.announcementsUseCase.Execute(ctx.Request.Context(), portal.ListAnnouncementsInput{UserID: userID})
	if err != nil {
		c.handlePortalError(ctx, err)
		return
	}

	announcements := make([]dto.AnnouncementResponse, len(output.Announcements))
	for i, announcement := range output.Announcements {
		announcements[i] = dto.ToAnnouncementResponse(announcement)
	}
	ctx.JSON(http.StatusOK, dto.AnnouncementListResponse{Announcements: announcements})
}

// handlePortalError handles portal errors and returns appropriate HTTP responses.
func (c *PortalController) handlePortalError(ctx *gin.Context, err error) {
	var guestErr *domainerror.GuestError
	if errors.As(err, &guestErr) {
		status := http.StatusInternalServerError
		switch guestErr.Code {
		case domainerror.ErrCodeGuestNotLinked, domainerror.ErrCodeGuestNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeGuestNotActive:
			status = http.StatusConflict
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: guestErr.Message,
			Code:  string(guestErr.Code),
		})
		return
	}

	var paymentErr *domainerror.PaymentError
	if errors.As(err, &paymentErr) {
		status := http.StatusInternalServerError
		switch paymentErr.Code {
		case domainerror.ErrCodeInvalidPaymentAmount,
			domainerror.ErrCodeInvalidPaymentMethod,
			domainerror.ErrCodeMissingPaymentFields:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: paymentErr.Message,
			Code:  string(paymentErr.Code),
		})
		return
	}

	var maintenanceErr *domainerror.MaintenanceError
	if errors.As(err, &maintenanceErr) {
		status := http.StatusInternalServerError
		switch maintenanceErr.Code {
		case domainerror.ErrCodeMaintenanceTitleRequired,
			domainerror.ErrCodeInvalidMaintenancePriority,
			domainerror.ErrCodeInvalidMaintenanceStatus,
			domainerror.ErrCodeMissingMaintenanceFields:
			status = http.StatusBadRequest
		case domainerror.ErrCodeMaintenanceRequestNotFound:
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: maintenanceErr.Message,
			Code:  string(maintenanceErr.Code),
		})
		return
	}

	respondInternalError(ctx)
}
