// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pgdesk/backend/internal/application/usecase/payment"
	"github.com/pgdesk/backend/internal/application/usecase/report"
	"github.com/pgdesk/backend/internal/domain/entity"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
	"github.com/pgdesk/backend/internal/integration/entrypoint/dto"
)

// PaymentController handles payment endpoints.
type PaymentController struct {
	recordUseCase  *payment.RecordPaymentUseCase
	listUseCase    *payment.ListPaymentsUseCase
	deleteUseCase  *payment.DeletePaymentUseCase
	summaryUseCase *payment.GetGuestSummaryUseCase
}

// NewPaymentController creates a new payment controller instance.
func NewPaymentController(
	recordUseCase *payment.RecordPaymentUseCase,
	listUseCase *payment.ListPaymentsUseCase,
	deleteUseCase *payment.DeletePaymentUseCase,
	summaryUseCase *payment.GetGuestSummaryUseCase,
) *PaymentController {
	return &PaymentController{
		recordUseCase:  recordUseCase,
		listUseCase:    listUseCase,
		deleteUseCase:  deleteUseCase,
		summaryUseCase: summaryUseCase,
	}
}

// Record handles POST /properties/:property_id/payments requests.
func (c *PaymentController) Record(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingPaymentFields),
		})
		return
	}

	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid guest_id",
		})
		return
	}

	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingPaymentFields),
		})
		return
	}

	// The month form field arrives as YYYY-MM.
	paymentMonth, err := time.Parse("2006-01", req.PaymentMonth)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment_month, expected YYYY-MM",
			Code:  string(domainerror.ErrCodeMissingPaymentFields),
		})
		return
	}

	input := payment.RecordPaymentInput{
		UserID:        userID,
		PropertyID:    propertyID,
		GuestID:       guestID,
		Amount:        decimal.NewFromFloat(req.Amount),
		PaymentDate:   paymentDate,
		PaymentMonth:  paymentMonth,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(output.Payment))
}

// List handles GET /properties/:property_id/payments requests.
// Optional query parameters filter_mode, start_date and end_date narrow the
// list by payment date.
func (c *PaymentController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}

	input := payment.ListPaymentsInput{
		UserID:     userID,
		PropertyID: propertyID,
		FilterMode: report.FilterMode(ctx.DefaultQuery("filter_mode", string(report.FilterModeAll))),
		StartDate:  ctx.Query("start_date"),
		EndDate:    ctx.Query("end_date"),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	payments := make([]dto.PaymentResponse, len(output.Payments))
	for i, pw := range output.Payments {
		payments[i] = dto.ToPaymentWithGuestResponse(pw)
	}
	ctx.JSON(http.StatusOK, dto.PaymentListResponse{Payments: payments})
}

// Delete handles DELETE /properties/:property_id/payments/:payment_id requests.
func (c *PaymentController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseUUIDParam(ctx, "property_id")
	if !ok {
		return
	}
	paymentID, ok := parseUUIDParam(ctx, "payment_id")
	if !ok {
		return
	}

	input := payment.DeletePaymentInput{
		UserID:     userID,
		PropertyID: propertyID,
		PaymentID:  paymentID,
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// GuestSummary handles GET /properties/:property_id/guests/:guest_id/payments requests.
func (c *PaymentController) GuestSummary(ctx *gin.Context) {
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

	input := payment.GetGuestSummaryInput{
		UserID:     userID,
		PropertyID: propertyID,
		GuestID:    guestID,
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	payments := make([]dto.PaymentResponse, len(output.Payments))
	for i, p := range output.Payments {
		payments[i] = dto.ToPaymentResponse(p)
	}

	ctx.JSON(http.StatusOK, dto.GuestPaymentSummaryResponse{
		Guest:    dto.ToGuestResponse(output.Guest),
		Summary:  dto.ToPaymentSummaryResponse(output.Summary),
		Payments: payments,
	})
}

// handlePaymentError handles payment errors and returns appropriate HTTP responses.
func (c *PaymentController) handlePaymentError(ctx *gin.Context, err error) {
	var paymentErr *domainerror.PaymentError
	if errors.As(err, &paymentErr) {
		ctx.JSON(c.getStatusCodeForPaymentError(paymentErr.Code), dto.ErrorResponse{
			Error: paymentErr.Message,
			Code:  string(paymentErr.Code),
		})
		return
	}

	var guestErr *domainerror.GuestError
	if errors.As(err, &guestErr) {
		status := http.StatusInternalServerError
		if guestErr.Code == domainerror.ErrCodeGuestNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: guestErr.Message,
			Code:  string(guestErr.Code),
		})
		return
	}

	if respondPropertyError(ctx, err) {
		return
	}
	respondInternalError(ctx)
}

// getStatusCodeForPaymentError maps payment error codes to HTTP status codes.
func (c *PaymentController) getStatusCodeForPaymentError(code domainerror.PaymentErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPaymentAmount,
		domainerror.ErrCodeInvalidPaymentMethod,
		domainerror.ErrCodeMissingPaymentFields:
		return http.StatusBadRequest
	case domainerror.ErrCodePaymentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePaymentGuestMismatch:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
