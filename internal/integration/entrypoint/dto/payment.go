// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pgdesk/backend/internal/application/usecase/report"
	"github.com/pgdesk/backend/internal/domain/entity"
)

// RecordPaymentRequest represents the request body for recording a payment.
type RecordPaymentRequest struct {
	GuestID       string  `json:"guest_id" binding:"required,uuid"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentDate   string  `json:"payment_date" binding:"required"`
	PaymentMonth  string  `json:"payment_month" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	Notes         string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// PaymentResponse represents a single payment in API responses.
type PaymentResponse struct {
	ID            string    `json:"id"`
	GuestID       string    `json:"guest_id"`
	GuestName     string    `json:"guest_name,omitempty"`
	RoomID        *string   `json:"room_id,omitempty"`
	PropertyID    string    `json:"property_id"`
	Amount        string    `json:"amount"`
	PaymentDate   string    `json:"payment_date"`
	PaymentMonth  string    `json:"payment_month"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// PaymentListResponse represents the response for listing payments.
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// PaymentSummaryResponse represents a guest's derived payment position.
type PaymentSummaryResponse struct {
	MonthsSinceJoining int     `json:"months_since_joining"`
	ExpectedTotal      string  `json:"expected_total"`
	TotalPaid          string  `json:"total_paid"`
	PendingAmount      string  `json:"pending_amount"`
	LastPaymentDate    *string `json:"last_payment_date,omitempty"`
	CurrentMonthPaid   bool    `json:"current_month_paid"`
}

// GuestPaymentSummaryResponse represents the response for a guest's
// payment summary view.
type GuestPaymentSummaryResponse struct {
	Guest    GuestResponse          `json:"guest"`
	Summary  PaymentSummaryResponse `json:"summary"`
	Payments []PaymentResponse      `json:"payments"`
}

// ToPaymentResponse converts a domain Payment entity to a PaymentResponse DTO.
func ToPaymentResponse(payment *entity.Payment) PaymentResponse {
	response := PaymentResponse{
		ID:            payment.ID.String(),
		GuestID:       payment.GuestID.String(),
		PropertyID:    payment.PropertyID.String(),
		Amount:        payment.Amount.String(),
		PaymentDate:   payment.PaymentDate.Format("2006-01-02"),
		PaymentMonth:  payment.PaymentMonth.Format("2006-01"),
		PaymentMethod: string(payment.PaymentMethod),
		Notes:         payment.Notes,
		CreatedAt:     payment.CreatedAt,
	}

	if payment.RoomID != nil {
		roomIDStr := payment.RoomID.String()
		response.RoomID = &roomIDStr
	}

	return response
}

// ToPaymentWithGuestResponse converts a PaymentWithGuest to a
// PaymentResponse DTO with the guest name resolved.
func ToPaymentWithGuestResponse(pw *entity.PaymentWithGuest) PaymentResponse {
	response := ToPaymentResponse(pw.Payment)
	if pw.Guest != nil {
		response.GuestName = pw.Guest.FullName
	}
	return response
}

// ToPaymentSummaryResponse converts a GuestPaymentSummary to a
// PaymentSummaryResponse DTO.
func ToPaymentSummaryResponse(summary report.GuestPaymentSummary) PaymentSummaryResponse {
	response := PaymentSummaryResponse{
		MonthsSinceJoining: summary.MonthsSinceJoining,
		ExpectedTotal:      summary.ExpectedTotal.String(),
		TotalPaid:          summary.TotalPaid.String(),
		PendingAmount:      summary.PendingAmount.String(),
		CurrentMonthPaid:   summary.CurrentMonthPaid,
	}
	if summary.LastPaymentDate != nil {
		formatted := summary.LastPaymentDate.Format("2006-01-02")
		response.LastPaymentDate = &formatted
	}
	return response
}
