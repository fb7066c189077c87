// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a rent payment was made.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodUPI          PaymentMethod = "UPI"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodCheque       PaymentMethod = "Cheque"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodNetBanking   PaymentMethod = "netbanking"
)

// Payment represents a rent payment recorded against a billing period.
// PaymentMonth is always normalized to the first day of the month it pays
// for, which is the key used for period comparisons.
type Payment struct {
	ID            uuid.UUID
	GuestID       uuid.UUID
	RoomID        *uuid.UUID
	PropertyID    uuid.UUID
	Amount        decimal.Decimal
	PaymentDate   time.Time
	PaymentMonth  time.Time
	PaymentMethod PaymentMethod
	Notes         string
	CreatedAt     time.Time
}

// NewPayment creates a new Payment entity, normalizing the period key.
func NewPayment(guestID uuid.UUID, roomID *uuid.UUID, propertyID uuid.UUID, amount decimal.Decimal, paymentDate, paymentMonth time.Time, method PaymentMethod, notes string) *Payment {
	return &Payment{
		ID:            uuid.New(),
		GuestID:       guestID,
		RoomID:        roomID,
		PropertyID:    propertyID,
		Amount:        amount,
		PaymentDate:   paymentDate,
		PaymentMonth:  FirstOfMonth(paymentMonth),
		PaymentMethod: method,
		Notes:         notes,
		CreatedAt:     time.Now().UTC(),
	}
}

// FirstOfMonth truncates a date to the first day of its month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// PaymentWithGuest pairs a payment with the guest it was recorded for.
type PaymentWithGuest struct {
	Payment *Payment
	Guest   *Guest
}
