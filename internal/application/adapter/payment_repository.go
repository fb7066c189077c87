// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// PaymentRepository defines the interface for payment persistence operations.
type PaymentRepository interface {
	// Create creates a new payment in the database.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByID retrieves a payment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByProperty retrieves all payments for a property with their guests,
	// newest payment date first.
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.PaymentWithGuest, error)

	// FindByGuest retrieves all payments for a guest, newest period first.
	FindByGuest(ctx context.Context, guestID uuid.UUID) ([]*entity.Payment, error)

	// FindByPropertyAndMonth retrieves payments for a property recorded
	// against the given period key (first-of-month date).
	FindByPropertyAndMonth(ctx context.Context, propertyID uuid.UUID, month time.Time) ([]*entity.Payment, error)

	// Delete removes a payment from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
