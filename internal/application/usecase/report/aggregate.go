package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// DashboardStats represents the derived statistics for the operator dashboard.
type DashboardStats struct {
	TotalRooms    int
	OccupiedRooms int
	VacantRooms   int
	TotalGuests   int
	MonthlyIncome decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
}

// OccupancyRate returns the occupied-room percentage, rounded to the nearest
// whole percent. Zero rooms yields zero.
func (s DashboardStats) OccupancyRate() int {
	if s.TotalRooms == 0 {
		return 0
	}
	return int(float64(s.OccupiedRooms)/float64(s.TotalRooms)*100 + 0.5)
}

// ComputeDashboardStats derives dashboard statistics from raw record
// collections. The occupied/vacant partition trusts the stored room status
// rather than recomputing it from occupancy counters. Monthly income sums
// the rent of active guests only; expenses are summed as given, with no
// date filtering of their own.
func ComputeDashboardStats(rooms []*entity.Room, guests []*entity.Guest, expenses []*entity.Expense) DashboardStats {
	stats := DashboardStats{
		TotalRooms:    len(rooms),
		TotalGuests:   len(guests),
		MonthlyIncome: decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, room := range rooms {
		if room.Status == entity.RoomStatusOccupied {
			stats.OccupiedRooms++
		} else {
			stats.VacantRooms++
		}
	}

	for _, guest := range guests {
		if guest.Status == entity.GuestStatusActive {
			stats.MonthlyIncome = stats.MonthlyIncome.Add(guest.MonthlyRent)
		}
	}

	for _, expense := range expenses {
		stats.TotalExpenses = stats.TotalExpenses.Add(expense.Amount)
	}

	stats.NetIncome = stats.MonthlyIncome.Sub(stats.TotalExpenses)
	return stats
}

// GuestPaymentSummary represents the derived payment position of one guest.
type GuestPaymentSummary struct {
	MonthsSinceJoining int
	ExpectedTotal      decimal.Decimal
	TotalPaid          decimal.Decimal
	PendingAmount      decimal.Decimal
	LastPaymentDate    *time.Time
	CurrentMonthPaid   bool
}

// ComputeGuestPaymentSummary derives a guest's payment summary as of now.
//
// The month count is inclusive: the joining month counts as month one, so a
// guest who joined any day in January is expected to have paid for January.
// Overpayment is absorbed, never reported as credit: the pending amount is
// clamped at zero.
func ComputeGuestPaymentSummary(guest *entity.Guest, payments []*entity.Payment, now time.Time) GuestPaymentSummary {
	summary := GuestPaymentSummary{
		TotalPaid:     decimal.Zero,
		PendingAmount: decimal.Zero,
	}

	months := (now.Year()-guest.JoiningDate.Year())*12 + int(now.Month()) - int(guest.JoiningDate.Month()) + 1
	if months < 0 {
		months = 0
	}
	summary.MonthsSinceJoining = months
	summary.ExpectedTotal = guest.MonthlyRent.Mul(decimal.NewFromInt(int64(months)))

	currentMonthStart := entity.FirstOfMonth(now)
	for _, payment := range payments {
		summary.TotalPaid = summary.TotalPaid.Add(payment.Amount)
		if !payment.PaymentMonth.Before(currentMonthStart) {
			summary.CurrentMonthPaid = true
		}
		if summary.LastPaymentDate == nil || payment.PaymentDate.After(*summary.LastPaymentDate) {
			paymentDate := payment.PaymentDate
			summary.LastPaymentDate = &paymentDate
		}
	}

	pending := summary.ExpectedTotal.Sub(summary.TotalPaid)
	if pending.IsPositive() {
		summary.PendingAmount = pending
	}

	return summary
}
