package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pgdesk/backend/internal/domain/entity"
)

func TestComputeDashboardStats(t *testing.T) {
	rooms := []*entity.Room{
		{Status: entity.RoomStatusOccupied},
		{Status: entity.RoomStatusOccupied},
		{Status: entity.RoomStatusVacant},
		{Status: entity.RoomStatusVacant},
	}
	guests := []*entity.Guest{
		{Status: entity.GuestStatusActive, MonthlyRent: decimal.NewFromInt(5000)},
		{Status: entity.GuestStatusActive, MonthlyRent: decimal.NewFromInt(6500)},
		{Status: entity.GuestStatusMovedOut, MonthlyRent: decimal.NewFromInt(4000)},
	}
	expenses := []*entity.Expense{
		{Amount: decimal.NewFromInt(3000)},
		{Amount: decimal.NewFromInt(1200)},
	}

	stats := ComputeDashboardStats(rooms, guests, expenses)

	t.Run("room partition follows stored status", func(t *testing.T) {
		if stats.TotalRooms != 4 {
			t.Errorf("expected 4 total rooms, got %d", stats.TotalRooms)
		}
		if stats.OccupiedRooms != 2 {
			t.Errorf("expected 2 occupied rooms, got %d", stats.OccupiedRooms)
		}
		if stats.VacantRooms != 2 {
			t.Errorf("expected 2 vacant rooms, got %d", stats.VacantRooms)
		}
	})

	t.Run("monthly income sums active guests only", func(t *testing.T) {
		if !stats.MonthlyIncome.Equal(decimal.NewFromInt(11500)) {
			t.Errorf("expected monthly income 11500, got %s", stats.MonthlyIncome)
		}
	})

	t.Run("net income is income minus expenses", func(t *testing.T) {
		if !stats.TotalExpenses.Equal(decimal.NewFromInt(4200)) {
			t.Errorf("expected total expenses 4200, got %s", stats.TotalExpenses)
		}
		if !stats.NetIncome.Equal(decimal.NewFromInt(7300)) {
			t.Errorf("expected net income 7300, got %s", stats.NetIncome)
		}
	})

	t.Run("occupancy rate rounds to whole percent", func(t *testing.T) {
		if rate := stats.OccupancyRate(); rate != 50 {
			t.Errorf("expected occupancy rate 50, got %d", rate)
		}

		oneOfThree := DashboardStats{TotalRooms: 3, OccupiedRooms: 1}
		if rate := oneOfThree.OccupancyRate(); rate != 33 {
			t.Errorf("expected occupancy rate 33, got %d", rate)
		}
	})

	t.Run("empty inputs yield zero stats", func(t *testing.T) {
		empty := ComputeDashboardStats(nil, nil, nil)
		if empty.TotalRooms != 0 || empty.TotalGuests != 0 {
			t.Errorf("expected zero counts, got %+v", empty)
		}
		if !empty.NetIncome.Equal(decimal.Zero) {
			t.Errorf("expected zero net income, got %s", empty.NetIncome)
		}
		if empty.OccupancyRate() != 0 {
			t.Errorf("expected zero occupancy rate, got %d", empty.OccupancyRate())
		}
	})
}

func TestComputeGuestPaymentSummary(t *testing.T) {
	guest := &entity.Guest{
		JoiningDate: day("2024-01-15"),
		MonthlyRent: decimal.NewFromInt(5000),
	}
	now := day("2024-03-01")

	t.Run("joining month counts as month one", func(t *testing.T) {
		payments := []*entity.Payment{
			{Amount: decimal.NewFromInt(5000), PaymentDate: day("2024-01-20"), PaymentMonth: day("2024-01-01")},
		}

		summary := ComputeGuestPaymentSummary(guest, payments, now)

		if summary.MonthsSinceJoining != 3 {
			t.Errorf("expected 3 months since joining, got %d", summary.MonthsSinceJoining)
		}
		if !summary.ExpectedTotal.Equal(decimal.NewFromInt(15000)) {
			t.Errorf("expected total 15000, got %s", summary.ExpectedTotal)
		}
		if !summary.PendingAmount.Equal(decimal.NewFromInt(10000)) {
			t.Errorf("expected pending 10000, got %s", summary.PendingAmount)
		}
	})

	t.Run("overpayment clamps pending at zero", func(t *testing.T) {
		payments := []*entity.Payment{
			{Amount: decimal.NewFromInt(20000), PaymentDate: day("2024-02-01"), PaymentMonth: day("2024-02-01")},
		}

		summary := ComputeGuestPaymentSummary(guest, payments, now)

		if !summary.TotalPaid.Equal(decimal.NewFromInt(20000)) {
			t.Errorf("expected total paid 20000, got %s", summary.TotalPaid)
		}
		if !summary.PendingAmount.Equal(decimal.Zero) {
			t.Errorf("expected pending 0, got %s", summary.PendingAmount)
		}
	})

	t.Run("current month paid follows the period key", func(t *testing.T) {
		payments := []*entity.Payment{
			{Amount: decimal.NewFromInt(5000), PaymentDate: day("2024-02-28"), PaymentMonth: day("2024-03-01")},
		}

		summary := ComputeGuestPaymentSummary(guest, payments, now)
		if !summary.CurrentMonthPaid {
			t.Error("expected current month to be marked paid")
		}

		past := []*entity.Payment{
			{Amount: decimal.NewFromInt(5000), PaymentDate: day("2024-02-28"), PaymentMonth: day("2024-02-01")},
		}
		summary = ComputeGuestPaymentSummary(guest, past, now)
		if summary.CurrentMonthPaid {
			t.Error("expected current month to be pending")
		}
	})

	t.Run("last payment date is the latest payment date", func(t *testing.T) {
		payments := []*entity.Payment{
			{Amount: decimal.NewFromInt(5000), PaymentDate: day("2024-02-10"), PaymentMonth: day("2024-02-01")},
			{Amount: decimal.NewFromInt(5000), PaymentDate: day("2024-01-20"), PaymentMonth: day("2024-01-01")},
		}

		summary := ComputeGuestPaymentSummary(guest, payments, now)

		if summary.LastPaymentDate == nil {
			t.Fatal("expected a last payment date")
		}
		if !summary.LastPaymentDate.Equal(day("2024-02-10")) {
			t.Errorf("expected last payment on 2024-02-10, got %s", summary.LastPaymentDate)
		}
	})

	t.Run("no payments yields nil last payment date", func(t *testing.T) {
		summary := ComputeGuestPaymentSummary(guest, nil, now)
		if summary.LastPaymentDate != nil {
			t.Errorf("expected nil last payment date, got %s", summary.LastPaymentDate)
		}
		if summary.CurrentMonthPaid {
			t.Error("expected current month to be pending")
		}
	})

	t.Run("future joining date floors months at zero", func(t *testing.T) {
		future := &entity.Guest{
			JoiningDate: day("2024-06-01"),
			MonthlyRent: decimal.NewFromInt(5000),
		}

		summary := ComputeGuestPaymentSummary(future, nil, day("2024-01-01"))

		if summary.MonthsSinceJoining != 0 {
			t.Errorf("expected 0 months, got %d", summary.MonthsSinceJoining)
		}
		if !summary.ExpectedTotal.Equal(decimal.Zero) {
			t.Errorf("expected total 0, got %s", summary.ExpectedTotal)
		}
	})
}
