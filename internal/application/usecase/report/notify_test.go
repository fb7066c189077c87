package report

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pgdesk/backend/internal/domain/entity"
)

func TestDeriveNotifications(t *testing.T) {
	now := day("2024-03-05")

	paidGuest := &entity.Guest{
		ID:          uuid.New(),
		FullName:    "Alice",
		BedNumber:   "A",
		MonthlyRent: decimal.NewFromInt(5000),
		Status:      entity.GuestStatusActive,
	}
	unpaidGuest := &entity.Guest{
		ID:          uuid.New(),
		FullName:    "Bob",
		BedNumber:   "B",
		MonthlyRent: decimal.NewFromInt(4500),
		Status:      entity.GuestStatusActive,
	}
	room := &entity.Room{ID: uuid.New(), RoomNumber: "101"}
	vacantRoom := &entity.Room{ID: uuid.New(), RoomNumber: "204", Status: entity.RoomStatusVacant}

	activeGuests := []*entity.GuestWithRoom{
		{Guest: paidGuest, Room: room},
		{Guest: unpaidGuest, Room: room},
	}
	currentPayments := []*entity.Payment{
		{GuestID: paidGuest.ID, PaymentMonth: day("2024-03-01")},
	}

	notifications := DeriveNotifications(activeGuests, currentPayments, []*entity.Room{vacantRoom}, now)

	t.Run("paid guests are skipped", func(t *testing.T) {
		if len(notifications) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(notifications))
		}
		for _, n := range notifications {
			if strings.Contains(n.Message, "Alice") {
				t.Errorf("paid guest should not appear: %+v", n)
			}
		}
	})

	t.Run("rent-due items come before vacant-room items", func(t *testing.T) {
		if notifications[0].Type != NotificationTypeRentDue {
			t.Errorf("expected rent_due first, got %s", notifications[0].Type)
		}
		if notifications[1].Type != NotificationTypeVacantRoom {
			t.Errorf("expected vacant_room second, got %s", notifications[1].Type)
		}
	})

	t.Run("rent-due item carries guest, location and month", func(t *testing.T) {
		due := notifications[0]
		if due.ID != "rent-"+unpaidGuest.ID.String() {
			t.Errorf("unexpected id %s", due.ID)
		}
		if due.Title != "Rent Payment Pending" {
			t.Errorf("unexpected title %s", due.Title)
		}
		if due.Priority != NotificationPriorityHigh {
			t.Errorf("expected high priority, got %s", due.Priority)
		}
		want := "Bob (Room 101, Bed B) - 4500 due for March"
		if due.Message != want {
			t.Errorf("expected %q, got %q", want, due.Message)
		}
	})

	t.Run("vacant-room item names the room", func(t *testing.T) {
		vacant := notifications[1]
		if vacant.ID != "vacant-"+vacantRoom.ID.String() {
			t.Errorf("unexpected id %s", vacant.ID)
		}
		if vacant.Priority != NotificationPriorityMedium {
			t.Errorf("expected medium priority, got %s", vacant.Priority)
		}
		if vacant.Message != "Room 204 is currently vacant and available" {
			t.Errorf("unexpected message %q", vacant.Message)
		}
	})

	t.Run("guest without a room still yields an item", func(t *testing.T) {
		unassigned := &entity.Guest{
			ID:          uuid.New(),
			FullName:    "Carol",
			MonthlyRent: decimal.NewFromInt(3000),
			Status:      entity.GuestStatusActive,
		}

		got := DeriveNotifications([]*entity.GuestWithRoom{{Guest: unassigned}}, nil, nil, now)

		if len(got) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(got))
		}
		if !strings.Contains(got[0].Message, "Carol") {
			t.Errorf("unexpected message %q", got[0].Message)
		}
	})

	t.Run("everything paid and full yields an empty list", func(t *testing.T) {
		allPaid := []*entity.Payment{
			{GuestID: paidGuest.ID, PaymentMonth: day("2024-03-01")},
			{GuestID: unpaidGuest.ID, PaymentMonth: day("2024-03-01")},
		}

		got := DeriveNotifications(activeGuests, allPaid, nil, now)
		if len(got) != 0 {
			t.Errorf("expected no notifications, got %d", len(got))
		}
	})
}
