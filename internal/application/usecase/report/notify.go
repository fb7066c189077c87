package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// NotificationType categorizes a derived alert.
type NotificationType string

const (
	NotificationTypeRentDue    NotificationType = "rent_due"
	NotificationTypeVacantRoom NotificationType = "vacant_room"
)

// NotificationPriority orders alerts for presentation.
type NotificationPriority string

const (
	NotificationPriorityHigh   NotificationPriority = "high"
	NotificationPriorityMedium NotificationPriority = "medium"
	NotificationPriorityLow    NotificationPriority = "low"
)

// Notification is one derived alert item. The list is recomputed from
// scratch on every fetch; there is no stored alert state to suppress or
// acknowledge.
type Notification struct {
	ID       string
	Type     NotificationType
	Title    string
	Message  string
	Priority NotificationPriority
}

// DeriveNotifications scans active guests and vacant rooms for the current
// billing period. Every active guest without a payment in the period yields
// a high-priority rent-due item; every vacant room yields a medium-priority
// item. Guests come first, then rooms, each in input order; no further
// sorting is applied here.
func DeriveNotifications(activeGuests []*entity.GuestWithRoom, currentPeriodPayments []*entity.Payment, vacantRooms []*entity.Room, now time.Time) []Notification {
	paidGuests := make(map[uuid.UUID]struct{}, len(currentPeriodPayments))
	for _, payment := range currentPeriodPayments {
		paidGuests[payment.GuestID] = struct{}{}
	}

	notifications := make([]Notification, 0, len(activeGuests)+len(vacantRooms))

	for _, gw := range activeGuests {
		guest := gw.Guest
		if _, paid := paidGuests[guest.ID]; paid {
			continue
		}

		location := ""
		if gw.Room != nil {
			location = fmt.Sprintf("Room %s", gw.Room.RoomNumber)
		}
		if guest.BedNumber != "" {
			location = fmt.Sprintf("%s, Bed %s", location, guest.BedNumber)
		}

		notifications = append(notifications, Notification{
			ID:       fmt.Sprintf("rent-%s", guest.ID),
			Type:     NotificationTypeRentDue,
			Title:    "Rent Payment Pending",
			Message:  fmt.Sprintf("%s (%s) - %s due for %s", guest.FullName, location, guest.MonthlyRent.String(), now.Month().String()),
			Priority: NotificationPriorityHigh,
		})
	}

	for _, room := range vacantRooms {
		notifications = append(notifications, Notification{
			ID:       fmt.Sprintf("vacant-%s", room.ID),
			Type:     NotificationTypeVacantRoom,
			Title:    "Vacant Room",
			Message:  fmt.Sprintf("Room %s is currently vacant and available", room.RoomNumber),
			Priority: NotificationPriorityMedium,
		})
	}

	return notifications
}
