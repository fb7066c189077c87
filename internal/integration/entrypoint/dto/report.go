// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/pgdesk/backend/internal/application/usecase/report"
)

// DashboardResponse represents the operator dashboard statistics.
type DashboardResponse struct {
	TotalRooms    int    `json:"total_rooms"`
	OccupiedRooms int    `json:"occupied_rooms"`
	VacantRooms   int    `json:"vacant_rooms"`
	OccupancyRate int    `json:"occupancy_rate"`
	TotalGuests   int    `json:"total_guests"`
	MonthlyIncome string `json:"monthly_income"`
	TotalExpenses string `json:"total_expenses"`
	NetIncome     string `json:"net_income"`
}

// NotificationResponse represents a single derived alert.
type NotificationResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// NotificationListResponse represents the response for listing alerts.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToDashboardResponse converts DashboardStats to a DashboardResponse DTO.
func ToDashboardResponse(stats report.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TotalRooms:    stats.TotalRooms,
		OccupiedRooms: stats.OccupiedRooms,
		VacantRooms:   stats.VacantRooms,
		OccupancyRate: stats.OccupancyRate(),
		TotalGuests:   stats.TotalGuests,
		MonthlyIncome: stats.MonthlyIncome.String(),
		TotalExpenses: stats.TotalExpenses.String(),
		NetIncome:     stats.NetIncome.String(),
	}
}

// ToNotificationResponse converts a Notification to a NotificationResponse DTO.
func ToNotificationResponse(notification report.Notification) NotificationResponse {
	return NotificationResponse{
		ID:       notification.ID,
		Type:     string(notification.Type),
		Title:    notification.Title,
		Message:  notification.Message,
		Priority: string(notification.Priority),
	}
}
