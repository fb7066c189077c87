// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pgdesk/backend/internal/application/usecase/portal"
	"github.com/pgdesk/backend/internal/domain/entity"
)

// PayRentRequest represents the request body for a guest rent payment.
type PayRentRequest struct {
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMonth  string  `json:"payment_month" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	Notes         string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// SubmitMaintenanceRequest represents the request body for a maintenance
// request submission.
type SubmitMaintenanceRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description,omitempty" binding:"omitempty,max=1000"`
	Priority    string `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
}

// ProfileResponse represents the guest's own profile view.
type ProfileResponse struct {
	Guest    GuestResponse     `json:"guest"`
	Room     *RoomResponse     `json:"room,omitempty"`
	Property *PropertyResponse `json:"property,omitempty"`
}

// MyPaymentsResponse represents the guest's own payment history and summary.
type MyPaymentsResponse struct {
	Payments []PaymentResponse      `json:"payments"`
	Summary  PaymentSummaryResponse `json:"summary"`
}

// MaintenanceRequestResponse represents a single maintenance request.
type MaintenanceRequestResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MaintenanceListResponse represents the guest's maintenance request history.
type MaintenanceListResponse struct {
	Requests []MaintenanceRequestResponse `json:"requests"`
}

// HouseRuleResponse represents a single house rule.
type HouseRuleResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RuleGroupResponse represents one category of house rules.
type RuleGroupResponse struct {
	Category string              `json:"category"`
	Rules    []HouseRuleResponse `json:"rules"`
}

// HouseRulesResponse represents the grouped house rules view.
type HouseRulesResponse struct {
	Groups []RuleGroupResponse `json:"groups"`
}

// AnnouncementResponse represents a single announcement.
type AnnouncementResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// AnnouncementListResponse represents the guest's announcements view.
type AnnouncementListResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
}

// ToMaintenanceRequestResponse converts a MaintenanceRequest entity to a
// MaintenanceRequestResponse DTO.
func ToMaintenanceRequestResponse(request *entity.MaintenanceRequest) MaintenanceRequestResponse {
	return MaintenanceRequestResponse{
		ID:          request.ID.String(),
		Title:       request.Title,
		Description: request.Description,
		Priority:    string(request.Priority),
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
}

// ToRuleGroupResponse converts a RuleGroup to a RuleGroupResponse DTO.
func ToRuleGroupResponse(group portal.RuleGroup) RuleGroupResponse {
	rules := make([]HouseRuleResponse, len(group.Rules))
	for i, rule := range group.Rules {
		rules[i] = HouseRuleResponse{
			ID:          rule.ID.String(),
			Title:       rule.Title,
			Description: rule.Description,
		}
	}
	return RuleGroupResponse{
		Category: group.Category,
		Rules:    rules,
	}
}

// ToAnnouncementResponse converts an Announcement entity to an
// AnnouncementResponse DTO.
func ToAnnouncementResponse(announcement *entity.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        announcement.ID.String(),
		Title:     announcement.Title,
		Message:   announcement.Message,
		CreatedAt: announcement.CreatedAt,
	}
}
