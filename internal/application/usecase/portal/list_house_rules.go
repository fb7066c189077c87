// Package portal contains the guest-facing portal use cases.
package portal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/domain/entity"
)

// ListHouseRulesInput represents the input for the guest's house rules view.
type ListHouseRulesInput struct {
	UserID uuid.UUID
}

// RuleGroup is one category of house rules, in display order.
type RuleGroup struct {
	Category string
	Rules    []*entity.HouseRule
}

// ListHouseRulesOutput represents the grouped house rules.
type ListHouseRulesOutput struct {
	Groups []RuleGroup
}

// ListHouseRulesUseCase lists the house rules of the guest's property,
// grouped by category.
type ListHouseRulesUseCase struct {
	guestRepo   adapter.GuestRepository
	contentRepo adapter.ContentRepository
}

// NewListHouseRulesUseCase creates a new ListHouseRulesUseCase instance.
func NewListHouseRulesUseCase(guestRepo adapter.GuestRepository, contentRepo adapter.ContentRepository) *ListHouseRulesUseCase {
	return &ListHouseRulesUseCase{
		guestRepo:   guestRepo,
		contentRepo: contentRepo,
	}
}

// Execute loads and groups the rules. Categories appear in the order the
// repository returns them; rules keep their order within each category.
func (uc *ListHouseRulesUseCase) Execute(ctx context.Context, input ListHouseRulesInput) (*ListHouseRulesOutput, error) {
	guest, err := resolveGuest(ctx, uc.guestRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	rules, err := uc.contentRepo.FindHouseRulesByProperty(ctx, guest.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list house rules: %w", err)
	}

	var groups []RuleGroup
	index := make(map[string]int)
	for _, rule := range rules {
		i, ok := index[rule.Category]
		if !ok {
			i = len(groups)
			index[rule.Category] = i
			groups = append(groups, RuleGroup{Category: rule.Category})
		}
		groups[i].Rules = append(groups[i].Rules, rule)
	}

	return &ListHouseRulesOutput{Groups: groups}, nil
}
