package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complia-lab/themis/pkg/domain/interfaces"
	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/domain/types"
)

// ActionPlanInput is the payload for creating or editing a corrective
// action plan.
type ActionPlanInput struct {
	AuditID     types.AuditID    `json:"auditId"`
	QuestionID  types.QuestionID `json:"questionId"`
	Description string           `json:"description"`
	OwnerID     types.ContactID  `json:"ownerId"`
	DueDate     time.Time        `json:"dueDate"`
	Done        bool             `json:"done"`
}

// ActionPlan provides corrective action plan management
type ActionPlan struct {
	repo interfaces.Repository
}

// NewActionPlan creates a new ActionPlan use case
func NewActionPlan(repo interfaces.Repository) *ActionPlan {
	return &ActionPlan{repo: repo}
}

// Create raises a new action plan against an audit finding
func (uc *ActionPlan) Create(ctx context.Context, input *ActionPlanInput) (*model.ActionPlan, error) {
	if _, err := uc.repo.GetScheduledAudit(ctx, input.AuditID); err != nil {
		return nil, goerr.Wrap(err, "failed to resolve audit")
	}

	plan, err := model.NewActionPlan(input.AuditID, input.QuestionID, input.Description, input.OwnerID, input.DueDate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create action plan")
	}

	if err := uc.repo.PutActionPlan(ctx, plan); err != nil {
		return nil, goerr.Wrap(err, "failed to save action plan")
	}
	return plan, nil
}

// Update edits an existing action plan
func (uc *ActionPlan) Update(ctx context.Context, id types.ActionPlanID, input *ActionPlanInput) (*model.ActionPlan, error) {
	plan, err := uc.repo.GetActionPlan(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get action plan")
	}
	if input.Description == "" {
		return nil, goerr.New("action plan description is required", goerr.T(model.ErrTagInvalid))
	}

	plan.Description = input.Description
	plan.OwnerID = input.OwnerID
	plan.DueDate = input.DueDate
	plan.Done = input.Done
	plan.UpdatedAt = time.Now()

	if err := uc.repo.PutActionPlan(ctx, plan); err != nil {
		return nil, goerr.Wrap(err, "failed to save action plan")
	}
	return plan, nil
}

// ListByAudit retrieves the action plans raised against an audit
func (uc *ActionPlan) ListByAudit(ctx context.Context, auditID types.AuditID) ([]*model.ActionPlan, error) {
	return uc.repo.ListActionPlansByAudit(ctx, auditID)
}

// Delete removes an action plan
func (uc *ActionPlan) Delete(ctx context.Context, id types.ActionPlanID) error {
	return uc.repo.DeleteActionPlan(ctx, id)
}
