package model

import (
	"time"

	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ActionPlan represents a corrective action raised against an audit
// question finding.
type ActionPlan struct {
	ID          types.ActionPlanID `json:"id" firestore:"id"`
	AuditID     types.AuditID      `json:"auditId" firestore:"auditId"`
	QuestionID  types.QuestionID   `json:"questionId" firestore:"questionId"`
	Description string             `json:"description" firestore:"description"`
	OwnerID     types.ContactID    `json:"ownerId" firestore:"ownerId"`
	DueDate     time.Time          `json:"dueDate" firestore:"dueDate"`
	Done        bool               `json:"done" firestore:"done"`
	CreatedAt   time.Time          `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" firestore:"updatedAt"`
}

// NewActionPlan creates a new corrective action plan
func NewActionPlan(auditID types.AuditID, questionID types.QuestionID, description string, ownerID types.ContactID, due time.Time) (*ActionPlan, error) {
	if err := auditID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid audit ID")
	}
	if description == "" {
		return nil, goerr.New("action plan description is required", goerr.T(ErrTagInvalid))
	}

	now := time.Now()
	return &ActionPlan{
		ID:          types.NewActionPlanID(),
		AuditID:     auditID,
		QuestionID:  questionID,
		Description: description,
		OwnerID:     ownerID,
		DueDate:     due,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// MarkDone marks the action plan as resolved
func (p *ActionPlan) MarkDone() {
	p.Done = true
	p.UpdatedAt = time.Now()
}
