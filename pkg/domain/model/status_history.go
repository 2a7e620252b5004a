package model

import (
	"time"

	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// StatusHistory records one status change of a scheduled audit
type StatusHistory struct {
	ID        types.StatusHistoryID `json:"id" firestore:"id"`
	AuditID   types.AuditID         `json:"auditId" firestore:"auditId"`
	Status    types.AuditStatus     `json:"status" firestore:"status"`
	ChangedBy string                `json:"changedBy" firestore:"changedBy"`
	ChangedAt time.Time             `json:"changedAt" firestore:"changedAt"`
	Note      string                `json:"note,omitempty" firestore:"note,omitempty"`
}

// NewStatusHistory creates a new status history entry
func NewStatusHistory(auditID types.AuditID, status types.AuditStatus, changedBy, note string) (*StatusHistory, error) {
	if err := auditID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid audit ID")
	}
	if !status.IsValid() {
		return nil, goerr.New("invalid status", goerr.V("status", status), goerr.T(ErrTagInvalid))
	}

	return &StatusHistory{
		ID:        types.NewStatusHistoryID(),
		AuditID:   auditID,
		Status:    status,
		ChangedBy: changedBy,
		ChangedAt: time.Now(),
		Note:      note,
	}, nil
}
