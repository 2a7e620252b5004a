package model

import (
	"time"

	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ExternalAudit represents an audit conducted by an outside agency.
// External audits have no question template; they appear on the calendar
// and carry their own finding documents out of band.
type ExternalAudit struct {
	ID        types.ExternalAuditID `json:"id" firestore:"id"`
	Title     string                `json:"title" firestore:"title"`
	Agency    string                `json:"agency" firestore:"agency"`
	FactoryID types.FactoryID       `json:"factoryId" firestore:"factoryId"`
	StartDate time.Time             `json:"startDate" firestore:"startDate"`
	EndDate   time.Time             `json:"endDate" firestore:"endDate"`
	Remark    string                `json:"remark,omitempty" firestore:"remark,omitempty"`
	CreatedAt time.Time             `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt" firestore:"updatedAt"`
}

// NewExternalAudit creates a new external audit
func NewExternalAudit(title, agency string, factoryID types.FactoryID, start, end time.Time) (*ExternalAudit, error) {
	if title == "" {
		return nil, goerr.New("external audit title is required", goerr.T(ErrTagInvalid))
	}
	if agency == "" {
		return nil, goerr.New("auditing agency is required", goerr.T(ErrTagInvalid))
	}
	if factoryID == "" {
		return nil, goerr.New("factory ID is required", goerr.T(ErrTagInvalid))
	}
	if end.Before(start) {
		return nil, goerr.New("audit end date is before start date",
			goerr.V("start", start),
			goerr.V("end", end), goerr.T(ErrTagInvalid))
	}

	now := time.Now()
	return &ExternalAudit{
		ID:        types.NewExternalAuditID(),
		Title:     title,
		Agency:    agency,
		FactoryID: factoryID,
		StartDate: start,
		EndDate:   end,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
