package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complia-lab/themis/pkg/domain/interfaces"
	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/complia-lab/themis/pkg/service/calendar"
)

// ExternalAuditInput is the payload for creating or editing an external
// audit.
type ExternalAuditInput struct {
	Title     string          `json:"title"`
	Agency    string          `json:"agency"`
	FactoryID types.FactoryID `json:"factoryId"`
	StartDate time.Time       `json:"startDate"`
	EndDate   time.Time       `json:"endDate"`
	Remark    string          `json:"remark"`
}

// External provides external audit management
type External struct {
	repo  interfaces.Repository
	cache *calendar.EventCache
}

// NewExternal creates a new External use case
func NewExternal(repo interfaces.Repository, cache *calendar.EventCache) *External {
	return &External{repo: repo, cache: cache}
}

// Create stores a new external audit
func (uc *External) Create(ctx context.Context, input *ExternalAuditInput) (*model.ExternalAudit, error) {
	audit, err := model.NewExternalAudit(input.Title, input.Agency, input.FactoryID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create external audit")
	}
	audit.Remark = input.Remark

	if err := uc.repo.PutExternalAudit(ctx, audit); err != nil {
		return nil, goerr.Wrap(err, "failed to save external audit")
	}

	uc.cache.Invalidate(ctx)
	return audit, nil
}

// Update edits an existing external audit
func (uc *External) Update(ctx context.Context, id types.ExternalAuditID, input *ExternalAuditInput) (*model.ExternalAudit, error) {
	audit, err := uc.repo.GetExternalAudit(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get external audit")
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, goerr.New("audit end date is before start date",
			goerr.V("start", input.StartDate),
			goerr.V("end", input.EndDate), goerr.T(model.ErrTagInvalid))
	}

	audit.Title = input.Title
	audit.Agency = input.Agency
	audit.FactoryID = input.FactoryID
	audit.StartDate = input.StartDate
	audit.EndDate = input.EndDate
	audit.Remark = input.Remark
	audit.UpdatedAt = time.Now()

	if err := uc.repo.PutExternalAudit(ctx, audit); err != nil {
		return nil, goerr.Wrap(err, "failed to save external audit")
	}

	uc.cache.Invalidate(ctx)
	return audit, nil
}

// Get retrieves an external audit by ID
func (uc *External) Get(ctx context.Context, id types.ExternalAuditID) (*model.ExternalAudit, error) {
	return uc.repo.GetExternalAudit(ctx, id)
}

// List retrieves all external audits
func (uc *External) List(ctx context.Context) ([]*model.ExternalAudit, error) {
	return uc.repo.ListExternalAudits(ctx)
}

// Delete removes an external audit
func (uc *External) Delete(ctx context.Context, id types.ExternalAuditID) error {
	if err := uc.repo.DeleteExternalAudit(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx)
	return nil
}
