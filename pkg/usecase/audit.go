package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/complia-lab/themis/pkg/domain/interfaces"
	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/complia-lab/themis/pkg/service/calendar"
)

// AuditInput is the payload for creating or editing a scheduled audit.
type AuditInput struct {
	TemplateID types.TemplateID `json:"questionReportId"`
	Title      string           `json:"title"`
	FactoryID  types.FactoryID  `json:"factoryId"`
	Division   string           `json:"division"`
	AuditorID  types.ContactID  `json:"auditorId"`
	StartDate  time.Time        `json:"startDate"`
	EndDate    time.Time        `json:"endDate"`
	CreatedBy  string           `json:"createdBy"`
}

// Audit provides the scheduled audit lifecycle: draft creation and
// editing, forward status transitions with answer submission, and
// deletion. Every transition is recorded as a status history entry, and
// any mutation invalidates the calendar cache.
type Audit struct {
	repo  interfaces.Repository
	cache *calendar.EventCache
}

// NewAudit creates a new Audit use case
func NewAudit(repo interfaces.Repository, cache *calendar.EventCache) *Audit {
	return &Audit{repo: repo, cache: cache}
}

// CreateDraft allocates an audit number and stores a new draft audit
func (uc *Audit) CreateDraft(ctx context.Context, input *AuditInput) (*model.ScheduledAudit, error) {
	if _, err := uc.repo.GetTemplate(ctx, input.TemplateID); err != nil {
		return nil, goerr.Wrap(err, "failed to resolve template")
	}

	id, err := uc.repo.GetNextAuditNumber(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to allocate audit number")
	}

	audit, err := model.NewScheduledAudit(id, input.TemplateID, input.Title, input.FactoryID, input.Division, input.StartDate, input.EndDate, input.CreatedBy)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create audit")
	}
	audit.AuditorID = input.AuditorID

	if err := uc.repo.PutScheduledAudit(ctx, audit); err != nil {
		return nil, goerr.Wrap(err, "failed to save audit")
	}

	history, err := model.NewStatusHistory(audit.ID, types.AuditStatusDraft, input.CreatedBy, "")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create status history")
	}
	if err := uc.repo.AddStatusHistory(ctx, history); err != nil {
		return nil, goerr.Wrap(err, "failed to add status history")
	}

	uc.cache.Invalidate(ctx)
	return audit, nil
}

// UpdateDraft edits the metadata of an audit still in draft status
func (uc *Audit) UpdateDraft(ctx context.Context, id types.AuditID, input *AuditInput) (*model.ScheduledAudit, error) {
	audit, err := uc.repo.GetScheduledAudit(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get audit")
	}
	if audit.Status != types.AuditStatusDraft {
		return nil, goerr.New("only draft audits can be edited",
			goerr.V("auditID", id),
			goerr.V("status", audit.Status), goerr.T(model.ErrTagInvalid))
	}
	if end, start := input.EndDate, input.StartDate; end.Before(start) {
		return nil, goerr.New("audit end date is before start date",
			goerr.V("start", start),
			goerr.V("end", end), goerr.T(model.ErrTagInvalid))
	}

	audit.Title = input.Title
	audit.FactoryID = input.FactoryID
	audit.Division = input.Division
	audit.AuditorID = input.AuditorID
	audit.StartDate = input.StartDate
	audit.EndDate = input.EndDate
	audit.UpdatedAt = time.Now()

	if err := uc.repo.PutScheduledAudit(ctx, audit); err != nil {
		return nil, goerr.Wrap(err, "failed to save audit")
	}

	uc.cache.Invalidate(ctx)
	return audit, nil
}

// Advance moves an audit one status forward, optionally carrying a batch
// of answers. Answers are validated against the audit's template before
// any state changes; the transition and its history entry are only
// stored when the whole batch is acceptable.
func (uc *Audit) Advance(ctx context.Context, id types.AuditID, next types.AuditStatus, answers []model.Answer, actor, note string) (*model.ScheduledAudit, error) {
	audit, err := uc.repo.GetScheduledAudit(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get audit")
	}

	if len(answers) > 0 {
		tmpl, err := uc.repo.GetTemplate(ctx, audit.TemplateID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve template")
		}
		for i := range answers {
			if err := answers[i].ValidateAgainst(tmpl.FindQuestion(answers[i].QuestionID)); err != nil {
				return nil, goerr.Wrap(err, "invalid answer", goerr.V("index", i))
			}
		}
		for i := range answers {
			if err := audit.SubmitAnswer(answers[i]); err != nil {
				return nil, err
			}
		}
	}

	if err := audit.Advance(next); err != nil {
		return nil, err
	}

	if err := uc.repo.PutScheduledAudit(ctx, audit); err != nil {
		return nil, goerr.Wrap(err, "failed to save audit")
	}

	history, err := model.NewStatusHistory(audit.ID, next, actor, note)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create status history")
	}
	if err := uc.repo.AddStatusHistory(ctx, history); err != nil {
		return nil, goerr.Wrap(err, "failed to add status history")
	}

	if next == types.AuditStatusCompleted {
		ctxlog.From(ctx).Info("audit completed",
			"auditID", audit.ID,
			"totalScore", audit.TotalScore(),
			"answers", len(audit.Answers))
	}

	uc.cache.Invalidate(ctx)
	return audit, nil
}

// SubmitAnswers upserts a batch of answers without changing status.
// Used while the audit is ongoing; completed audits reject submissions.
func (uc *Audit) SubmitAnswers(ctx context.Context, id types.AuditID, answers []model.Answer) (*model.ScheduledAudit, error) {
	audit, err := uc.repo.GetScheduledAudit(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get audit")
	}

	tmpl, err := uc.repo.GetTemplate(ctx, audit.TemplateID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve template")
	}
	for i := range answers {
		if err := answers[i].ValidateAgainst(tmpl.FindQuestion(answers[i].QuestionID)); err != nil {
			return nil, goerr.Wrap(err, "invalid answer", goerr.V("index", i))
		}
	}
	for i := range answers {
		if err := audit.SubmitAnswer(answers[i]); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.PutScheduledAudit(ctx, audit); err != nil {
		return nil, goerr.Wrap(err, "failed to save audit")
	}
	return audit, nil
}

// Get retrieves a scheduled audit by ID
func (uc *Audit) Get(ctx context.Context, id types.AuditID) (*model.ScheduledAudit, error) {
	return uc.repo.GetScheduledAudit(ctx, id)
}

// List retrieves all scheduled audits
func (uc *Audit) List(ctx context.Context) ([]*model.ScheduledAudit, error) {
	return uc.repo.ListScheduledAudits(ctx)
}

// History retrieves the status change log of an audit
func (uc *Audit) History(ctx context.Context, id types.AuditID) ([]*model.StatusHistory, error) {
	return uc.repo.ListStatusHistories(ctx, id)
}

// Delete removes a scheduled audit
func (uc *Audit) Delete(ctx context.Context, id types.AuditID) error {
	if err := uc.repo.DeleteScheduledAudit(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx)
	return nil
}
