package model

import (
	"time"

	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ScheduledAudit instantiates an audit template against a factory,
// division and date. Answers accumulate as the audit is worked through
// its lifecycle (draft -> scheduled -> ongoing -> completed).
type ScheduledAudit struct {
	ID         types.AuditID     `json:"id" firestore:"id"`
	TemplateID types.TemplateID  `json:"questionReportId" firestore:"templateId"`
	Title      string            `json:"title" firestore:"title"`
	FactoryID  types.FactoryID   `json:"factoryId" firestore:"factoryId"`
	Division   string            `json:"division" firestore:"division"`
	AuditorID  types.ContactID   `json:"auditorId" firestore:"auditorId"`
	StartDate  time.Time         `json:"startDate" firestore:"startDate"`
	EndDate    time.Time         `json:"endDate" firestore:"endDate"`
	Status     types.AuditStatus `json:"status" firestore:"status"`
	Answers    []Answer          `json:"answers" firestore:"answers"`
	CreatedBy  string            `json:"createdBy" firestore:"createdBy"`
	CreatedAt  time.Time         `json:"createdAt" firestore:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt" firestore:"updatedAt"`
}

// NewScheduledAudit creates a new scheduled audit in draft status
func NewScheduledAudit(id types.AuditID, templateID types.TemplateID, title string, factoryID types.FactoryID, division string, start, end time.Time, createdBy string) (*ScheduledAudit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if templateID == "" {
		return nil, goerr.New("template ID is required", goerr.T(ErrTagInvalid))
	}
	if title == "" {
		return nil, goerr.New("audit title is required", goerr.T(ErrTagInvalid))
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
	return &ScheduledAudit{
		ID:         id,
		TemplateID: templateID,
		Title:      title,
		FactoryID:  factoryID,
		Division:   division,
		StartDate:  start,
		EndDate:    end,
		Status:     types.AuditStatusDraft,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Advance moves the audit to the next lifecycle status. Only a single
// forward step is legal; completed audits are terminal.
func (a *ScheduledAudit) Advance(next types.AuditStatus) error {
	if !next.IsValid() {
		return goerr.New("invalid status", goerr.V("status", next), goerr.T(ErrTagInvalid))
	}
	if !a.Status.CanTransitionTo(next) {
		return goerr.Wrap(ErrIllegalTransition, "status transition rejected",
			goerr.V("auditID", a.ID),
			goerr.V("from", a.Status),
			goerr.V("to", next))
	}
	a.Status = next
	a.UpdatedAt = time.Now()
	return nil
}

// SubmitAnswer upserts an answer into the audit's answer list. At most
// one answer per question is kept: an existing entry is replaced in
// place, a new one is appended.
func (a *ScheduledAudit) SubmitAnswer(answer Answer) error {
	if a.Status.IsTerminal() {
		return goerr.Wrap(ErrAuditCompleted, "answer rejected",
			goerr.V("auditID", a.ID),
			goerr.V("questionId", answer.QuestionID))
	}
	a.Answers = UpsertAnswer(a.Answers, answer)
	a.UpdatedAt = time.Now()
	return nil
}

// AnswerFor returns the answer for the given question, or nil
func (a *ScheduledAudit) AnswerFor(id types.QuestionID) *Answer {
	for i := range a.Answers {
		if a.Answers[i].QuestionID == id {
			return &a.Answers[i]
		}
	}
	return nil
}

// TotalScore returns the sum of submitted answer scores
func (a *ScheduledAudit) TotalScore() int {
	total := 0
	for i := range a.Answers {
		total += a.Answers[i].Score
	}
	return total
}
