package interfaces

import (
	"context"

	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	// Audit template operations
	PutTemplate(ctx context.Context, tmpl *model.AuditTemplate) error
	GetTemplate(ctx context.Context, id types.TemplateID) (*model.AuditTemplate, error)
	ListTemplates(ctx context.Context) ([]*model.AuditTemplate, error)
	DeleteTemplate(ctx context.Context, id types.TemplateID) error

	// Scheduled audit operations
	PutScheduledAudit(ctx context.Context, audit *model.ScheduledAudit) error
	GetScheduledAudit(ctx context.Context, id types.AuditID) (*model.ScheduledAudit, error)
	ListScheduledAudits(ctx context.Context) ([]*model.ScheduledAudit, error)
	DeleteScheduledAudit(ctx context.Context, id types.AuditID) error
	GetNextAuditNumber(ctx context.Context) (types.AuditID, error)

	// Status history operations
	AddStatusHistory(ctx context.Context, history *model.StatusHistory) error
	ListStatusHistories(ctx context.Context, auditID types.AuditID) ([]*model.StatusHistory, error)

	// External audit operations
	PutExternalAudit(ctx context.Context, audit *model.ExternalAudit) error
	GetExternalAudit(ctx context.Context, id types.ExternalAuditID) (*model.ExternalAudit, error)
	ListExternalAudits(ctx context.Context) ([]*model.ExternalAudit, error)
	DeleteExternalAudit(ctx context.Context, id types.ExternalAuditID) error

	// Calendar operations. Events are derived from scheduled and external
	// audits whose date window overlaps the range.
	ListEventsInRange(ctx context.Context, rng model.DateRange) ([]model.CalendarEvent, error)

	// Reference data operations
	PutFactory(ctx context.Context, factory *model.Factory) error
	GetFactory(ctx context.Context, id types.FactoryID) (*model.Factory, error)
	ListFactories(ctx context.Context) ([]*model.Factory, error)
	DeleteFactory(ctx context.Context, id types.FactoryID) error

	PutProcessType(ctx context.Context, pt *model.ProcessType) error
	ListProcessTypes(ctx context.Context) ([]*model.ProcessType, error)
	DeleteProcessType(ctx context.Context, id types.ProcessTypeID) error

	PutContact(ctx context.Context, contact *model.ContactPerson) error
	ListContacts(ctx context.Context) ([]*model.ContactPerson, error)
	DeleteContact(ctx context.Context, id types.ContactID) error

	// Action plan operations
	PutActionPlan(ctx context.Context, plan *model.ActionPlan) error
	GetActionPlan(ctx context.Context, id types.ActionPlanID) (*model.ActionPlan, error)
	ListActionPlansByAudit(ctx context.Context, auditID types.AuditID) ([]*model.ActionPlan, error)
	DeleteActionPlan(ctx context.Context, id types.ActionPlanID) error

	// Close closes the repository connection
	Close() error
}
