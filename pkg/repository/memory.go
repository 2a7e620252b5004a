package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/complia-lab/themis/pkg/domain/interfaces"
	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu             sync.RWMutex
	templates      map[types.TemplateID]*model.AuditTemplate
	audits         map[types.AuditID]*model.ScheduledAudit
	histories      map[types.AuditID][]*model.StatusHistory
	externalAudits map[types.ExternalAuditID]*model.ExternalAudit
	factories      map[types.FactoryID]*model.Factory
	processTypes   map[types.ProcessTypeID]*model.ProcessType
	contacts       map[types.ContactID]*model.ContactPerson
	actionPlans    map[types.ActionPlanID]*model.ActionPlan
	auditCounter   types.AuditID
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		templates:      make(map[types.TemplateID]*model.AuditTemplate),
		audits:         make(map[types.AuditID]*model.ScheduledAudit),
		histories:      make(map[types.AuditID][]*model.StatusHistory),
		externalAudits: make(map[types.ExternalAuditID]*model.ExternalAudit),
		factories:      make(map[types.FactoryID]*model.Factory),
		processTypes:   make(map[types.ProcessTypeID]*model.ProcessType),
		contacts:       make(map[types.ContactID]*model.ContactPerson),
		actionPlans:    make(map[types.ActionPlanID]*model.ActionPlan),
	}
}

// PutTemplate stores an audit template
func (m *Memory) PutTemplate(ctx context.Context, tmpl *model.AuditTemplate) error {
	if tmpl == nil {
		return goerr.New("template is nil")
	}
	if tmpl.ID == "" {
		return goerr.New("template ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cp := copyTemplate(tmpl)
	m.templates[tmpl.ID] = cp
	return nil
}

// GetTemplate retrieves an audit template by ID
func (m *Memory) GetTemplate(ctx context.Context, id types.TemplateID) (*model.AuditTemplate, error) {
	if id == "" {
		return nil, goerr.New("template ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	tmpl, exists := m.templates[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrTemplateNotFound, "get template", goerr.V("id", id))
	}
	return copyTemplate(tmpl), nil
}

// ListTemplates lists all audit templates sorted by creation time
func (m *Memory) ListTemplates(ctx context.Context) ([]*model.AuditTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	templates := make([]*model.AuditTemplate, 0, len(m.templates))
	for _, tmpl := range m.templates {
		templates = append(templates, copyTemplate(tmpl))
	}
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].CreatedAt.Before(templates[j].CreatedAt)
	})
	return templates, nil
}

// DeleteTemplate removes an audit template
func (m *Memory) DeleteTemplate(ctx context.Context, id types.TemplateID) error {
	if id == "" {
		return goerr.New("template ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.templates[id]; !exists {
		return goerr.Wrap(model.ErrTemplateNotFound, "delete template", goerr.V("id", id))
	}
	delete(m.templates, id)
	return nil
}

// PutScheduledAudit stores a scheduled audit
func (m *Memory) PutScheduledAudit(ctx context.Context, audit *model.ScheduledAudit) error {
	if audit == nil {
		return goerr.New("audit is nil")
	}
	if err := audit.ID.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.audits[audit.ID] = copyAudit(audit)
	return nil
}

// GetScheduledAudit retrieves a scheduled audit by ID
func (m *Memory) GetScheduledAudit(ctx context.Context, id types.AuditID) (*model.ScheduledAudit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	audit, exists := m.audits[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrAuditNotFound, "get audit", goerr.V("id", id))
	}
	return copyAudit(audit), nil
}

// ListScheduledAudits lists all scheduled audits sorted by ID
func (m *Memory) ListScheduledAudits(ctx context.Context) ([]*model.ScheduledAudit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	audits := make([]*model.ScheduledAudit, 0, len(m.audits))
	for _, audit := range m.audits {
		audits = append(audits, copyAudit(audit))
	}
	sort.Slice(audits, func(i, j int) bool {
		return audits[i].ID < audits[j].ID
	})
	return audits, nil
}

// DeleteScheduledAudit removes a scheduled audit and its histories
func (m *Memory) DeleteScheduledAudit(ctx context.Context, id types.AuditID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.audits[id]; !exists {
		return goerr.Wrap(model.ErrAuditNotFound, "delete audit", goerr.V("id", id))
	}
	delete(m.audits, id)
	delete(m.histories, id)
	return nil
}

// GetNextAuditNumber allocates the next audit serial number
func (m *Memory) GetNextAuditNumber(ctx context.Context) (types.AuditID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.auditCounter++
	return m.auditCounter, nil
}

// AddStatusHistory appends a status history entry
func (m *Memory) AddStatusHistory(ctx context.Context, history *model.StatusHistory) error {
	if history == nil {
		return goerr.New("status history is nil")
	}
	if err := history.ID.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *history
	m.histories[history.AuditID] = append(m.histories[history.AuditID], &cp)
	return nil
}

// ListStatusHistories lists status history entries in change order
func (m *Memory) ListStatusHistories(ctx context.Context, auditID types.AuditID) ([]*model.StatusHistory, error) {
	if err := auditID.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	histories := make([]*model.StatusHistory, 0, len(m.histories[auditID]))
	for _, h := range m.histories[auditID] {
		cp := *h
		histories = append(histories, &cp)
	}
	sort.Slice(histories, func(i, j int) bool {
		return histories[i].ChangedAt.Before(histories[j].ChangedAt)
	})
	return histories, nil
}

// PutExternalAudit stores an external audit
func (m *Memory) PutExternalAudit(ctx context.Context, audit *model.ExternalAudit) error {
	if audit == nil {
		return goerr.New("external audit is nil")
	}
	if audit.ID == "" {
		return goerr.New("external audit ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *audit
	m.externalAudits[audit.ID] = &cp
	return nil
}

// GetExternalAudit retrieves an external audit by ID
func (m *Memory) GetExternalAudit(ctx context.Context, id types.ExternalAuditID) (*model.ExternalAudit, error) {
	if id == "" {
		return nil, goerr.New("external audit ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	audit, exists := m.externalAudits[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrExternalAuditNotFound, "get external audit", goerr.V("id", id))
	}
	cp := *audit
	return &cp, nil
}

// ListExternalAudits lists all external audits sorted by start date
func (m *Memory) ListExternalAudits(ctx context.Context) ([]*model.ExternalAudit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	audits := make([]*model.ExternalAudit, 0, len(m.externalAudits))
	for _, audit := range m.externalAudits {
		cp := *audit
		audits = append(audits, &cp)
	}
	sort.Slice(audits, func(i, j int) bool {
		return audits[i].StartDate.Before(audits[j].StartDate)
	})
	return audits, nil
}

// DeleteExternalAudit removes an external audit
func (m *Memory) DeleteExternalAudit(ctx context.Context, id types.ExternalAuditID) error {
	if id == "" {
		return goerr.New("external audit ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.externalAudits[id]; !exists {
		return goerr.Wrap(model.ErrExternalAuditNotFound, "delete external audit", goerr.V("id", id))
	}
	delete(m.externalAudits, id)
	return nil
}

// ListEventsInRange derives calendar events from audits overlapping the range
func (m *Memory) ListEventsInRange(ctx context.Context, rng model.DateRange) ([]model.CalendarEvent, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var events []model.CalendarEvent
	for _, audit := range m.audits {
		if rng.Overlaps(audit.StartDate, audit.EndDate) {
			events = append(events, model.EventFromScheduledAudit(audit))
		}
	}
	for _, audit := range m.externalAudits {
		if rng.Overlaps(audit.StartDate, audit.EndDate) {
			events = append(events, model.EventFromExternalAudit(audit))
		}
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].Start.Equal(events[j].Start) {
			return events[i].ID < events[j].ID
		}
		return events[i].Start.Before(events[j].Start)
	})
	return events, nil
}

// PutFactory stores a factory
func (m *Memory) PutFactory(ctx context.Context, factory *model.Factory) error {
	if factory == nil {
		return goerr.New("factory is nil")
	}
	if factory.ID == "" {
		return goerr.New("factory ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *factory
	m.factories[factory.ID] = &cp
	return nil
}

// GetFactory retrieves a factory by ID
func (m *Memory) GetFactory(ctx context.Context, id types.FactoryID) (*model.Factory, error) {
	if id == "" {
		return nil, goerr.New("factory ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	factory, exists := m.factories[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrFactoryNotFound, "get factory", goerr.V("id", id))
	}
	cp := *factory
	return &cp, nil
}

// ListFactories lists all factories sorted by name
func (m *Memory) ListFactories(ctx context.Context) ([]*model.Factory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	factories := make([]*model.Factory, 0, len(m.factories))
	for _, f := range m.factories {
		cp := *f
		factories = append(factories, &cp)
	}
	sort.Slice(factories, func(i, j int) bool {
		return factories[i].Name < factories[j].Name
	})
	return factories, nil
}

// DeleteFactory removes a factory
func (m *Memory) DeleteFactory(ctx context.Context, id types.FactoryID) error {
	if id == "" {
		return goerr.New("factory ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.factories[id]; !exists {
		return goerr.Wrap(model.ErrFactoryNotFound, "delete factory", goerr.V("id", id))
	}
	delete(m.factories, id)
	return nil
}

// PutProcessType stores a process type
func (m *Memory) PutProcessType(ctx context.Context, pt *model.ProcessType) error {
	if pt == nil {
		return goerr.New("process type is nil")
	}
	if pt.ID == "" {
		return goerr.New("process type ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *pt
	m.processTypes[pt.ID] = &cp
	return nil
}

// ListProcessTypes lists all process types sorted by name
func (m *Memory) ListProcessTypes(ctx context.Context) ([]*model.ProcessType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pts := make([]*model.ProcessType, 0, len(m.processTypes))
	for _, pt := range m.processTypes {
		cp := *pt
		pts = append(pts, &cp)
	}
	sort.Slice(pts, func(i, j int) bool {
		return pts[i].Name < pts[j].Name
	})
	return pts, nil
}

// DeleteProcessType removes a process type
func (m *Memory) DeleteProcessType(ctx context.Context, id types.ProcessTypeID) error {
	if id == "" {
		return goerr.New("process type ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.processTypes[id]; !exists {
		return goerr.Wrap(model.ErrProcessTypeNotFound, "delete process type", goerr.V("id", id))
	}
	delete(m.processTypes, id)
	return nil
}

// PutContact stores a contact person
func (m *Memory) PutContact(ctx context.Context, contact *model.ContactPerson) error {
	if contact == nil {
		return goerr.New("contact is nil")
	}
	if contact.ID == "" {
		return goerr.New("contact ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *contact
	m.contacts[contact.ID] = &cp
	return nil
}

// ListContacts lists all contact people sorted by name
func (m *Memory) ListContacts(ctx context.Context) ([]*model.ContactPerson, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	contacts := make([]*model.ContactPerson, 0, len(m.contacts))
	for _, c := range m.contacts {
		cp := *c
		contacts = append(contacts, &cp)
	}
	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].Name < contacts[j].Name
	})
	return contacts, nil
}

// DeleteContact removes a contact person
func (m *Memory) DeleteContact(ctx context.Context, id types.ContactID) error {
	if id == "" {
		return goerr.New("contact ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.contacts[id]; !exists {
		return goerr.Wrap(model.ErrContactNotFound, "delete contact", goerr.V("id", id))
	}
	delete(m.contacts, id)
	return nil
}

// PutActionPlan stores an action plan
func (m *Memory) PutActionPlan(ctx context.Context, plan *model.ActionPlan) error {
	if plan == nil {
		return goerr.New("action plan is nil")
	}
	if plan.ID == "" {
		return goerr.New("action plan ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *plan
	m.actionPlans[plan.ID] = &cp
	return nil
}

// GetActionPlan retrieves an action plan by ID
func (m *Memory) GetActionPlan(ctx context.Context, id types.ActionPlanID) (*model.ActionPlan, error) {
	if id == "" {
		return nil, goerr.New("action plan ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	plan, exists := m.actionPlans[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrActionPlanNotFound, "get action plan", goerr.V("id", id))
	}
	cp := *plan
	return &cp, nil
}

// ListActionPlansByAudit lists action plans for an audit sorted by due date
func (m *Memory) ListActionPlansByAudit(ctx context.Context, auditID types.AuditID) ([]*model.ActionPlan, error) {
	if err := auditID.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var plans []*model.ActionPlan
	for _, p := range m.actionPlans {
		if p.AuditID == auditID {
			cp := *p
			plans = append(plans, &cp)
		}
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].DueDate.Before(plans[j].DueDate)
	})
	return plans, nil
}

// DeleteActionPlan removes an action plan
func (m *Memory) DeleteActionPlan(ctx context.Context, id types.ActionPlanID) error {
	if id == "" {
		return goerr.New("action plan ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.actionPlans[id]; !exists {
		return goerr.Wrap(model.ErrActionPlanNotFound, "delete action plan", goerr.V("id", id))
	}
	delete(m.actionPlans, id)
	return nil
}

// Close closes the repository (no-op for memory)
func (m *Memory) Close() error {
	return nil
}

// copyTemplate makes a deep copy so callers cannot mutate stored state
func copyTemplate(tmpl *model.AuditTemplate) *model.AuditTemplate {
	cp := *tmpl
	cp.Groups = make([]model.QuestionGroup, len(tmpl.Groups))
	for i, g := range tmpl.Groups {
		gc := g
		gc.Questions = append([]model.Question{}, g.Questions...)
		cp.Groups[i] = gc
	}
	return &cp
}

// copyAudit makes a deep copy including the answer list
func copyAudit(audit *model.ScheduledAudit) *model.ScheduledAudit {
	cp := *audit
	cp.Answers = append([]model.Answer{}, audit.Answers...)
	return &cp
}
