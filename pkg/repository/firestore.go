package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/complia-lab/themis/pkg/domain/interfaces"
	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	templatesCollection      = "audit_templates"
	auditsCollection         = "scheduled_audits"
	historiesCollection      = "status_histories"
	externalAuditsCollection = "external_audits"
	factoriesCollection      = "factories"
	processTypesCollection   = "process_types"
	contactsCollection       = "contact_people"
	actionPlansCollection    = "action_plans"
	countersCollection       = "counters"

	// Document IDs
	auditCounterDocID = "scheduled_audit"

	// Field names
	fieldCurrentNumber = "current_number"
	fieldAuditID       = "auditId"
	fieldStartDate     = "startDate"
	fieldEndDate       = "endDate"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on bad project IDs or missing permissions; an empty
	// collection is fine.
	_, err = client.Collection(auditsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{client: client}, nil
}

// PutTemplate stores an audit template
func (f *Firestore) PutTemplate(ctx context.Context, tmpl *model.AuditTemplate) error {
	if tmpl == nil {
		return goerr.New("template is nil")
	}
	if tmpl.ID == "" {
		return goerr.New("template ID is empty")
	}

	_, err := f.client.Collection(templatesCollection).Doc(tmpl.ID.String()).Set(ctx, tmpl)
	if err != nil {
		return goerr.Wrap(err, "failed to save template to firestore")
	}
	return nil
}

// GetTemplate retrieves an audit template by ID
func (f *Firestore) GetTemplate(ctx context.Context, id types.TemplateID) (*model.AuditTemplate, error) {
	if id == "" {
		return nil, goerr.New("template ID is empty")
	}

	doc, err := f.client.Collection(templatesCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrTemplateNotFound, "get template", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get template from firestore")
	}

	var tmpl model.AuditTemplate
	if err := doc.DataTo(&tmpl); err != nil {
		return nil, goerr.Wrap(err, "failed to decode template")
	}
	return &tmpl, nil
}

// ListTemplates lists all audit templates sorted by creation time
func (f *Firestore) ListTemplates(ctx context.Context) ([]*model.AuditTemplate, error) {
	iter := f.client.Collection(templatesCollection).OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var templates []*model.AuditTemplate
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate templates")
		}

		var tmpl model.AuditTemplate
		if err := doc.DataTo(&tmpl); err != nil {
			return nil, goerr.Wrap(err, "failed to decode template")
		}
		templates = append(templates, &tmpl)
	}
	return templates, nil
}

// DeleteTemplate removes an audit template
func (f *Firestore) DeleteTemplate(ctx context.Context, id types.TemplateID) error {
	if id == "" {
		return goerr.New("template ID is empty")
	}

	docRef := f.client.Collection(templatesCollection).Doc(id.String())
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrTemplateNotFound, "delete template", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check template existence")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete template from firestore")
	}
	return nil
}

// PutScheduledAudit stores a scheduled audit
func (f *Firestore) PutScheduledAudit(ctx context.Context, audit *model.ScheduledAudit) error {
	if audit == nil {
		return goerr.New("audit is nil")
	}
	if err := audit.ID.Validate(); err != nil {
		return err
	}

	_, err := f.client.Collection(auditsCollection).Doc(audit.ID.String()).Set(ctx, audit)
	if err != nil {
		return goerr.Wrap(err, "failed to save audit to firestore")
	}
	return nil
}

// GetScheduledAudit retrieves a scheduled audit by ID
func (f *Firestore) GetScheduledAudit(ctx context.Context, id types.AuditID) (*model.ScheduledAudit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	doc, err := f.client.Collection(auditsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrAuditNotFound, "get audit", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get audit from firestore")
	}

	var audit model.ScheduledAudit
	if err := doc.DataTo(&audit); err != nil {
		return nil, goerr.Wrap(err, "failed to decode audit")
	}
	return &audit, nil
}

// ListScheduledAudits lists all scheduled audits sorted by ID
func (f *Firestore) ListScheduledAudits(ctx context.Context) ([]*model.ScheduledAudit, error) {
	iter := f.client.Collection(auditsCollection).Documents(ctx)
	defer iter.Stop()

	var audits []*model.ScheduledAudit
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate audits")
		}

		var audit model.ScheduledAudit
		if err := doc.DataTo(&audit); err != nil {
			return nil, goerr.Wrap(err, "failed to decode audit")
		}
		audits = append(audits, &audit)
	}
	sort.Slice(audits, func(i, j int) bool {
		return audits[i].ID < audits[j].ID
	})
	return audits, nil
}

// DeleteScheduledAudit removes a scheduled audit
func (f *Firestore) DeleteScheduledAudit(ctx context.Context, id types.AuditID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	docRef := f.client.Collection(auditsCollection).Doc(id.String())
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrAuditNotFound, "delete audit", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check audit existence")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete audit from firestore")
	}
	return nil
}

// GetNextAuditNumber returns the next audit serial number using atomic increment
func (f *Firestore) GetNextAuditNumber(ctx context.Context) (types.AuditID, error) {
	counterDoc := f.client.Collection(countersCollection).Doc(auditCounterDocID)

	var nextNumber types.AuditID
	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(counterDoc)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				nextNumber = 1
				return tx.Set(counterDoc, map[string]any{
					fieldCurrentNumber: int(nextNumber),
				})
			}
			return goerr.Wrap(err, "failed to get counter document")
		}

		currentNumber, err := doc.DataAt(fieldCurrentNumber)
		if err != nil {
			return goerr.Wrap(err, "failed to get current_number field")
		}

		switch v := currentNumber.(type) {
		case int64:
			nextNumber = types.AuditID(v) + 1
		case int:
			nextNumber = types.AuditID(v) + 1
		default:
			return goerr.New("unexpected type for current_number")
		}

		return tx.Update(counterDoc, []firestore.Update{
			{Path: fieldCurrentNumber, Value: int(nextNumber)},
		})
	})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to get next audit number")
	}

	return nextNumber, nil
}

// AddStatusHistory appends a status history entry
func (f *Firestore) AddStatusHistory(ctx context.Context, history *model.StatusHistory) error {
	if history == nil {
		return goerr.New("status history is nil")
	}
	if err := history.ID.Validate(); err != nil {
		return err
	}

	_, err := f.client.Collection(historiesCollection).Doc(history.ID.String()).Set(ctx, history)
	if err != nil {
		return goerr.Wrap(err, "failed to save status history to firestore")
	}
	return nil
}

// ListStatusHistories lists status history entries in change order
func (f *Firestore) ListStatusHistories(ctx context.Context, auditID types.AuditID) ([]*model.StatusHistory, error) {
	if err := auditID.Validate(); err != nil {
		return nil, err
	}

	iter := f.client.Collection(historiesCollection).
		Where(fieldAuditID, "==", auditID.Int()).
		Documents(ctx)
	defer iter.Stop()

	var histories []*model.StatusHistory
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate status histories")
		}

		var h model.StatusHistory
		if err := doc.DataTo(&h); err != nil {
			return nil, goerr.Wrap(err, "failed to decode status history")
		}
		histories = append(histories, &h)
	}
	sort.Slice(histories, func(i, j int) bool {
		return histories[i].ChangedAt.Before(histories[j].ChangedAt)
	})
	return histories, nil
}

// PutExternalAudit stores an external audit
func (f *Firestore) PutExternalAudit(ctx context.Context, audit *model.ExternalAudit) error {
	if audit == nil {
		return goerr.New("external audit is nil")
	}
	if audit.ID == "" {
		return goerr.New("external audit ID is empty")
	}

	_, err := f.client.Collection(externalAuditsCollection).Doc(audit.ID.String()).Set(ctx, audit)
	if err != nil {
		return goerr.Wrap(err, "failed to save external audit to firestore")
	}
	return nil
}

// GetExternalAudit retrieves an external audit by ID
func (f *Firestore) GetExternalAudit(ctx context.Context, id types.ExternalAuditID) (*model.ExternalAudit, error) {
	if id == "" {
		return nil, goerr.New("external audit ID is empty")
	}

	doc, err := f.client.Collection(externalAuditsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrExternalAuditNotFound, "get external audit", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get external audit from firestore")
	}

	var audit model.ExternalAudit
	if err := doc.DataTo(&audit); err != nil {
		return nil, goerr.Wrap(err, "failed to decode external audit")
	}
	return &audit, nil
}

// ListExternalAudits lists all external audits sorted by start date
func (f *Firestore) ListExternalAudits(ctx context.Context) ([]*model.ExternalAudit, error) {
	iter := f.client.Collection(externalAuditsCollection).OrderBy(fieldStartDate, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var audits []*model.ExternalAudit
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate external audits")
		}

		var audit model.ExternalAudit
		if err := doc.DataTo(&audit); err != nil {
			return nil, goerr.Wrap(err, "failed to decode external audit")
		}
		audits = append(audits, &audit)
	}
	return audits, nil
}

// DeleteExternalAudit removes an external audit
func (f *Firestore) DeleteExternalAudit(ctx context.Context, id types.ExternalAuditID) error {
	if id == "" {
		return goerr.New("external audit ID is empty")
	}

	docRef := f.client.Collection(externalAuditsCollection).Doc(id.String())
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrExternalAuditNotFound, "delete external audit", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check external audit existence")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete external audit from firestore")
	}
	return nil
}

// ListEventsInRange derives calendar events from audits overlapping the range.
// Firestore cannot express an overlap query on two fields in one filter, so
// this filters on startDate <= range end and drops non-overlapping audits
// client-side.
func (f *Firestore) ListEventsInRange(ctx context.Context, rng model.DateRange) ([]model.CalendarEvent, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	var events []model.CalendarEvent

	auditIter := f.client.Collection(auditsCollection).
		Where(fieldStartDate, "<=", rng.End).
		Documents(ctx)
	defer auditIter.Stop()
	for {
		doc, err := auditIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate audits for calendar")
		}

		var audit model.ScheduledAudit
		if err := doc.DataTo(&audit); err != nil {
			return nil, goerr.Wrap(err, "failed to decode audit")
		}
		if rng.Overlaps(audit.StartDate, audit.EndDate) {
			events = append(events, model.EventFromScheduledAudit(&audit))
		}
	}

	extIter := f.client.Collection(externalAuditsCollection).
		Where(fieldStartDate, "<=", rng.End).
		Documents(ctx)
	defer extIter.Stop()
	for {
		doc, err := extIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate external audits for calendar")
		}

		var audit model.ExternalAudit
		if err := doc.DataTo(&audit); err != nil {
			return nil, goerr.Wrap(err, "failed to decode external audit")
		}
		if rng.Overlaps(audit.StartDate, audit.EndDate) {
			events = append(events, model.EventFromExternalAudit(&audit))
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
func (f *Firestore) PutFactory(ctx context.Context, factory *model.Factory) error {
	if factory == nil {
		return goerr.New("factory is nil")
	}
	if factory.ID == "" {
		return goerr.New("factory ID is empty")
	}

	_, err := f.client.Collection(factoriesCollection).Doc(factory.ID.String()).Set(ctx, factory)
	if err != nil {
		return goerr.Wrap(err, "failed to save factory to firestore")
	}
	return nil
}

// GetFactory retrieves a factory by ID
func (f *Firestore) GetFactory(ctx context.Context, id types.FactoryID) (*model.Factory, error) {
	if id == "" {
		return nil, goerr.New("factory ID is empty")
	}

	doc, err := f.client.Collection(factoriesCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrFactoryNotFound, "get factory", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get factory from firestore")
	}

	var factory model.Factory
	if err := doc.DataTo(&factory); err != nil {
		return nil, goerr.Wrap(err, "failed to decode factory")
	}
	return &factory, nil
}

// ListFactories lists all factories sorted by name
func (f *Firestore) ListFactories(ctx context.Context) ([]*model.Factory, error) {
	iter := f.client.Collection(factoriesCollection).OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var factories []*model.Factory
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate factories")
		}

		var factory model.Factory
		if err := doc.DataTo(&factory); err != nil {
			return nil, goerr.Wrap(err, "failed to decode factory")
		}
		factories = append(factories, &factory)
	}
	return factories, nil
}

// DeleteFactory removes a factory
func (f *Firestore) DeleteFactory(ctx context.Context, id types.FactoryID) error {
	if id == "" {
		return goerr.New("factory ID is empty")
	}

	docRef := f.client.Collection(factoriesCollection).Doc(id.String())
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrFactoryNotFound, "delete factory", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check factory existence")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete factory from firestore")
	}
	return nil
}

// PutProcessType stores a process type
func (f *Firestore) PutProcessType(ctx context.Context, pt *model.ProcessType) error {
	if pt == nil {
		return goerr.New("process type is nil")
	}
	if pt.ID == "" {
		return goerr.New("process type ID is empty")
	}

	_, err := f.client.Collection(processTypesCollection).Doc(pt.ID.String()).Set(ctx, pt)
	if err != nil {
		return goerr.Wrap(err, "failed to save process type to firestore")
	}
	return nil
}

// ListProcessTypes lists all process types sorted by name
func (f *Firestore) ListProcessTypes(ctx context.Context) ([]*model.ProcessType, error) {
	iter := f.client.Collection(processTypesCollection).OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var pts []*model.ProcessType
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate process types")
		}

		var pt model.ProcessType
		if err := doc.DataTo(&pt); err != nil {
			return nil, goerr.Wrap(err, "failed to decode process type")
		}
		pts = append(pts, &pt)
	}
	return pts, nil
}

// DeleteProcessType removes a process type
func (f *Firestore) DeleteProcessType(ctx context.Context, id types.ProcessTypeID) error {
	if id == "" {
		return goerr.New("process type ID is empty")
	}

	docRef := f.client.Collection(processTypesCollection).Doc(id.String())
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrProcessTypeNotFound, "delete process type", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check process type existence")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete process type from firestore")
	}
	return nil
}

// PutContact stores a contact person
func (f *Firestore) PutContact(ctx context.Context, contact *model.ContactPerson) error {
	if contact == nil {
		return goerr.New("contact is nil")
	}
	if contact.ID == "" {
		return goerr.New("contact ID is empty")
	}

	_, err := f.client.Collection(contactsCollection).Doc(contact.ID.String()).Set(ctx, contact)
	if err != nil {
		return goerr.Wrap(err, "failed to save contact to firestore")
	}
	return nil
}

// ListContacts lists all contact people sorted by name
func (f *Firestore) ListContacts(ctx context.Context) ([]*model.ContactPerson, error) {
	iter := f.client.Collection(contactsCollection).OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var contacts []*model.ContactPerson
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate contacts")
		}

		var contact model.ContactPerson
		if err := doc.DataTo(&contact); err != nil {
			return nil, goerr.Wrap(err, "failed to decode contact")
		}
		contacts = append(contacts, &contact)
	}
	return contacts, nil
}

// DeleteContact removes a contact person
func (f *Firestore) DeleteContact(ctx context.Context, id types.ContactID) error {
	if id == "" {
		return goerr.New("contact ID is empty")
	}

	docRef := f.client.Collection(contactsCollection).Doc(id.String())
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrContactNotFound, "delete contact", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check contact existence")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete contact from firestore")
	}
	return nil
}

// PutActionPlan stores an action plan
func (f *Firestore) PutActionPlan(ctx context.Context, plan *model.ActionPlan) error {
	if plan == nil {
		return goerr.New("action plan is nil")
	}
	if plan.ID == "" {
		return goerr.New("action plan ID is empty")
	}

	_, err := f.client.Collection(actionPlansCollection).Doc(plan.ID.String()).Set(ctx, plan)
	if err != nil {
		return goerr.Wrap(err, "failed to save action plan to firestore")
	}
	return nil
}

// GetActionPlan retrieves an action plan by ID
func (f *Firestore) GetActionPlan(ctx context.Context, id types.ActionPlanID) (*model.ActionPlan, error) {
	if id == "" {
		return nil, goerr.New("action plan ID is empty")
	}

	doc, err := f.client.Collection(actionPlansCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrActionPlanNotFound, "get action plan", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get action plan from firestore")
	}

	var plan model.ActionPlan
	if err := doc.DataTo(&plan); err != nil {
		return nil, goerr.Wrap(err, "failed to decode action plan")
	}
	return &plan, nil
}

// ListActionPlansByAudit lists action plans for an audit sorted by due date
func (f *Firestore) ListActionPlansByAudit(ctx context.Context, auditID types.AuditID) ([]*model.ActionPlan, error) {
	if err := auditID.Validate(); err != nil {
		return nil, err
	}

	iter := f.client.Collection(actionPlansCollection).
		Where(fieldAuditID, "==", auditID.Int()).
		Documents(ctx)
	defer iter.Stop()

	var plans []*model.ActionPlan
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate action plans")
		}

		var plan model.ActionPlan
		if err := doc.DataTo(&plan); err != nil {
			return nil, goerr.Wrap(err, "failed to decode action plan")
		}
		plans = append(plans, &plan)
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].DueDate.Before(plans[j].DueDate)
	})
	return plans, nil
}

// DeleteActionPlan removes an action plan
func (f *Firestore) DeleteActionPlan(ctx context.Context, id types.ActionPlanID) error {
	if id == "" {
		return goerr.New("action plan ID is empty")
	}

	docRef := f.client.Collection(actionPlansCollection).Doc(id.String())
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrActionPlanNotFound, "delete action plan", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check action plan existence")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete action plan from firestore")
	}
	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	return f.client.Close()
}
