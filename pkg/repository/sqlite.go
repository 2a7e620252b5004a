package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/complia-lab/themis/pkg/domain/interfaces"
	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"

	_ "modernc.org/sqlite"
)

// SQLite implements Repository interface with an embedded SQLite database.
// Nested structures (template groups, audit answers) are stored as JSON
// columns; timestamps as unix nanoseconds.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens a SQLite repository at the given path. ":memory:" uses
// an in-memory database. WAL mode and foreign keys are enabled and the
// schema is migrated on open.
func NewSQLite(ctx context.Context, path string) (interfaces.Repository, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, goerr.Wrap(err, "failed to create database directory", goerr.V("dir", dir))
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", path))
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to set WAL mode")
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to enable foreign keys")
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to migrate schema")
	}

	return &SQLite{db: db}, nil
}

// PutTemplate stores an audit template
func (s *SQLite) PutTemplate(ctx context.Context, tmpl *model.AuditTemplate) error {
	if tmpl == nil {
		return goerr.New("template is nil")
	}
	if tmpl.ID == "" {
		return goerr.New("template ID is empty")
	}

	groups, err := json.Marshal(tmpl.Groups)
	if err != nil {
		return goerr.Wrap(err, "failed to encode template groups")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO audit_templates (id, name, created_by, created_at, updated_at, groups)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			updated_at = excluded.updated_at,
			groups = excluded.groups`,
		tmpl.ID.String(), tmpl.Name, tmpl.CreatedBy,
		tmpl.CreatedAt.UnixNano(), tmpl.UpdatedAt.UnixNano(), string(groups))
	if err != nil {
		return goerr.Wrap(err, "failed to save template")
	}
	return nil
}

// GetTemplate retrieves an audit template by ID
func (s *SQLite) GetTemplate(ctx context.Context, id types.TemplateID) (*model.AuditTemplate, error) {
	if id == "" {
		return nil, goerr.New("template ID is empty")
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_by, created_at, updated_at, groups
		FROM audit_templates WHERE id = ?`, id.String())
	tmpl, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return nil, goerr.Wrap(model.ErrTemplateNotFound, "get template", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get template")
	}
	return tmpl, nil
}

// ListTemplates lists all audit templates sorted by creation time
func (s *SQLite) ListTemplates(ctx context.Context) ([]*model.AuditTemplate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_by, created_at, updated_at, groups
		FROM audit_templates ORDER BY created_at`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query templates")
	}
	defer rows.Close()

	var templates []*model.AuditTemplate
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan template")
		}
		templates = append(templates, tmpl)
	}
	return templates, rows.Err()
}

// DeleteTemplate removes an audit template
func (s *SQLite) DeleteTemplate(ctx context.Context, id types.TemplateID) error {
	if id == "" {
		return goerr.New("template ID is empty")
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM audit_templates WHERE id = ?`, id.String())
	if err != nil {
		return goerr.Wrap(err, "failed to delete template")
	}
	return requireAffected(res, model.ErrTemplateNotFound)
}

// PutScheduledAudit stores a scheduled audit
func (s *SQLite) PutScheduledAudit(ctx context.Context, audit *model.ScheduledAudit) error {
	if audit == nil {
		return goerr.New("audit is nil")
	}
	if err := audit.ID.Validate(); err != nil {
		return err
	}

	answers, err := json.Marshal(audit.Answers)
	if err != nil {
		return goerr.Wrap(err, "failed to encode answers")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO scheduled_audits
			(id, template_id, title, factory_id, division, auditor_id,
			 start_date, end_date, status, answers, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			template_id = excluded.template_id,
			title = excluded.title,
			factory_id = excluded.factory_id,
			division = excluded.division,
			auditor_id = excluded.auditor_id,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			status = excluded.status,
			answers = excluded.answers,
			updated_at = excluded.updated_at`,
		audit.ID.Int(), audit.TemplateID.String(), audit.Title,
		audit.FactoryID.String(), audit.Division, audit.AuditorID.String(),
		audit.StartDate.UnixNano(), audit.EndDate.UnixNano(),
		audit.Status.String(), string(answers), audit.CreatedBy,
		audit.CreatedAt.UnixNano(), audit.UpdatedAt.UnixNano())
	if err != nil {
		return goerr.Wrap(err, "failed to save audit")
	}
	return nil
}

// GetScheduledAudit retrieves a scheduled audit by ID
func (s *SQLite) GetScheduledAudit(ctx context.Context, id types.AuditID) (*model.ScheduledAudit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, template_id, title, factory_id, division, auditor_id,
		       start_date, end_date, status, answers, created_by, created_at, updated_at
		FROM scheduled_audits WHERE id = ?`, id.Int())
	audit, err := scanAudit(row)
	if err == sql.ErrNoRows {
		return nil, goerr.Wrap(model.ErrAuditNotFound, "get audit", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get audit")
	}
	return audit, nil
}

// ListScheduledAudits lists all scheduled audits sorted by ID
func (s *SQLite) ListScheduledAudits(ctx context.Context) ([]*model.ScheduledAudit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, template_id, title, factory_id, division, auditor_id,
		       start_date, end_date, status, answers, created_by, created_at, updated_at
		FROM scheduled_audits ORDER BY id`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query audits")
	}
	defer rows.Close()

	var audits []*model.ScheduledAudit
	for rows.Next() {
		audit, err := scanAudit(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan audit")
		}
		audits = append(audits, audit)
	}
	return audits, rows.Err()
}

// DeleteScheduledAudit removes a scheduled audit and its histories
func (s *SQLite) DeleteScheduledAudit(ctx context.Context, id types.AuditID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM status_histories WHERE audit_id = ?`, id.Int()); err != nil {
		return goerr.Wrap(err, "failed to delete audit histories")
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM scheduled_audits WHERE id = ?`, id.Int())
	if err != nil {
		return goerr.Wrap(err, "failed to delete audit")
	}
	return requireAffected(res, model.ErrAuditNotFound)
}

// GetNextAuditNumber allocates the next audit serial number
func (s *SQLite) GetNextAuditNumber(ctx context.Context) (types.AuditID, error) {
	var next int
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO counters (name, current_number) VALUES ('scheduled_audit', 1)
		ON CONFLICT (name) DO UPDATE SET current_number = current_number + 1
		RETURNING current_number`).Scan(&next)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to get next audit number")
	}
	return types.AuditID(next), nil
}

// AddStatusHistory appends a status history entry
func (s *SQLite) AddStatusHistory(ctx context.Context, history *model.StatusHistory) error {
	if history == nil {
		return goerr.New("status history is nil")
	}
	if err := history.ID.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO status_histories (id, audit_id, status, changed_by, changed_at, note)
		VALUES (?, ?, ?, ?, ?, ?)`,
		history.ID.String(), history.AuditID.Int(), history.Status.String(),
		history.ChangedBy, history.ChangedAt.UnixNano(), history.Note)
	if err != nil {
		return goerr.Wrap(err, "failed to save status history")
	}
	return nil
}

// ListStatusHistories lists status history entries in change order
func (s *SQLite) ListStatusHistories(ctx context.Context, auditID types.AuditID) ([]*model.StatusHistory, error) {
	if err := auditID.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, audit_id, status, changed_by, changed_at, note
		FROM status_histories WHERE audit_id = ? ORDER BY changed_at`, auditID.Int())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query status histories")
	}
	defer rows.Close()

	var histories []*model.StatusHistory
	for rows.Next() {
		var (
			h         model.StatusHistory
			id        string
			auditID   int
			status    string
			changedAt int64
		)
		if err := rows.Scan(&id, &auditID, &status, &h.ChangedBy, &changedAt, &h.Note); err != nil {
			return nil, goerr.Wrap(err, "failed to scan status history")
		}
		h.ID = types.StatusHistoryID(id)
		h.AuditID = types.AuditID(auditID)
		h.Status = types.AuditStatus(status)
		h.ChangedAt = time.Unix(0, changedAt)
		histories = append(histories, &h)
	}
	return histories, rows.Err()
}

// PutExternalAudit stores an external audit
func (s *SQLite) PutExternalAudit(ctx context.Context, audit *model.ExternalAudit) error {
	if audit == nil {
		return goerr.New("external audit is nil")
	}
	if audit.ID == "" {
		return goerr.New("external audit ID is empty")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO external_audits
			(id, title, agency, factory_id, start_date, end_date, remark, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			agency = excluded.agency,
			factory_id = excluded.factory_id,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			remark = excluded.remark,
			updated_at = excluded.updated_at`,
		audit.ID.String(), audit.Title, audit.Agency, audit.FactoryID.String(),
		audit.StartDate.UnixNano(), audit.EndDate.UnixNano(), audit.Remark,
		audit.CreatedAt.UnixNano(), audit.UpdatedAt.UnixNano())
	if err != nil {
		return goerr.Wrap(err, "failed to save external audit")
	}
	return nil
}

// GetExternalAudit retrieves an external audit by ID
func (s *SQLite) GetExternalAudit(ctx context.Context, id types.ExternalAuditID) (*model.ExternalAudit, error) {
	if id == "" {
		return nil, goerr.New("external audit ID is empty")
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, agency, factory_id, start_date, end_date, remark, created_at, updated_at
		FROM external_audits WHERE id = ?`, id.String())
	audit, err := scanExternalAudit(row)
	if err == sql.ErrNoRows {
		return nil, goerr.Wrap(model.ErrExternalAuditNotFound, "get external audit", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get external audit")
	}
	return audit, nil
}

// ListExternalAudits lists all external audits sorted by start date
func (s *SQLite) ListExternalAudits(ctx context.Context) ([]*model.ExternalAudit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, agency, factory_id, start_date, end_date, remark, created_at, updated_at
		FROM external_audits ORDER BY start_date`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query external audits")
	}
	defer rows.Close()

	var audits []*model.ExternalAudit
	for rows.Next() {
		audit, err := scanExternalAudit(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan external audit")
		}
		audits = append(audits, audit)
	}
	return audits, rows.Err()
}

// DeleteExternalAudit removes an external audit
func (s *SQLite) DeleteExternalAudit(ctx context.Context, id types.ExternalAuditID) error {
	if id == "" {
		return goerr.New("external audit ID is empty")
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM external_audits WHERE id = ?`, id.String())
	if err != nil {
		return goerr.Wrap(err, "failed to delete external audit")
	}
	return requireAffected(res, model.ErrExternalAuditNotFound)
}

// ListEventsInRange derives calendar events from audits overlapping the range
func (s *SQLite) ListEventsInRange(ctx context.Context, rng model.DateRange) ([]model.CalendarEvent, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	var events []model.CalendarEvent

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, template_id, title, factory_id, division, auditor_id,
		       start_date, end_date, status, answers, created_by, created_at, updated_at
		FROM scheduled_audits
		WHERE start_date <= ? AND end_date >= ?
		ORDER BY start_date`, rng.End.UnixNano(), rng.Start.UnixNano())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query audits for calendar")
	}
	defer rows.Close()
	for rows.Next() {
		audit, err := scanAudit(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan audit")
		}
		events = append(events, model.EventFromScheduledAudit(audit))
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate audits for calendar")
	}

	extRows, err := s.db.QueryContext(ctx, `
		SELECT id, title, agency, factory_id, start_date, end_date, remark, created_at, updated_at
		FROM external_audits
		WHERE start_date <= ? AND end_date >= ?
		ORDER BY start_date`, rng.End.UnixNano(), rng.Start.UnixNano())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query external audits for calendar")
	}
	defer extRows.Close()
	for extRows.Next() {
		audit, err := scanExternalAudit(extRows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan external audit")
		}
		events = append(events, model.EventFromExternalAudit(audit))
	}
	return events, extRows.Err()
}

// PutFactory stores a factory
func (s *SQLite) PutFactory(ctx context.Context, factory *model.Factory) error {
	if factory == nil {
		return goerr.New("factory is nil")
	}
	if factory.ID == "" {
		return goerr.New("factory ID is empty")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO factories (id, name, location, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			location = excluded.location`,
		factory.ID.String(), factory.Name, factory.Location, factory.CreatedAt.UnixNano())
	if err != nil {
		return goerr.Wrap(err, "failed to save factory")
	}
	return nil
}

// GetFactory retrieves a factory by ID
func (s *SQLite) GetFactory(ctx context.Context, id types.FactoryID) (*model.Factory, error) {
	if id == "" {
		return nil, goerr.New("factory ID is empty")
	}

	var (
		factory   model.Factory
		fid       string
		createdAt int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, location, created_at FROM factories WHERE id = ?`,
		id.String()).Scan(&fid, &factory.Name, &factory.Location, &createdAt)
	if err == sql.ErrNoRows {
		return nil, goerr.Wrap(model.ErrFactoryNotFound, "get factory", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get factory")
	}
	factory.ID = types.FactoryID(fid)
	factory.CreatedAt = time.Unix(0, createdAt)
	return &factory, nil
}

// ListFactories lists all factories sorted by name
func (s *SQLite) ListFactories(ctx context.Context) ([]*model.Factory, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, location, created_at FROM factories ORDER BY name`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query factories")
	}
	defer rows.Close()

	var factories []*model.Factory
	for rows.Next() {
		var (
			factory   model.Factory
			id        string
			createdAt int64
		)
		if err := rows.Scan(&id, &factory.Name, &factory.Location, &createdAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan factory")
		}
		factory.ID = types.FactoryID(id)
		factory.CreatedAt = time.Unix(0, createdAt)
		factories = append(factories, &factory)
	}
	return factories, rows.Err()
}

// DeleteFactory removes a factory
func (s *SQLite) DeleteFactory(ctx context.Context, id types.FactoryID) error {
	if id == "" {
		return goerr.New("factory ID is empty")
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM factories WHERE id = ?`, id.String())
	if err != nil {
		return goerr.Wrap(err, "failed to delete factory")
	}
	return requireAffected(res, model.ErrFactoryNotFound)
}

// PutProcessType stores a process type
func (s *SQLite) PutProcessType(ctx context.Context, pt *model.ProcessType) error {
	if pt == nil {
		return goerr.New("process type is nil")
	}
	if pt.ID == "" {
		return goerr.New("process type ID is empty")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO process_types (id, name, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name`,
		pt.ID.String(), pt.Name, pt.CreatedAt.UnixNano())
	if err != nil {
		return goerr.Wrap(err, "failed to save process type")
	}
	return nil
}

// ListProcessTypes lists all process types sorted by name
func (s *SQLite) ListProcessTypes(ctx context.Context) ([]*model.ProcessType, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at FROM process_types ORDER BY name`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query process types")
	}
	defer rows.Close()

	var pts []*model.ProcessType
	for rows.Next() {
		var (
			pt        model.ProcessType
			id        string
			createdAt int64
		)
		if err := rows.Scan(&id, &pt.Name, &createdAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan process type")
		}
		pt.ID = types.ProcessTypeID(id)
		pt.CreatedAt = time.Unix(0, createdAt)
		pts = append(pts, &pt)
	}
	return pts, rows.Err()
}

// DeleteProcessType removes a process type
func (s *SQLite) DeleteProcessType(ctx context.Context, id types.ProcessTypeID) error {
	if id == "" {
		return goerr.New("process type ID is empty")
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM process_types WHERE id = ?`, id.String())
	if err != nil {
		return goerr.Wrap(err, "failed to delete process type")
	}
	return requireAffected(res, model.ErrProcessTypeNotFound)
}

// PutContact stores a contact person
func (s *SQLite) PutContact(ctx context.Context, contact *model.ContactPerson) error {
	if contact == nil {
		return goerr.New("contact is nil")
	}
	if contact.ID == "" {
		return goerr.New("contact ID is empty")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_people (id, name, email, phone, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			phone = excluded.phone,
			role = excluded.role`,
		contact.ID.String(), contact.Name, contact.Email, contact.Phone,
		contact.Role, contact.CreatedAt.UnixNano())
	if err != nil {
		return goerr.Wrap(err, "failed to save contact")
	}
	return nil
}

// ListContacts lists all contact people sorted by name
func (s *SQLite) ListContacts(ctx context.Context) ([]*model.ContactPerson, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, phone, role, created_at FROM contact_people ORDER BY name`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query contacts")
	}
	defer rows.Close()

	var contacts []*model.ContactPerson
	for rows.Next() {
		var (
			contact   model.ContactPerson
			id        string
			createdAt int64
		)
		if err := rows.Scan(&id, &contact.Name, &contact.Email, &contact.Phone, &contact.Role, &createdAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan contact")
		}
		contact.ID = types.ContactID(id)
		contact.CreatedAt = time.Unix(0, createdAt)
		contacts = append(contacts, &contact)
	}
	return contacts, rows.Err()
}

// DeleteContact removes a contact person
func (s *SQLite) DeleteContact(ctx context.Context, id types.ContactID) error {
	if id == "" {
		return goerr.New("contact ID is empty")
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM contact_people WHERE id = ?`, id.String())
	if err != nil {
		return goerr.Wrap(err, "failed to delete contact")
	}
	return requireAffected(res, model.ErrContactNotFound)
}

// PutActionPlan stores an action plan
func (s *SQLite) PutActionPlan(ctx context.Context, plan *model.ActionPlan) error {
	if plan == nil {
		return goerr.New("action plan is nil")
	}
	if plan.ID == "" {
		return goerr.New("action plan ID is empty")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO action_plans
			(id, audit_id, question_id, description, owner_id, due_date, done, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			description = excluded.description,
			owner_id = excluded.owner_id,
			due_date = excluded.due_date,
			done = excluded.done,
			updated_at = excluded.updated_at`,
		plan.ID.String(), plan.AuditID.Int(), plan.QuestionID.String(),
		plan.Description, plan.OwnerID.String(), plan.DueDate.UnixNano(),
		plan.Done, plan.CreatedAt.UnixNano(), plan.UpdatedAt.UnixNano())
	if err != nil {
		return goerr.Wrap(err, "failed to save action plan")
	}
	return nil
}

// GetActionPlan retrieves an action plan by ID
func (s *SQLite) GetActionPlan(ctx context.Context, id types.ActionPlanID) (*model.ActionPlan, error) {
	if id == "" {
		return nil, goerr.New("action plan ID is empty")
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, audit_id, question_id, description, owner_id, due_date, done, created_at, updated_at
		FROM action_plans WHERE id = ?`, id.String())
	plan, err := scanActionPlan(row)
	if err == sql.ErrNoRows {
		return nil, goerr.Wrap(model.ErrActionPlanNotFound, "get action plan", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get action plan")
	}
	return plan, nil
}

// ListActionPlansByAudit lists action plans for an audit sorted by due date
func (s *SQLite) ListActionPlansByAudit(ctx context.Context, auditID types.AuditID) ([]*model.ActionPlan, error) {
	if err := auditID.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, audit_id, question_id, description, owner_id, due_date, done, created_at, updated_at
		FROM action_plans WHERE audit_id = ? ORDER BY due_date`, auditID.Int())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query action plans")
	}
	defer rows.Close()

	var plans []*model.ActionPlan
	for rows.Next() {
		plan, err := scanActionPlan(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan action plan")
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

// DeleteActionPlan removes an action plan
func (s *SQLite) DeleteActionPlan(ctx context.Context, id types.ActionPlanID) error {
	if id == "" {
		return goerr.New("action plan ID is empty")
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM action_plans WHERE id = ?`, id.String())
	if err != nil {
		return goerr.Wrap(err, "failed to delete action plan")
	}
	return requireAffected(res, model.ErrActionPlanNotFound)
}

// Close closes the database
func (s *SQLite) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (*model.AuditTemplate, error) {
	var (
		tmpl                 model.AuditTemplate
		id                   string
		createdAt, updatedAt int64
		groups               string
	)
	if err := row.Scan(&id, &tmpl.Name, &tmpl.CreatedBy, &createdAt, &updatedAt, &groups); err != nil {
		return nil, err
	}
	tmpl.ID = types.TemplateID(id)
	tmpl.CreatedAt = time.Unix(0, createdAt)
	tmpl.UpdatedAt = time.Unix(0, updatedAt)
	if err := json.Unmarshal([]byte(groups), &tmpl.Groups); err != nil {
		return nil, goerr.Wrap(err, "failed to decode template groups")
	}
	return &tmpl, nil
}

func scanAudit(row rowScanner) (*model.ScheduledAudit, error) {
	var (
		audit                                      model.ScheduledAudit
		id                                         int
		templateID, factoryID, auditorID, status   string
		startDate, endDate, createdAt, updatedAt   int64
		answers                                    string
	)
	if err := row.Scan(&id, &templateID, &audit.Title, &factoryID, &audit.Division,
		&auditorID, &startDate, &endDate, &status, &answers,
		&audit.CreatedBy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	audit.ID = types.AuditID(id)
	audit.TemplateID = types.TemplateID(templateID)
	audit.FactoryID = types.FactoryID(factoryID)
	audit.AuditorID = types.ContactID(auditorID)
	audit.Status = types.AuditStatus(status)
	audit.StartDate = time.Unix(0, startDate)
	audit.EndDate = time.Unix(0, endDate)
	audit.CreatedAt = time.Unix(0, createdAt)
	audit.UpdatedAt = time.Unix(0, updatedAt)
	if err := json.Unmarshal([]byte(answers), &audit.Answers); err != nil {
		return nil, goerr.Wrap(err, "failed to decode answers")
	}
	return &audit, nil
}

func scanExternalAudit(row rowScanner) (*model.ExternalAudit, error) {
	var (
		audit                                    model.ExternalAudit
		id, factoryID                            string
		startDate, endDate, createdAt, updatedAt int64
	)
	if err := row.Scan(&id, &audit.Title, &audit.Agency, &factoryID,
		&startDate, &endDate, &audit.Remark, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	audit.ID = types.ExternalAuditID(id)
	audit.FactoryID = types.FactoryID(factoryID)
	audit.StartDate = time.Unix(0, startDate)
	audit.EndDate = time.Unix(0, endDate)
	audit.CreatedAt = time.Unix(0, createdAt)
	audit.UpdatedAt = time.Unix(0, updatedAt)
	return &audit, nil
}

func scanActionPlan(row rowScanner) (*model.ActionPlan, error) {
	var (
		plan                         model.ActionPlan
		id, questionID, ownerID      string
		auditID                      int
		dueDate, createdAt, updatedAt int64
	)
	if err := row.Scan(&id, &auditID, &questionID, &plan.Description, &ownerID,
		&dueDate, &plan.Done, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	plan.ID = types.ActionPlanID(id)
	plan.AuditID = types.AuditID(auditID)
	plan.QuestionID = types.QuestionID(questionID)
	plan.OwnerID = types.ContactID(ownerID)
	plan.DueDate = time.Unix(0, dueDate)
	plan.CreatedAt = time.Unix(0, createdAt)
	plan.UpdatedAt = time.Unix(0, updatedAt)
	return &plan, nil
}

// requireAffected converts a zero-row mutation into a not-found error
func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to read affected rows")
	}
	if n == 0 {
		return notFound
	}
	return nil
}
