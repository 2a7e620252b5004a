package repository

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"
)

// schema is applied in full on open; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS audit_templates (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_by TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		groups     TEXT NOT NULL DEFAULT '[]'
	)`,
	`CREATE TABLE IF NOT EXISTS scheduled_audits (
		id          INTEGER PRIMARY KEY,
		template_id TEXT NOT NULL,
		title       TEXT NOT NULL,
		factory_id  TEXT NOT NULL,
		division    TEXT NOT NULL DEFAULT '',
		auditor_id  TEXT NOT NULL DEFAULT '',
		start_date  INTEGER NOT NULL,
		end_date    INTEGER NOT NULL,
		status      TEXT NOT NULL,
		answers     TEXT NOT NULL DEFAULT '[]',
		created_by  TEXT NOT NULL DEFAULT '',
		created_at  INTEGER NOT NULL,
		updated_at  INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scheduled_audits_dates
		ON scheduled_audits (start_date, end_date)`,
	`CREATE TABLE IF NOT EXISTS status_histories (
		id         TEXT PRIMARY KEY,
		audit_id   INTEGER NOT NULL,
		status     TEXT NOT NULL,
		changed_by TEXT NOT NULL DEFAULT '',
		changed_at INTEGER NOT NULL,
		note       TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_status_histories_audit
		ON status_histories (audit_id)`,
	`CREATE TABLE IF NOT EXISTS external_audits (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		agency     TEXT NOT NULL,
		factory_id TEXT NOT NULL,
		start_date INTEGER NOT NULL,
		end_date   INTEGER NOT NULL,
		remark     TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_external_audits_dates
		ON external_audits (start_date, end_date)`,
	`CREATE TABLE IF NOT EXISTS factories (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		location   TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS process_types (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS contact_people (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL DEFAULT '',
		phone      TEXT NOT NULL DEFAULT '',
		role       TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS action_plans (
		id          TEXT PRIMARY KEY,
		audit_id    INTEGER NOT NULL,
		question_id TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL,
		owner_id    TEXT NOT NULL DEFAULT '',
		due_date    INTEGER NOT NULL,
		done        INTEGER NOT NULL DEFAULT 0,
		created_at  INTEGER NOT NULL,
		updated_at  INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_action_plans_audit
		ON action_plans (audit_id)`,
	`CREATE TABLE IF NOT EXISTS counters (
		name           TEXT PRIMARY KEY,
		current_number INTEGER NOT NULL
	)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return goerr.Wrap(err, "failed to apply schema statement", goerr.V("stmt", stmt))
		}
	}
	return nil
}
