package repo

import (
	"context"
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id             UUID PRIMARY KEY,
	txn_id         TEXT NOT NULL DEFAULT '',
	amount         NUMERIC NOT NULL,
	service_id     TEXT NOT NULL,
	quantity       INTEGER NOT NULL,
	url            TEXT NOT NULL,
	user_email     TEXT NOT NULL,
	payment_method TEXT NOT NULL,
	status         TEXT NOT NULL,
	message        TEXT NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS transactions_status_updated_at_idx ON transactions (status, updated_at);

CREATE TABLE IF NOT EXISTS consultation_requests (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	contact    TEXT NOT NULL,
	platform   TEXT NOT NULL,
	message    TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
`

// Migrate creates the record tables if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
