package repositories

import (
	"context"
	"database/sql"
	"errors"
)

const defaultCredentialKey = "dashboard.credential"

// CredentialRepository persists the dashboard's bearer credential as a
// single row in credential_store, keyed by one well-known name. Absence of
// the row is the "never logged in" signal, not an error.
type CredentialRepository struct {
	DB  *sql.DB
	Key string
}

func (r CredentialRepository) key() string {
	if r.Key != "" {
		return r.Key
	}
	return defaultCredentialKey
}

func (r CredentialRepository) Load(ctx context.Context) (string, error) {
	var v string
	err := r.DB.QueryRowContext(ctx, `
        SELECT v FROM credential_store WHERE k = ?
    `, r.key()).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (r CredentialRepository) Save(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, `
        INSERT INTO credential_store (k, v, updated_at)
        VALUES (?, ?, NOW())
        ON DUPLICATE KEY UPDATE v = VALUES(v), updated_at = NOW()
    `, r.key(), token)
	return err
}

func (r CredentialRepository) Clear(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `
        DELETE FROM credential_store WHERE k = ?
    `, r.key())
	return err
}
