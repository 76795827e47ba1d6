package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresSlot stores the payload as one row per slot name, for deployments
// that want favorites to survive the storefront host.
type PostgresSlot struct {
	db   *sql.DB
	name string
}

func NewPostgresSlot(db *sql.DB, name string) *PostgresSlot {
	return &PostgresSlot{db: db, name: name}
}

func (s *PostgresSlot) Load(ctx context.Context) ([]byte, error) {
	const query = `SELECT payload FROM favorites_slots WHERE name = $1`

	var payload []byte
	err := s.db.QueryRowContext(ctx, query, s.name).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("load slot %q: %w", s.name, err)
	}
	return payload, nil
}

func (s *PostgresSlot) Save(ctx context.Context, data []byte) error {
	const query = `
INSERT INTO favorites_slots (name, payload, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (name) DO UPDATE
SET payload = EXCLUDED.payload, updated_at = NOW()
`
	if _, err := s.db.ExecContext(ctx, query, s.name, data); err != nil {
		return fmt.Errorf("save slot %q: %w", s.name, err)
	}
	return nil
}
