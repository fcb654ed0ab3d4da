// Package session persists assessment sessions in Postgres. Each session is
// keyed by the assessment uuid; writes are idempotent last-write-wins
// upserts so a respondent can resubmit or resume without duplicating rows.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Record is one persisted assessment session.
type Record struct {
	UUID      string
	Answers   json.RawMessage
	Scores    json.RawMessage
	Email     *string
	Name      *string
	UpdatedAt time.Time
}

// Service provides session persistence backed by Postgres.
type Service struct {
	db *sql.DB
}

// NewService creates a new session Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Upsert inserts or replaces the session for rec.UUID. Answers and scores
// always take the incoming value; email and name are only overwritten when
// the incoming value is present, so a later anonymous resubmission does not
// erase an earlier identification.
func (s *Service) Upsert(ctx context.Context, rec Record) (*Record, error) {
	out := &Record{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO assessments (uuid, answers, scores, email, name, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now())
		 ON CONFLICT (uuid) DO UPDATE
		   SET answers    = EXCLUDED.answers,
		       scores     = EXCLUDED.scores,
		       email      = COALESCE(EXCLUDED.email, assessments.email),
		       name       = COALESCE(EXCLUDED.name, assessments.name),
		       updated_at = now()
		 RETURNING uuid, answers, scores, email, name, updated_at`,
		rec.UUID, rec.Answers, rec.Scores, rec.Email, rec.Name,
	).Scan(&out.UUID, &out.Answers, &out.Scores, &out.Email, &out.Name, &out.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert assessment %s: %w", rec.UUID, err)
	}
	return out, nil
}

// FindByUUID retrieves a session by its uuid.
func (s *Service) FindByUUID(ctx context.Context, id string) (*Record, error) {
	out := &Record{}
	err := s.db.QueryRowContext(ctx,
		`SELECT uuid, answers, scores, email, name, updated_at
		 FROM assessments WHERE uuid = $1`,
		id,
	).Scan(&out.UUID, &out.Answers, &out.Scores, &out.Email, &out.Name, &out.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("find assessment %s: %w", id, err)
	}
	return out, nil
}

// FindLatestByEmail retrieves the most recently updated session for an
// email address, for respondents resuming on another device.
func (s *Service) FindLatestByEmail(ctx context.Context, email string) (*Record, error) {
	out := &Record{}
	err := s.db.QueryRowContext(ctx,
		`SELECT uuid, answers, scores, email, name, updated_at
		 FROM assessments WHERE email = $1
		 ORDER BY updated_at DESC LIMIT 1`,
		email,
	).Scan(&out.UUID, &out.Answers, &out.Scores, &out.Email, &out.Name, &out.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("find latest assessment for %s: %w", email, err)
	}
	return out, nil
}

// ListRecent returns the newest sessions, for the editorial dashboard.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT uuid, answers, scores, email, name, updated_at
		 FROM assessments ORDER BY updated_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.UUID, &r.Answers, &r.Scores, &r.Email, &r.Name, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
