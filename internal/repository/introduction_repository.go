package repository

import (
	"context"
	"errors"
	"time"

	"portfolio-api/internal/database"

	"github.com/jackc/pgx/v5"
)

// IntroductionID is the fixed identity of the singleton row.
const IntroductionID int64 = 1

type Introduction struct {
	ID          int64
	Content     string
	LastUpdated time.Time
}

type IntroductionRepository interface {
	Find(ctx context.Context) (Introduction, bool, error)
	// EnsureDefault inserts the singleton row if it does not exist yet.
	// Safe under concurrent first reads: the insert is ON CONFLICT DO NOTHING.
	EnsureDefault(ctx context.Context, lastUpdated time.Time) error
	UpdateContent(ctx context.Context, content string, lastUpdated time.Time) error
}

type PostgresIntroductionRepository struct {
	db database.DB
}

func NewPostgresIntroductionRepository(db database.DB) *PostgresIntroductionRepository {
	return &PostgresIntroductionRepository{db: db}
}

func (r *PostgresIntroductionRepository) Find(ctx context.Context) (Introduction, bool, error) {
	var in Introduction
	err := r.db.QueryRow(ctx, `SELECT id, content, last_updated FROM introductions WHERE id = $1`, IntroductionID).
		Scan(&in.ID, &in.Content, &in.LastUpdated)
	if errors.Is(err, pgx.ErrNoRows) {
		return Introduction{}, false, nil
	}
	if err != nil {
		return Introduction{}, false, err
	}
	return in, true, nil
}

func (r *PostgresIntroductionRepository) EnsureDefault(ctx context.Context, lastUpdated time.Time) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO introductions (id, content, last_updated) VALUES ($1, '', $2) ON CONFLICT (id) DO NOTHING`,
		IntroductionID, lastUpdated,
	)
	return err
}

func (r *PostgresIntroductionRepository) UpdateContent(ctx context.Context, content string, lastUpdated time.Time) error {
	_, err := r.db.Exec(
		ctx,
		`UPDATE introductions SET content = $2, last_updated = $3 WHERE id = $1`,
		IntroductionID, content, lastUpdated,
	)
	return err
}
