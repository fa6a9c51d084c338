package repository

import (
	"context"
	"errors"

	"portfolio-api/internal/database"

	"github.com/jackc/pgx/v5"
)

type Activity struct {
	ID          int64
	Title       string
	Description string
	Date        string
	ImageURL    string
}

type ActivityRepository interface {
	FindAll(ctx context.Context) ([]Activity, error)
	FindByID(ctx context.Context, id int64) (Activity, bool, error)
	Insert(ctx context.Context, a Activity) (Activity, error)
	Update(ctx context.Context, a Activity) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PostgresActivityRepository struct {
	db database.DB
}

func NewPostgresActivityRepository(db database.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) FindAll(ctx context.Context) ([]Activity, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, description, date, image_url FROM activities ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Activity, 0)
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Date, &a.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresActivityRepository) FindByID(ctx context.Context, id int64) (Activity, bool, error) {
	var a Activity
	err := r.db.QueryRow(ctx, `SELECT id, title, description, date, image_url FROM activities WHERE id = $1`, id).
		Scan(&a.ID, &a.Title, &a.Description, &a.Date, &a.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return Activity{}, false, nil
	}
	if err != nil {
		return Activity{}, false, err
	}
	return a, true, nil
}

func (r *PostgresActivityRepository) Insert(ctx context.Context, a Activity) (Activity, error) {
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO activities (title, description, date, image_url) VALUES ($1, $2, $3, $4) RETURNING id`,
		a.Title, a.Description, a.Date, a.ImageURL,
	).Scan(&a.ID)
	if err != nil {
		return Activity{}, err
	}
	return a, nil
}

func (r *PostgresActivityRepository) Update(ctx context.Context, a Activity) error {
	_, err := r.db.Exec(
		ctx,
		`UPDATE activities SET title = $2, description = $3, date = $4, image_url = $5 WHERE id = $1`,
		a.ID, a.Title, a.Description, a.Date, a.ImageURL,
	)
	return err
}

func (r *PostgresActivityRepository) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
