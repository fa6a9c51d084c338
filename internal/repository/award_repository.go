package repository

import (
	"context"
	"errors"

	"portfolio-api/internal/database"

	"github.com/jackc/pgx/v5"
)

type Award struct {
	ID          int64
	Name        string
	Description string
	Date        string
	ImageURL    string
}

type AwardRepository interface {
	FindAll(ctx context.Context) ([]Award, error)
	FindByID(ctx context.Context, id int64) (Award, bool, error)
	Insert(ctx context.Context, a Award) (Award, error)
	Update(ctx context.Context, a Award) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PostgresAwardRepository struct {
	db database.DB
}

func NewPostgresAwardRepository(db database.DB) *PostgresAwardRepository {
	return &PostgresAwardRepository{db: db}
}

func (r *PostgresAwardRepository) FindAll(ctx context.Context) ([]Award, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description, date, image_url FROM awards ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Award, 0)
	for rows.Next() {
		var a Award
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Date, &a.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAwardRepository) FindByID(ctx context.Context, id int64) (Award, bool, error) {
	var a Award
	err := r.db.QueryRow(ctx, `SELECT id, name, description, date, image_url FROM awards WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.Description, &a.Date, &a.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return Award{}, false, nil
	}
	if err != nil {
		return Award{}, false, err
	}
	return a, true, nil
}

func (r *PostgresAwardRepository) Insert(ctx context.Context, a Award) (Award, error) {
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO awards (name, description, date, image_url) VALUES ($1, $2, $3, $4) RETURNING id`,
		a.Name, a.Description, a.Date, a.ImageURL,
	).Scan(&a.ID)
	if err != nil {
		return Award{}, err
	}
	return a, nil
}

func (r *PostgresAwardRepository) Update(ctx context.Context, a Award) error {
	_, err := r.db.Exec(
		ctx,
		`UPDATE awards SET name = $2, description = $3, date = $4, image_url = $5 WHERE id = $1`,
		a.ID, a.Name, a.Description, a.Date, a.ImageURL,
	)
	return err
}

func (r *PostgresAwardRepository) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM awards WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
