package repository

import (
	"context"
	"errors"

	"portfolio-api/internal/database"

	"github.com/jackc/pgx/v5"
)

type Certification struct {
	ID          int64
	Name        string
	Description string
	Date        string
	ImageURL    string
}

type CertificationRepository interface {
	FindAll(ctx context.Context) ([]Certification, error)
	FindByID(ctx context.Context, id int64) (Certification, bool, error)
	Insert(ctx context.Context, c Certification) (Certification, error)
	Update(ctx context.Context, c Certification) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PostgresCertificationRepository struct {
	db database.DB
}

func NewPostgresCertificationRepository(db database.DB) *PostgresCertificationRepository {
	return &PostgresCertificationRepository{db: db}
}

func (r *PostgresCertificationRepository) FindAll(ctx context.Context) ([]Certification, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description, date, image_url FROM certifications ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Certification, 0)
	for rows.Next() {
		var c Certification
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Date, &c.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCertificationRepository) FindByID(ctx context.Context, id int64) (Certification, bool, error) {
	var c Certification
	err := r.db.QueryRow(ctx, `SELECT id, name, description, date, image_url FROM certifications WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Date, &c.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return Certification{}, false, nil
	}
	if err != nil {
		return Certification{}, false, err
	}
	return c, true, nil
}

func (r *PostgresCertificationRepository) Insert(ctx context.Context, c Certification) (Certification, error) {
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO certifications (name, description, date, image_url) VALUES ($1, $2, $3, $4) RETURNING id`,
		c.Name, c.Description, c.Date, c.ImageURL,
	).Scan(&c.ID)
	if err != nil {
		return Certification{}, err
	}
	return c, nil
}

func (r *PostgresCertificationRepository) Update(ctx context.Context, c Certification) error {
	_, err := r.db.Exec(
		ctx,
		`UPDATE certifications SET name = $2, description = $3, date = $4, image_url = $5 WHERE id = $1`,
		c.ID, c.Name, c.Description, c.Date, c.ImageURL,
	)
	return err
}

func (r *PostgresCertificationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
