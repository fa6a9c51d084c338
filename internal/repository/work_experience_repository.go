package repository

import (
	"context"
	"errors"

	"portfolio-api/internal/database"

	"github.com/jackc/pgx/v5"
)

type WorkExperience struct {
	ID          int64
	Company     string
	Position    string
	LogoURL     string
	StartDate   string
	EndDate     string
	Location    string
	Description string
	// Skill names, denormalized into a text[] column.
	Skills []string
}

type WorkExperienceRepository interface {
	FindAll(ctx context.Context) ([]WorkExperience, error)
	FindByID(ctx context.Context, id int64) (WorkExperience, bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Insert(ctx context.Context, w WorkExperience) (WorkExperience, error)
	Update(ctx context.Context, w WorkExperience) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PostgresWorkExperienceRepository struct {
	db database.DB
}

func NewPostgresWorkExperienceRepository(db database.DB) *PostgresWorkExperienceRepository {
	return &PostgresWorkExperienceRepository{db: db}
}

const workExperienceColumns = `id, company, position, logo_url, start_date, end_date, location, description, skills`

func (r *PostgresWorkExperienceRepository) FindAll(ctx context.Context) ([]WorkExperience, error) {
	rows, err := r.db.Query(ctx, `SELECT `+workExperienceColumns+` FROM work_experiences ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]WorkExperience, 0)
	for rows.Next() {
		var w WorkExperience
		if err := rows.Scan(&w.ID, &w.Company, &w.Position, &w.LogoURL, &w.StartDate, &w.EndDate, &w.Location, &w.Description, &w.Skills); err != nil {
			return nil, err
		}
		if w.Skills == nil {
			w.Skills = []string{}
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresWorkExperienceRepository) FindByID(ctx context.Context, id int64) (WorkExperience, bool, error) {
	var w WorkExperience
	err := r.db.QueryRow(ctx, `SELECT `+workExperienceColumns+` FROM work_experiences WHERE id = $1`, id).
		Scan(&w.ID, &w.Company, &w.Position, &w.LogoURL, &w.StartDate, &w.EndDate, &w.Location, &w.Description, &w.Skills)
	if errors.Is(err, pgx.ErrNoRows) {
		return WorkExperience{}, false, nil
	}
	if err != nil {
		return WorkExperience{}, false, err
	}
	if w.Skills == nil {
		w.Skills = []string{}
	}
	return w, true, nil
}

func (r *PostgresWorkExperienceRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM work_experiences WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresWorkExperienceRepository) Insert(ctx context.Context, w WorkExperience) (WorkExperience, error) {
	if w.Skills == nil {
		w.Skills = []string{}
	}
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO work_experiences (company, position, logo_url, start_date, end_date, location, description, skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		w.Company, w.Position, w.LogoURL, w.StartDate, w.EndDate, w.Location, w.Description, w.Skills,
	).Scan(&w.ID)
	if err != nil {
		return WorkExperience{}, err
	}
	return w, nil
}

func (r *PostgresWorkExperienceRepository) Update(ctx context.Context, w WorkExperience) error {
	if w.Skills == nil {
		w.Skills = []string{}
	}
	_, err := r.db.Exec(
		ctx,
		`UPDATE work_experiences
		 SET company = $2, position = $3, logo_url = $4, start_date = $5, end_date = $6, location = $7, description = $8, skills = $9
		 WHERE id = $1`,
		w.ID, w.Company, w.Position, w.LogoURL, w.StartDate, w.EndDate, w.Location, w.Description, w.Skills,
	)
	return err
}

func (r *PostgresWorkExperienceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM work_experiences WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
