package repository

import (
	"context"
	"errors"

	"portfolio-api/internal/database"

	"github.com/jackc/pgx/v5"
)

type Education struct {
	ID        int64
	School    string
	Degree    string
	Level     string
	StartDate string
	EndDate   string
	City      string
	District  string
	GPA       string
}

type EducationRepository interface {
	FindAll(ctx context.Context) ([]Education, error)
	FindByID(ctx context.Context, id int64) (Education, bool, error)
	Insert(ctx context.Context, e Education) (Education, error)
	Update(ctx context.Context, e Education) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PostgresEducationRepository struct {
	db database.DB
}

func NewPostgresEducationRepository(db database.DB) *PostgresEducationRepository {
	return &PostgresEducationRepository{db: db}
}

const educationColumns = `id, school, degree, level, start_date, end_date, city, district, gpa`

func (r *PostgresEducationRepository) FindAll(ctx context.Context) ([]Education, error) {
	rows, err := r.db.Query(ctx, `SELECT `+educationColumns+` FROM educations ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Education, 0)
	for rows.Next() {
		var e Education
		if err := rows.Scan(&e.ID, &e.School, &e.Degree, &e.Level, &e.StartDate, &e.EndDate, &e.City, &e.District, &e.GPA); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresEducationRepository) FindByID(ctx context.Context, id int64) (Education, bool, error) {
	var e Education
	err := r.db.QueryRow(ctx, `SELECT `+educationColumns+` FROM educations WHERE id = $1`, id).
		Scan(&e.ID, &e.School, &e.Degree, &e.Level, &e.StartDate, &e.EndDate, &e.City, &e.District, &e.GPA)
	if errors.Is(err, pgx.ErrNoRows) {
		return Education{}, false, nil
	}
	if err != nil {
		return Education{}, false, err
	}
	return e, true, nil
}

func (r *PostgresEducationRepository) Insert(ctx context.Context, e Education) (Education, error) {
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO educations (school, degree, level, start_date, end_date, city, district, gpa)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		e.School, e.Degree, e.Level, e.StartDate, e.EndDate, e.City, e.District, e.GPA,
	).Scan(&e.ID)
	if err != nil {
		return Education{}, err
	}
	return e, nil
}

func (r *PostgresEducationRepository) Update(ctx context.Context, e Education) error {
	_, err := r.db.Exec(
		ctx,
		`UPDATE educations
		 SET school = $2, degree = $3, level = $4, start_date = $5, end_date = $6, city = $7, district = $8, gpa = $9
		 WHERE id = $1`,
		e.ID, e.School, e.Degree, e.Level, e.StartDate, e.EndDate, e.City, e.District, e.GPA,
	)
	return err
}

func (r *PostgresEducationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
