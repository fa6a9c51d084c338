package repository

import (
	"context"
	"errors"

	"portfolio-api/internal/database"

	"github.com/jackc/pgx/v5"
)

type Skill struct {
	ID          int64
	Name        string
	Description string
	CategoryID  int64
}

type SkillRepository interface {
	FindAll(ctx context.Context) ([]Skill, error)
	FindByID(ctx context.Context, id int64) (Skill, bool, error)
	// FindByCategoryIDs returns the skills of every listed category,
	// grouped by category id. Categories without skills are absent from
	// the map.
	FindByCategoryIDs(ctx context.Context, categoryIDs []int64) (map[int64][]Skill, error)
	Insert(ctx context.Context, s Skill) (Skill, error)
	Update(ctx context.Context, s Skill) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) FindAll(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description, category_id FROM skill ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSkills(rows)
}

func (r *PostgresSkillRepository) FindByID(ctx context.Context, id int64) (Skill, bool, error) {
	var s Skill
	err := r.db.QueryRow(ctx, `SELECT id, name, description, category_id FROM skill WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Description, &s.CategoryID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Skill{}, false, nil
	}
	if err != nil {
		return Skill{}, false, err
	}
	return s, true, nil
}

func (r *PostgresSkillRepository) FindByCategoryIDs(ctx context.Context, categoryIDs []int64) (map[int64][]Skill, error) {
	out := make(map[int64][]Skill, len(categoryIDs))
	if len(categoryIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, description, category_id FROM skill WHERE category_id = ANY($1) ORDER BY id ASC`,
		categoryIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills, err := scanSkills(rows)
	if err != nil {
		return nil, err
	}
	for _, s := range skills {
		out[s.CategoryID] = append(out[s.CategoryID], s)
	}
	return out, nil
}

func (r *PostgresSkillRepository) Insert(ctx context.Context, s Skill) (Skill, error) {
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO skill (name, description, category_id) VALUES ($1, $2, $3) RETURNING id`,
		s.Name, s.Description, s.CategoryID,
	).Scan(&s.ID)
	if err != nil {
		return Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) Update(ctx context.Context, s Skill) error {
	_, err := r.db.Exec(
		ctx,
		`UPDATE skill SET name = $2, description = $3, category_id = $4 WHERE id = $1`,
		s.ID, s.Name, s.Description, s.CategoryID,
	)
	return err
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM skill WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func scanSkills(rows database.Rows) ([]Skill, error) {
	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CategoryID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
