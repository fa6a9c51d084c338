package repository

import (
	"context"
	"errors"

	"portfolio-api/internal/database"

	"github.com/jackc/pgx/v5"
)

type Project struct {
	ID           int64
	Name         string
	Description  string
	Technologies []string
	ImageURL     string
	Year         string
	ProjectURL   string
}

type ProjectRepository interface {
	FindAll(ctx context.Context) ([]Project, error)
	FindByID(ctx context.Context, id int64) (Project, bool, error)
	Insert(ctx context.Context, p Project) (Project, error)
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

func (r *PostgresProjectRepository) FindAll(ctx context.Context) ([]Project, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description, image_url, year, project_url FROM projects ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.Year, &p.ProjectURL); err != nil {
			return nil, err
		}
		p.Technologies = []string{}
		out = append(out, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	techs, err := r.findTechnologies(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if t, ok := techs[out[i].ID]; ok {
			out[i].Technologies = t
		}
	}
	return out, nil
}

func (r *PostgresProjectRepository) FindByID(ctx context.Context, id int64) (Project, bool, error) {
	var p Project
	err := r.db.QueryRow(ctx, `SELECT id, name, description, image_url, year, project_url FROM projects WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.Year, &p.ProjectURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return Project{}, false, nil
	}
	if err != nil {
		return Project{}, false, err
	}

	techs, err := r.findTechnologies(ctx, []int64{p.ID})
	if err != nil {
		return Project{}, false, err
	}
	p.Technologies = techs[p.ID]
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return p, true, nil
}

func (r *PostgresProjectRepository) Insert(ctx context.Context, p Project) (Project, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Project{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	err = tx.QueryRow(
		ctx,
		`INSERT INTO projects (name, description, image_url, year, project_url) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		p.Name, p.Description, p.ImageURL, p.Year, p.ProjectURL,
	).Scan(&p.ID)
	if err != nil {
		return Project{}, err
	}

	if err := insertTechnologies(ctx, tx, p.ID, p.Technologies); err != nil {
		return Project{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Project{}, err
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return p, nil
}

func (r *PostgresProjectRepository) Update(ctx context.Context, p Project) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(
		ctx,
		`UPDATE projects SET name = $2, description = $3, image_url = $4, year = $5, project_url = $6 WHERE id = $1`,
		p.ID, p.Name, p.Description, p.ImageURL, p.Year, p.ProjectURL,
	)
	if err != nil {
		return err
	}

	// The tag list is overwritten wholesale on every update.
	if _, err := tx.Exec(ctx, `DELETE FROM project_technologies WHERE project_id = $1`, p.ID); err != nil {
		return err
	}
	if err := insertTechnologies(ctx, tx, p.ID, p.Technologies); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresProjectRepository) findTechnologies(ctx context.Context, projectIDs []int64) (map[int64][]string, error) {
	out := make(map[int64][]string, len(projectIDs))
	if len(projectIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT project_id, technology FROM project_technologies WHERE project_id = ANY($1) ORDER BY project_id ASC, position ASC`,
		projectIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var tech string
		if err := rows.Scan(&id, &tech); err != nil {
			return nil, err
		}
		out[id] = append(out[id], tech)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func insertTechnologies(ctx context.Context, tx database.Tx, projectID int64, technologies []string) error {
	for i, tech := range technologies {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO project_technologies (project_id, position, technology) VALUES ($1, $2, $3)`,
			projectID, i, tech,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
