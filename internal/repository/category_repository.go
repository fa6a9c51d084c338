package repository

import (
	"context"
	"errors"

	"portfolio-api/internal/database"

	"github.com/jackc/pgx/v5"
)

type Category struct {
	ID   int64
	Name string
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, id int64) (Category, bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Insert(ctx context.Context, name string) (Category, error)
	Update(ctx context.Context, c Category) error
	// Delete removes the category; dependent skills go with it via the
	// ON DELETE CASCADE constraint on skill.category_id.
	Delete(ctx context.Context, id int64) (bool, error)
}

type PostgresCategoryRepository struct {
	db database.DB
}

func NewPostgresCategoryRepository(db database.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) FindAll(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM category ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCategoryRepository) FindByID(ctx context.Context, id int64) (Category, bool, error) {
	var c Category
	err := r.db.QueryRow(ctx, `SELECT id, name FROM category WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, false, nil
	}
	if err != nil {
		return Category{}, false, err
	}
	return c, true, nil
}

func (r *PostgresCategoryRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM category WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresCategoryRepository) Insert(ctx context.Context, name string) (Category, error) {
	c := Category{Name: name}
	err := r.db.QueryRow(ctx, `INSERT INTO category (name) VALUES ($1) RETURNING id`, name).Scan(&c.ID)
	if err != nil {
		return Category{}, err
	}
	return c, nil
}

func (r *PostgresCategoryRepository) Update(ctx context.Context, c Category) error {
	_, err := r.db.Exec(ctx, `UPDATE category SET name = $2 WHERE id = $1`, c.ID, c.Name)
	return err
}

func (r *PostgresCategoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM category WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
