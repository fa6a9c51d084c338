package usecase

import (
	"context"

	"portfolio-api/internal/repository"
)

type ProjectInput struct {
	Name         string
	Description  string
	Technologies []string
	ImageURL     string
	Year         string
	ProjectURL   string
}

type ProjectUsecase interface {
	List(ctx context.Context) ([]repository.Project, error)
	GetByID(ctx context.Context, id int64) (repository.Project, error)
	Create(ctx context.Context, in ProjectInput) (repository.Project, error)
	Update(ctx context.Context, id int64, in ProjectInput) (repository.Project, error)
	Delete(ctx context.Context, id int64) error
}

type Project struct {
	repo repository.ProjectRepository
}

func NewProjectUsecase(repo repository.ProjectRepository) *Project {
	return &Project{repo: repo}
}

func (u *Project) List(ctx context.Context) ([]repository.Project, error) {
	items, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Project) GetByID(ctx context.Context, id int64) (repository.Project, error) {
	p, ok, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return repository.Project{}, ErrInternal
	}
	if !ok {
		return repository.Project{}, ErrNotFound
	}
	return p, nil
}

func (u *Project) Create(ctx context.Context, in ProjectInput) (repository.Project, error) {
	created, err := u.repo.Insert(ctx, projectFromInput(in))
	if err != nil {
		return repository.Project{}, ErrInternal
	}
	return created, nil
}

func (u *Project) Update(ctx context.Context, id int64, in ProjectInput) (repository.Project, error) {
	existing, ok, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return repository.Project{}, ErrInternal
	}
	if !ok {
		return repository.Project{}, ErrNotFound
	}

	updated := projectFromInput(in)
	updated.ID = existing.ID

	if err := u.repo.Update(ctx, updated); err != nil {
		return repository.Project{}, ErrInternal
	}
	return updated, nil
}

func (u *Project) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func projectFromInput(in ProjectInput) repository.Project {
	technologies := in.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return repository.Project{
		Name:         in.Name,
		Description:  in.Description,
		Technologies: technologies,
		ImageURL:     in.ImageURL,
		Year:         in.Year,
		ProjectURL:   in.ProjectURL,
	}
}
