package usecase

import (
	"context"
	"strings"

	"portfolio-api/internal/repository"
)

type SkillInput struct {
	Name        string
	Description string
	CategoryID  int64
}

type SkillUsecase interface {
	List(ctx context.Context) ([]repository.Skill, error)
	Create(ctx context.Context, in SkillInput) (repository.Skill, error)
	Update(ctx context.Context, id int64, in SkillInput) (repository.Skill, error)
	Delete(ctx context.Context, id int64) error
}

type Skill struct {
	skills     repository.SkillRepository
	categories repository.CategoryRepository
}

func NewSkillUsecase(skills repository.SkillRepository, categories repository.CategoryRepository) *Skill {
	return &Skill{skills: skills, categories: categories}
}

func (u *Skill) List(ctx context.Context) ([]repository.Skill, error) {
	items, err := u.skills.FindAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Skill) Create(ctx context.Context, in SkillInput) (repository.Skill, error) {
	if strings.TrimSpace(in.Name) == "" {
		return repository.Skill{}, ErrInvalidInput
	}

	// The category must exist before anything is persisted.
	ok, err := u.categories.ExistsByID(ctx, in.CategoryID)
	if err != nil {
		return repository.Skill{}, ErrInternal
	}
	if !ok {
		return repository.Skill{}, ErrNotFound
	}

	created, err := u.skills.Insert(ctx, repository.Skill{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
	})
	if err != nil {
		return repository.Skill{}, ErrInternal
	}
	return created, nil
}

func (u *Skill) Update(ctx context.Context, id int64, in SkillInput) (repository.Skill, error) {
	if strings.TrimSpace(in.Name) == "" {
		return repository.Skill{}, ErrInvalidInput
	}

	existing, ok, err := u.skills.FindByID(ctx, id)
	if err != nil {
		return repository.Skill{}, ErrInternal
	}
	if !ok {
		return repository.Skill{}, ErrNotFound
	}

	ok, err = u.categories.ExistsByID(ctx, in.CategoryID)
	if err != nil {
		return repository.Skill{}, ErrInternal
	}
	if !ok {
		return repository.Skill{}, ErrNotFound
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.CategoryID = in.CategoryID

	if err := u.skills.Update(ctx, existing); err != nil {
		return repository.Skill{}, ErrInternal
	}
	return existing, nil
}

func (u *Skill) Delete(ctx context.Context, id int64) error {
	deleted, err := u.skills.Delete(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
