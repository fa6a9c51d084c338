package usecase

import (
	"context"
	"strings"

	"portfolio-api/internal/repository"
)

// CategoryWithSkills is the owning-collection projection of the
// category/skill relation: the category plus its skills, with no
// back-reference from skill to category.
type CategoryWithSkills struct {
	Category repository.Category
	Skills   []repository.Skill
}

type CategoryUsecase interface {
	List(ctx context.Context) ([]CategoryWithSkills, error)
	Create(ctx context.Context, name string) (CategoryWithSkills, error)
	Update(ctx context.Context, id int64, name string) (CategoryWithSkills, error)
	// Delete removes the category and, via cascade, every skill it owns.
	Delete(ctx context.Context, id int64) error
}

type Category struct {
	categories repository.CategoryRepository
	skills     repository.SkillRepository
}

func NewCategoryUsecase(categories repository.CategoryRepository, skills repository.SkillRepository) *Category {
	return &Category{categories: categories, skills: skills}
}

func (u *Category) List(ctx context.Context) ([]CategoryWithSkills, error) {
	cats, err := u.categories.FindAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	ids := make([]int64, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}

	grouped, err := u.skills.FindByCategoryIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]CategoryWithSkills, 0, len(cats))
	for _, c := range cats {
		skills := grouped[c.ID]
		if skills == nil {
			skills = []repository.Skill{}
		}
		out = append(out, CategoryWithSkills{Category: c, Skills: skills})
	}
	return out, nil
}

func (u *Category) Create(ctx context.Context, name string) (CategoryWithSkills, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CategoryWithSkills{}, ErrInvalidInput
	}

	created, err := u.categories.Insert(ctx, name)
	if err != nil {
		if isUniqueViolation(err) {
			return CategoryWithSkills{}, ErrConflict
		}
		return CategoryWithSkills{}, ErrInternal
	}
	return CategoryWithSkills{Category: created, Skills: []repository.Skill{}}, nil
}

func (u *Category) Update(ctx context.Context, id int64, name string) (CategoryWithSkills, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CategoryWithSkills{}, ErrInvalidInput
	}

	existing, ok, err := u.categories.FindByID(ctx, id)
	if err != nil {
		return CategoryWithSkills{}, ErrInternal
	}
	if !ok {
		return CategoryWithSkills{}, ErrNotFound
	}

	existing.Name = name
	if err := u.categories.Update(ctx, existing); err != nil {
		if isUniqueViolation(err) {
			return CategoryWithSkills{}, ErrConflict
		}
		return CategoryWithSkills{}, ErrInternal
	}

	grouped, err := u.skills.FindByCategoryIDs(ctx, []int64{existing.ID})
	if err != nil {
		return CategoryWithSkills{}, ErrInternal
	}
	skills := grouped[existing.ID]
	if skills == nil {
		skills = []repository.Skill{}
	}
	return CategoryWithSkills{Category: existing, Skills: skills}, nil
}

func (u *Category) Delete(ctx context.Context, id int64) error {
	deleted, err := u.categories.Delete(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
