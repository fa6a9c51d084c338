package usecase

import (
	"context"

	"portfolio-api/internal/repository"
)

type WorkExperienceInput struct {
	Company     string
	Position    string
	LogoURL     string
	StartDate   string
	EndDate     string
	Location    string
	Description string
	Skills      []string
}

type WorkExperienceUsecase interface {
	List(ctx context.Context) ([]repository.WorkExperience, error)
	GetByID(ctx context.Context, id int64) (repository.WorkExperience, error)
	Create(ctx context.Context, in WorkExperienceInput) (repository.WorkExperience, error)
	Update(ctx context.Context, id int64, in WorkExperienceInput) (repository.WorkExperience, error)
	Delete(ctx context.Context, id int64) error
}

type WorkExperience struct {
	repo repository.WorkExperienceRepository
}

func NewWorkExperienceUsecase(repo repository.WorkExperienceRepository) *WorkExperience {
	return &WorkExperience{repo: repo}
}

func (u *WorkExperience) List(ctx context.Context) ([]repository.WorkExperience, error) {
	items, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *WorkExperience) GetByID(ctx context.Context, id int64) (repository.WorkExperience, error) {
	w, ok, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return repository.WorkExperience{}, ErrInternal
	}
	if !ok {
		return repository.WorkExperience{}, ErrNotFound
	}
	return w, nil
}

func (u *WorkExperience) Create(ctx context.Context, in WorkExperienceInput) (repository.WorkExperience, error) {
	created, err := u.repo.Insert(ctx, workExperienceFromInput(in))
	if err != nil {
		return repository.WorkExperience{}, ErrInternal
	}
	return created, nil
}

func (u *WorkExperience) Update(ctx context.Context, id int64, in WorkExperienceInput) (repository.WorkExperience, error) {
	existing, ok, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return repository.WorkExperience{}, ErrInternal
	}
	if !ok {
		return repository.WorkExperience{}, ErrNotFound
	}

	updated := workExperienceFromInput(in)
	updated.ID = existing.ID

	if err := u.repo.Update(ctx, updated); err != nil {
		return repository.WorkExperience{}, ErrInternal
	}
	return updated, nil
}

func (u *WorkExperience) Delete(ctx context.Context, id int64) error {
	exists, err := u.repo.ExistsByID(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrNotFound
	}

	if _, err := u.repo.Delete(ctx, id); err != nil {
		return ErrInternal
	}
	return nil
}

func workExperienceFromInput(in WorkExperienceInput) repository.WorkExperience {
	skills := in.Skills
	if skills == nil {
		skills = []string{}
	}
	return repository.WorkExperience{
		Company:     in.Company,
		Position:    in.Position,
		LogoURL:     in.LogoURL,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Location:    in.Location,
		Description: in.Description,
		Skills:      skills,
	}
}
