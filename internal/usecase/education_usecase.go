package usecase

import (
	"context"

	"portfolio-api/internal/repository"
)

type EducationInput struct {
	School    string
	Degree    string
	Level     string
	StartDate string
	EndDate   string
	City      string
	District  string
	GPA       string
}

type EducationUsecase interface {
	List(ctx context.Context) ([]repository.Education, error)
	Create(ctx context.Context, in EducationInput) (repository.Education, error)
	Update(ctx context.Context, id int64, in EducationInput) (repository.Education, error)
	Delete(ctx context.Context, id int64) error
}

type Education struct {
	repo repository.EducationRepository
}

func NewEducationUsecase(repo repository.EducationRepository) *Education {
	return &Education{repo: repo}
}

func (u *Education) List(ctx context.Context) ([]repository.Education, error) {
	items, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Education) Create(ctx context.Context, in EducationInput) (repository.Education, error) {
	created, err := u.repo.Insert(ctx, educationFromInput(in))
	if err != nil {
		return repository.Education{}, ErrInternal
	}
	return created, nil
}

func (u *Education) Update(ctx context.Context, id int64, in EducationInput) (repository.Education, error) {
	existing, ok, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return repository.Education{}, ErrInternal
	}
	if !ok {
		return repository.Education{}, ErrNotFound
	}

	updated := educationFromInput(in)
	updated.ID = existing.ID

	if err := u.repo.Update(ctx, updated); err != nil {
		return repository.Education{}, ErrInternal
	}
	return updated, nil
}

func (u *Education) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func educationFromInput(in EducationInput) repository.Education {
	return repository.Education{
		School:    in.School,
		Degree:    in.Degree,
		Level:     in.Level,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		City:      in.City,
		District:  in.District,
		GPA:       in.GPA,
	}
}
