package usecase

import (
	"context"
	"strings"

	"portfolio-api/internal/repository"
)

type AwardInput struct {
	Name        string
	Description string
	Date        string
	ImageURL    string
}

type AwardUsecase interface {
	List(ctx context.Context) ([]repository.Award, error)
	Create(ctx context.Context, in AwardInput) (repository.Award, error)
	Update(ctx context.Context, id int64, in AwardInput) (repository.Award, error)
	Delete(ctx context.Context, id int64) error
}

type Award struct {
	repo repository.AwardRepository
}

func NewAwardUsecase(repo repository.AwardRepository) *Award {
	return &Award{repo: repo}
}

func (u *Award) List(ctx context.Context) ([]repository.Award, error) {
	items, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Award) Create(ctx context.Context, in AwardInput) (repository.Award, error) {
	if strings.TrimSpace(in.Name) == "" {
		return repository.Award{}, ErrInvalidInput
	}

	created, err := u.repo.Insert(ctx, repository.Award{
		Name:        in.Name,
		Description: in.Description,
		Date:        in.Date,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		return repository.Award{}, ErrInternal
	}
	return created, nil
}

func (u *Award) Update(ctx context.Context, id int64, in AwardInput) (repository.Award, error) {
	if strings.TrimSpace(in.Name) == "" {
		return repository.Award{}, ErrInvalidInput
	}

	existing, ok, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return repository.Award{}, ErrInternal
	}
	if !ok {
		return repository.Award{}, ErrNotFound
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Date = in.Date
	existing.ImageURL = in.ImageURL

	if err := u.repo.Update(ctx, existing); err != nil {
		return repository.Award{}, ErrInternal
	}
	return existing, nil
}

func (u *Award) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
