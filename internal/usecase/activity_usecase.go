package usecase

import (
	"context"

	"portfolio-api/internal/repository"
)

type ActivityInput struct {
	Title       string
	Description string
	Date        string
	ImageURL    string
}

type ActivityUsecase interface {
	List(ctx context.Context) ([]repository.Activity, error)
	Create(ctx context.Context, in ActivityInput) (repository.Activity, error)
	Update(ctx context.Context, id int64, in ActivityInput) (repository.Activity, error)
	Delete(ctx context.Context, id int64) error
}

type Activity struct {
	repo repository.ActivityRepository
}

func NewActivityUsecase(repo repository.ActivityRepository) *Activity {
	return &Activity{repo: repo}
}

func (u *Activity) List(ctx context.Context) ([]repository.Activity, error) {
	items, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Activity) Create(ctx context.Context, in ActivityInput) (repository.Activity, error) {
	created, err := u.repo.Insert(ctx, repository.Activity{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		return repository.Activity{}, ErrInternal
	}
	return created, nil
}

func (u *Activity) Update(ctx context.Context, id int64, in ActivityInput) (repository.Activity, error) {
	existing, ok, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return repository.Activity{}, ErrInternal
	}
	if !ok {
		return repository.Activity{}, ErrNotFound
	}

	existing.Title = in.Title
	existing.Description = in.Description
	existing.Date = in.Date
	existing.ImageURL = in.ImageURL

	if err := u.repo.Update(ctx, existing); err != nil {
		return repository.Activity{}, ErrInternal
	}
	return existing, nil
}

func (u *Activity) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
