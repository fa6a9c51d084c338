package usecase

import (
	"context"
	"time"

	"portfolio-api/internal/repository"
)

type IntroductionUsecase interface {
	// Get returns the singleton introduction, creating an empty one on
	// first read.
	Get(ctx context.Context) (repository.Introduction, error)
	Update(ctx context.Context, content string) (repository.Introduction, error)
}

type Introduction struct {
	repo repository.IntroductionRepository
}

func NewIntroductionUsecase(repo repository.IntroductionRepository) *Introduction {
	return &Introduction{repo: repo}
}

func (u *Introduction) Get(ctx context.Context) (repository.Introduction, error) {
	in, ok, err := u.repo.Find(ctx)
	if err != nil {
		return repository.Introduction{}, ErrInternal
	}
	if ok {
		return in, nil
	}

	if err := u.repo.EnsureDefault(ctx, time.Now()); err != nil {
		return repository.Introduction{}, ErrInternal
	}

	in, ok, err = u.repo.Find(ctx)
	if err != nil || !ok {
		return repository.Introduction{}, ErrInternal
	}
	return in, nil
}

func (u *Introduction) Update(ctx context.Context, content string) (repository.Introduction, error) {
	now := time.Now()
	if err := u.repo.EnsureDefault(ctx, now); err != nil {
		return repository.Introduction{}, ErrInternal
	}
	if err := u.repo.UpdateContent(ctx, content, now); err != nil {
		return repository.Introduction{}, ErrInternal
	}

	in, ok, err := u.repo.Find(ctx)
	if err != nil || !ok {
		return repository.Introduction{}, ErrInternal
	}
	return in, nil
}
