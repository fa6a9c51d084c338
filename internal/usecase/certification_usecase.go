package usecase

import (
	"context"
	"strings"

	"portfolio-api/internal/repository"
)

type CertificationInput struct {
	Name        string
	Description string
	Date        string
	ImageURL    string
}

type CertificationUsecase interface {
	List(ctx context.Context) ([]repository.Certification, error)
	Create(ctx context.Context, in CertificationInput) (repository.Certification, error)
	Update(ctx context.Context, id int64, in CertificationInput) (repository.Certification, error)
	Delete(ctx context.Context, id int64) error
}

type Certification struct {
	repo repository.CertificationRepository
}

func NewCertificationUsecase(repo repository.CertificationRepository) *Certification {
	return &Certification{repo: repo}
}

func (u *Certification) List(ctx context.Context) ([]repository.Certification, error) {
	items, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Certification) Create(ctx context.Context, in CertificationInput) (repository.Certification, error) {
	if strings.TrimSpace(in.Name) == "" {
		return repository.Certification{}, ErrInvalidInput
	}

	created, err := u.repo.Insert(ctx, repository.Certification{
		Name:        in.Name,
		Description: in.Description,
		Date:        in.Date,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		return repository.Certification{}, ErrInternal
	}
	return created, nil
}

func (u *Certification) Update(ctx context.Context, id int64, in CertificationInput) (repository.Certification, error) {
	if strings.TrimSpace(in.Name) == "" {
		return repository.Certification{}, ErrInvalidInput
	}

	existing, ok, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return repository.Certification{}, ErrInternal
	}
	if !ok {
		return repository.Certification{}, ErrNotFound
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Date = in.Date
	existing.ImageURL = in.ImageURL

	if err := u.repo.Update(ctx, existing); err != nil {
		return repository.Certification{}, ErrInternal
	}
	return existing, nil
}

func (u *Certification) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
