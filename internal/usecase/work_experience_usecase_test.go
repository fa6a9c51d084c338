package usecase

import (
	"context"
	"errors"
	"testing"

	"portfolio-api/internal/repository"
)

type mockWorkExperienceRepo struct {
	items   map[int64]repository.WorkExperience
	deleted []int64
	err     error
}

func (m *mockWorkExperienceRepo) FindAll(context.Context) ([]repository.WorkExperience, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.WorkExperience, 0, len(m.items))
	for _, w := range m.items {
		out = append(out, w)
	}
	return out, nil
}

func (m *mockWorkExperienceRepo) FindByID(_ context.Context, id int64) (repository.WorkExperience, bool, error) {
	if m.err != nil {
		return repository.WorkExperience{}, false, m.err
	}
	w, ok := m.items[id]
	return w, ok, nil
}

func (m *mockWorkExperienceRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.items[id]
	return ok, nil
}

func (m *mockWorkExperienceRepo) Insert(_ context.Context, w repository.WorkExperience) (repository.WorkExperience, error) {
	if m.err != nil {
		return repository.WorkExperience{}, m.err
	}
	w.ID = int64(len(m.items) + 1)
	m.items[w.ID] = w
	return w, nil
}

func (m *mockWorkExperienceRepo) Update(_ context.Context, w repository.WorkExperience) error {
	if m.err != nil {
		return m.err
	}
	m.items[w.ID] = w
	return nil
}

func (m *mockWorkExperienceRepo) Delete(_ context.Context, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.deleted = append(m.deleted, id)
	_, ok := m.items[id]
	delete(m.items, id)
	return ok, nil
}

func TestWorkExperienceUsecase_Create_NilSkillsBecomesEmpty(t *testing.T) {
	repo := &mockWorkExperienceRepo{items: map[int64]repository.WorkExperience{}}
	uc := NewWorkExperienceUsecase(repo)

	created, err := uc.Create(context.Background(), WorkExperienceInput{Company: "Acme", Position: "Engineer"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Skills == nil {
		t.Fatalf("skills must be an empty slice, not nil")
	}
	if len(created.Skills) != 0 {
		t.Fatalf("expected no skills, got %v", created.Skills)
	}
}

func TestWorkExperienceUsecase_GetByID_Absent(t *testing.T) {
	uc := NewWorkExperienceUsecase(&mockWorkExperienceRepo{items: map[int64]repository.WorkExperience{}})
	_, err := uc.GetByID(context.Background(), 8)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWorkExperienceUsecase_Update_Overwrite(t *testing.T) {
	repo := &mockWorkExperienceRepo{items: map[int64]repository.WorkExperience{
		4: {ID: 4, Company: "Acme", Position: "Engineer", Skills: []string{"Go"}},
	}}
	uc := NewWorkExperienceUsecase(repo)

	updated, err := uc.Update(context.Background(), 4, WorkExperienceInput{Company: "Globex", Position: "Lead"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.ID != 4 {
		t.Fatalf("identity must not change, got %d", updated.ID)
	}
	if updated.Company != "Globex" {
		t.Fatalf("expected overwritten company, got %q", updated.Company)
	}
	if len(updated.Skills) != 0 {
		t.Fatalf("omitted skills must overwrite as empty, got %v", updated.Skills)
	}
}

func TestWorkExperienceUsecase_Delete_Absent(t *testing.T) {
	repo := &mockWorkExperienceRepo{items: map[int64]repository.WorkExperience{}}
	uc := NewWorkExperienceUsecase(repo)

	if err := uc.Delete(context.Background(), 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("absent id must not reach Delete, got %v", repo.deleted)
	}
}

func TestWorkExperienceUsecase_Delete_Existing(t *testing.T) {
	repo := &mockWorkExperienceRepo{items: map[int64]repository.WorkExperience{
		2: {ID: 2, Company: "Acme"},
	}}
	uc := NewWorkExperienceUsecase(repo)

	if err := uc.Delete(context.Background(), 2); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 2 {
		t.Fatalf("expected delete of id 2, got %v", repo.deleted)
	}
}
