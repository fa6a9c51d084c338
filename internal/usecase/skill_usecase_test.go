package usecase

import (
	"context"
	"errors"
	"testing"

	"portfolio-api/internal/repository"
)

type mockSkillRepo struct {
	items    map[int64]repository.Skill
	inserted []repository.Skill
	updated  []repository.Skill
	deleted  []int64
	nextID   int64
	err      error
}

func (m *mockSkillRepo) FindAll(context.Context) ([]repository.Skill, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.Skill, 0, len(m.items))
	for _, s := range m.items {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockSkillRepo) FindByID(_ context.Context, id int64) (repository.Skill, bool, error) {
	if m.err != nil {
		return repository.Skill{}, false, m.err
	}
	s, ok := m.items[id]
	return s, ok, nil
}

func (m *mockSkillRepo) FindByCategoryIDs(_ context.Context, ids []int64) (map[int64][]repository.Skill, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := map[int64][]repository.Skill{}
	for _, id := range ids {
		for _, s := range m.items {
			if s.CategoryID == id {
				out[id] = append(out[id], s)
			}
		}
	}
	return out, nil
}

func (m *mockSkillRepo) Insert(_ context.Context, s repository.Skill) (repository.Skill, error) {
	if m.err != nil {
		return repository.Skill{}, m.err
	}
	m.nextID++
	s.ID = m.nextID
	m.inserted = append(m.inserted, s)
	return s, nil
}

func (m *mockSkillRepo) Update(_ context.Context, s repository.Skill) error {
	m.updated = append(m.updated, s)
	return m.err
}

func (m *mockSkillRepo) Delete(_ context.Context, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.deleted = append(m.deleted, id)
	_, ok := m.items[id]
	return ok, nil
}

type mockCategoryRepo struct {
	items    map[int64]repository.Category
	inserted []string
	updated  []repository.Category
	deleted  []int64
	nextID   int64
	err      error
	// forced error for Insert/Update only, e.g. a unique violation
	writeErr error
}

func (m *mockCategoryRepo) FindAll(context.Context) ([]repository.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.Category, 0, len(m.items))
	for _, c := range m.items {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCategoryRepo) FindByID(_ context.Context, id int64) (repository.Category, bool, error) {
	if m.err != nil {
		return repository.Category{}, false, m.err
	}
	c, ok := m.items[id]
	return c, ok, nil
}

func (m *mockCategoryRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.items[id]
	return ok, nil
}

func (m *mockCategoryRepo) Insert(_ context.Context, name string) (repository.Category, error) {
	if m.writeErr != nil {
		return repository.Category{}, m.writeErr
	}
	if m.err != nil {
		return repository.Category{}, m.err
	}
	m.nextID++
	m.inserted = append(m.inserted, name)
	return repository.Category{ID: m.nextID, Name: name}, nil
}

func (m *mockCategoryRepo) Update(_ context.Context, c repository.Category) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.updated = append(m.updated, c)
	return m.err
}

func (m *mockCategoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.deleted = append(m.deleted, id)
	_, ok := m.items[id]
	return ok, nil
}

func TestSkillUsecase_Create_MissingCategory(t *testing.T) {
	skills := &mockSkillRepo{items: map[int64]repository.Skill{}}
	categories := &mockCategoryRepo{items: map[int64]repository.Category{}}
	uc := NewSkillUsecase(skills, categories)

	_, err := uc.Create(context.Background(), SkillInput{Name: "Go", CategoryID: 42})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(skills.inserted) != 0 {
		t.Fatalf("expected no skill persisted, got %d", len(skills.inserted))
	}
}

func TestSkillUsecase_Create_Success(t *testing.T) {
	skills := &mockSkillRepo{items: map[int64]repository.Skill{}}
	categories := &mockCategoryRepo{items: map[int64]repository.Category{1: {ID: 1, Name: "Languages"}}}
	uc := NewSkillUsecase(skills, categories)

	created, err := uc.Create(context.Background(), SkillInput{Name: "Go", Description: "systems", CategoryID: 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected server-assigned id")
	}
	if created.CategoryID != 1 {
		t.Fatalf("expected categoryID=1, got %d", created.CategoryID)
	}
}

func TestSkillUsecase_Create_BlankName(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{}, &mockCategoryRepo{})
	_, err := uc.Create(context.Background(), SkillInput{Name: "   ", CategoryID: 1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSkillUsecase_Update_AbsentSkill(t *testing.T) {
	skills := &mockSkillRepo{items: map[int64]repository.Skill{}}
	categories := &mockCategoryRepo{items: map[int64]repository.Category{1: {ID: 1}}}
	uc := NewSkillUsecase(skills, categories)

	_, err := uc.Update(context.Background(), 9, SkillInput{Name: "Go", CategoryID: 1})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(skills.updated) != 0 {
		t.Fatalf("expected no update on absent skill")
	}
}

func TestSkillUsecase_Update_MissingCategory(t *testing.T) {
	skills := &mockSkillRepo{items: map[int64]repository.Skill{3: {ID: 3, Name: "Go", CategoryID: 1}}}
	categories := &mockCategoryRepo{items: map[int64]repository.Category{}}
	uc := NewSkillUsecase(skills, categories)

	_, err := uc.Update(context.Background(), 3, SkillInput{Name: "Go", CategoryID: 7})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(skills.updated) != 0 {
		t.Fatalf("expected no update when category missing")
	}
}

func TestSkillUsecase_Update_Success(t *testing.T) {
	skills := &mockSkillRepo{items: map[int64]repository.Skill{3: {ID: 3, Name: "Go", CategoryID: 1}}}
	categories := &mockCategoryRepo{items: map[int64]repository.Category{1: {ID: 1}, 2: {ID: 2}}}
	uc := NewSkillUsecase(skills, categories)

	updated, err := uc.Update(context.Background(), 3, SkillInput{Name: "Golang", Description: "updated", CategoryID: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.ID != 3 {
		t.Fatalf("identity must not change, got %d", updated.ID)
	}
	if updated.Name != "Golang" || updated.CategoryID != 2 {
		t.Fatalf("fields not overwritten: %+v", updated)
	}
}

func TestSkillUsecase_Delete_Absent(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{items: map[int64]repository.Skill{}}, &mockCategoryRepo{})
	if err := uc.Delete(context.Background(), 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
