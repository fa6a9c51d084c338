package usecase

import (
	"context"
	"errors"
	"testing"

	"portfolio-api/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestCategoryUsecase_List_GroupsSkills(t *testing.T) {
	categories := &mockCategoryRepo{items: map[int64]repository.Category{
		1: {ID: 1, Name: "Languages"},
		2: {ID: 2, Name: "Tools"},
	}}
	skills := &mockSkillRepo{items: map[int64]repository.Skill{
		10: {ID: 10, Name: "Go", CategoryID: 1},
		11: {ID: 11, Name: "SQL", CategoryID: 1},
	}}
	uc := NewCategoryUsecase(categories, skills)

	out, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(out))
	}
	for _, cws := range out {
		if cws.Skills == nil {
			t.Fatalf("skills must never be nil for category %d", cws.Category.ID)
		}
		switch cws.Category.ID {
		case 1:
			if len(cws.Skills) != 2 {
				t.Fatalf("expected 2 skills for category 1, got %d", len(cws.Skills))
			}
		case 2:
			if len(cws.Skills) != 0 {
				t.Fatalf("expected empty skills for category 2, got %d", len(cws.Skills))
			}
		}
	}
}

func TestCategoryUsecase_Create_BlankName(t *testing.T) {
	uc := NewCategoryUsecase(&mockCategoryRepo{}, &mockSkillRepo{})
	_, err := uc.Create(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCategoryUsecase_Create_TrimsName(t *testing.T) {
	categories := &mockCategoryRepo{items: map[int64]repository.Category{}}
	uc := NewCategoryUsecase(categories, &mockSkillRepo{})

	created, err := uc.Create(context.Background(), "  Languages  ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Category.Name != "Languages" {
		t.Fatalf("expected trimmed name, got %q", created.Category.Name)
	}
	if created.Skills == nil || len(created.Skills) != 0 {
		t.Fatalf("new category must carry an empty skills slice")
	}
}

func TestCategoryUsecase_Create_DuplicateName(t *testing.T) {
	categories := &mockCategoryRepo{writeErr: &pgconn.PgError{Code: "23505"}}
	uc := NewCategoryUsecase(categories, &mockSkillRepo{})

	_, err := uc.Create(context.Background(), "Languages")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCategoryUsecase_Update_Absent(t *testing.T) {
	uc := NewCategoryUsecase(&mockCategoryRepo{items: map[int64]repository.Category{}}, &mockSkillRepo{})
	_, err := uc.Update(context.Background(), 7, "Tools")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCategoryUsecase_Update_DuplicateName(t *testing.T) {
	categories := &mockCategoryRepo{
		items:    map[int64]repository.Category{1: {ID: 1, Name: "Languages"}},
		writeErr: &pgconn.PgError{Code: "23505"},
	}
	uc := NewCategoryUsecase(categories, &mockSkillRepo{})

	_, err := uc.Update(context.Background(), 1, "Tools")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCategoryUsecase_Delete_Absent(t *testing.T) {
	uc := NewCategoryUsecase(&mockCategoryRepo{items: map[int64]repository.Category{}}, &mockSkillRepo{})
	if err := uc.Delete(context.Background(), 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
