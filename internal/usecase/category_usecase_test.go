package usecase

import (
	"context"
	"errors"
	"testing"

	"gestor_manutencao/internal/domain/entities"
	mock_interfaces "gestor_manutencao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newCategoryUseCase(t *testing.T) (*CategoryUseCase, *mock_interfaces.MockICategoryRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICategoryRepository(ctrl)
	return NewCategoryUseCase(repo), repo
}

func TestCategoryAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("success trims the name", func(t *testing.T) {
		uc, repo := newCategoryUseCase(t)
		repo.EXPECT().List(ctx).Return(nil, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Category) (entities.Category, error) {
				if c.ID == "" {
					t.Error("expected generated id")
				}
				if c.Name != "Eletrônicos" {
					t.Errorf("expected trimmed name, got %q", c.Name)
				}
				return c, nil
			})
		if _, err := uc.Add(ctx, "  Eletrônicos  "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		uc, _ := newCategoryUseCase(t)
		if _, err := uc.Add(ctx, "   "); !errors.Is(err, ErrInvalidCategoryName) {
			t.Errorf("expected ErrInvalidCategoryName, got %v", err)
		}
	})

	t.Run("duplicate name is case-insensitive", func(t *testing.T) {
		uc, repo := newCategoryUseCase(t)
		repo.EXPECT().List(ctx).Return([]entities.Category{{ID: "cat-1", Name: "Eletrônicos"}}, nil)
		if _, err := uc.Add(ctx, "ELETRÔNICOS"); !errors.Is(err, ErrCategoryNameTaken) {
			t.Errorf("expected ErrCategoryNameTaken, got %v", err)
		}
	})
}

func TestCategoryRename(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uc, repo := newCategoryUseCase(t)
		repo.EXPECT().GetByID(ctx, "cat-1").Return(entities.Category{ID: "cat-1", Name: "Eletrônicos"}, nil)
		repo.EXPECT().List(ctx).Return([]entities.Category{{ID: "cat-1", Name: "Eletrônicos"}}, nil)
		repo.EXPECT().Update(ctx, entities.Category{ID: "cat-1", Name: "Informática"}).
			Return(entities.Category{ID: "cat-1", Name: "Informática"}, nil)
		renamed, err := uc.Rename(ctx, "cat-1", "Informática")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if renamed.Name != "Informática" {
			t.Errorf("expected renamed category, got %q", renamed.Name)
		}
	})

	t.Run("keeping own name is allowed", func(t *testing.T) {
		uc, repo := newCategoryUseCase(t)
		repo.EXPECT().GetByID(ctx, "cat-1").Return(entities.Category{ID: "cat-1", Name: "Eletrônicos"}, nil)
		repo.EXPECT().List(ctx).Return([]entities.Category{{ID: "cat-1", Name: "Eletrônicos"}}, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Category) (entities.Category, error) { return c, nil })
		if _, err := uc.Rename(ctx, "cat-1", "eletrônicos"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newCategoryUseCase(t)
		repo.EXPECT().GetByID(ctx, "ghost").Return(entities.Category{}, nil)
		if _, err := uc.Rename(ctx, "ghost", "Informática"); !errors.Is(err, ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("name collision with another category", func(t *testing.T) {
		uc, repo := newCategoryUseCase(t)
		repo.EXPECT().GetByID(ctx, "cat-1").Return(entities.Category{ID: "cat-1", Name: "Eletrônicos"}, nil)
		repo.EXPECT().List(ctx).Return([]entities.Category{
			{ID: "cat-1", Name: "Eletrônicos"},
			{ID: "cat-2", Name: "Informática"},
		}, nil)
		if _, err := uc.Rename(ctx, "cat-1", "informática"); !errors.Is(err, ErrCategoryNameTaken) {
			t.Errorf("expected ErrCategoryNameTaken, got %v", err)
		}
	})
}

func TestCategoryDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uc, repo := newCategoryUseCase(t)
		repo.EXPECT().GetByID(ctx, "cat-1").Return(entities.Category{ID: "cat-1", Name: "Eletrônicos"}, nil)
		repo.EXPECT().Delete(ctx, "cat-1").Return(nil)
		if err := uc.Delete(ctx, "cat-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newCategoryUseCase(t)
		repo.EXPECT().GetByID(ctx, "ghost").Return(entities.Category{}, nil)
		if err := uc.Delete(ctx, "ghost"); !errors.Is(err, ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}
