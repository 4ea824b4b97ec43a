package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

type CategoryService struct {
	categories ports.CategoryRepository
	groups     ports.GroupRepository
}

func NewCategoryService(categories ports.CategoryRepository, groups ports.GroupRepository) *CategoryService {
	return &CategoryService{categories: categories, groups: groups}
}

var _ ports.CategoryService = (*CategoryService)(nil)

func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	return s.categories.ListByUser(ctx, userID)
}

func (s *CategoryService) GetCategory(ctx context.Context, id, userID uuid.UUID) (domain.Category, error) {
	return s.categories.Get(ctx, id, userID)
}

func (s *CategoryService) CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	if _, err := s.groups.Get(ctx, category.GroupID, category.UserID); err != nil {
		return domain.Category{}, err
	}
	if category.Unit == "" {
		category.Unit = domain.CategoryUnitHours
	}
	if err := s.categories.Create(ctx, &category); err != nil {
		return domain.Category{}, err
	}
	zap.L().Info("category created", zap.String("category_id", category.ID.String()))
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id, userID uuid.UUID, patch domain.CategoryPatch) (domain.Category, error) {
	category, err := s.categories.Get(ctx, id, userID)
	if err != nil {
		return domain.Category{}, err
	}
	if patch.GroupID != nil {
		if _, err := s.groups.Get(ctx, *patch.GroupID, userID); err != nil {
			return domain.Category{}, err
		}
		category.GroupID = *patch.GroupID
	}
	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.Priority != nil {
		category.Priority = *patch.Priority
	}
	if patch.MinWeeklyHours != nil {
		category.MinWeeklyHours = *patch.MinWeeklyHours
	}
	if patch.TargetWeeklyHours != nil {
		category.TargetWeeklyHours = *patch.TargetWeeklyHours
	}
	if patch.MaxWeeklyHours != nil {
		category.MaxWeeklyHours = *patch.MaxWeeklyHours
	}
	if patch.Unit != nil {
		category.Unit = *patch.Unit
	}
	if patch.Mandatory != nil {
		category.Mandatory = *patch.Mandatory
	}
	if err := s.categories.Update(ctx, &category); err != nil {
		return domain.Category{}, err
	}
	return category, nil
}

// DeleteCategory is refused while activities still reference the category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id, userID uuid.UUID) error {
	err := s.categories.Delete(ctx, id, userID)
	if errors.Is(err, domain.ErrDependencyViolation) {
		zap.L().Warn("category delete blocked by activities", zap.String("category_id", id.String()))
		return domain.ErrCategoryHasActivities
	}
	return err
}
