package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/finance_tracker_app/internal/dto"
	"github.com/fintrackhq/finance_tracker_app/internal/middleware"
)

type categoryService struct {
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates the category service.
func NewCategoryService(repo portsrepo.CategoryRepository) portssvc.CategorySvc {
	return &categoryService{categoryRepo: repo}
}

var _ portssvc.CategorySvc = (*categoryService)(nil)

// CreateCategory persists a new category and returns the store-assigned id.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	color := req.Color
	if color == "" {
		color = domain.DefaultCategoryColor
	}

	category := domain.Category{
		Name:  req.Name,
		Type:  domain.CategoryType(req.Type),
		Color: color,
	}

	id, err := s.categoryRepo.SaveCategory(ctx, category)
	if err != nil {
		logger.Error("Failed to save category in repository", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to create category: %w", err)
	}

	logger.Info("Category created", slog.String("category_id", id), slog.String("category_name", category.Name))
	return id, nil
}

// ListCategories retrieves every category.
func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		logger.Error("Failed to list categories from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
