package recipe

import (
	"context"
	"errors"
	"fmt"

	"recipe-catalog/domain"
	"recipe-catalog/internal/metrics"
	"recipe-catalog/pkg/database"

	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeSummaryResponse, error)
		GetRecipes(ctx context.Context) ([]domain.RecipeSummaryResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID uint) (domain.RecipeDetailResponse, error)
	}

	SessionFactory interface {
		Begin(ctx context.Context) (*database.Session, error)
	}

	recipeService struct {
		sessions         SessionFactory
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(sessions SessionFactory, recipeRepository RecipeRepository) RecipeService {
	return &recipeService{
		sessions:         sessions,
		recipeRepository: recipeRepository,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeSummaryResponse, error) {
	sess, err := s.sessions.Begin(ctx)
	if err != nil {
		return domain.RecipeSummaryResponse{}, err
	}
	defer sess.Close()

	recipe := req.ToEntity()
	if err := s.recipeRepository.WithTx(sess.DB()).CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeSummaryResponse{}, fmt.Errorf("create recipe: %w", err)
	}
	if err := sess.Commit(); err != nil {
		return domain.RecipeSummaryResponse{}, err
	}
	metrics.RecipesCreated.Inc()

	// The row is committed at this point; a failed read below still reports an error.
	stored, err := s.recipeRepository.GetRecipeByID(ctx, recipe.ID)
	if err != nil {
		return domain.RecipeSummaryResponse{}, fmt.Errorf("refresh recipe %d: %w", recipe.ID, err)
	}
	return domain.NewRecipeSummary(stored), nil
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeSummaryResponse, error) {
	sess, err := s.sessions.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	recipes, err := s.recipeRepository.WithTx(sess.DB()).GetRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	if err := sess.Commit(); err != nil {
		return nil, err
	}
	return domain.NewRecipeSummaries(recipes), nil
}

// GetRecipeDetail counts a view: the increment is committed before the detail is returned.
func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID uint) (domain.RecipeDetailResponse, error) {
	sess, err := s.sessions.Begin(ctx)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	defer sess.Close()

	repo := s.recipeRepository.WithTx(sess.DB())
	if _, err := repo.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, fmt.Errorf("get recipe %d: %w", recipeID, err)
	}

	if err := repo.IncrementViews(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, fmt.Errorf("increment views of recipe %d: %w", recipeID, err)
	}

	recipe, err := repo.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetailResponse{}, fmt.Errorf("refresh recipe %d: %w", recipeID, err)
	}
	if err := sess.Commit(); err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	metrics.RecipeViews.Inc()

	return domain.NewRecipeDetail(recipe), nil
}
