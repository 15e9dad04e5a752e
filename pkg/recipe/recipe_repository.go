package recipe

import (
	"context"

	"recipe-catalog/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		WithTx(tx *gorm.DB) RecipeRepository
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		IncrementViews(ctx context.Context, id uint) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// WithTx returns a repository that runs every query inside tx.
func (r *recipeRepository) WithTx(tx *gorm.DB) RecipeRepository {
	return &recipeRepository{db: tx}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

// GetRecipes returns every recipe, most viewed first; ties go to the quicker recipe.
func (r *recipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Order("views DESC").
		Order("cooking_time ASC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// IncrementViews adds one view in a single statement so concurrent fetches do not lose updates.
func (r *recipeRepository) IncrementViews(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
