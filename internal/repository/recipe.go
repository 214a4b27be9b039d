package repository

import (
	"context"
	"errors"

	"recipebox/internal/models"

	"gorm.io/gorm"
)

// RecipeRepository defines owner-scoped persistence operations for recipes.
type RecipeRepository interface {
	List(ctx context.Context, userID uint) ([]models.Recipe, error)
	GetByID(ctx context.Context, userID, id uint) (*models.Recipe, error)
	Create(ctx context.Context, recipe *models.Recipe) error
	Update(ctx context.Context, recipe *models.Recipe) error
	ReplaceTags(ctx context.Context, recipe *models.Recipe, tags []models.Tag) error
	ReplaceIngredients(ctx context.Context, recipe *models.Recipe, ingredients []models.Ingredient) error
	Delete(ctx context.Context, userID, id uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository returns a new RecipeRepository implementation.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) List(ctx context.Context, userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&recipes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return recipes, nil
}

func (r *recipeRepository) GetByID(ctx context.Context, userID, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("user_id = ?", userID).
		First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Recipe", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &recipe, nil
}

// Create persists the recipe and links any pre-resolved tag/ingredient
// associations. The association records themselves are never upserted —
// only join rows are written.
func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).
		Omit("Tags.*", "Ingredients.*").
		Create(recipe).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Update saves scalar fields only; relation sets change through the
// Replace methods so "field absent" payloads leave associations untouched.
func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).
		Omit("Tags", "Ingredients").
		Save(recipe).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ReplaceTags swaps the recipe's tag set wholesale.
func (r *recipeRepository) ReplaceTags(ctx context.Context, recipe *models.Recipe, tags []models.Tag) error {
	if err := r.db.WithContext(ctx).
		Model(recipe).
		Omit("Tags.*").
		Association("Tags").
		Replace(tags); err != nil {
		return models.NewInternalError(err)
	}
	recipe.Tags = tags
	return nil
}

// ReplaceIngredients swaps the recipe's ingredient set wholesale.
func (r *recipeRepository) ReplaceIngredients(ctx context.Context, recipe *models.Recipe, ingredients []models.Ingredient) error {
	if err := r.db.WithContext(ctx).
		Model(recipe).
		Omit("Ingredients.*").
		Association("Ingredients").
		Replace(ingredients); err != nil {
		return models.NewInternalError(err)
	}
	recipe.Ingredients = ingredients
	return nil
}

func (r *recipeRepository) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Recipe{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Recipe", id)
	}
	return nil
}
