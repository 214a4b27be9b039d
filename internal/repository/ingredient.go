package repository

import (
	"context"
	"errors"

	"recipebox/internal/models"

	"gorm.io/gorm"
)

// IngredientRepository defines owner-scoped persistence operations for ingredients.
type IngredientRepository interface {
	List(ctx context.Context, userID uint, assignedOnly bool) ([]models.Ingredient, error)
	GetByID(ctx context.Context, userID, id uint) (*models.Ingredient, error)
	GetByIDs(ctx context.Context, userID uint, ids []uint) ([]models.Ingredient, error)
	Create(ctx context.Context, ingredient *models.Ingredient) error
	Update(ctx context.Context, ingredient *models.Ingredient) error
	Delete(ctx context.Context, userID, id uint) error
}

type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository returns a new IngredientRepository implementation.
func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

// List returns the caller's ingredients ordered by name. With assignedOnly
// set, only ingredients referenced by at least one of the caller's recipes
// are returned, each exactly once regardless of how many recipes use it.
func (r *ingredientRepository) List(ctx context.Context, userID uint, assignedOnly bool) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	q := r.db.WithContext(ctx).
		Model(&models.Ingredient{}).
		Where("ingredients.user_id = ?", userID)

	if assignedOnly {
		q = q.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id").
			Joins("JOIN recipes ON recipes.id = recipe_ingredients.recipe_id AND recipes.user_id = ?", userID).
			Distinct("ingredients.*")
	}

	if err := q.Order("ingredients.name").Find(&ingredients).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ingredients, nil
}

func (r *ingredientRepository) GetByID(ctx context.Context, userID, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Ingredient", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &ingredient, nil
}

// GetByIDs resolves a set of ingredient IDs within the caller's scope.
func (r *ingredientRepository) GetByIDs(ctx context.Context, userID uint, ids []uint) ([]models.Ingredient, error) {
	if len(ids) == 0 {
		return []models.Ingredient{}, nil
	}
	var ingredients []models.Ingredient
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&ingredients).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ingredients, nil
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	if err := r.db.WithContext(ctx).Create(ingredient).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ingredientRepository) Update(ctx context.Context, ingredient *models.Ingredient) error {
	if err := r.db.WithContext(ctx).Save(ingredient).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ingredientRepository) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Ingredient{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Ingredient", id)
	}
	return nil
}
