package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"recipebox/internal/config"
	"recipebox/internal/models"
	"recipebox/internal/repository"
	"recipebox/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupImageServiceTest(t *testing.T) (*ImageService, *gorm.DB, string) {
	t.Helper()
	_, db := setupRecipeServiceTest(t)

	mediaRoot := t.TempDir()
	svc := NewImageService(repository.NewRecipeRepository(db), &config.Config{
		MediaRoot:       mediaRoot,
		MediaBaseURL:    "/media",
		MaxUploadSizeMB: 1,
	})
	return svc, db, mediaRoot
}

func createTestRecipe(t *testing.T, db *gorm.DB, userID uint) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{UserID: userID, Title: "Test recipe", Duration: 10, Price: 5}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	return recipe
}

func TestImageService_Attach(t *testing.T) {
	svc, db, mediaRoot := setupImageServiceTest(t)
	ctx := context.Background()
	user := createTestUser(t, db, "owner@example.com")
	recipe := createTestRecipe(t, db, user.ID)

	updated, err := svc.Attach(ctx, AttachImageInput{
		UserID:   user.ID,
		RecipeID: recipe.ID,
		Filename: "PHOTO.PNG",
		Content:  testutil.TinyPNG(t, 10, 10),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(updated.ImagePath, "uploads/recipe/"))
	assert.True(t, strings.HasSuffix(updated.ImagePath, ".png"), "extension should be kept and lowercased")
	assert.NotContains(t, updated.ImagePath, "PHOTO")

	stored := filepath.Join(mediaRoot, filepath.FromSlash(updated.ImagePath))
	_, err = os.Stat(stored)
	assert.NoError(t, err, "image file should exist under the media root")

	var persisted models.Recipe
	require.NoError(t, db.First(&persisted, recipe.ID).Error)
	assert.Equal(t, updated.ImagePath, persisted.ImagePath)
}

func TestImageService_Attach_ReplacesPreviousImage(t *testing.T) {
	svc, db, mediaRoot := setupImageServiceTest(t)
	ctx := context.Background()
	user := createTestUser(t, db, "owner@example.com")
	recipe := createTestRecipe(t, db, user.ID)

	first, err := svc.Attach(ctx, AttachImageInput{
		UserID: user.ID, RecipeID: recipe.ID, Filename: "a.png",
		Content: testutil.TinyPNG(t, 10, 10),
	})
	require.NoError(t, err)
	firstPath := filepath.Join(mediaRoot, filepath.FromSlash(first.ImagePath))

	second, err := svc.Attach(ctx, AttachImageInput{
		UserID: user.ID, RecipeID: recipe.ID, Filename: "b.jpg",
		Content: testutil.TinyJPEG(t, 10, 10),
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ImagePath, second.ImagePath)
	_, err = os.Stat(firstPath)
	assert.True(t, os.IsNotExist(err), "replaced image file should be removed")
}

func TestImageService_Attach_RejectsNonImage(t *testing.T) {
	svc, db, mediaRoot := setupImageServiceTest(t)
	ctx := context.Background()
	user := createTestUser(t, db, "owner@example.com")
	recipe := createTestRecipe(t, db, user.ID)

	updated, err := svc.Attach(ctx, AttachImageInput{
		UserID:   user.ID,
		RecipeID: recipe.ID,
		Filename: "notanimage.jpg",
		Content:  []byte("this is not an image"),
	})
	assert.Nil(t, updated)
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Contains(t, appErr.Message, "image")

	// Rejection must not touch the recipe or write any file.
	var persisted models.Recipe
	require.NoError(t, db.First(&persisted, recipe.ID).Error)
	assert.Empty(t, persisted.ImagePath)

	entries, err := os.ReadDir(mediaRoot)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestImageService_Attach_RejectsEmptyAndOversized(t *testing.T) {
	svc, db, _ := setupImageServiceTest(t)
	ctx := context.Background()
	user := createTestUser(t, db, "owner@example.com")
	recipe := createTestRecipe(t, db, user.ID)

	_, err := svc.Attach(ctx, AttachImageInput{
		UserID: user.ID, RecipeID: recipe.ID, Filename: "a.png", Content: nil,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no file uploaded")

	// 1MB limit configured in setup
	_, err = svc.Attach(ctx, AttachImageInput{
		UserID: user.ID, RecipeID: recipe.ID, Filename: "a.png",
		Content: make([]byte, 2<<20),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestImageService_Attach_ForeignRecipeNotFound(t *testing.T) {
	svc, db, _ := setupImageServiceTest(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	recipe := createTestRecipe(t, db, owner.ID)

	_, err := svc.Attach(ctx, AttachImageInput{
		UserID:   other.ID,
		RecipeID: recipe.ID,
		Filename: "a.png",
		Content:  testutil.TinyPNG(t, 10, 10),
	})
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestImageService_ImageURL(t *testing.T) {
	svc, _, _ := setupImageServiceTest(t)

	assert.Empty(t, svc.ImageURL(""))
	assert.Equal(t, "/media/uploads/recipe/x.png", svc.ImageURL("uploads/recipe/x.png"))
}
