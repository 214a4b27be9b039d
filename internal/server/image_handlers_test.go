package server

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recipebox/internal/models"
	"recipebox/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartImageRequest(t *testing.T, target, field, filename string, content []byte, token string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestUploadRecipeImage(t *testing.T) {
	s, app := setupServerTest(t)
	alice, token := registerTestUser(t, s, "alice@example.com")

	recipe := &models.Recipe{UserID: alice.ID, Title: "Cake", Duration: 30, Price: 5}
	require.NoError(t, s.recipeRepo.Create(context.Background(), recipe))

	target := fmt.Sprintf("/api/recipe/recipes/%d/image", recipe.ID)
	resp, err := app.Test(multipartImageRequest(t, target, "image", "PHOTO.PNG",
		testutil.TinyPNG(t, 10, 10), token))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body RecipeImageResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, recipe.ID, body.ID)
	assert.True(t, strings.HasPrefix(body.Image, "/media/uploads/recipe/"))
	assert.True(t, strings.HasSuffix(body.Image, ".png"))
	assert.NotContains(t, body.Image, "PHOTO", "basename must be UUID-derived, not user-supplied")
}

func TestUploadRecipeImage_RejectsNonImage(t *testing.T) {
	s, app := setupServerTest(t)
	alice, token := registerTestUser(t, s, "alice@example.com")

	recipe := &models.Recipe{UserID: alice.ID, Title: "Cake", Duration: 30, Price: 5}
	require.NoError(t, s.recipeRepo.Create(context.Background(), recipe))

	target := fmt.Sprintf("/api/recipe/recipes/%d/image", recipe.ID)
	resp, err := app.Test(multipartImageRequest(t, target, "image", "fake.jpg",
		[]byte("definitely not an image"), token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// A rejected upload leaves the recipe untouched.
	stored, err := s.recipeRepo.GetByID(context.Background(), alice.ID, recipe.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.ImagePath)
}

func TestUploadRecipeImage_MissingFile(t *testing.T) {
	s, app := setupServerTest(t)
	alice, token := registerTestUser(t, s, "alice@example.com")

	recipe := &models.Recipe{UserID: alice.ID, Title: "Cake", Duration: 30, Price: 5}
	require.NoError(t, s.recipeRepo.Create(context.Background(), recipe))

	target := fmt.Sprintf("/api/recipe/recipes/%d/image", recipe.ID)
	resp, err := app.Test(multipartImageRequest(t, target, "wrong_field", "a.png",
		testutil.TinyPNG(t, 10, 10), token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadRecipeImage_CrossUserIsNotFound(t *testing.T) {
	s, app := setupServerTest(t)
	alice, _ := registerTestUser(t, s, "alice@example.com")
	_, bobToken := registerTestUser(t, s, "bob@example.com")

	recipe := &models.Recipe{UserID: alice.ID, Title: "Cake", Duration: 30, Price: 5}
	require.NoError(t, s.recipeRepo.Create(context.Background(), recipe))

	target := fmt.Sprintf("/api/recipe/recipes/%d/image", recipe.ID)
	resp, err := app.Test(multipartImageRequest(t, target, "image", "a.png",
		testutil.TinyPNG(t, 10, 10), bobToken))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUploadRecipeImage_ReplacementShowsInDetail(t *testing.T) {
	s, app := setupServerTest(t)
	alice, token := registerTestUser(t, s, "alice@example.com")

	recipe := &models.Recipe{UserID: alice.ID, Title: "Cake", Duration: 30, Price: 5}
	require.NoError(t, s.recipeRepo.Create(context.Background(), recipe))

	target := fmt.Sprintf("/api/recipe/recipes/%d/image", recipe.ID)
	resp, err := app.Test(multipartImageRequest(t, target, "image", "first.png",
		testutil.TinyPNG(t, 10, 10), token))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var first RecipeImageResponse
	decodeJSON(t, resp, &first)

	resp, err = app.Test(multipartImageRequest(t, target, "image", "second.jpg",
		testutil.TinyJPEG(t, 10, 10), token))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var second RecipeImageResponse
	decodeJSON(t, resp, &second)
	assert.NotEqual(t, first.Image, second.Image)

	resp, err = app.Test(jsonRequest(t, http.MethodGet,
		fmt.Sprintf("/api/recipe/recipes/%d", recipe.ID), nil, token))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail RecipeDetailResponse
	decodeJSON(t, resp, &detail)
	assert.Equal(t, second.Image, detail.Image)
}
