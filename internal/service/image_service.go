package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"recipebox/internal/config"
	"recipebox/internal/middleware"
	"recipebox/internal/models"
	"recipebox/internal/repository"

	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	DefaultMediaRoot       = "/tmp/recipebox/media"
	DefaultMediaBaseURL    = "/media"
	DefaultMaxUploadSizeMB = 10
)

// AttachImageInput carries one uploaded file destined for a recipe.
type AttachImageInput struct {
	UserID      uint
	RecipeID    uint
	Filename    string
	ContentType string
	Content     []byte
}

// ImageService validates uploaded recipe images and stores them on local
// disk under the media root. Paths are derived from a fresh UUID plus the
// original extension, never from the user-supplied filename.
type ImageService struct {
	recipes            repository.RecipeRepository
	mediaRoot          string
	mediaBaseURL       string
	maxUploadSizeBytes int64
}

// NewImageService returns an ImageService configured from cfg, falling back
// to defaults when cfg is nil or incomplete.
func NewImageService(recipes repository.RecipeRepository, cfg *config.Config) *ImageService {
	mediaRoot := DefaultMediaRoot
	mediaBaseURL := DefaultMediaBaseURL
	maxUploadSizeMB := DefaultMaxUploadSizeMB

	if cfg != nil {
		if cfg.MediaRoot != "" {
			mediaRoot = cfg.MediaRoot
		}
		if cfg.MediaBaseURL != "" {
			mediaBaseURL = cfg.MediaBaseURL
		}
		if cfg.MaxUploadSizeMB > 0 {
			maxUploadSizeMB = cfg.MaxUploadSizeMB
		}
	}

	return &ImageService{
		recipes:            recipes,
		mediaRoot:          mediaRoot,
		mediaBaseURL:       mediaBaseURL,
		maxUploadSizeBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

// Attach validates and stores an uploaded image for one of the caller's
// recipes. A payload that is not a decodable image fails with a validation
// error and leaves the recipe's existing image untouched. On success the
// previous image file, if any, is removed best-effort.
func (s *ImageService) Attach(ctx context.Context, in AttachImageInput) (*models.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, in.UserID, in.RecipeID)
	if err != nil {
		return nil, err
	}

	if len(in.Content) == 0 {
		return nil, models.NewFieldValidationError("image", "no file uploaded")
	}
	if int64(len(in.Content)) > s.maxUploadSizeBytes {
		return nil, models.NewFieldValidationError("image",
			fmt.Sprintf("file too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}

	detected := http.DetectContentType(in.Content)
	if !strings.HasPrefix(detected, "image/") {
		return nil, models.NewFieldValidationError("image", "upload a valid image")
	}
	if _, _, decodeErr := image.Decode(bytes.NewReader(in.Content)); decodeErr != nil {
		return nil, models.NewFieldValidationError("image", "upload a valid image")
	}

	relPath := models.RecipeImagePath(in.Filename)
	absPath := filepath.Join(s.mediaRoot, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := os.WriteFile(absPath, in.Content, 0o644); err != nil {
		return nil, models.NewInternalError(err)
	}

	previous := recipe.ImagePath
	recipe.ImagePath = relPath
	if err := s.recipes.Update(ctx, recipe); err != nil {
		// The DB still references the old image; drop the orphaned file.
		if rmErr := os.Remove(absPath); rmErr != nil {
			middleware.Logger.WarnContext(ctx, "failed to remove orphaned image file",
				slog.String("path", absPath), slog.String("error", rmErr.Error()))
		}
		return nil, err
	}

	if previous != "" {
		oldAbs := filepath.Join(s.mediaRoot, filepath.FromSlash(previous))
		if rmErr := os.Remove(oldAbs); rmErr != nil && !os.IsNotExist(rmErr) {
			middleware.Logger.WarnContext(ctx, "failed to remove replaced image file",
				slog.String("path", oldAbs), slog.String("error", rmErr.Error()))
		}
	}

	return recipe, nil
}

// ImageURL builds the public URL for a stored image path. Empty in, empty out.
func (s *ImageService) ImageURL(relPath string) string {
	if relPath == "" {
		return ""
	}
	return strings.TrimSuffix(s.mediaBaseURL, "/") + "/" + relPath
}

// MediaRoot exposes the configured on-disk media directory (used by the
// static file route).
func (s *ImageService) MediaRoot() string {
	return s.mediaRoot
}
