package models

import (
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Recipe is the central domain record. Tags and ingredients are
// many-to-many; both sides are scoped to the same owning user. The image
// lives on disk at ImagePath, relative to the configured media root.
type Recipe struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	UserID      uint         `gorm:"not null;index" json:"-"`
	User        *User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string       `gorm:"not null" json:"title"`
	Duration    int          `gorm:"not null" json:"duration"`
	Price       float64      `gorm:"not null" json:"price"`
	Link        string       `json:"link"`
	ImagePath   string       `json:"-"`
	Tags        []Tag        `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"-"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time    `json:"-"`
	UpdatedAt   time.Time    `json:"-"`
}

func (r Recipe) String() string {
	return r.Title
}

// RecipeImagePath derives the storage path for an uploaded recipe image.
// The user-supplied filename contributes only its extension; the basename
// is a fresh UUID so paths never collide and never traverse. Callers must
// validate content before storing — this derives a path, nothing more.
func RecipeImagePath(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join("uploads", "recipe", uuid.New().String()+ext)
}
