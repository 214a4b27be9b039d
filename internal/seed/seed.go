// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"recipebox/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the password shared by every seeded account.
const DemoPassword = "password123"

var tagNames = []string{
	"Breakfast", "Lunch", "Dinner", "Dessert", "Snack", "Vegan",
	"Vegetarian", "Gluten-free", "Quick", "Comfort food", "Spicy",
	"Low-carb", "Batch cooking", "Weeknight", "Holiday",
}

// Options configure the seeder.
type Options struct {
	NumUsers       int
	RecipesPerUser int
	ShouldClean    bool
}

// DefaultOptions returns a small but representative data set.
func DefaultOptions() Options {
	return Options{NumUsers: 5, RecipesPerUser: 8, ShouldClean: false}
}

// Seeder populates the database with demo accounts and recipes.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed creates users, each with their own tags, ingredients and recipes.
// Relations never cross user boundaries, matching the API's scoping rules.
func (s *Seeder) Seed(opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = DefaultOptions().NumUsers
	}
	if opts.RecipesPerUser <= 0 {
		opts.RecipesPerUser = DefaultOptions().RecipesPerUser
	}

	log.Printf("Seeding %d users with %d recipes each...", opts.NumUsers, opts.RecipesPerUser)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("clear existing data: %w", err)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	for i := 0; i < opts.NumUsers; i++ {
		user := &models.User{
			Email:    fmt.Sprintf("%s%d@recipebox.demo", gofakeit.Username(), gofakeit.Number(100, 999)),
			Password: string(hashed),
			Name:     gofakeit.Name(),
			IsActive: true,
		}
		if err := s.db.Create(user).Error; err != nil {
			return fmt.Errorf("create demo user: %w", err)
		}

		tags, err := s.createTags(user)
		if err != nil {
			return err
		}
		ingredients, err := s.createIngredients(user)
		if err != nil {
			return err
		}
		if err := s.createRecipes(user, tags, ingredients, opts.RecipesPerUser); err != nil {
			return err
		}
	}

	log.Printf("Seeding complete. All demo users authenticate with %q.", DemoPassword)
	return nil
}

// ClearAll removes all seeded entities. Join tables are cleaned by the
// association deletes that GORM issues for the owning side.
func (s *Seeder) ClearAll() error {
	for _, stmt := range []string{
		"DELETE FROM recipe_tags",
		"DELETE FROM recipe_ingredients",
	} {
		if err := s.db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	for _, model := range []interface{}{
		&models.Recipe{}, &models.Ingredient{}, &models.Tag{}, &models.User{},
	} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createTags(user *models.User) ([]models.Tag, error) {
	count := 4 + s.rand.Intn(5)
	picked := s.rand.Perm(len(tagNames))[:count]

	tags := make([]models.Tag, 0, count)
	for _, idx := range picked {
		tags = append(tags, models.Tag{Name: tagNames[idx], UserID: user.ID})
	}
	if err := s.db.Create(&tags).Error; err != nil {
		return nil, fmt.Errorf("create demo tags: %w", err)
	}
	return tags, nil
}

func (s *Seeder) createIngredients(user *models.User) ([]models.Ingredient, error) {
	count := 10 + s.rand.Intn(10)
	seen := make(map[string]bool, count)

	ingredients := make([]models.Ingredient, 0, count)
	for len(ingredients) < count {
		var name string
		switch s.rand.Intn(3) {
		case 0:
			name = gofakeit.Vegetable()
		case 1:
			name = gofakeit.Fruit()
		default:
			name = gofakeit.Lunch()
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		ingredients = append(ingredients, models.Ingredient{Name: name, UserID: user.ID})
	}
	if err := s.db.Create(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("create demo ingredients: %w", err)
	}
	return ingredients, nil
}

func (s *Seeder) createRecipes(user *models.User, tags []models.Tag, ingredients []models.Ingredient, count int) error {
	for i := 0; i < count; i++ {
		recipe := models.Recipe{
			UserID:   user.ID,
			Title:    gofakeit.Dinner(),
			Duration: 5 + s.rand.Intn(115),
			Price:    float64(s.rand.Intn(4000)+100) / 100,
		}
		if s.rand.Intn(2) == 0 {
			recipe.Link = gofakeit.URL()
		}

		// realistic created_at spread over the last 90 days
		daysBack := s.rand.Intn(90)
		recipe.CreatedAt = time.Now().Add(-time.Duration(daysBack) * 24 * time.Hour)

		recipe.Tags = pickSubset(s.rand, tags, 1, 3)
		recipe.Ingredients = pickSubset(s.rand, ingredients, 2, 6)

		if err := s.db.Create(&recipe).Error; err != nil {
			return fmt.Errorf("create demo recipe: %w", err)
		}
	}
	return nil
}

func pickSubset[T any](r *rand.Rand, pool []T, min, max int) []T {
	if len(pool) == 0 {
		return nil
	}
	count := min + r.Intn(max-min+1)
	if count > len(pool) {
		count = len(pool)
	}
	out := make([]T, 0, count)
	for _, idx := range r.Perm(len(pool))[:count] {
		out = append(out, pool[idx])
	}
	return out
}
