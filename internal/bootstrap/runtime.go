// Package bootstrap establishes the runtime dependencies shared by the
// server and the auxiliary commands.
package bootstrap

import (
	"context"
	"fmt"
	"log"
	"strings"

	"recipebox/internal/cache"
	"recipebox/internal/config"
	"recipebox/internal/database"
	"recipebox/internal/repository"
	"recipebox/internal/seed"
	"recipebox/internal/service"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
}

// InitRuntime connects to DB and Redis, ensures the development superuser
// when configured, and optionally seeds demo data.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Redis is optional; the client stays nil when unreachable.
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if err := ensureDevSuperuser(cfg, db); err != nil {
		return nil, nil, fmt.Errorf("failed to bootstrap development superuser: %w", err)
	}

	if opts.SeedDemoData {
		if err := seed.NewSeeder(db).Seed(seed.DefaultOptions()); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}

func ensureDevSuperuser(cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}
	if !strings.EqualFold(cfg.Env, "development") || !cfg.DevBootstrapSuperuser {
		return nil
	}

	email := strings.TrimSpace(strings.ToLower(cfg.DevSuperuserEmail))
	if email == "" {
		email = "admin@recipebox.local"
	}
	password := cfg.DevSuperuserPassword
	if password == "" {
		return fmt.Errorf("DEV_SUPERUSER_PASSWORD must be set when DEV_BOOTSTRAP_SUPERUSER is enabled")
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)

	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.IsSuperuser && existing.IsStaff {
			return nil
		}
		existing.IsStaff = true
		existing.IsSuperuser = true
		if err := users.Update(ctx, existing); err != nil {
			return err
		}
		log.Printf("development superuser flags ensured for %s", email)
		return nil
	}

	if _, err := service.NewUserService(users).CreateSuperuser(ctx, email, password); err != nil {
		return err
	}
	log.Printf("development superuser bootstrap created %s", email)
	return nil
}
