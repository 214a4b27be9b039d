// Command createsuperuser creates an account with the staff and superuser
// flags set.
package main

import (
	"context"
	"flag"
	"log"

	"recipebox/internal/config"
	"recipebox/internal/database"
	"recipebox/internal/repository"
	"recipebox/internal/service"
)

func main() {
	email := flag.String("email", "", "Email address for the superuser (required)")
	password := flag.String("password", "", "Password for the superuser (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: createsuperuser -email <email> -password <password>")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	users := service.NewUserService(repository.NewUserRepository(db))
	user, err := users.CreateSuperuser(context.Background(), *email, *password)
	if err != nil {
		log.Fatalf("Failed to create superuser: %v", err)
	}

	log.Printf("superuser created: %s (ID %d)", user.Email, user.ID)
}
