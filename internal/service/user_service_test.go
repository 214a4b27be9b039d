package service

import (
	"context"
	"testing"

	"recipebox/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, models.NewNotFoundError("User", id)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return models.NewValidationError("User already exists")
		}
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return models.NewNotFoundError("User", user.ID)
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func TestUserService_CreateUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, CreateUserInput{
		Email:    "test@Example.COM",
		Password: "testpass123",
		Name:     "Test Name",
	})
	require.NoError(t, err)

	assert.Equal(t, "test@example.com", user.Email, "domain part should be lowercased")
	assert.Equal(t, "Test Name", user.Name)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsStaff)
	assert.False(t, user.IsSuperuser)

	assert.NotEqual(t, "testpass123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("testpass123")))
}

func TestUserService_CreateUser_Invalid(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateUserInput
	}{
		{"Empty email", CreateUserInput{Email: "", Password: "testpass123"}},
		{"Malformed email", CreateUserInput{Email: "not-an-email", Password: "testpass123"}},
		{"Short password", CreateUserInput{Email: "test@example.com", Password: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.CreateUser(ctx, tt.input)
			assert.Nil(t, user)
			require.Error(t, err)

			appErr, ok := err.(*models.AppError)
			require.True(t, ok)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Email: "dup@example.com", Password: "testpass123"})
	require.NoError(t, err)

	// Case variants of the domain resolve to the same normalized address.
	_, err = svc.CreateUser(ctx, CreateUserInput{Email: "dup@EXAMPLE.com", Password: "testpass123"})
	assert.Error(t, err)
}

func TestUserService_CreateSuperuser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.CreateSuperuser(context.Background(), "admin@example.com", "adminpass123")
	require.NoError(t, err)

	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)
	assert.True(t, user.IsActive)

	stored, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsSuperuser, "elevation must be persisted")
}

func TestUserService_Authenticate(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUserInput{Email: "auth@example.com", Password: "testpass123"})
	require.NoError(t, err)

	t.Run("Valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "auth@example.com", "testpass123")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("Case-variant domain", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "auth@EXAMPLE.COM", "testpass123")
		require.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("Wrong password", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "auth@example.com", "wrongpass")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Unknown email", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "nobody@example.com", "testpass123")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserService_Authenticate_InactiveAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUserInput{Email: "inactive@example.com", Password: "testpass123"})
	require.NoError(t, err)

	created.IsActive = false
	require.NoError(t, repo.Update(ctx, created))

	user, err := svc.Authenticate(ctx, "inactive@example.com", "testpass123")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserService_UpdateProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUserInput{
		Email:    "profile@example.com",
		Password: "testpass123",
		Name:     "Before",
	})
	require.NoError(t, err)

	t.Run("Name only", func(t *testing.T) {
		updated, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: created.ID, Name: "After"})
		require.NoError(t, err)
		assert.Equal(t, "After", updated.Name)

		// Password untouched
		user, err := svc.Authenticate(ctx, "profile@example.com", "testpass123")
		require.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("Password only", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: created.ID, Password: "newpass456"})
		require.NoError(t, err)

		user, err := svc.Authenticate(ctx, "profile@example.com", "newpass456")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "After", user.Name, "name untouched by password change")
	})

	t.Run("Invalid password rejected", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: created.ID, Password: "pw"})
		assert.Error(t, err)
	})
}
