package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
)

func TestRegisterInputValidation(t *testing.T) {
	svc := NewAuthService(nil, nil, nil)

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"unknown role", RegisterInput{Name: "Imran", Username: "imran1", Email: "imran@example.com", Password: "longenough", Role: "sultan"}},
		{"short password", RegisterInput{Name: "Imran", Username: "imran1", Email: "imran@example.com", Password: "short", Role: "city"}},
		{"bad email", RegisterInput{Name: "Imran", Username: "imran1", Email: "not-an-email", Password: "longenough", Role: "city"}},
		{"non alphanumeric username", RegisterInput{Name: "Imran", Username: "imran one", Email: "imran@example.com", Password: "longenough", Role: "city"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			_, err := svc.Register(context.Background(), &input)
			assert.Error(t, err)
		})
	}
}

func TestLoginInputValidation(t *testing.T) {
	svc := NewAuthService(nil, nil, nil)

	_, err := svc.Login(context.Background(), &LoginInput{Username: "", Password: "x"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), &LoginInput{Username: "x", Password: ""})
	assert.Error(t, err)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("ExistsByUsername", mock.Anything, "imran1").Return(true, nil).Once()

	svc := NewAuthService(repo, nil, nil)

	_, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Imran",
		Username: "imran1",
		Email:    "imran@example.com",
		Password: "longenough",
		Role:     "city",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	repo.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("ExistsByUsername", mock.Anything, "imran1").Return(false, nil).Once()
	repo.On("ExistsByEmail", mock.Anything, "imran@example.com").Return(true, nil).Once()

	svc := NewAuthService(repo, nil, nil)

	_, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Imran",
		Username: "imran1",
		Email:    "imran@example.com",
		Password: "longenough",
		Role:     "city",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	repo.AssertExpectations(t)
}

func TestRegisterCreatesPendingUser(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("ExistsByUsername", mock.Anything, "bilal99").Return(false, nil).Once()
	repo.On("ExistsByEmail", mock.Anything, "bilal@example.com").Return(false, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Username == "bilal99" &&
			u.Status == models.UserStatusPending &&
			u.Role == "community" &&
			u.Password != "longenough"
	})).Return(nil).Once()

	svc := NewAuthService(repo, nil, nil)

	user, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Bilal",
		Username: "bilal99",
		Email:    "bilal@example.com",
		Password: "longenough",
		Role:     "community",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusPending, user.Status)

	repo.AssertExpectations(t)
}
