package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/PANATARA/chorebank/internal/user"
)

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := user.NewMockRepository(ctrl)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *user.User) error {
			u.ID = uuid.New()
			return nil
		})

	svc := user.NewService(repo)

	u, err := svc.Register(context.Background(), user.RegisterParams{
		Username: "mom",
		Name:     "Maria",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "hunter2", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("hunter2")))
}

func TestService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &user.User{ID: uuid.New(), Username: "mom", Password: string(hash), IsActive: true}

	type testCase struct {
		name      string
		password  string
		setupMock func(m *user.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			password: "hunter2",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByUsername(gomock.Any(), "mom").Return(stored, nil)
			},
		},
		{
			name:     "WrongPassword",
			password: "letmein",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByUsername(gomock.Any(), "mom").Return(stored, nil)
			},
			wantErr: user.ErrBadCredentials,
		},
		{
			name:     "UnknownUsername",
			password: "hunter2",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByUsername(gomock.Any(), "mom").Return(nil, user.ErrNotFound)
			},
			wantErr: user.ErrBadCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := user.NewService(repo)

			got, err := svc.Authenticate(context.Background(), "mom", tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, stored.ID, got.ID)
		})
	}
}
