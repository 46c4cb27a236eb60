package chore_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/PANATARA/chorebank/internal/chore"
)

func TestService_Create(t *testing.T) {
	familyID := uuid.New()
	creatorID := uuid.New()

	ctrl := gomock.NewController(t)
	repo := chore.NewMockRepository(ctrl)

	repo.EXPECT().
		CreateChores(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, chores []*chore.Chore) error {
			for _, c := range chores {
				c.ID = uuid.New()
			}
			return nil
		})

	svc := chore.NewService(repo)

	c, err := svc.Create(context.Background(), familyID, &creatorID, chore.CreateParams{
		Name:      "Mow the lawn",
		Valuation: decimal.NewFromInt(8),
	})
	require.NoError(t, err)
	assert.True(t, c.IsActive)
	assert.Equal(t, familyID, c.FamilyID)
	require.NotNil(t, c.CreatedBy)
	assert.Equal(t, creatorID, *c.CreatedBy)
}

func TestService_CreateDefaults(t *testing.T) {
	familyID := uuid.New()

	ctrl := gomock.NewController(t)
	repo := chore.NewMockRepository(ctrl)

	repo.EXPECT().
		CreateChores(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, chores []*chore.Chore) error {
			require.Len(t, chores, len(chore.DefaultChores()))
			for _, c := range chores {
				assert.Equal(t, familyID, c.FamilyID)
				assert.True(t, c.IsActive)
				assert.Nil(t, c.CreatedBy)
				assert.True(t, c.Valuation.IsPositive())
			}
			return nil
		})

	svc := chore.NewService(repo)

	chores, err := svc.CreateDefaults(context.Background(), familyID)
	require.NoError(t, err)
	assert.Len(t, chores, len(chore.DefaultChores()))
}
