package completion_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/PANATARA/chorebank/internal/chore"
	"github.com/PANATARA/chorebank/internal/completion"
	"github.com/PANATARA/chorebank/internal/user"
)

type txRunnerStub struct{}

func (txRunnerStub) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService(t *testing.T) (*completion.Service, *completion.MockRepository, *completion.MockRewardIssuer, *completion.MockConfirmerSource) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := completion.NewMockRepository(ctrl)
	rewards := completion.NewMockRewardIssuer(ctrl)
	confirmers := completion.NewMockConfirmerSource(ctrl)

	return completion.NewService(repo, rewards, confirmers, txRunnerStub{}), repo, rewards, confirmers
}

func TestService_Create(t *testing.T) {
	familyID := uuid.New()
	userID := uuid.New()
	choreID := uuid.New()

	activeChore := &chore.Chore{ID: choreID, FamilyID: familyID, IsActive: true}
	completer := &user.User{ID: userID, FamilyID: &familyID}

	type testCase struct {
		name       string
		chore      *chore.Chore
		setupMock  func(repo *completion.MockRepository, rewards *completion.MockRewardIssuer, confirmers *completion.MockConfirmerSource)
		wantStatus completion.Status
		wantErr    error
	}

	tests := []testCase{
		{
			name:  "WithReviewers",
			chore: activeChore,
			setupMock: func(repo *completion.MockRepository, rewards *completion.MockRewardIssuer, confirmers *completion.MockConfirmerSource) {
				reviewers := []uuid.UUID{uuid.New(), uuid.New()}

				repo.EXPECT().
					CreateCompletion(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *completion.ChoreCompletion) error {
						c.ID = uuid.New()
						return nil
					})
				confirmers.EXPECT().
					UsersShouldConfirm(gomock.Any(), familyID, userID).
					Return(reviewers, nil)
				repo.EXPECT().
					CreateConfirmations(gomock.Any(), gomock.Any(), reviewers).
					Return(nil)
			},
			wantStatus: completion.StatusAwaits,
		},
		{
			name:  "NoReviewersApprovesImmediately",
			chore: activeChore,
			setupMock: func(repo *completion.MockRepository, rewards *completion.MockRewardIssuer, confirmers *completion.MockConfirmerSource) {
				repo.EXPECT().
					CreateCompletion(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *completion.ChoreCompletion) error {
						c.ID = uuid.New()
						return nil
					})
				confirmers.EXPECT().
					UsersShouldConfirm(gomock.Any(), familyID, userID).
					Return(nil, nil)
				repo.EXPECT().
					UpdateCompletionStatus(gomock.Any(), gomock.Any(), completion.StatusApproved).
					Return(nil)
				rewards.EXPECT().
					RewardForCompletion(gomock.Any(), gomock.Any(), "income").
					Return(nil)
			},
			wantStatus: completion.StatusApproved,
		},
		{
			name:    "InactiveChore",
			chore:   &chore.Chore{ID: choreID, FamilyID: familyID, IsActive: false},
			wantErr: chore.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, rewards, confirmers := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo, rewards, confirmers)
			}

			got, err := svc.Create(context.Background(), completer, tt.chore, "done it")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, familyID, got.FamilyID)
			require.NotNil(t, got.CompletedBy)
			assert.Equal(t, userID, *got.CompletedBy)
		})
	}
}

func TestService_SetConfirmationStatus(t *testing.T) {
	actorID := uuid.New()
	confirmationID := uuid.New()
	completionID := uuid.New()

	awaiting := func() *completion.ChoreCompletion {
		return &completion.ChoreCompletion{ID: completionID, Status: completion.StatusAwaits}
	}
	conf := func() *completion.ChoreConfirmation {
		return &completion.ChoreConfirmation{
			ID:                confirmationID,
			ChoreCompletionID: completionID,
			UserID:            actorID,
			Status:            completion.StatusAwaits,
		}
	}

	type testCase struct {
		name      string
		status    completion.Status
		setupMock func(repo *completion.MockRepository, rewards *completion.MockRewardIssuer)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "CancelVoteCancelsCompletion",
			status: completion.StatusCanceled,
			setupMock: func(repo *completion.MockRepository, rewards *completion.MockRewardIssuer) {
				repo.EXPECT().GetConfirmation(gomock.Any(), confirmationID).Return(conf(), nil)
				repo.EXPECT().GetCompletionForUpdate(gomock.Any(), completionID).Return(awaiting(), nil)
				repo.EXPECT().
					UpdateConfirmationStatus(gomock.Any(), confirmationID, completion.StatusCanceled).
					Return(nil)
				repo.EXPECT().
					UpdateCompletionStatus(gomock.Any(), completionID, completion.StatusCanceled).
					Return(nil)
			},
		},
		{
			name:   "ApproveVoteWithSiblingsStillAwaiting",
			status: completion.StatusApproved,
			setupMock: func(repo *completion.MockRepository, rewards *completion.MockRewardIssuer) {
				repo.EXPECT().GetConfirmation(gomock.Any(), confirmationID).Return(conf(), nil)
				repo.EXPECT().GetCompletionForUpdate(gomock.Any(), completionID).Return(awaiting(), nil)
				repo.EXPECT().
					UpdateConfirmationStatus(gomock.Any(), confirmationID, completion.StatusApproved).
					Return(nil)
				repo.EXPECT().
					CountConfirmations(gomock.Any(), completionID, completion.StatusAwaits).
					Return(1, nil)
			},
		},
		{
			name:   "LastApproveVoteApprovesAndRewards",
			status: completion.StatusApproved,
			setupMock: func(repo *completion.MockRepository, rewards *completion.MockRewardIssuer) {
				repo.EXPECT().GetConfirmation(gomock.Any(), confirmationID).Return(conf(), nil)
				repo.EXPECT().GetCompletionForUpdate(gomock.Any(), completionID).Return(awaiting(), nil)
				repo.EXPECT().
					UpdateConfirmationStatus(gomock.Any(), confirmationID, completion.StatusApproved).
					Return(nil)
				repo.EXPECT().
					CountConfirmations(gomock.Any(), completionID, completion.StatusAwaits).
					Return(0, nil)
				repo.EXPECT().
					UpdateCompletionStatus(gomock.Any(), completionID, completion.StatusApproved).
					Return(nil)
				rewards.EXPECT().
					RewardForCompletion(gomock.Any(), gomock.Any(), "income").
					DoAndReturn(func(_ context.Context, c *completion.ChoreCompletion, _ string) error {
						assert.Equal(t, completion.StatusApproved, c.Status)
						return nil
					})
			},
		},
		{
			name:   "LateVoteOnResolvedCompletion",
			status: completion.StatusApproved,
			setupMock: func(repo *completion.MockRepository, rewards *completion.MockRewardIssuer) {
				resolved := &completion.ChoreCompletion{ID: completionID, Status: completion.StatusCanceled}

				repo.EXPECT().GetConfirmation(gomock.Any(), confirmationID).Return(conf(), nil)
				repo.EXPECT().GetCompletionForUpdate(gomock.Any(), completionID).Return(resolved, nil)
			},
			wantErr: completion.ErrCannotBeChanged,
		},
		{
			name:   "NotTheVoteOwner",
			status: completion.StatusApproved,
			setupMock: func(repo *completion.MockRepository, rewards *completion.MockRewardIssuer) {
				other := conf()
				other.UserID = uuid.New()

				repo.EXPECT().GetConfirmation(gomock.Any(), confirmationID).Return(other, nil)
			},
			wantErr: completion.ErrConfirmationNotFound,
		},
		{
			name:    "AwaitsIsNotAVote",
			status:  completion.StatusAwaits,
			wantErr: completion.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, rewards, _ := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo, rewards)
			}

			err := svc.SetConfirmationStatus(context.Background(), actorID, confirmationID, tt.status)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_Approve_AlreadyResolved(t *testing.T) {
	svc, repo, _, _ := newService(t)

	id := uuid.New()
	repo.EXPECT().
		GetCompletionForUpdate(gomock.Any(), id).
		Return(&completion.ChoreCompletion{ID: id, Status: completion.StatusApproved}, nil)

	err := svc.Approve(context.Background(), id)
	require.ErrorIs(t, err, completion.ErrCannotBeChanged)
}

func TestService_Cancel(t *testing.T) {
	svc, repo, _, _ := newService(t)

	id := uuid.New()
	repo.EXPECT().
		GetCompletionForUpdate(gomock.Any(), id).
		Return(&completion.ChoreCompletion{ID: id, Status: completion.StatusAwaits}, nil)
	repo.EXPECT().
		UpdateCompletionStatus(gomock.Any(), id, completion.StatusCanceled).
		Return(nil)

	require.NoError(t, svc.Cancel(context.Background(), id))
}

func TestService_Create_RepoError(t *testing.T) {
	familyID := uuid.New()
	completer := &user.User{ID: uuid.New(), FamilyID: &familyID}
	activeChore := &chore.Chore{ID: uuid.New(), FamilyID: familyID, IsActive: true}

	svc, repo, _, _ := newService(t)

	repo.EXPECT().
		CreateCompletion(gomock.Any(), gomock.Any()).
		Return(errors.New("db error"))

	_, err := svc.Create(context.Background(), completer, activeChore, "")
	require.Error(t, err)
}
