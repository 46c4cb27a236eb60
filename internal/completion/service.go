package completion

import (
	"context"

	"github.com/google/uuid"

	"github.com/PANATARA/chorebank/internal/chore"
	"github.com/PANATARA/chorebank/internal/database"
	"github.com/PANATARA/chorebank/internal/user"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=completion
type Repository interface {
	CreateCompletion(ctx context.Context, c *ChoreCompletion) error
	GetCompletion(ctx context.Context, id uuid.UUID) (*ChoreCompletion, error)
	// GetCompletionForUpdate locks the completion row for the rest of the
	// ambient transaction so racing votes are serialized.
	GetCompletionForUpdate(ctx context.Context, id uuid.UUID) (*ChoreCompletion, error)
	UpdateCompletionStatus(ctx context.Context, id uuid.UUID, status Status) error

	CreateConfirmations(ctx context.Context, completionID uuid.UUID, userIDs []uuid.UUID) error
	GetConfirmation(ctx context.Context, id uuid.UUID) (*ChoreConfirmation, error)
	UpdateConfirmationStatus(ctx context.Context, id uuid.UUID, status Status) error
	CountConfirmations(ctx context.Context, completionID uuid.UUID, status Status) (int, error)

	ListFamilyCompletions(ctx context.Context, filter ListFilter) ([]*CompletionView, error)
	ListCompletionConfirmations(ctx context.Context, completionID uuid.UUID) ([]*ChoreConfirmation, error)
	ListUserConfirmations(ctx context.Context, userID uuid.UUID, status *Status) ([]*PendingConfirmation, error)
}

// RewardIssuer settles the payout for an approved completion. Implemented
// by the wallet service; called inside the approval transaction.
type RewardIssuer interface {
	RewardForCompletion(ctx context.Context, c *ChoreCompletion, detail string) error
}

// ConfirmerSource resolves which family members must confirm a completion.
type ConfirmerSource interface {
	UsersShouldConfirm(ctx context.Context, familyID, excludeUserID uuid.UUID) ([]uuid.UUID, error)
}

type Service struct {
	repo       Repository
	rewards    RewardIssuer
	confirmers ConfirmerSource
	txs        database.TxRunner
}

func NewService(repo Repository, rewards RewardIssuer, confirmers ConfirmerSource, txs database.TxRunner) *Service {
	return &Service{repo: repo, rewards: rewards, confirmers: confirmers, txs: txs}
}

type ListFilter struct {
	FamilyID uuid.UUID
	Status   *Status
	ChoreID  *uuid.UUID
	Offset   int
	Limit    int
}

// Create records a completion claim for ch by u. When nobody in the family
// is required to confirm it, the claim is approved and rewarded
// immediately; otherwise one awaiting confirmation per reviewer is
// created. Everything happens in a single transaction.
func (s *Service) Create(ctx context.Context, u *user.User, ch *chore.Chore, message string) (*ChoreCompletion, error) {
	if !ch.IsActive {
		return nil, chore.ErrNotFound
	}

	c := &ChoreCompletion{
		ChoreID:     &ch.ID,
		FamilyID:    ch.FamilyID,
		CompletedBy: &u.ID,
		Status:      StatusAwaits,
		Message:     message,
	}

	err := s.txs.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateCompletion(ctx, c); err != nil {
			return err
		}

		reviewers, err := s.confirmers.UsersShouldConfirm(ctx, ch.FamilyID, u.ID)
		if err != nil {
			return err
		}

		if len(reviewers) == 0 {
			return s.approve(ctx, c)
		}

		return s.repo.CreateConfirmations(ctx, c.ID, reviewers)
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Approve moves an awaiting completion to approved and settles the reward.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) error {
	return s.txs.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.repo.GetCompletionForUpdate(ctx, id)
		if err != nil {
			return err
		}

		return s.approve(ctx, c)
	})
}

// Cancel moves an awaiting completion to canceled. No reward is settled.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.txs.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.repo.GetCompletionForUpdate(ctx, id)
		if err != nil {
			return err
		}

		return s.cancel(ctx, c)
	})
}

func (s *Service) approve(ctx context.Context, c *ChoreCompletion) error {
	if c.Status != StatusAwaits {
		return ErrCannotBeChanged
	}

	if err := s.repo.UpdateCompletionStatus(ctx, c.ID, StatusApproved); err != nil {
		return err
	}

	c.Status = StatusApproved

	return s.rewards.RewardForCompletion(ctx, c, "income")
}

func (s *Service) cancel(ctx context.Context, c *ChoreCompletion) error {
	if c.Status != StatusAwaits {
		return ErrCannotBeChanged
	}

	if err := s.repo.UpdateCompletionStatus(ctx, c.ID, StatusCanceled); err != nil {
		return err
	}

	c.Status = StatusCanceled

	return nil
}

// SetConfirmationStatus records one reviewer's vote. A canceled vote
// cancels the parent completion outright; an approved vote approves the
// parent once no sibling confirmation is still awaiting. The parent row is
// locked before the vote is recorded, so two reviewers racing to be the
// last approver cannot both observe "zero remaining" and double-settle.
// Only the confirmation's owner may vote; anyone else sees not-found.
func (s *Service) SetConfirmationStatus(ctx context.Context, actorID, confirmationID uuid.UUID, status Status) error {
	if status != StatusApproved && status != StatusCanceled {
		return ErrInvalidStatus
	}

	return s.txs.WithinTx(ctx, func(ctx context.Context) error {
		conf, err := s.repo.GetConfirmation(ctx, confirmationID)
		if err != nil {
			return err
		}

		if conf.UserID != actorID {
			return ErrConfirmationNotFound
		}

		c, err := s.repo.GetCompletionForUpdate(ctx, conf.ChoreCompletionID)
		if err != nil {
			return err
		}

		// A late vote after another reviewer already resolved the
		// completion is rejected rather than silently ignored.
		if c.Status.Terminal() {
			return ErrCannotBeChanged
		}

		if err := s.repo.UpdateConfirmationStatus(ctx, conf.ID, status); err != nil {
			return err
		}

		if status == StatusCanceled {
			return s.cancel(ctx, c)
		}

		awaiting, err := s.repo.CountConfirmations(ctx, c.ID, StatusAwaits)
		if err != nil {
			return err
		}

		if awaiting == 0 {
			return s.approve(ctx, c)
		}

		return nil
	})
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ChoreCompletion, error) {
	return s.repo.GetCompletion(ctx, id)
}

func (s *Service) ListFamily(ctx context.Context, filter ListFilter) ([]*CompletionView, error) {
	return s.repo.ListFamilyCompletions(ctx, filter)
}

func (s *Service) Confirmations(ctx context.Context, completionID uuid.UUID) ([]*ChoreConfirmation, error) {
	return s.repo.ListCompletionConfirmations(ctx, completionID)
}

func (s *Service) UserConfirmations(ctx context.Context, userID uuid.UUID, status *Status) ([]*PendingConfirmation, error) {
	return s.repo.ListUserConfirmations(ctx, userID, status)
}
