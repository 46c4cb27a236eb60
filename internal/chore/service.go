package chore

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=chore
type Repository interface {
	CreateChores(ctx context.Context, chores []*Chore) error
	GetChore(ctx context.Context, id uuid.UUID) (*Chore, error)
	ListFamilyChores(ctx context.Context, familyID uuid.UUID) ([]*Chore, error)
	DeactivateChore(ctx context.Context, id uuid.UUID) error
	GetValuation(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name        string
	Description string
	Icon        string
	Valuation   decimal.Decimal
}

func (s *Service) Create(ctx context.Context, familyID uuid.UUID, createdBy *uuid.UUID, params CreateParams) (*Chore, error) {
	chores, err := s.CreateMany(ctx, familyID, createdBy, []CreateParams{params})
	if err != nil {
		return nil, err
	}

	return chores[0], nil
}

func (s *Service) CreateMany(ctx context.Context, familyID uuid.UUID, createdBy *uuid.UUID, params []CreateParams) ([]*Chore, error) {
	chores := make([]*Chore, len(params))
	for i, p := range params {
		chores[i] = &Chore{
			Name:        p.Name,
			Description: p.Description,
			Icon:        p.Icon,
			Valuation:   p.Valuation,
			FamilyID:    familyID,
			IsActive:    true,
			CreatedBy:   createdBy,
		}
	}

	if err := s.repo.CreateChores(ctx, chores); err != nil {
		return nil, err
	}

	return chores, nil
}

// CreateDefaults seeds a new family with the standard chore set.
func (s *Service) CreateDefaults(ctx context.Context, familyID uuid.UUID) ([]*Chore, error) {
	return s.CreateMany(ctx, familyID, nil, DefaultChores())
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Chore, error) {
	return s.repo.GetChore(ctx, id)
}

func (s *Service) ListFamily(ctx context.Context, familyID uuid.UUID) ([]*Chore, error) {
	return s.repo.ListFamilyChores(ctx, familyID)
}

func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeactivateChore(ctx, id)
}
