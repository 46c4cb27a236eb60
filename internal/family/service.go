package family

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/PANATARA/chorebank/internal/cache"
	"github.com/PANATARA/chorebank/internal/chore"
	"github.com/PANATARA/chorebank/internal/database"
	"github.com/PANATARA/chorebank/internal/user"
	"github.com/PANATARA/chorebank/internal/wallet"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=family
type Repository interface {
	CreateFamily(ctx context.Context, f *Family) error
	GetFamily(ctx context.Context, id uuid.UUID) (*Family, error)
	IsFamilyAdmin(ctx context.Context, userID, familyID uuid.UUID) (bool, error)
	ListMembers(ctx context.Context, familyID uuid.UUID) ([]*user.User, error)

	CreatePermissions(ctx context.Context, p *Permissions) error
	DeletePermissionsByUser(ctx context.Context, userID uuid.UUID) error
	ConfirmerIDs(ctx context.Context, familyID uuid.UUID) ([]uuid.UUID, error)
	CanInviteUsers(ctx context.Context, userID uuid.UUID) (bool, error)
	SetFamilyAdmin(ctx context.Context, familyID, userID uuid.UUID) error
}

// Users is the narrow slice of the user store membership needs.
type Users interface {
	GetUser(ctx context.Context, id uuid.UUID) (*user.User, error)
	SetFamily(ctx context.Context, id uuid.UUID, familyID *uuid.UUID) error
}

// Wallets creates and removes member wallets alongside membership.
type Wallets interface {
	CreateWallet(ctx context.Context, userID uuid.UUID) (*wallet.Wallet, error)
	DeleteWallet(ctx context.Context, userID uuid.UUID) error
}

// ChoreSeeder seeds a new family's default chores.
type ChoreSeeder interface {
	CreateDefaults(ctx context.Context, familyID uuid.UUID) ([]*chore.Chore, error)
}

// Cache is the TTL cache used for the confirmer lookup. Satisfied by
// *cache.Cache.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

type Service struct {
	repo    Repository
	users   Users
	wallets Wallets
	chores  ChoreSeeder
	cache   Cache
	txs     database.TxRunner
}

func NewService(repo Repository, users Users, wallets Wallets, chores ChoreSeeder, c Cache, txs database.TxRunner) *Service {
	return &Service{repo: repo, users: users, wallets: wallets, chores: chores, cache: c, txs: txs}
}

// Create makes a new family with creator as its admin, enrolls the
// creator as a confirming member with a fresh wallet, and seeds the
// default chores.
func (s *Service) Create(ctx context.Context, name string, creator *user.User) (*Family, error) {
	if creator.FamilyID != nil {
		return nil, ErrAlreadyInFamily
	}

	f := &Family{Name: name, AdminID: &creator.ID}

	err := s.txs.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateFamily(ctx, f); err != nil {
			return err
		}

		if err := s.addMember(ctx, f.ID, creator, Permissions{
			ShouldConfirmChoreCompletion: true,
			CanInviteUsers:               true,
		}); err != nil {
			return err
		}

		_, err := s.chores.CreateDefaults(ctx, f.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	creator.FamilyID = &f.ID
	// Invalidate only after commit so a racing read cannot repopulate the
	// cache from uncommitted state.
	s.invalidateConfirmers(ctx, f.ID)

	return f, nil
}

// AddMember enrolls a user into the family: membership, permission row
// and a fresh wallet, all in one transaction.
func (s *Service) AddMember(ctx context.Context, familyID uuid.UUID, u *user.User, perms Permissions) error {
	if u.FamilyID != nil {
		return ErrAlreadyInFamily
	}

	err := s.txs.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetFamily(ctx, familyID); err != nil {
			return err
		}

		return s.addMember(ctx, familyID, u, perms)
	})
	if err != nil {
		return err
	}

	u.FamilyID = &familyID
	s.invalidateConfirmers(ctx, familyID)

	return nil
}

func (s *Service) addMember(ctx context.Context, familyID uuid.UUID, u *user.User, perms Permissions) error {
	if err := s.users.SetFamily(ctx, u.ID, &familyID); err != nil {
		return err
	}

	perms.UserID = u.ID
	if err := s.repo.CreatePermissions(ctx, &perms); err != nil {
		return err
	}

	if _, err := s.wallets.CreateWallet(ctx, u.ID); err != nil {
		return err
	}

	return nil
}

// Leave removes the user from their family: membership cleared, the
// permission row and wallet hard-deleted. The admin cannot leave.
func (s *Service) Leave(ctx context.Context, u *user.User) error {
	if u.FamilyID == nil {
		return ErrNotInFamily
	}

	familyID := *u.FamilyID

	admin, err := s.repo.IsFamilyAdmin(ctx, u.ID, familyID)
	if err != nil {
		return err
	}

	if admin {
		return ErrAdminCannotLeave
	}

	if err := s.removeMember(ctx, u); err != nil {
		return err
	}

	s.invalidateConfirmers(ctx, familyID)

	return nil
}

// Kick removes a member from the admin's family. Only the admin may kick,
// and the admin cannot kick themselves.
func (s *Service) Kick(ctx context.Context, admin *user.User, memberID uuid.UUID) error {
	if admin.FamilyID == nil {
		return ErrNotInFamily
	}

	familyID := *admin.FamilyID

	isAdmin, err := s.repo.IsFamilyAdmin(ctx, admin.ID, familyID)
	if err != nil {
		return err
	}

	if !isAdmin {
		return ErrNotAdmin
	}

	if memberID == admin.ID {
		return ErrAdminCannotLeave
	}

	member, err := s.users.GetUser(ctx, memberID)
	if err != nil {
		return err
	}

	if !member.InFamily(familyID) {
		return ErrNotInFamily
	}

	if err := s.removeMember(ctx, member); err != nil {
		return err
	}

	s.invalidateConfirmers(ctx, familyID)

	return nil
}

// removeMember clears the membership and hard-deletes the permission row
// and wallet in one transaction.
func (s *Service) removeMember(ctx context.Context, u *user.User) error {
	err := s.txs.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.users.SetFamily(ctx, u.ID, nil); err != nil {
			return err
		}

		if err := s.repo.DeletePermissionsByUser(ctx, u.ID); err != nil {
			return err
		}

		return s.wallets.DeleteWallet(ctx, u.ID)
	})
	if err != nil {
		return err
	}

	u.FamilyID = nil

	return nil
}

// SetAdmin hands the admin role over to another member of the family.
func (s *Service) SetAdmin(ctx context.Context, admin *user.User, newAdminID uuid.UUID) error {
	if admin.FamilyID == nil {
		return ErrNotInFamily
	}

	familyID := *admin.FamilyID

	isAdmin, err := s.repo.IsFamilyAdmin(ctx, admin.ID, familyID)
	if err != nil {
		return err
	}

	if !isAdmin {
		return ErrNotAdmin
	}

	successor, err := s.users.GetUser(ctx, newAdminID)
	if err != nil {
		return err
	}

	if !successor.InFamily(familyID) {
		return ErrNotInFamily
	}

	return s.repo.SetFamilyAdmin(ctx, familyID, newAdminID)
}

// UsersShouldConfirm returns the family members whose votes a completion
// by excludeUserID requires. The unfiltered confirmer set is cached; the
// exclusion is applied after.
func (s *Service) UsersShouldConfirm(ctx context.Context, familyID, excludeUserID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.cachedConfirmerIDs(ctx, familyID)
	if err != nil {
		return nil, err
	}

	out := make([]uuid.UUID, 0, len(ids))

	for _, id := range ids {
		if id != excludeUserID {
			out = append(out, id)
		}
	}

	return out, nil
}

func (s *Service) cachedConfirmerIDs(ctx context.Context, familyID uuid.UUID) ([]uuid.UUID, error) {
	key := confirmersKey(familyID)

	if raw, err := s.cache.Get(ctx, key); err == nil {
		return parseIDList(raw)
	} else if !errors.Is(err, cache.ErrMiss) {
		slog.Warn("confirmer cache read failed", "family_id", familyID, "error", err)
	}

	ids, err := s.repo.ConfirmerIDs(ctx, familyID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, formatIDList(ids)); err != nil {
		slog.Warn("confirmer cache write failed", "family_id", familyID, "error", err)
	}

	return ids, nil
}

func (s *Service) invalidateConfirmers(ctx context.Context, familyID uuid.UUID) {
	if err := s.cache.Delete(ctx, confirmersKey(familyID)); err != nil {
		slog.Warn("confirmer cache invalidation failed", "family_id", familyID, "error", err)
	}
}

func confirmersKey(familyID uuid.UUID) string {
	return fmt.Sprintf("family:%s:confirmers", familyID)
}

func formatIDList(ids []uuid.UUID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}

	return strings.Join(parts, ",")
}

func parseIDList(raw string) ([]uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, len(parts))

	for i, p := range parts {
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, fmt.Errorf("parsing cached confirmer id: %w", err)
		}

		ids[i] = id
	}

	return ids, nil
}

// CanInvite reports whether the user's permission row allows inviting
// new members.
func (s *Service) CanInvite(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.repo.CanInviteUsers(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Family, error) {
	return s.repo.GetFamily(ctx, id)
}

func (s *Service) Members(ctx context.Context, familyID uuid.UUID) ([]*user.User, error) {
	return s.repo.ListMembers(ctx, familyID)
}
