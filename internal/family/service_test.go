package family_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/PANATARA/chorebank/internal/cache"
	"github.com/PANATARA/chorebank/internal/chore"
	"github.com/PANATARA/chorebank/internal/family"
	"github.com/PANATARA/chorebank/internal/user"
	"github.com/PANATARA/chorebank/internal/wallet"
)

type txRunnerStub struct{}

func (txRunnerStub) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mocks struct {
	repo    *family.MockRepository
	users   *family.MockUsers
	wallets *family.MockWallets
	chores  *family.MockChoreSeeder
	cache   *family.MockCache
}

func newService(t *testing.T) (*family.Service, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		repo:    family.NewMockRepository(ctrl),
		users:   family.NewMockUsers(ctrl),
		wallets: family.NewMockWallets(ctrl),
		chores:  family.NewMockChoreSeeder(ctrl),
		cache:   family.NewMockCache(ctrl),
	}

	svc := family.NewService(m.repo, m.users, m.wallets, m.chores, m.cache, txRunnerStub{})

	return svc, m
}

func TestService_Create(t *testing.T) {
	creator := &user.User{ID: uuid.New(), Username: "mom"}

	svc, m := newService(t)

	m.repo.EXPECT().
		CreateFamily(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *family.Family) error {
			f.ID = uuid.New()
			return nil
		})
	m.users.EXPECT().
		SetFamily(gomock.Any(), creator.ID, gomock.Any()).
		Return(nil)
	m.repo.EXPECT().
		CreatePermissions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *family.Permissions) error {
			assert.Equal(t, creator.ID, p.UserID)
			assert.True(t, p.ShouldConfirmChoreCompletion)
			assert.True(t, p.CanInviteUsers)
			return nil
		})
	m.wallets.EXPECT().
		CreateWallet(gomock.Any(), creator.ID).
		Return(&wallet.Wallet{ID: uuid.New(), UserID: creator.ID}, nil)
	m.chores.EXPECT().
		CreateDefaults(gomock.Any(), gomock.Any()).
		Return([]*chore.Chore{{ID: uuid.New()}}, nil)
	m.cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)

	f, err := svc.Create(context.Background(), "The Smiths", creator)
	require.NoError(t, err)
	require.NotNil(t, f.AdminID)
	assert.Equal(t, creator.ID, *f.AdminID)
	require.NotNil(t, creator.FamilyID)
	assert.Equal(t, f.ID, *creator.FamilyID)
}

func TestService_Create_AlreadyInFamily(t *testing.T) {
	familyID := uuid.New()
	creator := &user.User{ID: uuid.New(), FamilyID: &familyID}

	svc, _ := newService(t)

	_, err := svc.Create(context.Background(), "Second Family", creator)
	require.ErrorIs(t, err, family.ErrAlreadyInFamily)
}

func TestService_AddMember(t *testing.T) {
	familyID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		joiner := &user.User{ID: uuid.New(), Username: "kid"}

		svc, m := newService(t)

		m.repo.EXPECT().
			GetFamily(gomock.Any(), familyID).
			Return(&family.Family{ID: familyID}, nil)
		m.users.EXPECT().SetFamily(gomock.Any(), joiner.ID, gomock.Any()).Return(nil)
		m.repo.EXPECT().CreatePermissions(gomock.Any(), gomock.Any()).Return(nil)
		m.wallets.EXPECT().
			CreateWallet(gomock.Any(), joiner.ID).
			Return(&wallet.Wallet{ID: uuid.New(), UserID: joiner.ID}, nil)
		m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.AddMember(context.Background(), familyID, joiner, family.Permissions{
			ShouldConfirmChoreCompletion: true,
		})
		require.NoError(t, err)
		require.NotNil(t, joiner.FamilyID)
		assert.Equal(t, familyID, *joiner.FamilyID)
	})

	t.Run("AlreadyInFamily", func(t *testing.T) {
		other := uuid.New()
		joiner := &user.User{ID: uuid.New(), FamilyID: &other}

		svc, _ := newService(t)

		err := svc.AddMember(context.Background(), familyID, joiner, family.Permissions{})
		require.ErrorIs(t, err, family.ErrAlreadyInFamily)
	})
}

func TestService_Leave(t *testing.T) {
	familyID := uuid.New()

	t.Run("MemberLeaves", func(t *testing.T) {
		member := &user.User{ID: uuid.New(), FamilyID: &familyID}

		svc, m := newService(t)

		m.repo.EXPECT().IsFamilyAdmin(gomock.Any(), member.ID, familyID).Return(false, nil)
		m.users.EXPECT().SetFamily(gomock.Any(), member.ID, nil).Return(nil)
		m.repo.EXPECT().DeletePermissionsByUser(gomock.Any(), member.ID).Return(nil)
		m.wallets.EXPECT().DeleteWallet(gomock.Any(), member.ID).Return(nil)
		m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.Leave(context.Background(), member))
		assert.Nil(t, member.FamilyID)
	})

	t.Run("AdminCannotLeave", func(t *testing.T) {
		admin := &user.User{ID: uuid.New(), FamilyID: &familyID}

		svc, m := newService(t)

		m.repo.EXPECT().IsFamilyAdmin(gomock.Any(), admin.ID, familyID).Return(true, nil)

		err := svc.Leave(context.Background(), admin)
		require.ErrorIs(t, err, family.ErrAdminCannotLeave)
		require.NotNil(t, admin.FamilyID)
	})

	t.Run("NotInFamily", func(t *testing.T) {
		loner := &user.User{ID: uuid.New()}

		svc, _ := newService(t)

		require.ErrorIs(t, svc.Leave(context.Background(), loner), family.ErrNotInFamily)
	})
}

func TestService_Kick(t *testing.T) {
	familyID := uuid.New()

	t.Run("AdminKicksMember", func(t *testing.T) {
		admin := &user.User{ID: uuid.New(), FamilyID: &familyID}
		member := &user.User{ID: uuid.New(), FamilyID: &familyID}

		svc, m := newService(t)

		m.repo.EXPECT().IsFamilyAdmin(gomock.Any(), admin.ID, familyID).Return(true, nil)
		m.users.EXPECT().GetUser(gomock.Any(), member.ID).Return(member, nil)
		m.users.EXPECT().SetFamily(gomock.Any(), member.ID, nil).Return(nil)
		m.repo.EXPECT().DeletePermissionsByUser(gomock.Any(), member.ID).Return(nil)
		m.wallets.EXPECT().DeleteWallet(gomock.Any(), member.ID).Return(nil)
		m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.Kick(context.Background(), admin, member.ID))
		assert.Nil(t, member.FamilyID)
	})

	t.Run("NonAdminCannotKick", func(t *testing.T) {
		actor := &user.User{ID: uuid.New(), FamilyID: &familyID}

		svc, m := newService(t)

		m.repo.EXPECT().IsFamilyAdmin(gomock.Any(), actor.ID, familyID).Return(false, nil)

		err := svc.Kick(context.Background(), actor, uuid.New())
		require.ErrorIs(t, err, family.ErrNotAdmin)
	})

	t.Run("AdminCannotKickThemselves", func(t *testing.T) {
		admin := &user.User{ID: uuid.New(), FamilyID: &familyID}

		svc, m := newService(t)

		m.repo.EXPECT().IsFamilyAdmin(gomock.Any(), admin.ID, familyID).Return(true, nil)

		err := svc.Kick(context.Background(), admin, admin.ID)
		require.ErrorIs(t, err, family.ErrAdminCannotLeave)
	})

	t.Run("TargetInAnotherFamily", func(t *testing.T) {
		admin := &user.User{ID: uuid.New(), FamilyID: &familyID}

		otherFamilyID := uuid.New()
		stranger := &user.User{ID: uuid.New(), FamilyID: &otherFamilyID}

		svc, m := newService(t)

		m.repo.EXPECT().IsFamilyAdmin(gomock.Any(), admin.ID, familyID).Return(true, nil)
		m.users.EXPECT().GetUser(gomock.Any(), stranger.ID).Return(stranger, nil)

		err := svc.Kick(context.Background(), admin, stranger.ID)
		require.ErrorIs(t, err, family.ErrNotInFamily)
	})
}

func TestService_SetAdmin(t *testing.T) {
	familyID := uuid.New()

	t.Run("AdminAppointsSuccessor", func(t *testing.T) {
		admin := &user.User{ID: uuid.New(), FamilyID: &familyID}
		successor := &user.User{ID: uuid.New(), FamilyID: &familyID}

		svc, m := newService(t)

		m.repo.EXPECT().IsFamilyAdmin(gomock.Any(), admin.ID, familyID).Return(true, nil)
		m.users.EXPECT().GetUser(gomock.Any(), successor.ID).Return(successor, nil)
		m.repo.EXPECT().SetFamilyAdmin(gomock.Any(), familyID, successor.ID).Return(nil)

		require.NoError(t, svc.SetAdmin(context.Background(), admin, successor.ID))
	})

	t.Run("NonAdminCannotAppoint", func(t *testing.T) {
		actor := &user.User{ID: uuid.New(), FamilyID: &familyID}

		svc, m := newService(t)

		m.repo.EXPECT().IsFamilyAdmin(gomock.Any(), actor.ID, familyID).Return(false, nil)

		err := svc.SetAdmin(context.Background(), actor, uuid.New())
		require.ErrorIs(t, err, family.ErrNotAdmin)
	})

	t.Run("SuccessorOutsideFamily", func(t *testing.T) {
		admin := &user.User{ID: uuid.New(), FamilyID: &familyID}
		loner := &user.User{ID: uuid.New()}

		svc, m := newService(t)

		m.repo.EXPECT().IsFamilyAdmin(gomock.Any(), admin.ID, familyID).Return(true, nil)
		m.users.EXPECT().GetUser(gomock.Any(), loner.ID).Return(loner, nil)

		err := svc.SetAdmin(context.Background(), admin, loner.ID)
		require.ErrorIs(t, err, family.ErrNotInFamily)
	})
}

func TestService_UsersShouldConfirm(t *testing.T) {
	familyID := uuid.New()
	completer := uuid.New()
	reviewerA := uuid.New()
	reviewerB := uuid.New()

	key := fmt.Sprintf("family:%s:confirmers", familyID)

	t.Run("CacheMissFallsBackToStore", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), key).Return("", cache.ErrMiss)
		m.repo.EXPECT().
			ConfirmerIDs(gomock.Any(), familyID).
			Return([]uuid.UUID{completer, reviewerA, reviewerB}, nil)
		m.cache.EXPECT().
			Set(gomock.Any(), key, gomock.Any()).
			Return(nil)

		ids, err := svc.UsersShouldConfirm(context.Background(), familyID, completer)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{reviewerA, reviewerB}, ids)
	})

	t.Run("CacheHitSkipsStore", func(t *testing.T) {
		svc, m := newService(t)

		cached := strings.Join([]string{completer.String(), reviewerA.String()}, ",")
		m.cache.EXPECT().Get(gomock.Any(), key).Return(cached, nil)

		ids, err := svc.UsersShouldConfirm(context.Background(), familyID, completer)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{reviewerA}, ids)
	})

	t.Run("CacheErrorIsNotFatal", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), key).Return("", errors.New("redis down"))
		m.repo.EXPECT().
			ConfirmerIDs(gomock.Any(), familyID).
			Return([]uuid.UUID{reviewerA}, nil)
		m.cache.EXPECT().Set(gomock.Any(), key, gomock.Any()).Return(errors.New("redis down"))

		ids, err := svc.UsersShouldConfirm(context.Background(), familyID, completer)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{reviewerA}, ids)
	})
}
