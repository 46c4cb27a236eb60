package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/PANATARA/chorebank/internal/database"
	"github.com/PANATARA/chorebank/internal/family"
	"github.com/PANATARA/chorebank/internal/user"
)

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

func (s *Store) CreateFamily(ctx context.Context, f *family.Family) error {
	query := `
		INSERT INTO families (name, icon, family_admin_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.Conn(ctx).QueryRowContext(ctx, query, f.Name, f.Icon, f.AdminID).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating family: %w", err)
	}

	return nil
}

func (s *Store) GetFamily(ctx context.Context, id uuid.UUID) (*family.Family, error) {
	query := `
		SELECT id, name, icon, family_admin_id, created_at, updated_at
		FROM families
		WHERE id = $1
	`

	var f family.Family

	err := s.db.Conn(ctx).QueryRowContext(ctx, query, id).
		Scan(&f.ID, &f.Name, &f.Icon, &f.AdminID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, family.ErrNotFound
		}

		return nil, fmt.Errorf("getting family: %w", err)
	}

	return &f, nil
}

func (s *Store) IsFamilyAdmin(ctx context.Context, userID, familyID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM families WHERE id = $1 AND family_admin_id = $2
		)
	`

	var isAdmin bool
	if err := s.db.Conn(ctx).QueryRowContext(ctx, query, familyID, userID).Scan(&isAdmin); err != nil {
		return false, fmt.Errorf("checking family admin: %w", err)
	}

	return isAdmin, nil
}

func (s *Store) ListMembers(ctx context.Context, familyID uuid.UUID) ([]*user.User, error) {
	query := `
		SELECT id, username, name, surname, family_id, password, is_active, is_superuser, created_at, updated_at
		FROM users
		WHERE family_id = $1 AND is_active
		ORDER BY created_at ASC
	`

	rows, err := s.db.Conn(ctx).QueryContext(ctx, query, familyID)
	if err != nil {
		return nil, fmt.Errorf("listing family members: %w", err)
	}
	defer rows.Close()

	var members []*user.User

	for rows.Next() {
		var u user.User

		var surname sql.NullString

		if err := rows.Scan(
			&u.ID, &u.Username, &u.Name, &surname, &u.FamilyID, &u.Password,
			&u.IsActive, &u.IsSuperuser, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning family member: %w", err)
		}

		u.Surname = surname.String
		members = append(members, &u)
	}

	return members, rows.Err()
}

func (s *Store) CreatePermissions(ctx context.Context, p *family.Permissions) error {
	query := `
		INSERT INTO user_family_permissions (user_id, should_confirm_chore_completion, can_invite_users)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.Conn(ctx).QueryRowContext(ctx, query,
		p.UserID,
		p.ShouldConfirmChoreCompletion,
		p.CanInviteUsers,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("creating permissions: %w", err)
	}

	return nil
}

func (s *Store) DeletePermissionsByUser(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM user_family_permissions WHERE user_id = $1`

	if _, err := s.db.Conn(ctx).ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("deleting permissions: %w", err)
	}

	return nil
}

// ConfirmerIDs returns every member of the family whose permission row
// requires them to confirm chore completions.
func (s *Store) ConfirmerIDs(ctx context.Context, familyID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT u.id
		FROM users u
		JOIN user_family_permissions p ON p.user_id = u.id
		WHERE u.family_id = $1 AND p.should_confirm_chore_completion
	`

	rows, err := s.db.Conn(ctx).QueryContext(ctx, query, familyID)
	if err != nil {
		return nil, fmt.Errorf("listing confirmers: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning confirmer id: %w", err)
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (s *Store) CanInviteUsers(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_family_permissions
			WHERE user_id = $1 AND can_invite_users
		)
	`

	var allowed bool

	err := s.db.Conn(ctx).QueryRowContext(ctx, query, userID).Scan(&allowed)
	if err != nil {
		return false, fmt.Errorf("checking invite permission: %w", err)
	}

	return allowed, nil
}

func (s *Store) SetFamilyAdmin(ctx context.Context, familyID, userID uuid.UUID) error {
	query := `
		UPDATE families
		SET family_admin_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.Conn(ctx).ExecContext(ctx, query, userID, familyID)
	if err != nil {
		return fmt.Errorf("setting family admin: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("setting family admin: %w", err)
	}

	if affected == 0 {
		return family.ErrNotFound
	}

	return nil
}
