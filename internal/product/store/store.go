package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PANATARA/chorebank/internal/database"
	"github.com/PANATARA/chorebank/internal/product"
)

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

const selectProductColumns = `
	id, name, description, icon, price, is_active, family_id, seller_id, created_at, updated_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*product.Product, error) {
	var p product.Product

	var price string

	if err := s.Scan(
		&p.ID, &p.Name, &p.Description, &p.Icon, &price, &p.IsActive,
		&p.FamilyID, &p.SellerID, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	v, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parsing price: %w", err)
	}

	p.Price = v

	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (name, description, icon, price, is_active, family_id, seller_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.Conn(ctx).QueryRowContext(ctx, query,
		p.Name,
		p.Description,
		p.Icon,
		p.Price.StringFixed(2),
		p.IsActive,
		p.FamilyID,
		p.SellerID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating product: %w", err)
	}

	return nil
}

func (s *Store) GetProduct(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM products WHERE id = $1`

	return s.getProduct(ctx, query, id)
}

func (s *Store) GetProductForUpdate(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM products WHERE id = $1 FOR UPDATE`

	return s.getProduct(ctx, query, id)
}

func (s *Store) getProduct(ctx context.Context, query string, id uuid.UUID) (*product.Product, error) {
	p, err := scanProduct(s.db.Conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, product.ErrNotFound
		}

		return nil, fmt.Errorf("getting product: %w", err)
	}

	return p, nil
}

func (s *Store) ListActiveProducts(ctx context.Context, familyID, excludeSeller uuid.UUID) ([]*product.Product, error) {
	query := `SELECT ` + selectProductColumns + `
		FROM products
		WHERE family_id = $1 AND is_active AND (seller_id IS NULL OR seller_id != $2)
		ORDER BY created_at DESC`

	rows, err := s.db.Conn(ctx).QueryContext(ctx, query, familyID, excludeSeller)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, p)
	}

	return products, rows.Err()
}

func (s *Store) ListSellerProducts(ctx context.Context, sellerID uuid.UUID) ([]*product.Product, error) {
	query := `SELECT ` + selectProductColumns + `
		FROM products
		WHERE seller_id = $1 AND is_active
		ORDER BY created_at DESC`

	rows, err := s.db.Conn(ctx).QueryContext(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("listing seller products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, p)
	}

	return products, rows.Err()
}

func (s *Store) DeactivateProduct(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE products
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := s.db.Conn(ctx).ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deactivating product: %w", err)
	}

	return nil
}
