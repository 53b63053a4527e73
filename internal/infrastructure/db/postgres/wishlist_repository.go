package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
	"github.com/pruebatecnica/wishlist/internal/core/ports"
)

const (
	insertItemQuery       = `INSERT INTO wishlist_items (name, added_by) VALUES ($1, $2) RETURNING id, date_added`
	selectItemByID        = `SELECT id, name, added_by, date_added FROM wishlist_items WHERE id = $1`
	selectItemsByOwner    = `SELECT id, name, added_by, date_added FROM wishlist_items WHERE added_by = $1 ORDER BY date_added, id`
	selectItemsNotOwnedBy = `SELECT id, name, added_by, date_added FROM wishlist_items WHERE added_by <> $1 ORDER BY date_added, id`
	deleteItemQuery       = `DELETE FROM wishlist_items WHERE id = $1`
)

// WishlistRepository implements ports.WishlistRepository using PostgreSQL.
type WishlistRepository struct {
	db *sqlx.DB
}

// NewWishlistRepository creates a new WishlistRepository.
func NewWishlistRepository(db *sqlx.DB) ports.WishlistRepository {
	return &WishlistRepository{db: db}
}

func (r *WishlistRepository) Create(ctx context.Context, item *domain.WishlistItem) (*domain.WishlistItem, error) {
	out := *item
	err := r.db.QueryRowxContext(ctx, insertItemQuery, item.Name, item.AddedBy).Scan(&out.ID, &out.DateAdded)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &out, nil
}

func (r *WishlistRepository) FindByID(ctx context.Context, id int64) (*domain.WishlistItem, error) {
	var item domain.WishlistItem
	if err := r.db.GetContext(ctx, &item, selectItemByID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &item, nil
}

func (r *WishlistRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.WishlistItem, error) {
	return r.list(ctx, selectItemsByOwner, ownerID)
}

func (r *WishlistRepository) ListNotOwnedBy(ctx context.Context, ownerID int64) ([]domain.WishlistItem, error) {
	return r.list(ctx, selectItemsNotOwnedBy, ownerID)
}

func (r *WishlistRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteItemQuery, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *WishlistRepository) list(ctx context.Context, query string, ownerID int64) ([]domain.WishlistItem, error) {
	var items []domain.WishlistItem
	if err := r.db.SelectContext(ctx, &items, query, ownerID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return items, nil
}
