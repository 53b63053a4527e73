package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubUserRepo struct {
	byID      map[int64]*domain.User
	nextID    int64
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, existing := range r.byID {
		if existing.Username == u.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := *u
	clone.ID = r.nextID
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ListExcept(_ context.Context, id int64) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.byID {
		if u.ID != id {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) seed(username string) *domain.User {
	u, _ := r.Create(context.Background(), &domain.User{Name: username, Username: username})
	return u
}

type stubItemRepo struct {
	byID      map[int64]*domain.WishlistItem
	nextID    int64
	createErr error
	deleted   []int64
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{byID: make(map[int64]*domain.WishlistItem)}
}

func (r *stubItemRepo) Create(_ context.Context, item *domain.WishlistItem) (*domain.WishlistItem, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	clone := *item
	clone.ID = r.nextID
	clone.DateAdded = time.Now().UTC()
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id int64) (*domain.WishlistItem, error) {
	item, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *stubItemRepo) ListByOwner(_ context.Context, ownerID int64) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	for _, item := range r.byID {
		if item.AddedBy == ownerID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubItemRepo) ListNotOwnedBy(_ context.Context, ownerID int64) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	for _, item := range r.byID {
		if item.AddedBy != ownerID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubItemRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubItemRepo) seed(name string, owner int64) *domain.WishlistItem {
	item, _ := r.Create(context.Background(), &domain.WishlistItem{Name: name, AddedBy: owner})
	return item
}

type stubActivityRepo struct {
	inserted  []*domain.Activity
	insertErr error
}

func (r *stubActivityRepo) Insert(_ context.Context, a *domain.Activity) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, a)
	return nil
}

var errStoreDown = errors.New("store unavailable")
