package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
	"github.com/pruebatecnica/wishlist/internal/core/ports"
)

type WishlistService struct {
	users    ports.UserRepository
	items    ports.WishlistRepository
	activity ports.ActivityRepository
	log      zerolog.Logger
}

func NewWishlistService(
	users ports.UserRepository,
	items ports.WishlistRepository,
	activity ports.ActivityRepository,
	log zerolog.Logger,
) *WishlistService {
	return &WishlistService{users: users, items: items, activity: activity, log: log}
}

// Dashboard loads the current user, every other user, the user's own items
// and all items owned by others. No pagination.
func (s *WishlistService) Dashboard(ctx context.Context, userID int64) (*ports.Dashboard, error) {
	current, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	others, err := s.users.ListExcept(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: list users: %w", err)
	}
	mine, err := s.items.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: list own items: %w", err)
	}
	theirs, err := s.items.ListNotOwnedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: list other items: %w", err)
	}

	return &ports.Dashboard{
		CurrentUser: *current,
		OtherUsers:  others,
		MyItems:     mine,
		OthersItems: theirs,
	}, nil
}

func (s *WishlistService) AddItem(ctx context.Context, userID int64, name string) (*domain.WishlistItem, error) {
	if name == "" {
		return nil, domain.ErrEmptyItemName
	}
	if utf8.RuneCountInString(name) > domain.MaxItemNameLength {
		return nil, domain.ErrFieldTooLong
	}

	item, err := s.items.Create(ctx, &domain.WishlistItem{Name: name, AddedBy: userID})
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("failed to add wishlist item")
		return nil, err
	}

	s.log.Info().Int64("user_id", userID).Int64("item_id", item.ID).Msg("wishlist item added")
	recordActivity(ctx, s.activity, s.log, &domain.Activity{
		UserID:   userID,
		Type:     domain.ActivityItemAdded,
		TargetID: item.ID,
		Message:  item.Name,
	})
	return item, nil
}

// CopyItem compares the requester with the source item's owner only; a user
// may still end up holding several items with the same name.
func (s *WishlistService) CopyItem(ctx context.Context, userID, itemID int64) (*domain.WishlistItem, error) {
	source, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if source.OwnedBy(userID) {
		return nil, domain.ErrAlreadyInWishlist
	}

	item, err := s.items.Create(ctx, &domain.WishlistItem{Name: source.Name, AddedBy: userID})
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Int64("source_id", itemID).Msg("failed to copy wishlist item")
		return nil, err
	}

	s.log.Info().
		Int64("user_id", userID).
		Int64("source_id", itemID).
		Int64("item_id", item.ID).
		Msg("wishlist item copied")
	recordActivity(ctx, s.activity, s.log, &domain.Activity{
		UserID:   userID,
		Type:     domain.ActivityItemCopied,
		TargetID: item.ID,
		Message:  fmt.Sprintf("copied %q from item %d", item.Name, itemID),
	})
	return item, nil
}

func (s *WishlistService) ItemDetails(ctx context.Context, itemID int64) (*ports.ItemDetail, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	owner, err := s.users.FindByID(ctx, item.AddedBy)
	if err != nil {
		return nil, fmt.Errorf("item details: owner: %w", err)
	}
	return &ports.ItemDetail{Item: *item, Owner: *owner}, nil
}

func (s *WishlistService) RemoveItem(ctx context.Context, userID, itemID int64) error {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if !item.OwnedBy(userID) {
		s.log.Warn().Int64("user_id", userID).Int64("item_id", itemID).Msg("delete denied: not the owner")
		return domain.ErrForbidden
	}

	if err := s.items.Delete(ctx, itemID); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", userID).Int64("item_id", itemID).Msg("wishlist item removed")
	recordActivity(ctx, s.activity, s.log, &domain.Activity{
		UserID:   userID,
		Type:     domain.ActivityItemRemoved,
		TargetID: itemID,
		Message:  item.Name,
	})
	return nil
}
