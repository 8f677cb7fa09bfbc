package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tkoyuncu/itemkeeper/internal/logger"
	"github.com/tkoyuncu/itemkeeper/internal/store"
	"github.com/tkoyuncu/itemkeeper/models"
)

// itemsService is the concrete implementation of [ItemsService].
//
// Mutations resolve the item before consulting the [Guard] so that a missing
// item is always reported as not-found, never as a permissions failure a
// caller could probe for resource existence with.
type itemsService struct {
	itemRepository store.ItemRepository
	guard          Guard
	logger         *logger.Logger
}

// NewItemsService constructs an [ItemsService] wired to the given repository
// and guard.
func NewItemsService(itemRepository store.ItemRepository, guard Guard, logger *logger.Logger) ItemsService {
	return &itemsService{
		itemRepository: itemRepository,
		guard:          guard,
		logger:         logger,
	}
}

// ListItems returns a page of all items. With includeOwner set, each item
// carries the owner's username and email.
func (s *itemsService) ListItems(ctx context.Context, principal models.User, limit, offset uint64, includeOwner bool) ([]models.Item, error) {
	if err := s.guard.Authorize(ctx, principal, OpReadItem, 0); err != nil {
		return nil, err
	}

	if includeOwner {
		return s.itemRepository.ListItemsWithOwners(ctx, limit, offset)
	}

	return s.itemRepository.ListItems(ctx, limit, offset)
}

// ListMyItems returns a page of the principal's own items.
func (s *itemsService) ListMyItems(ctx context.Context, principal models.User, limit, offset uint64) ([]models.Item, error) {
	if err := s.guard.Authorize(ctx, principal, OpReadItem, 0); err != nil {
		return nil, err
	}

	return s.itemRepository.ListItemsByOwner(ctx, principal.UserID, limit, offset)
}

// GetItem returns the item with the given id.
func (s *itemsService) GetItem(ctx context.Context, principal models.User, id int64) (models.Item, error) {
	if err := s.guard.Authorize(ctx, principal, OpReadItem, 0); err != nil {
		return models.Item{}, err
	}

	return s.itemRepository.FindItemByID(ctx, id)
}

// CreateItem creates an item owned by the principal. Ownership always comes
// from the authenticated principal; the request cannot assign another owner.
func (s *itemsService) CreateItem(ctx context.Context, principal models.User, create models.ItemCreate) (models.Item, error) {
	log := logger.FromContext(ctx)

	if err := s.guard.Authorize(ctx, principal, OpCreateItem, 0); err != nil {
		return models.Item{}, err
	}

	title, err := validateTitle(create.Title)
	if err != nil {
		return models.Item{}, err
	}
	description, err := validateDescription(create.Description)
	if err != nil {
		return models.Item{}, err
	}
	if description != nil && *description == "" {
		description = nil
	}

	isActive := true
	if create.IsActive != nil {
		isActive = *create.IsActive
	}

	created, err := s.itemRepository.CreateItem(ctx, models.Item{
		Title:       title,
		Description: description,
		IsActive:    isActive,
		OwnerID:     principal.UserID,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", principal.UserID).Msg("item creation failed")
		return models.Item{}, err
	}

	log.Info().Int64("id", created.ItemID).Int64("owner_id", principal.UserID).Msg("item created")

	return created, nil
}

// UpdateItem applies a partial update to the item with the given id. Only the
// owner or an administrator may update an item.
func (s *itemsService) UpdateItem(ctx context.Context, principal models.User, id int64, update models.ItemUpdate) (models.Item, error) {
	log := logger.FromContext(ctx)

	item, err := s.itemRepository.FindItemByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}

	if err := s.guard.Authorize(ctx, principal, OpUpdateItem, item.OwnerID); err != nil {
		return models.Item{}, err
	}

	if update.Title != nil {
		title, err := validateTitle(*update.Title)
		if err != nil {
			return models.Item{}, err
		}
		update.Title = &title
	}
	if update.Description != nil {
		description, err := validateDescription(update.Description)
		if err != nil {
			return models.Item{}, err
		}
		update.Description = description
	}

	updated, err := s.itemRepository.UpdateItem(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrNothingToUpdate) {
			return models.Item{}, fmt.Errorf("%w: no fields to update", ErrInvalidDataProvided)
		}

		log.Err(err).Int64("id", id).Msg("item update failed")
		return models.Item{}, err
	}

	return updated, nil
}

// DeleteItem removes the item with the given id. Only the owner or an
// administrator may delete an item.
func (s *itemsService) DeleteItem(ctx context.Context, principal models.User, id int64) error {
	log := logger.FromContext(ctx)

	item, err := s.itemRepository.FindItemByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.guard.Authorize(ctx, principal, OpDeleteItem, item.OwnerID); err != nil {
		return err
	}

	if err := s.itemRepository.DeleteItem(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("id", id).Int64("deleted_by", principal.UserID).Msg("item deleted")

	return nil
}
