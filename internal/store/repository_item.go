package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tkoyuncu/itemkeeper/internal/logger"
	"github.com/tkoyuncu/itemkeeper/models"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
// It handles item creation, lookup, listings (optionally joined with the
// owning user), partial update, and deletion against the "items" table.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// scanItem reads one items row into a [models.Item].
func scanItem(row interface{ Scan(dest ...any) error }) (models.Item, error) {
	var item models.Item
	var description sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(
		&item.ItemID, &item.Title, &description, &item.IsActive,
		&item.OwnerID, &item.CreatedAt, &updatedAt,
	)
	if err != nil {
		return models.Item{}, err
	}

	if description.Valid {
		item.Description = &description.String
	}
	if updatedAt.Valid {
		item.UpdatedAt = &updatedAt.Time
	}

	return item, nil
}

// scanItemWithOwner reads one joined items+users row into a [models.Item]
// with OwnerUsername and OwnerEmail populated.
func scanItemWithOwner(row interface{ Scan(dest ...any) error }) (models.Item, error) {
	var item models.Item
	var description sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(
		&item.ItemID, &item.Title, &description, &item.IsActive,
		&item.OwnerID, &item.CreatedAt, &updatedAt,
		&item.OwnerUsername, &item.OwnerEmail,
	)
	if err != nil {
		return models.Item{}, err
	}

	if description.Valid {
		item.Description = &description.String
	}
	if updatedAt.Valid {
		item.UpdatedAt = &updatedAt.Time
	}

	return item, nil
}

// CreateItem persists a new item and returns the fully populated
// [models.Item] with server-assigned fields (ItemID, CreatedAt).
//
// Error handling:
//   - foreign key violation on owner_id → [ErrUserNotFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	var description any
	if item.Description != nil {
		description = *item.Description
	}

	row := r.db.QueryRowContext(ctx, createItem, item.Title, description, item.IsActive, item.OwnerID)

	created, err := scanItem(row)
	if err != nil {
		if domainErr := domainConstraintError(err); domainErr != nil {
			return models.Item{}, domainErr
		}

		log.Err(err).Int64("owner_id", item.OwnerID).Msg("error creating item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindItemByID retrieves an item by its surrogate identifier.
// Returns [ErrItemNotFound] when no row matches.
func (r *itemRepository) FindItemByID(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findItemByID, id)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Int64("id", id).Msg("error finding item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// ListItems returns items ordered by id with LIMIT/OFFSET pagination.
func (r *itemRepository) ListItems(ctx context.Context, limit, offset uint64) ([]models.Item, error) {
	return r.listItems(ctx, false, nil, limit, offset)
}

// ListItemsWithOwners returns items joined with their owning user so that
// OwnerUsername and OwnerEmail are populated.
func (r *itemRepository) ListItemsWithOwners(ctx context.Context, limit, offset uint64) ([]models.Item, error) {
	return r.listItems(ctx, true, nil, limit, offset)
}

// ListItemsByOwner returns the items owned by the given user.
func (r *itemRepository) ListItemsByOwner(ctx context.Context, ownerID int64, limit, offset uint64) ([]models.Item, error) {
	return r.listItems(ctx, false, &ownerID, limit, offset)
}

func (r *itemRepository) listItems(ctx context.Context, withOwners bool, ownerID *int64, limit, offset uint64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery(withOwners, ownerID, limit, offset)
	if err != nil {
		log.Err(err).Msg("error building items listing query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error listing items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	scan := scanItem
	if withOwners {
		scan = scanItemWithOwner
	}

	items := make([]models.Item, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			log.Err(err).Msg("error scanning item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// UpdateItem applies a partial update to the item with the given id and
// returns the updated record.
//
// Error handling:
//   - no fields in update → [ErrNothingToUpdate].
//   - no matching row → [ErrItemNotFound].
func (r *itemRepository) UpdateItem(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateItemQuery(id, update)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return models.Item{}, err
		}

		log.Err(err).Int64("id", id).Msg("error building item update query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Int64("id", id).Msg("error updating item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// DeleteItem removes the item with the given id.
// Returns [ErrItemNotFound] when no row was deleted.
func (r *itemRepository) DeleteItem(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteItem, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error deleting item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
