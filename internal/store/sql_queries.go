package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/tkoyuncu/itemkeeper/models"
)

// psql is the shared squirrel builder configured for PostgreSQL ($N
// placeholders). Used for every statement whose shape depends on the
// request (partial updates, paginated listings).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	userColumns = "id, email, username, full_name, password_hash, is_active, is_admin, created_at, updated_at"
	itemColumns = "id, title, description, is_active, owner_id, created_at, updated_at"
)

// Fixed-shape statements stay as plain constants.
const (
	createUser = `INSERT INTO users (email, username, full_name, password_hash, is_active, is_admin)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	createItem = `INSERT INTO items (title, description, is_active, owner_id)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + itemColumns + `;`

	findItemByID = `SELECT ` + itemColumns + `
    FROM items
    WHERE id = $1;`

	deleteItem = `DELETE FROM items WHERE id = $1;`
)

// buildListUsersQuery builds a paginated SELECT over the users table.
func buildListUsersQuery(limit, offset uint64) (string, []any, error) {
	return psql.
		Select(userColumns).
		From("users").
		OrderBy("id").
		Limit(limit).
		Offset(offset).
		ToSql()
}

// buildUpdateUserQuery builds a partial UPDATE for the users table.
// Only non-nil fields of update become SET clauses; updated_at is always
// touched. The statement returns the full updated row.
func buildUpdateUserQuery(id int64, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update("users").Set("updated_at", sq.Expr("NOW()"))

	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.FullName != nil {
		builder = builder.Set("full_name", *update.FullName)
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}
	if update.IsAdmin != nil {
		builder = builder.Set("is_admin", *update.IsAdmin)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

// buildListItemsQuery builds a paginated SELECT over the items table.
// When ownerID is non-nil the listing is restricted to that owner.
// When withOwners is true the owning user is joined in so listings can
// expose owner username and email.
func buildListItemsQuery(withOwners bool, ownerID *int64, limit, offset uint64) (string, []any, error) {
	builder := psql.
		Select("i.id", "i.title", "i.description", "i.is_active", "i.owner_id", "i.created_at", "i.updated_at").
		From("items i").
		OrderBy("i.id").
		Limit(limit).
		Offset(offset)

	if withOwners {
		builder = builder.
			Columns("u.username", "u.email").
			Join("users u ON u.id = i.owner_id")
	}
	if ownerID != nil {
		builder = builder.Where(sq.Eq{"i.owner_id": *ownerID})
	}

	return builder.ToSql()
}

// buildUpdateItemQuery builds a partial UPDATE for the items table.
// A present-but-empty description clears the column to NULL.
func buildUpdateItemQuery(id int64, update models.ItemUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update("items").Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		if *update.Description == "" {
			builder = builder.Set("description", nil)
		} else {
			builder = builder.Set("description", *update.Description)
		}
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + itemColumns).
		ToSql()
}
