// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// psql is the squirrel builder for PostgreSQL ($n placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the column order scanned by scanUser.
var userColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"password_hash",
	"is_active",
	"email_verified",
	"created_at",
	"updated_at",
}

func returningUser() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("first_name", "last_name", "email", "password_hash").
		Values(user.FirstName, user.LastName, user.Email, user.PasswordHash).
		Suffix(returningUser()).
		ToSql()
}

func buildSelectUserQuery(where sq.Sqlizer) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
}

func buildSelectRoleIDQuery(role string) (string, []any, error) {
	return psql.Select("id").
		From("roles").
		Where(sq.Eq{"name": role}).
		ToSql()
}

func buildAssignRoleQuery(userID, roleID int64) (string, []any, error) {
	return psql.Insert("user_roles").
		Columns("user_id", "role_id").
		Values(userID, roleID).
		Suffix("ON CONFLICT (user_id, role_id) DO NOTHING").
		ToSql()
}

func buildSelectUserRolesQuery(userID int64) (string, []any, error) {
	return psql.Select("r.name").
		From("roles r").
		Join("user_roles ur ON ur.role_id = r.id").
		Where(sq.Eq{"ur.user_id": userID}).
		OrderBy("r.name").
		ToSql()
}

func buildEmailTakenQuery(email string, excludeID int64) (string, []any, error) {
	return psql.Select("1").
		From("users").
		Where(sq.And{sq.Eq{"email": email}, sq.NotEq{"id": excludeID}}).
		Limit(1).
		ToSql()
}

// buildUpdateUserQuery sets only the non-nil fields of update and always
// bumps updated_at.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	set := map[string]any{}
	if update.FirstName != nil {
		set["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		set["last_name"] = *update.LastName
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.PasswordHash != nil {
		set["password_hash"] = *update.PasswordHash
	}
	if len(set) == 0 {
		return "", nil, ErrNothingToUpdate
	}
	set["updated_at"] = sq.Expr("CURRENT_TIMESTAMP")

	return psql.Update("users").
		SetMap(set).
		Where(sq.Eq{"id": update.ID}).
		Suffix(returningUser()).
		ToSql()
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&u.IsActive,
		&u.EmailVerified,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}
