package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetUserByID(ctx context.Context, id int64) (entities.User, error) {
	query, args := r.qb.Select("id", "username", "email").
		From("users").
		Where(sq.Eq{"id": id}).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}
