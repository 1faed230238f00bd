package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

func (r *Repository) UserByID(ctx context.Context, userID uuid.UUID) (*User, error) {
	user := &User{ID: userID}
	err := r.db.ModelContext(ctx, user).WherePK().Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *Repository) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*User)(nil)).
		Where(`"t"."userId" = ?`, userID).
		Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

func (r *Repository) UsersCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*User)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get users count: %w", err)
	}

	return count, nil
}
