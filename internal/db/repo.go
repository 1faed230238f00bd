package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

const (
	StatusPublished = 1
	StatusDraft     = 2
)

// uniqueViolation is the SQLSTATE postgres reports for a unique constraint hit.
const uniqueViolation = "23505"

// ErrUniqueViolation is returned by write methods when a unique constraint rejects the row.
var ErrUniqueViolation = errors.New("unique constraint violation")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// writeErr wraps err and marks unique violations with ErrUniqueViolation.
func writeErr(msg string, err error) error {
	var pgErr pg.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolation {
		return fmt.Errorf("%s: %w (%s)", msg, ErrUniqueViolation, pgErr.Field('n'))
	}

	return fmt.Errorf("%s: %w", msg, err)
}
