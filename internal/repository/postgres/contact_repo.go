package postgres

import (
	"context"
	"errors"
	"fmt"

	"next-form-backend/internal/domain"
	"next-form-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of *pgxpool.Pool the repository needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type contactRepo struct {
	db    Querier
	query string
}

func NewContactRepository(db Querier, table string) domain.ContactRepository {
	if table == "" {
		table = domain.ContactsTable
	}
	query := fmt.Sprintf(`INSERT INTO %s (name, surname, email, message)
              VALUES ($1, $2, $3, $4) RETURNING id::text`, pgx.Identifier{table}.Sanitize())
	return &contactRepo{db: db, query: query}
}

func (r *contactRepo) Insert(ctx context.Context, submission domain.ContactSubmission) (string, error) {
	var id *string
	err := r.db.QueryRow(ctx, r.query,
		submission.Name, submission.Surname, submission.Email, submission.Message,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return "", apperror.Storagef("%s (code %s)", pgErr.Message, pgErr.Code)
		}
		return "", apperror.Storage(err)
	}

	if id == nil {
		return "", nil
	}
	return *id, nil
}
