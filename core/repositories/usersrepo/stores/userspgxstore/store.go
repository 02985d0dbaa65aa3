// Package userspgxstore implements usersrepo.Storer on postgres.
package userspgxstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/taskvault/taskvault/core/repositories/usersrepo"
	"github.com/taskvault/taskvault/infrastructure/postgresdb"
	"github.com/taskvault/taskvault/sdk/logger"
)

const userColumns = "id, username, email, password, created_at"

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// Create inserts a new user and returns the stored record.
func (s *Store) Create(ctx context.Context, input usersrepo.CreateUser) (usersrepo.User, error) {
	query := `
		INSERT INTO users (username, email, password)
		VALUES (@username, @email, @password)
		RETURNING ` + userColumns

	args := pgx.NamedArgs{
		"username": input.Username,
		"email":    input.Email,
		"password": input.PasswordHash,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return usersrepo.User{}, createError(err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[usersrepo.User])
	if err != nil {
		return usersrepo.User{}, createError(err)
	}

	return record, nil
}

func createError(err error) error {
	err = postgresdb.HandlePgError(err)
	if errors.Is(err, postgresdb.ErrDBDuplicatedEntry) {
		return usersrepo.ErrEmailTaken
	}
	return err
}

// QueryByIdentifier retrieves the user whose email or username equals
// identifier.
func (s *Store) QueryByIdentifier(ctx context.Context, identifier string) (usersrepo.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = @identifier OR username = @identifier
		ORDER BY (email = @identifier) DESC, id ASC
		LIMIT 1`

	args := pgx.NamedArgs{
		"identifier": identifier,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return usersrepo.User{}, postgresdb.HandlePgError(err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[usersrepo.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usersrepo.User{}, usersrepo.ErrNotFound
		}
		return usersrepo.User{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}
