package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/JoshuaSkootsky/roll-own-auth/internal/common"
	"github.com/JoshuaSkootsky/roll-own-auth/internal/dbx"
	"github.com/JoshuaSkootsky/roll-own-auth/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (username, password_digest)
         VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.UserName, user.Digest).Scan(&user.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	query :=
		`SELECT id, username, password_digest FROM users
		 WHERE username = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, userName).Scan(&user.ID, &user.UserName, &user.Digest)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) UpdateDigest(ctx context.Context, userID string, digest string) error {
	query :=
		`UPDATE users SET password_digest = $1
		 WHERE id = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, digest, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// isUniqueViolation detects a PostgreSQL unique constraint violation (23505)
// without depending on a concrete driver error type.
func isUniqueViolation(err error) bool {
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
