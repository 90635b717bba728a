package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/salesinsight/internal/common"
	"github.com/dmitrijs2005/salesinsight/internal/dbx"
	"github.com/dmitrijs2005/salesinsight/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	query :=
		`SELECT username, password_hash, full_name, email FROM users
		 WHERE username = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, userName).Scan(&user.UserName, &user.PasswordHash, &user.FullName, &user.Email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// Upsert inserts user or replaces the hash and profile of an existing row
// with the same username.
func (r *PostgresRepository) Upsert(ctx context.Context, user *models.User) error {
	query :=
		`INSERT INTO users (username, password_hash, full_name, email)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (username) DO UPDATE
		 SET password_hash = EXCLUDED.password_hash, full_name = EXCLUDED.full_name, email = EXCLUDED.email
		 `

	_, err := r.db.ExecContext(ctx, query, user.UserName, user.PasswordHash, user.FullName, user.Email)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
