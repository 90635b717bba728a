// Package users holds the credential store: a read-only mapping from username
// to the stored bcrypt hash and profile.
package users

import (
	"context"

	"github.com/dmitrijs2005/salesinsight/internal/server/models"
)

// Repository resolves a username to its stored user. Unknown usernames yield
// common.ErrorNotFound.
type Repository interface {
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
