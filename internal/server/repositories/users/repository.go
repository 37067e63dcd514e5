// Package users persists username → credential-digest records.
package users

import (
	"context"

	"github.com/JoshuaSkootsky/roll-own-auth/internal/server/models"
)

// Repository is the persistence contract consumed by the auth service.
//
// Create returns common.ErrorAlreadyExists when the username is taken;
// GetUserByLogin returns common.ErrorNotFound for unknown usernames. All
// other failures are opaque wrapped errors.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	UpdateDigest(ctx context.Context, userID string, digest string) error
}
