package users

import (
	"context"
	"strconv"
	"sync"

	"github.com/JoshuaSkootsky/roll-own-auth/internal/common"
	"github.com/JoshuaSkootsky/roll-own-auth/internal/server/models"
)

// MemoryRepository is a map-backed Repository used in tests and local
// development. It enforces username uniqueness the same way the Postgres
// implementation does.
type MemoryRepository struct {
	mu     sync.RWMutex
	byName map[string]*models.User
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byName: make(map[string]*models.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	r.nextID++
	stored := &models.User{
		ID:       strconv.FormatInt(r.nextID, 10),
		UserName: user.UserName,
		Digest:   user.Digest,
	}
	r.byName[user.UserName] = stored

	out := *stored
	return &out, nil
}

func (r *MemoryRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byName[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := *stored
	return &out, nil
}

func (r *MemoryRepository) UpdateDigest(ctx context.Context, userID string, digest string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, stored := range r.byName {
		if stored.ID == userID {
			stored.Digest = digest
			return nil
		}
	}
	return common.ErrorNotFound
}

// Count reports the number of stored users. Test helper.
func (r *MemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}
