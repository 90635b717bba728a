package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/salesinsight/internal/common"
	"github.com/dmitrijs2005/salesinsight/internal/server/models"
)

var (
	ErrDuplicateUser  = errors.New("duplicate username")
	ErrIncompleteUser = errors.New("user entry needs username and password_hash")
)

// InMemoryRepository is a map-backed Repository. It is read-only after
// construction and safe for concurrent use.
type InMemoryRepository struct {
	users map[string]models.User
}

func NewInMemoryRepository(list []models.User) (*InMemoryRepository, error) {
	r := &InMemoryRepository{users: make(map[string]models.User, len(list))}
	for i, u := range list {
		if u.UserName == "" || u.PasswordHash == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrIncompleteUser)
		}
		if _, ok := r.users[u.UserName]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateUser, u.UserName)
		}
		r.users[u.UserName] = u
	}
	return r, nil
}

// ReadSeedFile decodes a JSON array of users.
func ReadSeedFile(path string) ([]models.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}
	var list []models.User
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse users file %s: %w", path, err)
	}
	return list, nil
}

// LoadSeedFile builds an InMemoryRepository from a JSON users file.
func LoadSeedFile(path string) (*InMemoryRepository, error) {
	list, err := ReadSeedFile(path)
	if err != nil {
		return nil, err
	}
	return NewInMemoryRepository(list)
}

func (r *InMemoryRepository) GetUserByLogin(_ context.Context, userName string) (*models.User, error) {
	u, ok := r.users[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *InMemoryRepository) Len() int {
	return len(r.users)
}
