package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
)

// UserRepository defines a memory user repository.
type UserRepository struct {
	sync.RWMutex
	users  map[int64]*model.User
	nextID int64
}

// NewUserRepository creates a new memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[int64]*model.User{}}
}

// Create stores a new user and assigns it the next id.
func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	r.Lock()
	defer r.Unlock()

	r.nextID++
	stored := *user
	stored.ID = r.nextID
	r.users[stored.ID] = &stored
	out := stored
	return &out, nil
}

// Update replaces an existing user record.
func (r *UserRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	stored := *user
	r.users[stored.ID] = &stored
	out := stored
	return &out, nil
}

// Get retrieves a user by id.
func (r *UserRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	r.RLock()
	defer r.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *u
	return &out, nil
}

// All returns every stored user ordered by ascending id.
func (r *UserRepository) All(ctx context.Context) ([]*model.User, error) {
	r.RLock()
	defer r.RUnlock()

	res := make([]*model.User, 0, len(r.users))
	for _, u := range r.users {
		out := *u
		res = append(res, &out)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

// Delete removes a user by id.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

// Exists reports whether a user with the given id is stored.
func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.RLock()
	defer r.RUnlock()

	_, ok := r.users[id]
	return ok, nil
}
