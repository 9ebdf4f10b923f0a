package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
)

type edgeKey struct {
	from int64
	to   int64
}

// FriendRepository defines a memory store of directed friendship edges.
// The pending/confirmed transition runs under a single lock so readers never
// observe a half-applied pair update.
type FriendRepository struct {
	sync.RWMutex
	edges map[edgeKey]model.FriendStatus
}

// NewFriendRepository creates a new memory friendship repository.
func NewFriendRepository() *FriendRepository {
	return &FriendRepository{edges: map[edgeKey]model.FriendStatus{}}
}

// AddFriend inserts the edge from->to. When the reverse edge already exists
// both directions become confirmed, otherwise the new edge stays pending.
func (r *FriendRepository) AddFriend(ctx context.Context, from, to int64) error {
	r.Lock()
	defer r.Unlock()

	status := model.FriendPending
	if _, ok := r.edges[edgeKey{to, from}]; ok {
		r.edges[edgeKey{to, from}] = model.FriendConfirmed
		status = model.FriendConfirmed
	}
	r.edges[edgeKey{from, to}] = status
	return nil
}

// RemoveFriend deletes the edge from->to. A confirmed reverse edge is
// downgraded to pending, never deleted.
func (r *FriendRepository) RemoveFriend(ctx context.Context, from, to int64) error {
	r.Lock()
	defer r.Unlock()

	if r.edges[edgeKey{from, to}] == model.FriendConfirmed {
		if _, ok := r.edges[edgeKey{to, from}]; ok {
			r.edges[edgeKey{to, from}] = model.FriendPending
		}
	}
	delete(r.edges, edgeKey{from, to})
	return nil
}

// Status returns the state of the edge from->to.
func (r *FriendRepository) Status(ctx context.Context, from, to int64) (model.FriendStatus, error) {
	r.RLock()
	defer r.RUnlock()

	s, ok := r.edges[edgeKey{from, to}]
	if !ok {
		return 0, repository.ErrNotFound
	}
	return s, nil
}

// FriendIDs returns ids of all outbound edges of a user, pending or
// confirmed, ordered ascending.
func (r *FriendRepository) FriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	r.RLock()
	defer r.RUnlock()

	var res []int64
	for k := range r.edges {
		if k.from == userID {
			res = append(res, k.to)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res, nil
}

// DeleteForUser removes every edge referencing a user in either direction.
func (r *FriendRepository) DeleteForUser(ctx context.Context, userID int64) error {
	r.Lock()
	defer r.Unlock()

	for k := range r.edges {
		if k.from == userID || k.to == userID {
			delete(r.edges, k)
		}
	}
	return nil
}
