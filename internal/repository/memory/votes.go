package memory

import (
	"context"
	"sync"

	"github.com/filmsocial/filmrate/internal/repository"
)

// VoteRepository defines a memory store of per-user review votes. A vote is
// +1 or -1; a user holds at most one vote per review.
type VoteRepository struct {
	sync.RWMutex
	votes map[int64]map[int64]int
}

// NewVoteRepository creates a new memory vote repository.
func NewVoteRepository() *VoteRepository {
	return &VoteRepository{votes: map[int64]map[int64]int{}}
}

// Put upserts a user's vote on a review. Re-voting with the same value is a
// no-op, a different value overwrites.
func (r *VoteRepository) Put(ctx context.Context, reviewID, userID int64, value int) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.votes[reviewID]; !ok {
		r.votes[reviewID] = map[int64]int{}
	}
	r.votes[reviewID][userID] = value
	return nil
}

// Delete removes a user's vote only when its stored value matches expected.
func (r *VoteRepository) Delete(ctx context.Context, reviewID, userID int64, expected int) error {
	r.Lock()
	defer r.Unlock()

	byUser, ok := r.votes[reviewID]
	if !ok {
		return repository.ErrNotFound
	}
	v, ok := byUser[userID]
	if !ok || v != expected {
		return repository.ErrNotFound
	}
	delete(byUser, userID)
	return nil
}

// Sum returns the net score of all votes on a review, zero when none.
func (r *VoteRepository) Sum(ctx context.Context, reviewID int64) (int64, error) {
	r.RLock()
	defer r.RUnlock()

	var sum int64
	for _, v := range r.votes[reviewID] {
		sum += int64(v)
	}
	return sum, nil
}

// DeleteForReview removes all votes on a review.
func (r *VoteRepository) DeleteForReview(ctx context.Context, reviewID int64) error {
	r.Lock()
	defer r.Unlock()

	delete(r.votes, reviewID)
	return nil
}

// DeleteForUser removes all votes put by a user.
func (r *VoteRepository) DeleteForUser(ctx context.Context, userID int64) error {
	r.Lock()
	defer r.Unlock()

	for _, byUser := range r.votes {
		delete(byUser, userID)
	}
	return nil
}
