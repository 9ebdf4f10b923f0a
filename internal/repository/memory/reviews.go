package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
)

// ReviewRepository defines a memory review repository.
type ReviewRepository struct {
	sync.RWMutex
	reviews map[int64]*model.Review
	nextID  int64
}

// NewReviewRepository creates a new memory review repository.
func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{reviews: map[int64]*model.Review{}}
}

// Create stores a new review and assigns it the next id.
func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	r.Lock()
	defer r.Unlock()

	r.nextID++
	stored := *review
	stored.ReviewID = r.nextID
	r.reviews[stored.ReviewID] = &stored
	out := stored
	return &out, nil
}

// Update replaces the content and positivity of an existing review. Author
// and film references are immutable.
func (r *ReviewRepository) Update(ctx context.Context, review *model.Review) (*model.Review, error) {
	r.Lock()
	defer r.Unlock()

	stored, ok := r.reviews[review.ReviewID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	stored.Content = review.Content
	stored.IsPositive = review.IsPositive
	out := *stored
	return &out, nil
}

// Get retrieves a review by id.
func (r *ReviewRepository) Get(ctx context.Context, id int64) (*model.Review, error) {
	r.RLock()
	defer r.RUnlock()

	rev, ok := r.reviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *rev
	return &out, nil
}

// ByFilm returns reviews for a film, or all reviews when filmID is zero,
// ordered by ascending review id.
func (r *ReviewRepository) ByFilm(ctx context.Context, filmID int64) ([]*model.Review, error) {
	r.RLock()
	defer r.RUnlock()

	var res []*model.Review
	for _, rev := range r.reviews {
		if filmID != 0 && rev.FilmID != filmID {
			continue
		}
		out := *rev
		res = append(res, &out)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ReviewID < res[j].ReviewID })
	return res, nil
}

// Delete removes a review by id.
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.reviews, id)
	return nil
}

// Exists reports whether a review with the given id is stored.
func (r *ReviewRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.RLock()
	defer r.RUnlock()

	_, ok := r.reviews[id]
	return ok, nil
}
