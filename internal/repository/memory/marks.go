package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
	"go.opentelemetry.io/otel"
)

const markTracerID = "mark-repository-memory"

// MarkRepository defines a memory mark repository keyed by (film, user).
type MarkRepository struct {
	sync.RWMutex
	marks map[int64]map[int64]int
}

// NewMarkRepository creates a new memory mark repository.
func NewMarkRepository() *MarkRepository {
	return &MarkRepository{marks: map[int64]map[int64]int{}}
}

// Put upserts a user's mark for a film.
func (r *MarkRepository) Put(ctx context.Context, filmID, userID int64, value int) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.marks[filmID]; !ok {
		r.marks[filmID] = map[int64]int{}
	}
	r.marks[filmID][userID] = value
	return nil
}

// Delete removes a user's mark for a film.
func (r *MarkRepository) Delete(ctx context.Context, filmID, userID int64) error {
	r.Lock()
	defer r.Unlock()

	byUser, ok := r.marks[filmID]
	if !ok {
		return repository.ErrNotFound
	}
	if _, ok := byUser[userID]; !ok {
		return repository.ErrNotFound
	}
	delete(byUser, userID)
	return nil
}

// ForFilm returns all mark values for a film, one per rating user.
func (r *MarkRepository) ForFilm(ctx context.Context, filmID int64) ([]int, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(markTracerID).Start(ctx, "MarkRepository/ForFilm")
	defer span.End()

	var res []int
	for _, v := range r.marks[filmID] {
		res = append(res, v)
	}
	return res, nil
}

// ForUser returns all marks a user has put, ordered by ascending film id.
func (r *MarkRepository) ForUser(ctx context.Context, userID int64) ([]model.Mark, error) {
	r.RLock()
	defer r.RUnlock()

	var res []model.Mark
	for filmID, byUser := range r.marks {
		if v, ok := byUser[userID]; ok {
			res = append(res, model.Mark{FilmID: filmID, UserID: userID, Value: v})
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].FilmID < res[j].FilmID })
	return res, nil
}

// All returns every stored mark.
func (r *MarkRepository) All(ctx context.Context) ([]model.Mark, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(markTracerID).Start(ctx, "MarkRepository/All")
	defer span.End()

	var res []model.Mark
	for filmID, byUser := range r.marks {
		for userID, v := range byUser {
			res = append(res, model.Mark{FilmID: filmID, UserID: userID, Value: v})
		}
	}
	return res, nil
}

// DeleteForFilm removes all marks put on a film.
func (r *MarkRepository) DeleteForFilm(ctx context.Context, filmID int64) error {
	r.Lock()
	defer r.Unlock()

	delete(r.marks, filmID)
	return nil
}

// DeleteForUser removes all marks put by a user.
func (r *MarkRepository) DeleteForUser(ctx context.Context, userID int64) error {
	r.Lock()
	defer r.Unlock()

	for _, byUser := range r.marks {
		delete(byUser, userID)
	}
	return nil
}
