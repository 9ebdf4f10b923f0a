package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
	"go.opentelemetry.io/otel"
)

const filmTracerID = "film-repository-memory"

// FilmRepository defines a memory film repository.
type FilmRepository struct {
	sync.RWMutex
	films  map[int64]*model.Film
	nextID int64
}

// NewFilmRepository creates a new memory film repository.
func NewFilmRepository() *FilmRepository {
	return &FilmRepository{films: map[int64]*model.Film{}}
}

// Create stores a new film and assigns it the next id.
func (r *FilmRepository) Create(ctx context.Context, film *model.Film) (*model.Film, error) {
	r.Lock()
	defer r.Unlock()

	r.nextID++
	stored := *film
	stored.ID = r.nextID
	r.films[stored.ID] = &stored
	out := stored
	return &out, nil
}

// Update replaces an existing film record.
func (r *FilmRepository) Update(ctx context.Context, film *model.Film) (*model.Film, error) {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.films[film.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	stored := *film
	r.films[stored.ID] = &stored
	out := stored
	return &out, nil
}

// Get retrieves a film by id.
func (r *FilmRepository) Get(ctx context.Context, id int64) (*model.Film, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(filmTracerID).Start(ctx, "FilmRepository/Get")
	defer span.End()

	f, ok := r.films[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *f
	return &out, nil
}

// All returns every stored film ordered by ascending id.
func (r *FilmRepository) All(ctx context.Context) ([]*model.Film, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(filmTracerID).Start(ctx, "FilmRepository/All")
	defer span.End()

	res := make([]*model.Film, 0, len(r.films))
	for _, f := range r.films {
		out := *f
		res = append(res, &out)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

// Delete removes a film by id.
func (r *FilmRepository) Delete(ctx context.Context, id int64) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.films[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.films, id)
	return nil
}

// Exists reports whether a film with the given id is stored.
func (r *FilmRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.RLock()
	defer r.RUnlock()

	_, ok := r.films[id]
	return ok, nil
}
