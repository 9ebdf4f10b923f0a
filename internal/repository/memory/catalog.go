package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
)

// DirectorRepository defines a memory director repository.
type DirectorRepository struct {
	sync.RWMutex
	directors map[int64]*model.Director
	nextID    int64
}

// NewDirectorRepository creates a new memory director repository.
func NewDirectorRepository() *DirectorRepository {
	return &DirectorRepository{directors: map[int64]*model.Director{}}
}

// Create stores a new director and assigns it the next id.
func (r *DirectorRepository) Create(ctx context.Context, d *model.Director) (*model.Director, error) {
	r.Lock()
	defer r.Unlock()

	r.nextID++
	stored := *d
	stored.ID = r.nextID
	r.directors[stored.ID] = &stored
	out := stored
	return &out, nil
}

// Update replaces an existing director record.
func (r *DirectorRepository) Update(ctx context.Context, d *model.Director) (*model.Director, error) {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.directors[d.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	stored := *d
	r.directors[stored.ID] = &stored
	out := stored
	return &out, nil
}

// Get retrieves a director by id.
func (r *DirectorRepository) Get(ctx context.Context, id int64) (*model.Director, error) {
	r.RLock()
	defer r.RUnlock()

	d, ok := r.directors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *d
	return &out, nil
}

// All returns every stored director ordered by ascending id.
func (r *DirectorRepository) All(ctx context.Context) ([]*model.Director, error) {
	r.RLock()
	defer r.RUnlock()

	res := make([]*model.Director, 0, len(r.directors))
	for _, d := range r.directors {
		out := *d
		res = append(res, &out)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

// Delete removes a director by id.
func (r *DirectorRepository) Delete(ctx context.Context, id int64) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.directors[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.directors, id)
	return nil
}

// Exists reports whether a director with the given id is stored.
func (r *DirectorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.RLock()
	defer r.RUnlock()

	_, ok := r.directors[id]
	return ok, nil
}

// GenreRepository defines the fixed genre reference list.
type GenreRepository struct {
	genres []model.Genre
}

// NewGenreRepository creates a genre repository seeded with the built-in tags.
func NewGenreRepository() *GenreRepository {
	return &GenreRepository{genres: []model.Genre{
		{ID: 1, Name: "Comedy"},
		{ID: 2, Name: "Drama"},
		{ID: 3, Name: "Cartoon"},
		{ID: 4, Name: "Thriller"},
		{ID: 5, Name: "Documentary"},
		{ID: 6, Name: "Action"},
	}}
}

// All returns every genre ordered by ascending id.
func (r *GenreRepository) All(ctx context.Context) ([]model.Genre, error) {
	res := make([]model.Genre, len(r.genres))
	copy(res, r.genres)
	return res, nil
}

// Get retrieves a genre by id.
func (r *GenreRepository) Get(ctx context.Context, id int64) (*model.Genre, error) {
	for _, g := range r.genres {
		if g.ID == id {
			out := g
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

// MpaRepository defines the fixed MPA classification reference list.
type MpaRepository struct {
	mpas []model.Mpa
}

// NewMpaRepository creates an MPA repository seeded with the built-in classes.
func NewMpaRepository() *MpaRepository {
	return &MpaRepository{mpas: []model.Mpa{
		{ID: 1, Name: "G", Description: "General audiences"},
		{ID: 2, Name: "PG", Description: "Parental guidance suggested"},
		{ID: 3, Name: "PG-13", Description: "Parents strongly cautioned"},
		{ID: 4, Name: "R", Description: "Restricted"},
		{ID: 5, Name: "NC-17", Description: "Adults only"},
	}}
}

// All returns every MPA class ordered by ascending id.
func (r *MpaRepository) All(ctx context.Context) ([]model.Mpa, error) {
	res := make([]model.Mpa, len(r.mpas))
	copy(res, r.mpas)
	return res, nil
}

// Get retrieves an MPA class by id.
func (r *MpaRepository) Get(ctx context.Context, id int64) (*model.Mpa, error) {
	for _, m := range r.mpas {
		if m.ID == id {
			out := m
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}
