package catalog

import (
	"context"
	"errors"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
)

// ErrNotFound is returned when a director, genre or MPA class is unknown.
var ErrNotFound = errors.New("not found")

type directorRepository interface {
	Create(ctx context.Context, d *model.Director) (*model.Director, error)
	Update(ctx context.Context, d *model.Director) (*model.Director, error)
	Get(ctx context.Context, id int64) (*model.Director, error)
	All(ctx context.Context) ([]*model.Director, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type genreRepository interface {
	All(ctx context.Context) ([]model.Genre, error)
	Get(ctx context.Context, id int64) (*model.Genre, error)
}

type mpaRepository interface {
	All(ctx context.Context) ([]model.Mpa, error)
	Get(ctx context.Context, id int64) (*model.Mpa, error)
}

// Controller defines the reference-data controller for directors, genres and
// MPA classes.
type Controller struct {
	directors directorRepository
	genres    genreRepository
	mpas      mpaRepository
}

// New creates a catalog controller.
func New(directors directorRepository, genres genreRepository, mpas mpaRepository) *Controller {
	return &Controller{directors: directors, genres: genres, mpas: mpas}
}

// Directors returns all directors.
func (c *Controller) Directors(ctx context.Context) ([]*model.Director, error) {
	return c.directors.All(ctx)
}

// Director retrieves one director.
func (c *Controller) Director(ctx context.Context, id int64) (*model.Director, error) {
	d, err := c.directors.Get(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return d, nil
}

// CreateDirector stores a new director.
func (c *Controller) CreateDirector(ctx context.Context, d *model.Director) (*model.Director, error) {
	return c.directors.Create(ctx, d)
}

// UpdateDirector replaces an existing director.
func (c *Controller) UpdateDirector(ctx context.Context, d *model.Director) (*model.Director, error) {
	ok, err := c.directors.Exists(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return c.directors.Update(ctx, d)
}

// DeleteDirector removes a director.
func (c *Controller) DeleteDirector(ctx context.Context, id int64) error {
	return mapNotFound(c.directors.Delete(ctx, id))
}

// Genres returns the genre reference list.
func (c *Controller) Genres(ctx context.Context) ([]model.Genre, error) {
	return c.genres.All(ctx)
}

// Genre retrieves one genre.
func (c *Controller) Genre(ctx context.Context, id int64) (*model.Genre, error) {
	g, err := c.genres.Get(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return g, nil
}

// Mpas returns the MPA classification reference list.
func (c *Controller) Mpas(ctx context.Context) ([]model.Mpa, error) {
	return c.mpas.All(ctx)
}

// Mpa retrieves one MPA classification.
func (c *Controller) Mpa(ctx context.Context, id int64) (*model.Mpa, error) {
	m, err := c.mpas.Get(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return m, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
