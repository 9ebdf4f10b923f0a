package film

import (
	"context"
	"errors"
	"time"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a referenced film, user or director does not
// exist, or a mark being removed is absent.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned for out-of-range marks and malformed
// sort/search parameters, before any mutation happens.
var ErrInvalidInput = errors.New("invalid input")

// Release date of the first film ever shown. Nothing can predate it.
var earliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

type filmRepository interface {
	Create(ctx context.Context, film *model.Film) (*model.Film, error)
	Update(ctx context.Context, film *model.Film) (*model.Film, error)
	Get(ctx context.Context, id int64) (*model.Film, error)
	All(ctx context.Context) ([]*model.Film, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type markRepository interface {
	Put(ctx context.Context, filmID, userID int64, value int) error
	Delete(ctx context.Context, filmID, userID int64) error
	ForFilm(ctx context.Context, filmID int64) ([]int, error)
	ForUser(ctx context.Context, userID int64) ([]model.Mark, error)
	All(ctx context.Context) ([]model.Mark, error)
	DeleteForFilm(ctx context.Context, filmID int64) error
}

type userRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type directorRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type eventRepository interface {
	Append(ctx context.Context, userID int64, eventType model.EventType, op model.EventOperation, entityID int64) (*model.Event, error)
}

type markIngester interface {
	Ingest(ctx context.Context) (chan model.MarkEvent, error)
}

// Controller defines the film service controller: marks, rankings,
// recommendations and film records.
type Controller struct {
	films        filmRepository
	marks        markRepository
	users        userRepository
	directors    directorRepository
	events       eventRepository
	ingester     markIngester
	logger       *zap.Logger
	marksPut     tally.Counter
	marksDeleted tally.Counter
}

// New creates a film service controller. The ingester may be nil when mark
// ingestion is disabled.
func New(films filmRepository, marks markRepository, users userRepository, directors directorRepository, events eventRepository, ingester markIngester, logger *zap.Logger, scope tally.Scope) *Controller {
	return &Controller{
		films:        films,
		marks:        marks,
		users:        users,
		directors:    directors,
		events:       events,
		ingester:     ingester,
		logger:       logger,
		marksPut:     scope.Counter("marks_put"),
		marksDeleted: scope.Counter("marks_deleted"),
	}
}

// CreateFilm stores a new film record.
func (c *Controller) CreateFilm(ctx context.Context, film *model.Film) (*model.Film, error) {
	if film.ReleaseDate.Before(earliestReleaseDate) {
		return nil, ErrInvalidInput
	}
	created, err := c.films.Create(ctx, film)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Film added", zap.Int64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// UpdateFilm replaces an existing film record.
func (c *Controller) UpdateFilm(ctx context.Context, film *model.Film) (*model.Film, error) {
	if err := c.checkFilmExists(ctx, film.ID); err != nil {
		return nil, err
	}
	if film.ReleaseDate.Before(earliestReleaseDate) {
		return nil, ErrInvalidInput
	}
	updated, err := c.films.Update(ctx, film)
	if err != nil {
		return nil, err
	}
	if err := c.withRating(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// GetFilm returns one film with its derived rating.
func (c *Controller) GetFilm(ctx context.Context, id int64) (*model.Film, error) {
	f, err := c.films.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := c.withRating(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Films returns all films with derived ratings, ordered by ascending id.
func (c *Controller) Films(ctx context.Context) ([]*model.Film, error) {
	films, err := c.films.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range films {
		if err := c.withRating(ctx, f); err != nil {
			return nil, err
		}
	}
	return films, nil
}

// DeleteFilm removes a film and cascades over its marks.
func (c *Controller) DeleteFilm(ctx context.Context, id int64) error {
	if err := c.films.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return c.marks.DeleteForFilm(ctx, id)
}

// AverageRating returns the arithmetic mean of all marks put on a film, or
// zero when the film has none.
func (c *Controller) AverageRating(ctx context.Context, filmID int64) (float64, error) {
	values, err := c.marks.ForFilm(ctx, filmID)
	if err != nil {
		return 0, err
	}
	return mean(values), nil
}

func (c *Controller) withRating(ctx context.Context, film *model.Film) error {
	rating, err := c.AverageRating(ctx, film.ID)
	if err != nil {
		return err
	}
	film.Rating = rating
	return nil
}

func (c *Controller) checkFilmExists(ctx context.Context, id int64) error {
	ok, err := c.films.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (c *Controller) checkUserExists(ctx context.Context, id int64) error {
	ok, err := c.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
