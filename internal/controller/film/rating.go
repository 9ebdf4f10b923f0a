package film

import (
	"context"
	"errors"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
	"go.uber.org/zap"
)

// Rate upserts a user's mark for a film and returns the film with its updated
// aggregate rating. Marks outside [1,10] are rejected before any write.
func (c *Controller) Rate(ctx context.Context, filmID, userID int64, mark int) (*model.Film, error) {
	if mark < 1 || mark > 10 {
		return nil, ErrInvalidInput
	}
	if err := c.checkFilmExists(ctx, filmID); err != nil {
		return nil, err
	}
	if err := c.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	if err := c.marks.Put(ctx, filmID, userID, mark); err != nil {
		return nil, err
	}
	if _, err := c.events.Append(ctx, userID, model.EventTypeLike, model.EventOpAdd, filmID); err != nil {
		return nil, err
	}
	c.marksPut.Inc(1)
	return c.GetFilm(ctx, filmID)
}

// Unrate removes a user's mark for a film. Missing marks report ErrNotFound.
func (c *Controller) Unrate(ctx context.Context, filmID, userID int64) (*model.Film, error) {
	if err := c.checkFilmExists(ctx, filmID); err != nil {
		return nil, err
	}
	if err := c.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	if err := c.marks.Delete(ctx, filmID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := c.events.Append(ctx, userID, model.EventTypeLike, model.EventOpRemove, filmID); err != nil {
		return nil, err
	}
	c.marksDeleted.Inc(1)
	return c.GetFilm(ctx, filmID)
}

// StartIngestion applies mark events from the ingester through the regular
// rating path until the channel closes.
func (c *Controller) StartIngestion(ctx context.Context) error {
	ch, err := c.ingester.Ingest(ctx)
	if err != nil {
		return err
	}
	for e := range ch {
		switch e.EventType {
		case model.MarkEventTypePut:
			if _, err := c.Rate(ctx, e.FilmID, e.UserID, e.Value); err != nil {
				c.logger.Warn("Failed to ingest mark", zap.Int64("filmId", e.FilmID), zap.Error(err))
			}
		case model.MarkEventTypeDelete:
			if _, err := c.Unrate(ctx, e.FilmID, e.UserID); err != nil {
				c.logger.Warn("Failed to ingest mark removal", zap.Int64("filmId", e.FilmID), zap.Error(err))
			}
		}
	}
	return nil
}
