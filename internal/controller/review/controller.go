package review

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a referenced review, film or user does not
// exist, or a vote being removed is absent or of the other sign.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned when required review fields are missing.
var ErrInvalidInput = errors.New("invalid input")

type reviewRepository interface {
	Create(ctx context.Context, review *model.Review) (*model.Review, error)
	Update(ctx context.Context, review *model.Review) (*model.Review, error)
	Get(ctx context.Context, id int64) (*model.Review, error)
	ByFilm(ctx context.Context, filmID int64) ([]*model.Review, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type voteRepository interface {
	Put(ctx context.Context, reviewID, userID int64, value int) error
	Delete(ctx context.Context, reviewID, userID int64, expected int) error
	Sum(ctx context.Context, reviewID int64) (int64, error)
	DeleteForReview(ctx context.Context, reviewID int64) error
}

type filmRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type userRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type eventRepository interface {
	Append(ctx context.Context, userID int64, eventType model.EventType, op model.EventOperation, entityID int64) (*model.Event, error)
}

// Controller defines the review service controller: review records and the
// per-user usefulness vote ledger.
type Controller struct {
	reviews reviewRepository
	votes   voteRepository
	films   filmRepository
	users   userRepository
	events  eventRepository
	logger  *zap.Logger
}

// New creates a review service controller.
func New(reviews reviewRepository, votes voteRepository, films filmRepository, users userRepository, events eventRepository, logger *zap.Logger) *Controller {
	return &Controller{reviews: reviews, votes: votes, films: films, users: users, events: events, logger: logger}
}

// Create validates and stores a new review, then records a REVIEW/ADD event
// on the author's feed.
func (c *Controller) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	if err := c.validate(review); err != nil {
		return nil, err
	}
	if err := c.checkReferences(ctx, review.FilmID, review.UserID); err != nil {
		return nil, err
	}
	created, err := c.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}
	if _, err := c.events.Append(ctx, created.UserID, model.EventTypeReview, model.EventOpAdd, created.ReviewID); err != nil {
		return nil, err
	}
	c.logger.Info("Review created", zap.Int64("reviewId", created.ReviewID), zap.Int64("filmId", created.FilmID))
	return created, nil
}

// Update replaces the content and positivity of a review. The event is
// attributed to the stored author, not the caller.
func (c *Controller) Update(ctx context.Context, review *model.Review) (*model.Review, error) {
	if err := c.validate(review); err != nil {
		return nil, err
	}
	stored, err := c.Get(ctx, review.ReviewID)
	if err != nil {
		return nil, err
	}
	updated, err := c.reviews.Update(ctx, review)
	if err != nil {
		return nil, err
	}
	if _, err := c.events.Append(ctx, stored.UserID, model.EventTypeReview, model.EventOpUpdate, stored.ReviewID); err != nil {
		return nil, err
	}
	updated.Useful = stored.Useful
	return updated, nil
}

// Delete removes a review and its votes, recording a REVIEW/REMOVE event on
// the author's feed.
func (c *Controller) Delete(ctx context.Context, reviewID int64) error {
	stored, err := c.Get(ctx, reviewID)
	if err != nil {
		return err
	}
	if err := c.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}
	if err := c.votes.DeleteForReview(ctx, reviewID); err != nil {
		return err
	}
	_, err = c.events.Append(ctx, stored.UserID, model.EventTypeReview, model.EventOpRemove, reviewID)
	return err
}

// Get retrieves a review with its usefulness recomputed from the vote ledger.
func (c *Controller) Get(ctx context.Context, reviewID int64) (*model.Review, error) {
	rev, err := c.reviews.Get(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rev.Useful, err = c.votes.Sum(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	return rev, nil
}

// ByFilm returns up to count reviews of a film, or of all films when filmID
// is zero, ordered by descending usefulness.
func (c *Controller) ByFilm(ctx context.Context, filmID int64, count int) ([]*model.Review, error) {
	if filmID != 0 {
		if err := c.checkFilmExists(ctx, filmID); err != nil {
			return nil, err
		}
	}
	reviews, err := c.reviews.ByFilm(ctx, filmID)
	if err != nil {
		return nil, err
	}
	for _, rev := range reviews {
		rev.Useful, err = c.votes.Sum(ctx, rev.ReviewID)
		if err != nil {
			return nil, err
		}
	}
	sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Useful > reviews[j].Useful })
	if count > 0 && len(reviews) > count {
		reviews = reviews[:count]
	}
	return reviews, nil
}

// Like records a +1 vote from the user on the review.
func (c *Controller) Like(ctx context.Context, reviewID, userID int64) error {
	return c.vote(ctx, reviewID, userID, 1)
}

// Dislike records a -1 vote from the user on the review.
func (c *Controller) Dislike(ctx context.Context, reviewID, userID int64) error {
	return c.vote(ctx, reviewID, userID, -1)
}

// RemoveLike deletes the user's vote only if it is a like.
func (c *Controller) RemoveLike(ctx context.Context, reviewID, userID int64) error {
	return c.removeVote(ctx, reviewID, userID, 1)
}

// RemoveDislike deletes the user's vote only if it is a dislike.
func (c *Controller) RemoveDislike(ctx context.Context, reviewID, userID int64) error {
	return c.removeVote(ctx, reviewID, userID, -1)
}

// Usefulness returns the net vote score of a review.
func (c *Controller) Usefulness(ctx context.Context, reviewID int64) (int64, error) {
	if err := c.checkReviewExists(ctx, reviewID); err != nil {
		return 0, err
	}
	return c.votes.Sum(ctx, reviewID)
}

func (c *Controller) vote(ctx context.Context, reviewID, userID int64, value int) error {
	if err := c.checkReviewExists(ctx, reviewID); err != nil {
		return err
	}
	if err := c.checkUserExists(ctx, userID); err != nil {
		return err
	}
	return c.votes.Put(ctx, reviewID, userID, value)
}

func (c *Controller) removeVote(ctx context.Context, reviewID, userID int64, expected int) error {
	if err := c.checkReviewExists(ctx, reviewID); err != nil {
		return err
	}
	if err := c.checkUserExists(ctx, userID); err != nil {
		return err
	}
	if err := c.votes.Delete(ctx, reviewID, userID, expected); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (c *Controller) validate(review *model.Review) error {
	if strings.TrimSpace(review.Content) == "" {
		return ErrInvalidInput
	}
	if review.IsPositive == nil {
		return ErrInvalidInput
	}
	if review.UserID == 0 || review.FilmID == 0 {
		return ErrInvalidInput
	}
	return nil
}

func (c *Controller) checkReferences(ctx context.Context, filmID, userID int64) error {
	if err := c.checkFilmExists(ctx, filmID); err != nil {
		return err
	}
	return c.checkUserExists(ctx, userID)
}

func (c *Controller) checkReviewExists(ctx context.Context, id int64) error {
	ok, err := c.reviews.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
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
