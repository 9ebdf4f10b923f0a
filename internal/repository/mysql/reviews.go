package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
)

// ReviewRepository defines a MySQL review repository.
type ReviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new MySQL review repository.
func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create stores a new review.
func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO reviews (content, is_positive, user_id, film_id) VALUES (?, ?, ?, ?)",
		review.Content, review.IsPositive, review.UserID, review.FilmID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *review
	out.ReviewID = id
	return &out, nil
}

// Update replaces the content and positivity of an existing review. Author
// and film references are immutable.
func (r *ReviewRepository) Update(ctx context.Context, review *model.Review) (*model.Review, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE reviews SET content=?, is_positive=? WHERE review_id=?",
		review.Content, review.IsPositive, review.ReviewID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, getErr := r.Get(ctx, review.ReviewID); getErr != nil {
			return nil, getErr
		}
	}
	return r.Get(ctx, review.ReviewID)
}

// Get retrieves a review by id.
func (r *ReviewRepository) Get(ctx context.Context, id int64) (*model.Review, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT review_id, content, is_positive, user_id, film_id FROM reviews WHERE review_id=?", id)
	var rev model.Review
	if err := row.Scan(&rev.ReviewID, &rev.Content, &rev.IsPositive, &rev.UserID, &rev.FilmID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

// ByFilm returns reviews for a film, or all reviews when filmID is zero,
// ordered by ascending review id.
func (r *ReviewRepository) ByFilm(ctx context.Context, filmID int64) ([]*model.Review, error) {
	query := "SELECT review_id, content, is_positive, user_id, film_id FROM reviews ORDER BY review_id"
	args := []any{}
	if filmID != 0 {
		query = "SELECT review_id, content, is_positive, user_id, film_id FROM reviews WHERE film_id=? ORDER BY review_id"
		args = append(args, filmID)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []*model.Review
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.ReviewID, &rev.Content, &rev.IsPositive, &rev.UserID, &rev.FilmID); err != nil {
			return nil, err
		}
		res = append(res, &rev)
	}
	return res, rows.Err()
}

// Delete removes a review by id.
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE review_id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Exists reports whether a review with the given id is stored.
func (r *ReviewRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.db.QueryRowContext(ctx, "SELECT review_id FROM reviews WHERE review_id=?", id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
