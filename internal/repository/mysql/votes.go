package mysql

import (
	"context"
	"database/sql"

	"github.com/filmsocial/filmrate/internal/repository"
)

// VoteRepository defines a MySQL store of per-user review votes.
type VoteRepository struct {
	db *sql.DB
}

// NewVoteRepository creates a new MySQL vote repository.
func NewVoteRepository(db *sql.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// Put upserts a user's vote on a review.
func (r *VoteRepository) Put(ctx context.Context, reviewID, userID int64, value int) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO review_votes (review_id, user_id, value) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE value=VALUES(value)",
		reviewID, userID, value)
	return err
}

// Delete removes a user's vote only when its stored value matches expected.
func (r *VoteRepository) Delete(ctx context.Context, reviewID, userID int64, expected int) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM review_votes WHERE review_id=? AND user_id=? AND value=?",
		reviewID, userID, expected)
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

// Sum returns the net score of all votes on a review, zero when none.
func (r *VoteRepository) Sum(ctx context.Context, reviewID int64) (int64, error) {
	var sum int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(value), 0) FROM review_votes WHERE review_id=?", reviewID).Scan(&sum)
	return sum, err
}

// DeleteForReview removes all votes on a review.
func (r *VoteRepository) DeleteForReview(ctx context.Context, reviewID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM review_votes WHERE review_id=?", reviewID)
	return err
}

// DeleteForUser removes all votes put by a user.
func (r *VoteRepository) DeleteForUser(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM review_votes WHERE user_id=?", userID)
	return err
}
