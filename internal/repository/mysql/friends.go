package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
)

// FriendRepository defines a MySQL store of directed friendship edges. Each
// transition runs inside a transaction so the pair update is atomic.
type FriendRepository struct {
	db *sql.DB
}

// NewFriendRepository creates a new MySQL friendship repository.
func NewFriendRepository(db *sql.DB) *FriendRepository {
	return &FriendRepository{db: db}
}

// AddFriend inserts the edge from->to, confirming both directions when the
// reverse edge already exists.
func (r *FriendRepository) AddFriend(ctx context.Context, from, to int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	status := int(model.FriendPending)
	var reverse int
	err = tx.QueryRowContext(ctx,
		"SELECT status FROM friendships WHERE user_one_id=? AND user_two_id=? FOR UPDATE", to, from).Scan(&reverse)
	switch {
	case err == nil:
		if _, err := tx.ExecContext(ctx,
			"UPDATE friendships SET status=? WHERE user_one_id=? AND user_two_id=?",
			int(model.FriendConfirmed), to, from); err != nil {
			return err
		}
		status = int(model.FriendConfirmed)
	case !errors.Is(err, sql.ErrNoRows):
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO friendships (user_one_id, user_two_id, status) VALUES (?, ?, ?) "+
			"ON DUPLICATE KEY UPDATE status=VALUES(status)", from, to, status); err != nil {
		return err
	}
	return tx.Commit()
}

// RemoveFriend deletes the edge from->to, downgrading a confirmed reverse
// edge to pending.
func (r *FriendRepository) RemoveFriend(ctx context.Context, from, to int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status int
	err = tx.QueryRowContext(ctx,
		"SELECT status FROM friendships WHERE user_one_id=? AND user_two_id=? FOR UPDATE", from, to).Scan(&status)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if err == nil && status == int(model.FriendConfirmed) {
		if _, err := tx.ExecContext(ctx,
			"UPDATE friendships SET status=? WHERE user_one_id=? AND user_two_id=?",
			int(model.FriendPending), to, from); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM friendships WHERE user_one_id=? AND user_two_id=?", from, to); err != nil {
		return err
	}
	return tx.Commit()
}

// Status returns the state of the edge from->to.
func (r *FriendRepository) Status(ctx context.Context, from, to int64) (model.FriendStatus, error) {
	var status int
	err := r.db.QueryRowContext(ctx,
		"SELECT status FROM friendships WHERE user_one_id=? AND user_two_id=?", from, to).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, repository.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return model.FriendStatus(status), nil
}

// FriendIDs returns ids of all outbound edges of a user, ordered ascending.
func (r *FriendRepository) FriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT user_two_id FROM friendships WHERE user_one_id=? ORDER BY user_two_id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		res = append(res, id)
	}
	return res, rows.Err()
}

// DeleteForUser removes every edge referencing a user in either direction.
func (r *FriendRepository) DeleteForUser(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM friendships WHERE user_one_id=? OR user_two_id=?", userID, userID)
	return err
}
