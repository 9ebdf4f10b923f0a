package mysql

import (
	"context"
	"database/sql"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
)

// MarkRepository defines a MySQL mark repository.
type MarkRepository struct {
	db *sql.DB
}

// NewMarkRepository creates a new MySQL mark repository.
func NewMarkRepository(db *sql.DB) *MarkRepository {
	return &MarkRepository{db: db}
}

// Put upserts a user's mark for a film.
func (r *MarkRepository) Put(ctx context.Context, filmID, userID int64, value int) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO marks (film_id, user_id, value) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE value=VALUES(value)",
		filmID, userID, value)
	return err
}

// Delete removes a user's mark for a film.
func (r *MarkRepository) Delete(ctx context.Context, filmID, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM marks WHERE film_id=? AND user_id=?", filmID, userID)
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

// ForFilm returns all mark values for a film.
func (r *MarkRepository) ForFilm(ctx context.Context, filmID int64) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT value FROM marks WHERE film_id=?", filmID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, rows.Err()
}

// ForUser returns all marks a user has put, ordered by ascending film id.
func (r *MarkRepository) ForUser(ctx context.Context, userID int64) ([]model.Mark, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT film_id, user_id, value FROM marks WHERE user_id=? ORDER BY film_id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMarks(rows)
}

// All returns every stored mark.
func (r *MarkRepository) All(ctx context.Context) ([]model.Mark, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT film_id, user_id, value FROM marks")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMarks(rows)
}

// DeleteForFilm removes all marks put on a film.
func (r *MarkRepository) DeleteForFilm(ctx context.Context, filmID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM marks WHERE film_id=?", filmID)
	return err
}

// DeleteForUser removes all marks put by a user.
func (r *MarkRepository) DeleteForUser(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM marks WHERE user_id=?", userID)
	return err
}

func scanMarks(rows *sql.Rows) ([]model.Mark, error) {
	var res []model.Mark
	for rows.Next() {
		var m model.Mark
		if err := rows.Scan(&m.FilmID, &m.UserID, &m.Value); err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}
