package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
)

// UserRepository defines a MySQL user repository.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new MySQL user repository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create stores a new user.
func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (email, login, name, birthday) VALUES (?, ?, ?, ?)",
		user.Email, user.Login, user.Name, user.Birthday.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	user.ID = id
	out := *user
	return &out, nil
}

// Update replaces an existing user record.
func (r *UserRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE users SET email=?, login=?, name=?, birthday=? WHERE user_id=?",
		user.Email, user.Login, user.Name, user.Birthday.Format("2006-01-02"), user.ID); err != nil {
		return nil, err
	}
	return r.Get(ctx, user.ID)
}

// Get retrieves a user by id.
func (r *UserRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT user_id, email, login, name, birthday FROM users WHERE user_id=?", id)
	var u model.User
	var birthday string
	if err := row.Scan(&u.ID, &u.Email, &u.Login, &u.Name, &birthday); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	t, err := time.Parse("2006-01-02", birthday)
	if err != nil {
		return nil, err
	}
	u.Birthday = model.Date{Time: t}
	return &u, nil
}

// All returns every stored user ordered by ascending id.
func (r *UserRepository) All(ctx context.Context) ([]*model.User, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT user_id, email, login, name, birthday FROM users ORDER BY user_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []*model.User
	for rows.Next() {
		var u model.User
		var birthday string
		if err := rows.Scan(&u.ID, &u.Email, &u.Login, &u.Name, &birthday); err != nil {
			return nil, err
		}
		t, err := time.Parse("2006-01-02", birthday)
		if err != nil {
			return nil, err
		}
		u.Birthday = model.Date{Time: t}
		res = append(res, &u)
	}
	return res, rows.Err()
}

// Delete removes a user by id.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE user_id=?", id)
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

// Exists reports whether a user with the given id is stored.
func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.db.QueryRowContext(ctx, "SELECT user_id FROM users WHERE user_id=?", id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
