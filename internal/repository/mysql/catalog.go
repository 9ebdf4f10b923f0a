package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
)

// DirectorRepository defines a MySQL director repository.
type DirectorRepository struct {
	db *sql.DB
}

// NewDirectorRepository creates a new MySQL director repository.
func NewDirectorRepository(db *sql.DB) *DirectorRepository {
	return &DirectorRepository{db: db}
}

// Create stores a new director.
func (r *DirectorRepository) Create(ctx context.Context, d *model.Director) (*model.Director, error) {
	res, err := r.db.ExecContext(ctx, "INSERT INTO directors (name) VALUES (?)", d.Name)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *d
	out.ID = id
	return &out, nil
}

// Update replaces an existing director record.
func (r *DirectorRepository) Update(ctx context.Context, d *model.Director) (*model.Director, error) {
	res, err := r.db.ExecContext(ctx, "UPDATE directors SET name=? WHERE director_id=?", d.Name, d.ID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, getErr := r.Get(ctx, d.ID); getErr != nil {
			return nil, getErr
		}
	}
	out := *d
	return &out, nil
}

// Get retrieves a director by id.
func (r *DirectorRepository) Get(ctx context.Context, id int64) (*model.Director, error) {
	var d model.Director
	err := r.db.QueryRowContext(ctx,
		"SELECT director_id, name FROM directors WHERE director_id=?", id).Scan(&d.ID, &d.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// All returns every stored director ordered by ascending id.
func (r *DirectorRepository) All(ctx context.Context) ([]*model.Director, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT director_id, name FROM directors ORDER BY director_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []*model.Director
	for rows.Next() {
		var d model.Director
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		res = append(res, &d)
	}
	return res, rows.Err()
}

// Delete removes a director; film links cascade via foreign keys.
func (r *DirectorRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM directors WHERE director_id=?", id)
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

// Exists reports whether a director with the given id is stored.
func (r *DirectorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.db.QueryRowContext(ctx,
		"SELECT director_id FROM directors WHERE director_id=?", id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GenreRepository defines a MySQL genre reference repository.
type GenreRepository struct {
	db *sql.DB
}

// NewGenreRepository creates a new MySQL genre repository.
func NewGenreRepository(db *sql.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// All returns every genre ordered by ascending id.
func (r *GenreRepository) All(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT genre_id, name FROM genres ORDER BY genre_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		res = append(res, g)
	}
	return res, rows.Err()
}

// Get retrieves a genre by id.
func (r *GenreRepository) Get(ctx context.Context, id int64) (*model.Genre, error) {
	var g model.Genre
	err := r.db.QueryRowContext(ctx,
		"SELECT genre_id, name FROM genres WHERE genre_id=?", id).Scan(&g.ID, &g.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// MpaRepository defines a MySQL MPA classification reference repository.
type MpaRepository struct {
	db *sql.DB
}

// NewMpaRepository creates a new MySQL MPA repository.
func NewMpaRepository(db *sql.DB) *MpaRepository {
	return &MpaRepository{db: db}
}

// All returns every MPA class ordered by ascending id.
func (r *MpaRepository) All(ctx context.Context) ([]model.Mpa, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT mpa_id, name, description FROM mpas ORDER BY mpa_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []model.Mpa
	for rows.Next() {
		var m model.Mpa
		if err := rows.Scan(&m.ID, &m.Name, &m.Description); err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

// Get retrieves an MPA class by id.
func (r *MpaRepository) Get(ctx context.Context, id int64) (*model.Mpa, error) {
	var m model.Mpa
	err := r.db.QueryRowContext(ctx,
		"SELECT mpa_id, name, description FROM mpas WHERE mpa_id=?", id).Scan(&m.ID, &m.Name, &m.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
