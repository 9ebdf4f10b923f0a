package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
)

// FilmRepository defines a MySQL film repository.
type FilmRepository struct {
	db *sql.DB
}

// NewFilmRepository creates a new MySQL film repository.
func NewFilmRepository(db *sql.DB) *FilmRepository {
	return &FilmRepository{db: db}
}

// Create stores a new film with its genre and director links.
func (r *FilmRepository) Create(ctx context.Context, film *model.Film) (*model.Film, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO films (mpa_id, name, description, release_date, duration) VALUES (?, ?, ?, ?, ?)",
		film.Mpa.ID, film.Name, film.Description, film.ReleaseDate.Format("2006-01-02"), film.Duration)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	film.ID = id
	if err := r.setLinks(ctx, film); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Update replaces an existing film record and its links.
func (r *FilmRepository) Update(ctx context.Context, film *model.Film) (*model.Film, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE films SET mpa_id=?, name=?, description=?, release_date=?, duration=? WHERE film_id=?",
		film.Mpa.ID, film.Name, film.Description, film.ReleaseDate.Format("2006-01-02"), film.Duration, film.ID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, getErr := r.Get(ctx, film.ID); getErr != nil {
			return nil, getErr
		}
	}
	if err := r.setLinks(ctx, film); err != nil {
		return nil, err
	}
	return r.Get(ctx, film.ID)
}

// Get retrieves a film with its MPA class, genres and directors.
func (r *FilmRepository) Get(ctx context.Context, id int64) (*model.Film, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT f.film_id, f.name, f.description, f.release_date, f.duration, m.mpa_id, m.name, m.description "+
			"FROM films f LEFT JOIN mpas m ON f.mpa_id = m.mpa_id WHERE f.film_id=?", id)
	f, err := scanFilm(row)
	if err != nil {
		return nil, err
	}
	if err := r.fillLinks(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// All returns every stored film ordered by ascending id.
func (r *FilmRepository) All(ctx context.Context) ([]*model.Film, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT f.film_id, f.name, f.description, f.release_date, f.duration, m.mpa_id, m.name, m.description "+
			"FROM films f LEFT JOIN mpas m ON f.mpa_id = m.mpa_id ORDER BY f.film_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []*model.Film
	for rows.Next() {
		f, err := scanFilm(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, f := range res {
		if err := r.fillLinks(ctx, f); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Delete removes a film; link and mark rows cascade via foreign keys.
func (r *FilmRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM films WHERE film_id=?", id)
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

// Exists reports whether a film with the given id is stored.
func (r *FilmRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.db.QueryRowContext(ctx, "SELECT film_id FROM films WHERE film_id=?", id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *FilmRepository) setLinks(ctx context.Context, film *model.Film) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM films_genres WHERE film_id=?", film.ID); err != nil {
		return err
	}
	for _, g := range film.Genres {
		if _, err := r.db.ExecContext(ctx,
			"INSERT IGNORE INTO films_genres (film_id, genre_id) VALUES (?, ?)", film.ID, g.ID); err != nil {
			return err
		}
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM films_directors WHERE film_id=?", film.ID); err != nil {
		return err
	}
	for _, d := range film.Directors {
		if _, err := r.db.ExecContext(ctx,
			"INSERT IGNORE INTO films_directors (film_id, director_id) VALUES (?, ?)", film.ID, d.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *FilmRepository) fillLinks(ctx context.Context, film *model.Film) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT g.genre_id, g.name FROM films_genres fg JOIN genres g ON fg.genre_id = g.genre_id "+
			"WHERE fg.film_id=? ORDER BY g.genre_id", film.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	film.Genres = nil
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return err
		}
		film.Genres = append(film.Genres, g)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	dirRows, err := r.db.QueryContext(ctx,
		"SELECT d.director_id, d.name FROM films_directors fd JOIN directors d ON fd.director_id = d.director_id "+
			"WHERE fd.film_id=? ORDER BY d.director_id", film.ID)
	if err != nil {
		return err
	}
	defer dirRows.Close()
	film.Directors = nil
	for dirRows.Next() {
		var d model.Director
		if err := dirRows.Scan(&d.ID, &d.Name); err != nil {
			return err
		}
		film.Directors = append(film.Directors, d)
	}
	return dirRows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFilm(row rowScanner) (*model.Film, error) {
	var f model.Film
	var release string
	var mpaID sql.NullInt64
	var mpaName, mpaDescription sql.NullString
	if err := row.Scan(&f.ID, &f.Name, &f.Description, &release, &f.Duration, &mpaID, &mpaName, &mpaDescription); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	t, err := time.Parse("2006-01-02", release)
	if err != nil {
		return nil, err
	}
	f.ReleaseDate = model.Date{Time: t}
	if mpaID.Valid {
		f.Mpa = model.Mpa{ID: mpaID.Int64, Name: mpaName.String, Description: mpaDescription.String}
	}
	return &f, nil
}
