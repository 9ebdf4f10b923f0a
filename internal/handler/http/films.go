package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/filmsocial/filmrate/internal/controller/film"
	"github.com/filmsocial/filmrate/pkg/model"
)

func (h *Handler) getFilms(w http.ResponseWriter, r *http.Request) {
	films, err := h.films.Films(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, films)
}

func (h *Handler) createFilm(w http.ResponseWriter, r *http.Request) {
	var f model.Film
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		h.badRequest(w, "malformed film payload")
		return
	}
	if err := h.validate.Struct(&f); err != nil {
		h.respondError(w, err)
		return
	}
	created, err := h.films.CreateFilm(r.Context(), &f)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, created)
}

func (h *Handler) updateFilm(w http.ResponseWriter, r *http.Request) {
	var f model.Film
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		h.badRequest(w, "malformed film payload")
		return
	}
	if err := h.validate.Struct(&f); err != nil {
		h.respondError(w, err)
		return
	}
	updated, err := h.films.UpdateFilm(r.Context(), &f)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, updated)
}

func (h *Handler) getFilm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed film id")
		return
	}
	f, err := h.films.GetFilm(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, f)
}

func (h *Handler) deleteFilm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed film id")
		return
	}
	if err := h.films.DeleteFilm(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, nil)
}

func (h *Handler) rateFilm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed film id")
		return
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		h.badRequest(w, "malformed user id")
		return
	}
	// A like without an explicit mark counts as the maximum.
	mark, err := queryInt(r, "mark", 10)
	if err != nil {
		h.badRequest(w, "malformed mark")
		return
	}
	f, err := h.films.Rate(r.Context(), id, userID, mark)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, f)
}

func (h *Handler) unrateFilm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed film id")
		return
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		h.badRequest(w, "malformed user id")
		return
	}
	f, err := h.films.Unrate(r.Context(), id, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, f)
}

func (h *Handler) getPopularFilms(w http.ResponseWriter, r *http.Request) {
	count, err := queryInt(r, "count", 10)
	if err != nil {
		h.badRequest(w, "malformed count")
		return
	}
	genreID, err := queryInt64(r, "genreId")
	if err != nil {
		h.badRequest(w, "malformed genre id")
		return
	}
	year, err := queryInt(r, "year", 0)
	if err != nil {
		h.badRequest(w, "malformed year")
		return
	}
	films, err := h.films.Popular(r.Context(), count, genreID, year)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, films)
}

func (h *Handler) getCommonFilms(w http.ResponseWriter, r *http.Request) {
	userID, err := queryInt64(r, "userId")
	if err != nil || userID == 0 {
		h.badRequest(w, "malformed user id")
		return
	}
	friendID, err := queryInt64(r, "friendId")
	if err != nil || friendID == 0 {
		h.badRequest(w, "malformed friend id")
		return
	}
	films, err := h.films.Common(r.Context(), userID, friendID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, films)
}

func (h *Handler) searchFilms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	by := []film.SearchField{film.SearchTitle, film.SearchDirector}
	if raw := r.URL.Query().Get("by"); raw != "" {
		by = by[:0]
		for _, f := range strings.Split(raw, ",") {
			by = append(by, film.SearchField(f))
		}
	}
	films, err := h.films.Search(r.Context(), query, by)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, films)
}

func (h *Handler) getDirectorFilms(w http.ResponseWriter, r *http.Request) {
	directorID, err := pathID(r, "directorId")
	if err != nil {
		h.badRequest(w, "malformed director id")
		return
	}
	var sortBy []film.SortKey
	if raw := r.URL.Query().Get("sortBy"); raw != "" {
		for _, key := range strings.Split(raw, ",") {
			sortBy = append(sortBy, film.SortKey(key))
		}
	}
	films, err := h.films.FilmsByDirector(r.Context(), directorID, sortBy)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, films)
}
