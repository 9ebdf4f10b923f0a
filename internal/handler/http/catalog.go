package http

import (
	"encoding/json"
	"net/http"

	"github.com/filmsocial/filmrate/pkg/model"
)

func (h *Handler) getDirectors(w http.ResponseWriter, r *http.Request) {
	directors, err := h.catalog.Directors(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, directors)
}

func (h *Handler) createDirector(w http.ResponseWriter, r *http.Request) {
	var d model.Director
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		h.badRequest(w, "malformed director payload")
		return
	}
	if err := h.validate.Struct(&d); err != nil {
		h.respondError(w, err)
		return
	}
	created, err := h.catalog.CreateDirector(r.Context(), &d)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, created)
}

func (h *Handler) updateDirector(w http.ResponseWriter, r *http.Request) {
	var d model.Director
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		h.badRequest(w, "malformed director payload")
		return
	}
	if err := h.validate.Struct(&d); err != nil {
		h.respondError(w, err)
		return
	}
	updated, err := h.catalog.UpdateDirector(r.Context(), &d)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, updated)
}

func (h *Handler) getDirector(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed director id")
		return
	}
	d, err := h.catalog.Director(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, d)
}

func (h *Handler) deleteDirector(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed director id")
		return
	}
	if err := h.catalog.DeleteDirector(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, nil)
}

func (h *Handler) getGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.catalog.Genres(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, genres)
}

func (h *Handler) getGenre(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed genre id")
		return
	}
	g, err := h.catalog.Genre(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, g)
}

func (h *Handler) getMpas(w http.ResponseWriter, r *http.Request) {
	mpas, err := h.catalog.Mpas(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, mpas)
}

func (h *Handler) getMpa(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed mpa id")
		return
	}
	m, err := h.catalog.Mpa(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, m)
}
