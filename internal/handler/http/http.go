// Package http exposes the service controllers over a REST API.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/filmsocial/filmrate/internal/controller/catalog"
	"github.com/filmsocial/filmrate/internal/controller/film"
	"github.com/filmsocial/filmrate/internal/controller/review"
	"github.com/filmsocial/filmrate/internal/controller/user"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler defines the REST handler over the service controllers.
type Handler struct {
	films    *film.Controller
	users    *user.Controller
	reviews  *review.Controller
	catalog  *catalog.Controller
	validate *validator.Validate
	logger   *zap.Logger
}

// New creates a new REST handler.
func New(films *film.Controller, users *user.Controller, reviews *review.Controller, cat *catalog.Controller, logger *zap.Logger) *Handler {
	return &Handler{
		films:    films,
		users:    users,
		reviews:  reviews,
		catalog:  cat,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Router builds the route tree.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Route("/films", func(r chi.Router) {
		r.Get("/", h.getFilms)
		r.Post("/", h.createFilm)
		r.Put("/", h.updateFilm)
		r.Get("/popular", h.getPopularFilms)
		r.Get("/common", h.getCommonFilms)
		r.Get("/search", h.searchFilms)
		r.Get("/director/{directorId}", h.getDirectorFilms)
		r.Get("/{id}", h.getFilm)
		r.Delete("/{id}", h.deleteFilm)
		r.Put("/{id}/like/{userId}", h.rateFilm)
		r.Delete("/{id}/like/{userId}", h.unrateFilm)
	})
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.getUsers)
		r.Post("/", h.createUser)
		r.Put("/", h.updateUser)
		r.Get("/{id}", h.getUser)
		r.Delete("/{id}", h.deleteUser)
		r.Put("/{id}/friends/{friendId}", h.addFriend)
		r.Delete("/{id}/friends/{friendId}", h.removeFriend)
		r.Get("/{id}/friends", h.getFriends)
		r.Get("/{id}/friends/common/{otherId}", h.getMutualFriends)
		r.Get("/{id}/recommendations", h.getRecommendations)
		r.Get("/{id}/feed", h.getFeed)
	})
	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", h.getReviews)
		r.Post("/", h.createReview)
		r.Put("/", h.updateReview)
		r.Get("/{id}", h.getReview)
		r.Delete("/{id}", h.deleteReview)
		r.Put("/{id}/like/{userId}", h.likeReview)
		r.Delete("/{id}/like/{userId}", h.removeReviewLike)
		r.Put("/{id}/dislike/{userId}", h.dislikeReview)
		r.Delete("/{id}/dislike/{userId}", h.removeReviewDislike)
	})
	r.Route("/directors", func(r chi.Router) {
		r.Get("/", h.getDirectors)
		r.Post("/", h.createDirector)
		r.Put("/", h.updateDirector)
		r.Get("/{id}", h.getDirector)
		r.Delete("/{id}", h.deleteDirector)
	})
	r.Get("/genres", h.getGenres)
	r.Get("/genres/{id}", h.getGenre)
	r.Get("/mpa", h.getMpas)
	r.Get("/mpa/{id}", h.getMpa)
	return r
}

type errorResponse struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, film.ErrNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, review.ErrNotFound),
		errors.Is(err, catalog.ErrNotFound):
		h.logger.Warn("Search error", zap.Error(err))
		h.respondJSON(w, http.StatusNotFound, errorResponse{Error: "Search error", Description: err.Error()})
	case errors.Is(err, film.ErrInvalidInput), errors.Is(err, review.ErrInvalidInput), errors.As(err, &validationErrs):
		h.logger.Warn("Validation error", zap.Error(err))
		h.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation error", Description: err.Error()})
	default:
		h.logger.Error("Internal error", zap.Error(err))
		h.respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal error", Description: err.Error()})
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	h.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation error", Description: msg})
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func queryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
