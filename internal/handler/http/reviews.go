package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/filmsocial/filmrate/pkg/model"
)

func (h *Handler) getReviews(w http.ResponseWriter, r *http.Request) {
	filmID, err := queryInt64(r, "filmId")
	if err != nil {
		h.badRequest(w, "malformed film id")
		return
	}
	count, err := queryInt(r, "count", 10)
	if err != nil {
		h.badRequest(w, "malformed count")
		return
	}
	reviews, err := h.reviews.ByFilm(r.Context(), filmID, count)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, reviews)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var rev model.Review
	if err := json.NewDecoder(r.Body).Decode(&rev); err != nil {
		h.badRequest(w, "malformed review payload")
		return
	}
	if err := h.validate.Struct(&rev); err != nil {
		h.respondError(w, err)
		return
	}
	created, err := h.reviews.Create(r.Context(), &rev)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, created)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	var rev model.Review
	if err := json.NewDecoder(r.Body).Decode(&rev); err != nil {
		h.badRequest(w, "malformed review payload")
		return
	}
	updated, err := h.reviews.Update(r.Context(), &rev)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, updated)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed review id")
		return
	}
	rev, err := h.reviews.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, rev)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed review id")
		return
	}
	if err := h.reviews.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, nil)
}

func (h *Handler) likeReview(w http.ResponseWriter, r *http.Request) {
	h.reviewVote(w, r, h.reviews.Like)
}

func (h *Handler) dislikeReview(w http.ResponseWriter, r *http.Request) {
	h.reviewVote(w, r, h.reviews.Dislike)
}

func (h *Handler) removeReviewLike(w http.ResponseWriter, r *http.Request) {
	h.reviewVote(w, r, h.reviews.RemoveLike)
}

func (h *Handler) removeReviewDislike(w http.ResponseWriter, r *http.Request) {
	h.reviewVote(w, r, h.reviews.RemoveDislike)
}

func (h *Handler) reviewVote(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, reviewID, userID int64) error) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed review id")
		return
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		h.badRequest(w, "malformed user id")
		return
	}
	if err := op(r.Context(), id, userID); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, nil)
}
