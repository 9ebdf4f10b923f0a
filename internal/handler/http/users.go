package http

import (
	"encoding/json"
	"net/http"

	"github.com/filmsocial/filmrate/pkg/model"
)

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.Users(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, users)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var u model.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		h.badRequest(w, "malformed user payload")
		return
	}
	if err := h.validate.Struct(&u); err != nil {
		h.respondError(w, err)
		return
	}
	created, err := h.users.CreateUser(r.Context(), &u)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, created)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var u model.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		h.badRequest(w, "malformed user payload")
		return
	}
	if err := h.validate.Struct(&u); err != nil {
		h.respondError(w, err)
		return
	}
	updated, err := h.users.UpdateUser(r.Context(), &u)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, updated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed user id")
		return
	}
	u, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, u)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed user id")
		return
	}
	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, nil)
}

func (h *Handler) addFriend(w http.ResponseWriter, r *http.Request) {
	id, friendID, ok := h.friendPair(w, r)
	if !ok {
		return
	}
	if err := h.users.AddFriend(r.Context(), id, friendID); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, nil)
}

func (h *Handler) removeFriend(w http.ResponseWriter, r *http.Request) {
	id, friendID, ok := h.friendPair(w, r)
	if !ok {
		return
	}
	if err := h.users.RemoveFriend(r.Context(), id, friendID); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, nil)
}

func (h *Handler) getFriends(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed user id")
		return
	}
	friends, err := h.users.Friends(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, friends)
}

func (h *Handler) getMutualFriends(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed user id")
		return
	}
	otherID, err := pathID(r, "otherId")
	if err != nil {
		h.badRequest(w, "malformed user id")
		return
	}
	friends, err := h.users.MutualFriends(r.Context(), id, otherID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, friends)
}

func (h *Handler) getRecommendations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed user id")
		return
	}
	films, err := h.films.Recommend(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, films)
}

func (h *Handler) getFeed(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed user id")
		return
	}
	events, err := h.users.Feed(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, events)
}

func (h *Handler) friendPair(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		h.badRequest(w, "malformed user id")
		return 0, 0, false
	}
	friendID, err := pathID(r, "friendId")
	if err != nil {
		h.badRequest(w, "malformed friend id")
		return 0, 0, false
	}
	return id, friendID, true
}
