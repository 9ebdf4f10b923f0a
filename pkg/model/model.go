package model

// Mpa defines an MPA age classification assigned to a film.
type Mpa struct {
	ID          int64  `json:"id" validate:"required"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Genre defines a genre tag.
type Genre struct {
	ID   int64  `json:"id" validate:"required"`
	Name string `json:"name,omitempty"`
}

// Director defines a film director.
type Director struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
}

// Film defines a film record. Rating is derived from individual marks and is
// recomputed on every read, never stored.
type Film struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description" validate:"max=200"`
	ReleaseDate Date       `json:"releaseDate"`
	Duration    int        `json:"duration" validate:"gt=0"`
	Mpa         Mpa        `json:"mpa"`
	Genres      []Genre    `json:"genres,omitempty"`
	Directors   []Director `json:"directors,omitempty"`
	Rating      float64    `json:"rating"`
}

// User defines a service user. Name falls back to Login when blank.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email" validate:"required,email"`
	Login    string `json:"login" validate:"required,excludesall=0x20"`
	Name     string `json:"name"`
	Birthday Date   `json:"birthday"`
}

// Mark defines an individual 1-10 rating a user gave to a film. One mark per
// (film, user) pair; re-rating overwrites.
type Mark struct {
	FilmID int64 `json:"filmId"`
	UserID int64 `json:"userId"`
	Value  int   `json:"value"`
}

// FriendStatus defines the state of a directed friendship edge.
type FriendStatus int

// Friendship edge states. A confirmed edge exists only when both directions
// have been requested.
const (
	FriendPending FriendStatus = iota
	FriendConfirmed
)

// Review defines a user's review of a film. Useful is the net sum of per-user
// +1/-1 votes and is derived on read.
type Review struct {
	ReviewID   int64  `json:"reviewId"`
	Content    string `json:"content" validate:"required"`
	IsPositive *bool  `json:"isPositive" validate:"required"`
	UserID     int64  `json:"userId" validate:"required"`
	FilmID     int64  `json:"filmId" validate:"required"`
	Useful     int64  `json:"useful"`
}
