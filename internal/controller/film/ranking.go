package film

import (
	"context"
	"sort"
	"strings"

	"github.com/filmsocial/filmrate/pkg/model"
)

// SortKey selects an ordering for a director's filmography.
type SortKey string

// Supported filmography sort keys.
const (
	SortKeyYear  = SortKey("year")
	SortKeyLikes = SortKey("likes")
)

// LikesComparator orders a director's filmography for the likes sort key.
// The default sorts by ascending average rating; replace it to invert.
var LikesComparator = func(a, b *model.Film) bool { return a.Rating < b.Rating }

// SearchField selects which fields a search query is matched against.
type SearchField string

// Supported search fields.
const (
	SearchTitle    = SearchField("title")
	SearchDirector = SearchField("director")
)

// Popular returns up to limit films ordered by descending average rating.
// A non-zero genreID or year restricts the result; both combine. Equal
// ratings break ties by ascending film id, so films without marks come last
// in id order.
func (c *Controller) Popular(ctx context.Context, limit int, genreID int64, year int) ([]*model.Film, error) {
	if limit <= 0 {
		return nil, ErrInvalidInput
	}
	films, err := c.films.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(films) == 0 {
		return nil, ErrNotFound
	}
	res := make([]*model.Film, 0, len(films))
	for _, f := range films {
		if genreID != 0 && !hasGenre(f, genreID) {
			continue
		}
		if year != 0 && f.ReleaseDate.Year() != year {
			continue
		}
		if err := c.withRating(ctx, f); err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Rating != res[j].Rating {
			return res[i].Rating > res[j].Rating
		}
		return res[i].ID < res[j].ID
	})
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

// Common returns films both users marked above 5, ordered by the total
// number of marks each film received, most marked first.
func (c *Controller) Common(ctx context.Context, userID, friendID int64) ([]*model.Film, error) {
	if err := c.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	if err := c.checkUserExists(ctx, friendID); err != nil {
		return nil, err
	}
	marks, err := c.marks.All(ctx)
	if err != nil {
		return nil, err
	}
	likedByUser := likedSet(marks, userID)
	likedByFriend := likedSet(marks, friendID)
	total := map[int64]int{}
	for _, m := range marks {
		total[m.FilmID]++
	}
	var ids []int64
	for filmID := range likedByUser {
		if likedByFriend[filmID] {
			ids = append(ids, filmID)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		if total[ids[i]] != total[ids[j]] {
			return total[ids[i]] > total[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return c.filmsByIDs(ctx, ids)
}

// Recommend suggests films for a user based on the users sharing the most
// liked films with them. Every user tied at the maximal overlap contributes.
// Candidates the user already rated, with any mark, are excluded, and only
// films with an average rating above 5 remain.
func (c *Controller) Recommend(ctx context.Context, userID int64) ([]*model.Film, error) {
	if err := c.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	marks, err := c.marks.All(ctx)
	if err != nil {
		return nil, err
	}
	liked := map[int64]map[int64]bool{}
	rated := map[int64]bool{}
	for _, m := range marks {
		if m.UserID == userID {
			rated[m.FilmID] = true
		}
		if m.Value > 5 {
			if liked[m.UserID] == nil {
				liked[m.UserID] = map[int64]bool{}
			}
			liked[m.UserID][m.FilmID] = true
		}
	}
	target := liked[userID]
	if len(target) == 0 {
		return []*model.Film{}, nil
	}

	// Overlap of liked sets per candidate neighbour; keep everyone at max.
	overlap := map[int64]int{}
	for other, films := range liked {
		if other == userID {
			continue
		}
		for filmID := range films {
			if target[filmID] {
				overlap[other]++
			}
		}
	}
	maxOverlap := 0
	for _, n := range overlap {
		if n > maxOverlap {
			maxOverlap = n
		}
	}
	if maxOverlap == 0 {
		return []*model.Film{}, nil
	}

	candidates := map[int64]bool{}
	for other, n := range overlap {
		if n != maxOverlap {
			continue
		}
		for filmID := range liked[other] {
			if !rated[filmID] {
				candidates[filmID] = true
			}
		}
	}

	sums := map[int64]int{}
	counts := map[int64]int{}
	for _, m := range marks {
		sums[m.FilmID] += m.Value
		counts[m.FilmID]++
	}
	var ids []int64
	for filmID := range candidates {
		if float64(sums[filmID])/float64(counts[filmID]) > 5 {
			ids = append(ids, filmID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return c.filmsByIDs(ctx, ids)
}

// FilmsByDirector returns the director's films ordered by the requested
// keys: year sorts by release date ascending, likes by LikesComparator
// (rating ascending by default). When both are requested the likes sort is
// applied first so the year sort dominates. With no keys the films keep id
// order.
func (c *Controller) FilmsByDirector(ctx context.Context, directorID int64, sortBy []SortKey) ([]*model.Film, error) {
	ok, err := c.directors.Exists(ctx, directorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	byYear, byLikes := false, false
	for _, key := range sortBy {
		switch key {
		case SortKeyYear:
			byYear = true
		case SortKeyLikes:
			byLikes = true
		default:
			return nil, ErrInvalidInput
		}
	}
	films, err := c.films.All(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]*model.Film, 0, len(films))
	for _, f := range films {
		if !hasDirector(f, directorID) {
			continue
		}
		if err := c.withRating(ctx, f); err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	if byLikes {
		sort.SliceStable(res, func(i, j int) bool { return LikesComparator(res[i], res[j]) })
	}
	if byYear {
		sort.SliceStable(res, func(i, j int) bool { return res[i].ReleaseDate.Before(res[j].ReleaseDate.Time) })
	}
	return res, nil
}

// Search matches the query case-insensitively as a substring of film titles
// and/or linked director names (OR across fields). Results are ordered by
// the number of distinct raters, most rated first. An empty query matches
// everything.
func (c *Controller) Search(ctx context.Context, query string, by []SearchField) ([]*model.Film, error) {
	byTitle, byDirector := false, false
	for _, f := range by {
		switch f {
		case SearchTitle:
			byTitle = true
		case SearchDirector:
			byDirector = true
		default:
			return nil, ErrInvalidInput
		}
	}
	films, err := c.films.All(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	raters := map[int64]int{}
	res := make([]*model.Film, 0, len(films))
	for _, f := range films {
		match := byTitle && strings.Contains(strings.ToLower(f.Name), q)
		if !match && byDirector {
			for _, d := range f.Directors {
				if strings.Contains(strings.ToLower(d.Name), q) {
					match = true
					break
				}
			}
		}
		if !match {
			continue
		}
		values, err := c.marks.ForFilm(ctx, f.ID)
		if err != nil {
			return nil, err
		}
		raters[f.ID] = len(values)
		f.Rating = mean(values)
		res = append(res, f)
	}
	sort.Slice(res, func(i, j int) bool {
		if raters[res[i].ID] != raters[res[j].ID] {
			return raters[res[i].ID] > raters[res[j].ID]
		}
		return res[i].ID < res[j].ID
	})
	return res, nil
}

func (c *Controller) filmsByIDs(ctx context.Context, ids []int64) ([]*model.Film, error) {
	res := make([]*model.Film, 0, len(ids))
	for _, id := range ids {
		f, err := c.GetFilm(ctx, id)
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, nil
}

func likedSet(marks []model.Mark, userID int64) map[int64]bool {
	res := map[int64]bool{}
	for _, m := range marks {
		if m.UserID == userID && m.Value > 5 {
			res[m.FilmID] = true
		}
	}
	return res
}

func hasGenre(f *model.Film, genreID int64) bool {
	for _, g := range f.Genres {
		if g.ID == genreID {
			return true
		}
	}
	return false
}

func hasDirector(f *model.Film, directorID int64) bool {
	for _, d := range f.Directors {
		if d.ID == directorID {
			return true
		}
	}
	return false
}
