package film

import (
	"context"
	"testing"

	"github.com/filmsocial/filmrate/internal/repository/memory"
	"github.com/filmsocial/filmrate/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally/v4"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fixture struct {
	ctrl      *Controller
	films     *memory.FilmRepository
	users     *memory.UserRepository
	marks     *memory.MarkRepository
	directors *memory.DirectorRepository
	events    *memory.EventRepository
}

func newFixture() *fixture {
	f := &fixture{
		films:     memory.NewFilmRepository(),
		users:     memory.NewUserRepository(),
		marks:     memory.NewMarkRepository(),
		directors: memory.NewDirectorRepository(),
		events:    memory.NewEventRepository(),
	}
	f.ctrl = New(f.films, f.marks, f.users, f.directors, f.events, nil, zap.NewNop(), tally.NoopScope)
	return f
}

func (f *fixture) addFilm(t *testing.T, name string, year int) *model.Film {
	t.Helper()
	created, err := f.ctrl.CreateFilm(context.Background(), &model.Film{
		Name:        name,
		Description: "a film",
		ReleaseDate: model.NewDate(year, 1, 1),
		Duration:    100,
	})
	require.NoError(t, err)
	return created
}

func (f *fixture) addUser(t *testing.T, login string) *model.User {
	t.Helper()
	created, err := f.users.Create(context.Background(), &model.User{
		Email:    login + "@example.com",
		Login:    login,
		Name:     login,
		Birthday: model.NewDate(1990, 1, 1),
	})
	require.NoError(t, err)
	return created
}

func TestCreateFilmReleaseDateFloor(t *testing.T) {
	f := newFixture()
	_, err := f.ctrl.CreateFilm(context.Background(), &model.Film{
		Name:        "Too Early",
		ReleaseDate: model.NewDate(1895, 12, 27),
		Duration:    10,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	created, err := f.ctrl.CreateFilm(context.Background(), &model.Film{
		Name:        "First Show",
		ReleaseDate: model.NewDate(1895, 12, 28),
		Duration:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestGetFilmNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.ctrl.GetFilm(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRateAndAverage(t *testing.T) {
	f := newFixture()
	film := f.addFilm(t, "Film", 2000)
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")

	got, err := f.ctrl.Rate(context.Background(), film.ID, alice.ID, 8)
	require.NoError(t, err)
	assert.Equal(t, 8.0, got.Rating)

	got, err = f.ctrl.Rate(context.Background(), film.ID, bob.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 6.5, got.Rating)

	// Re-rating overwrites, it never adds a second mark.
	got, err = f.ctrl.Rate(context.Background(), film.ID, alice.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.Rating)

	avg, err := f.ctrl.AverageRating(context.Background(), film.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, avg)
}

func TestRateValidation(t *testing.T) {
	f := newFixture()
	film := f.addFilm(t, "Film", 2000)
	alice := f.addUser(t, "alice")

	for _, mark := range []int{0, 11, -1} {
		_, err := f.ctrl.Rate(context.Background(), film.ID, alice.ID, mark)
		assert.ErrorIs(t, err, ErrInvalidInput, "mark %d", mark)
	}
	_, err := f.ctrl.Rate(context.Background(), 99, alice.ID, 5)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.ctrl.Rate(context.Background(), film.ID, 99, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnrate(t *testing.T) {
	f := newFixture()
	film := f.addFilm(t, "Film", 2000)
	alice := f.addUser(t, "alice")

	_, err := f.ctrl.Unrate(context.Background(), film.ID, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.ctrl.Rate(context.Background(), film.ID, alice.ID, 7)
	require.NoError(t, err)
	got, err := f.ctrl.Unrate(context.Background(), film.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Rating)
}

func TestDeleteFilmCascadesMarks(t *testing.T) {
	f := newFixture()
	film := f.addFilm(t, "Film", 2000)
	alice := f.addUser(t, "alice")
	_, err := f.ctrl.Rate(context.Background(), film.ID, alice.ID, 9)
	require.NoError(t, err)

	require.NoError(t, f.ctrl.DeleteFilm(context.Background(), film.ID))
	assert.ErrorIs(t, f.ctrl.DeleteFilm(context.Background(), film.ID), ErrNotFound)

	marks, err := f.marks.ForUser(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Empty(t, marks)
}

func TestRateAppendsFeedEvents(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	films := NewMockfilmRepository(mockCtrl)
	marks := NewMockmarkRepository(mockCtrl)
	users := NewMockuserRepository(mockCtrl)
	events := NewMockeventRepository(mockCtrl)
	c := New(films, marks, users, NewMockdirectorRepository(mockCtrl), events, nil, zap.NewNop(), tally.NoopScope)

	ctx := context.Background()
	film := &model.Film{ID: 1, Name: "Film"}
	films.EXPECT().Exists(ctx, int64(1)).Return(true, nil)
	users.EXPECT().Exists(ctx, int64(2)).Return(true, nil)
	put := marks.EXPECT().Put(ctx, int64(1), int64(2), 7).Return(nil)
	events.EXPECT().Append(ctx, int64(2), model.EventTypeLike, model.EventOpAdd, int64(1)).
		Return(&model.Event{EventID: 1}, nil).After(put)
	films.EXPECT().Get(ctx, int64(1)).Return(film, nil)
	marks.EXPECT().ForFilm(ctx, int64(1)).Return([]int{7}, nil)

	got, err := c.Rate(ctx, 1, 2, 7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got.Rating)
}

func TestRateRejectedBeforeWrite(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	films := NewMockfilmRepository(mockCtrl)
	marks := NewMockmarkRepository(mockCtrl)
	users := NewMockuserRepository(mockCtrl)
	events := NewMockeventRepository(mockCtrl)
	c := New(films, marks, users, NewMockdirectorRepository(mockCtrl), events, nil, zap.NewNop(), tally.NoopScope)

	ctx := context.Background()
	films.EXPECT().Exists(ctx, int64(1)).Return(true, nil)
	users.EXPECT().Exists(ctx, int64(2)).Return(false, nil)

	// No Put and no Append may happen when the user is missing.
	_, err := c.Rate(ctx, 1, 2, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

type chanIngester struct {
	ch chan model.MarkEvent
}

func (i chanIngester) Ingest(ctx context.Context) (chan model.MarkEvent, error) {
	return i.ch, nil
}

func TestStartIngestion(t *testing.T) {
	f := newFixture()
	film := f.addFilm(t, "Film", 2000)
	alice := f.addUser(t, "alice")

	ch := make(chan model.MarkEvent, 2)
	ch <- model.MarkEvent{FilmID: film.ID, UserID: alice.ID, Value: 9, EventType: model.MarkEventTypePut}
	ch <- model.MarkEvent{FilmID: 99, UserID: alice.ID, Value: 9, EventType: model.MarkEventTypePut} // skipped
	close(ch)

	c := New(f.films, f.marks, f.users, f.directors, f.events, chanIngester{ch: ch}, zap.NewNop(), tally.NoopScope)
	require.NoError(t, c.StartIngestion(context.Background()))

	avg, err := c.AverageRating(context.Background(), film.ID)
	require.NoError(t, err)
	assert.Equal(t, 9.0, avg)
}
