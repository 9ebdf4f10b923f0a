package user

import (
	"context"
	"errors"
	"strings"

	"github.com/filmsocial/filmrate/internal/repository"
	"github.com/filmsocial/filmrate/pkg/model"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a referenced user does not exist.
var ErrNotFound = errors.New("not found")

type userRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	All(ctx context.Context) ([]*model.User, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type friendRepository interface {
	AddFriend(ctx context.Context, from, to int64) error
	RemoveFriend(ctx context.Context, from, to int64) error
	FriendIDs(ctx context.Context, userID int64) ([]int64, error)
	DeleteForUser(ctx context.Context, userID int64) error
}

type markRepository interface {
	DeleteForUser(ctx context.Context, userID int64) error
}

type voteRepository interface {
	DeleteForUser(ctx context.Context, userID int64) error
}

type eventRepository interface {
	Append(ctx context.Context, userID int64, eventType model.EventType, op model.EventOperation, entityID int64) (*model.Event, error)
	ForUser(ctx context.Context, userID int64) ([]*model.Event, error)
}

// Controller defines the user service controller: user records, the
// friendship graph and the per-user activity feed.
type Controller struct {
	users       userRepository
	friends     friendRepository
	marks       markRepository
	votes       voteRepository
	events      eventRepository
	logger      *zap.Logger
	friendsHit  tally.Counter
	friendsDrop tally.Counter
}

// New creates a user service controller.
func New(users userRepository, friends friendRepository, marks markRepository, votes voteRepository, events eventRepository, logger *zap.Logger, scope tally.Scope) *Controller {
	return &Controller{
		users:       users,
		friends:     friends,
		marks:       marks,
		votes:       votes,
		events:      events,
		logger:      logger,
		friendsHit:  scope.Counter("friends_added"),
		friendsDrop: scope.Counter("friends_removed"),
	}
}

// CreateUser stores a new user; a blank display name falls back to the login.
func (c *Controller) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
	created, err := c.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	c.logger.Info("User created", zap.Int64("id", created.ID), zap.String("login", created.Login))
	return created, nil
}

// UpdateUser replaces an existing user record, with the same name fallback.
func (c *Controller) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := c.checkUserExists(ctx, user.ID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
	return c.users.Update(ctx, user)
}

// GetUser retrieves one user.
func (c *Controller) GetUser(ctx context.Context, id int64) (*model.User, error) {
	u, err := c.users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Users returns all users ordered by ascending id.
func (c *Controller) Users(ctx context.Context) ([]*model.User, error) {
	return c.users.All(ctx)
}

// DeleteUser removes a user and cascades over friend edges, votes and marks.
func (c *Controller) DeleteUser(ctx context.Context, id int64) error {
	if err := c.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := c.friends.DeleteForUser(ctx, id); err != nil {
		return err
	}
	if err := c.votes.DeleteForUser(ctx, id); err != nil {
		return err
	}
	return c.marks.DeleteForUser(ctx, id)
}

// AddFriend requests a friendship from userID to friendID. When the reverse
// request already exists both edges become confirmed.
func (c *Controller) AddFriend(ctx context.Context, userID, friendID int64) error {
	if err := c.checkUserExists(ctx, userID); err != nil {
		return err
	}
	if err := c.checkUserExists(ctx, friendID); err != nil {
		return err
	}
	if err := c.friends.AddFriend(ctx, userID, friendID); err != nil {
		return err
	}
	if _, err := c.events.Append(ctx, userID, model.EventTypeFriend, model.EventOpAdd, friendID); err != nil {
		return err
	}
	c.friendsHit.Inc(1)
	return nil
}

// RemoveFriend drops the edge from userID to friendID; a confirmed reverse
// edge is downgraded to pending, so mutuality is not symmetric after a
// one-sided removal.
func (c *Controller) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if err := c.checkUserExists(ctx, userID); err != nil {
		return err
	}
	if err := c.checkUserExists(ctx, friendID); err != nil {
		return err
	}
	if err := c.friends.RemoveFriend(ctx, userID, friendID); err != nil {
		return err
	}
	if _, err := c.events.Append(ctx, userID, model.EventTypeFriend, model.EventOpRemove, friendID); err != nil {
		return err
	}
	c.friendsDrop.Inc(1)
	return nil
}

// Friends returns the user's outbound friend list, pending and confirmed.
func (c *Controller) Friends(ctx context.Context, userID int64) ([]*model.User, error) {
	if err := c.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	ids, err := c.friends.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return c.usersByIDs(ctx, ids)
}

// MutualFriends returns users present in both outbound friend lists.
func (c *Controller) MutualFriends(ctx context.Context, userID, otherID int64) ([]*model.User, error) {
	if err := c.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	if err := c.checkUserExists(ctx, otherID); err != nil {
		return nil, err
	}
	ids, err := c.friends.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	otherIDs, err := c.friends.FriendIDs(ctx, otherID)
	if err != nil {
		return nil, err
	}
	other := map[int64]bool{}
	for _, id := range otherIDs {
		other[id] = true
	}
	var mutual []int64
	for _, id := range ids {
		if other[id] {
			mutual = append(mutual, id)
		}
	}
	return c.usersByIDs(ctx, mutual)
}

// Feed returns the user's activity events ordered by ascending timestamp.
func (c *Controller) Feed(ctx context.Context, userID int64) ([]*model.Event, error) {
	if err := c.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	return c.events.ForUser(ctx, userID)
}

func (c *Controller) usersByIDs(ctx context.Context, ids []int64) ([]*model.User, error) {
	res := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		u, err := c.GetUser(ctx, id)
		if err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, nil
}

func (c *Controller) checkUserExists(ctx context.Context, id int64) error {
	ok, err := c.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
