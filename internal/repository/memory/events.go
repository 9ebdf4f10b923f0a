package memory

import (
	"context"
	"sync"
	"time"

	"github.com/filmsocial/filmrate/pkg/model"
)

// EventRepository defines an append-only memory store of activity events.
type EventRepository struct {
	sync.RWMutex
	events map[int64][]*model.Event
	nextID int64
	lastTS int64
}

// NewEventRepository creates a new memory event repository.
func NewEventRepository() *EventRepository {
	return &EventRepository{events: map[int64][]*model.Event{}}
}

// Append records a new event with a fresh id and a monotonic millisecond
// timestamp. Events are never mutated or deleted.
func (r *EventRepository) Append(ctx context.Context, userID int64, eventType model.EventType, op model.EventOperation, entityID int64) (*model.Event, error) {
	r.Lock()
	defer r.Unlock()

	ts := time.Now().UnixMilli()
	if ts <= r.lastTS {
		ts = r.lastTS + 1
	}
	r.lastTS = ts
	r.nextID++
	ev := &model.Event{
		EventID:   r.nextID,
		UserID:    userID,
		EntityID:  entityID,
		EventType: eventType,
		Operation: op,
		Timestamp: ts,
	}
	r.events[userID] = append(r.events[userID], ev)
	out := *ev
	return &out, nil
}

// ForUser returns the events of a user's feed ordered by ascending timestamp.
func (r *EventRepository) ForUser(ctx context.Context, userID int64) ([]*model.Event, error) {
	r.RLock()
	defer r.RUnlock()

	stored := r.events[userID]
	res := make([]*model.Event, 0, len(stored))
	for _, ev := range stored {
		out := *ev
		res = append(res, &out)
	}
	return res, nil
}
