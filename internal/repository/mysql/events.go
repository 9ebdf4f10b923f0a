package mysql

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/filmsocial/filmrate/pkg/model"
)

// EventRepository defines an append-only MySQL store of activity events.
type EventRepository struct {
	db *sql.DB

	mu     sync.Mutex
	lastTS int64
}

// NewEventRepository creates a new MySQL event repository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Append records a new event with a monotonic millisecond timestamp.
func (r *EventRepository) Append(ctx context.Context, userID int64, eventType model.EventType, op model.EventOperation, entityID int64) (*model.Event, error) {
	r.mu.Lock()
	ts := time.Now().UnixMilli()
	if ts <= r.lastTS {
		ts = r.lastTS + 1
	}
	r.lastTS = ts
	r.mu.Unlock()

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO events (user_id, entity_id, event_type, operation, ts) VALUES (?, ?, ?, ?, ?)",
		userID, entityID, string(eventType), string(op), ts)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Event{
		EventID:   id,
		UserID:    userID,
		EntityID:  entityID,
		EventType: eventType,
		Operation: op,
		Timestamp: ts,
	}, nil
}

// ForUser returns the events of a user's feed ordered by ascending timestamp.
func (r *EventRepository) ForUser(ctx context.Context, userID int64) ([]*model.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT event_id, user_id, entity_id, event_type, operation, ts FROM events WHERE user_id=? ORDER BY ts, event_id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []*model.Event
	for rows.Next() {
		var ev model.Event
		var eventType, op string
		if err := rows.Scan(&ev.EventID, &ev.UserID, &ev.EntityID, &eventType, &op, &ev.Timestamp); err != nil {
			return nil, err
		}
		ev.EventType = model.EventType(eventType)
		ev.Operation = model.EventOperation(op)
		res = append(res, &ev)
	}
	return res, rows.Err()
}
