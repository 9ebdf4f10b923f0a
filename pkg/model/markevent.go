package model

// MarkEventType defines the type of a bulk-ingested mark event.
type MarkEventType string

// Mark event types.
const (
	MarkEventTypePut    = MarkEventType("put")
	MarkEventTypeDelete = MarkEventType("delete")
)

// MarkEvent defines a mark change published to the ingestion topic.
type MarkEvent struct {
	FilmID     int64         `json:"filmId"`
	UserID     int64         `json:"userId"`
	Value      int           `json:"value"`
	ProviderID string        `json:"providerId"`
	EventType  MarkEventType `json:"eventType"`
}
