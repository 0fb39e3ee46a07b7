// Package events publishes catalog domain events (entity creations)
// over watermill: an in-process channel bus by default, Kafka when
// brokers are configured.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CatalogTopic carries every catalog domain event.
const CatalogTopic = "showcase.catalog"

// Event source for everything this service publishes.
const EventSource = "showcase-service"

// Event types.
const (
	TypeLineCreated    = "catalog.line_created"
	TypeProjectCreated = "catalog.project_created"
	TypeCourseCreated  = "catalog.course_created"
	TypeUserRegistered = "auth.user_registered"
)

// Event is the envelope for every published domain event.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// NewEvent builds an envelope around Data with a fresh id.
func NewEvent(eventType string, data interface{}) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    EventSource,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// EventPublisher is the publishing surface services depend on.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
