package services

import (
	"github.com/google/uuid"

	"kindred/internal/realtime"
)

// EventPublisher pushes realtime events to a user's open connections.
type EventPublisher interface {
	Publish(userID uuid.UUID, event realtime.Event) int
}

type nopPublisher struct{}

func (nopPublisher) Publish(uuid.UUID, realtime.Event) int { return 0 }

func publisherOrNop(p EventPublisher) EventPublisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}
