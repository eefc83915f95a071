package events

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("event not found")

// Event is a stored meetup event. Datetime is kept verbatim as supplied by
// the creator; ChannelID references the discussion channel created with it.
type Event struct {
	ID          int64
	Title       string
	Datetime    string
	ChannelID   int64
	Location    string
	Description string
}

// Channel is the discussion context created alongside every event.
type Channel struct {
	ID          int64
	Name        string
	Description string
	Private     bool
	TimeCreated string
	Creator     int64
	LastUpdated string
}

type EventCreateParams struct {
	Title       string
	Datetime    string
	Location    string
	Description string
	CreatorID   int64
	CreatedAt   string
}

type MembershipParams struct {
	UserID  int64
	EventID int64
}

type Repository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	// Create inserts the channel and the event referencing it in a single
	// transaction; a failed event insert leaves no orphan channel.
	Create(ctx context.Context, params EventCreateParams) (*Event, error)
	// AddMember records a membership. Re-joining an already joined event is
	// a no-op.
	AddMember(ctx context.Context, params MembershipParams) error
	ListJoined(ctx context.Context, userID int64) ([]Event, error)
}
