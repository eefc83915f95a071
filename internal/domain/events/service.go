package events

import (
	"context"
	"time"
)

// EventInput is the event creation form as posted by clients. Fields pass
// through to the store as-is; the database enforces what it needs.
type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Datetime    string `json:"datetime"`
	Location    string `json:"location"`
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new event and its discussion channel. The channel carries
// the event's title and description, is never private in this flow, and is
// stamped with the server's clock.
func (s *Service) Create(ctx context.Context, input EventInput, creatorID int64) (*Event, error) {
	return s.repo.Create(ctx, EventCreateParams{
		Title:       input.Title,
		Datetime:    input.Datetime,
		Location:    input.Location,
		Description: input.Description,
		CreatorID:   creatorID,
		CreatedAt:   FormatTimestamp(s.now()),
	})
}

func (s *Service) Join(ctx context.Context, userID int64, eventID int64) error {
	return s.repo.AddMember(ctx, MembershipParams{UserID: userID, EventID: eventID})
}

func (s *Service) ListJoined(ctx context.Context, userID int64) ([]Event, error) {
	return s.repo.ListJoined(ctx, userID)
}
