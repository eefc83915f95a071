package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	createFn    func(params EventCreateParams) (*Event, error)
	addMemberFn func(params MembershipParams) error
}

func (s stubRepo) List(_ context.Context) ([]Event, error) { return nil, nil }

func (s stubRepo) GetByID(_ context.Context, _ int64) (*Event, error) {
	return nil, ErrNotFound
}

func (s stubRepo) Create(_ context.Context, params EventCreateParams) (*Event, error) {
	return s.createFn(params)
}

func (s stubRepo) AddMember(_ context.Context, params MembershipParams) error {
	return s.addMemberFn(params)
}

func (s stubRepo) ListJoined(_ context.Context, _ int64) ([]Event, error) {
	return nil, nil
}

func TestServiceCreateStampsServerClock(t *testing.T) {
	var got EventCreateParams
	svc := NewService(stubRepo{
		createFn: func(params EventCreateParams) (*Event, error) {
			got = params
			return &Event{ID: 1, ChannelID: 10}, nil
		},
	})
	svc.now = func() time.Time {
		return time.Date(2024, time.May, 1, 18, 0, 0, 0, time.UTC)
	}

	event, err := svc.Create(context.Background(), EventInput{
		Title:       "Run Club",
		Description: "5k",
		Datetime:    "2024-5-1 18:0:0",
		Location:    "Park",
	}, 7)
	require.NoError(t, err)
	require.Equal(t, int64(1), event.ID)

	require.Equal(t, "Run Club", got.Title)
	require.Equal(t, "5k", got.Description)
	require.Equal(t, "2024-5-1 18:0:0", got.Datetime)
	require.Equal(t, "Park", got.Location)
	require.Equal(t, int64(7), got.CreatorID)
	require.Equal(t, "2024-5-1 18:0:0", got.CreatedAt)
}

func TestServiceJoinForwardsMembership(t *testing.T) {
	var got MembershipParams
	svc := NewService(stubRepo{
		addMemberFn: func(params MembershipParams) error {
			got = params
			return nil
		},
	})

	require.NoError(t, svc.Join(context.Background(), 3, 42))
	require.Equal(t, MembershipParams{UserID: 3, EventID: 42}, got)
}
