package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/storage"
	"github.com/jackc/pgx/v5"
)

var _ events.Repository = (*EventRepository)(nil)

const eventColumns = `id, title, event_datetime, channel_id, location, description`

func (r *EventRepository) List(ctx context.Context) ([]events.Event, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT `+eventColumns+`
  FROM events
`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*events.Event, error) {
	row := r.queryer().QueryRow(ctx, `
SELECT `+eventColumns+`
  FROM events
 WHERE id = $1
`, id)

	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, events.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// Create inserts the channel first to obtain its id, then the event
// referencing it. Both statements run in one transaction so a failed event
// insert cannot leave an orphan channel behind.
func (r *EventRepository) Create(ctx context.Context, params events.EventCreateParams) (*events.Event, error) {
	owner := &Repository{pool: r.pool, tx: r.tx}

	var created *events.Event
	err := owner.WithTx(ctx, func(ctx context.Context, repo storage.Repository) error {
		txRepo, ok := repo.Events().(*EventRepository)
		if !ok {
			return fmt.Errorf("create event: unexpected repository type")
		}
		queryer := txRepo.queryer()

		var channelID int64
		err := queryer.QueryRow(ctx, `
INSERT INTO channels (name, description, private, time_created, creator, last_updated)
VALUES ($1, $2, false, $3, $4, $3)
RETURNING id
`, params.Title, params.Description, params.CreatedAt, params.CreatorID).Scan(&channelID)
		if err != nil {
			return fmt.Errorf("insert channel: %w", err)
		}

		row := queryer.QueryRow(ctx, `
INSERT INTO events (title, event_datetime, channel_id, location, description)
VALUES ($1, $2, $3, $4, $5)
RETURNING `+eventColumns+`
`, params.Title, params.Datetime, channelID, params.Location, params.Description)

		created, err = scanEvent(row)
		if err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// AddMember records the membership. The composite primary key makes repeat
// joins a no-op rather than an error.
func (r *EventRepository) AddMember(ctx context.Context, params events.MembershipParams) error {
	_, err := r.queryer().Exec(ctx, `
INSERT INTO event_members (user_id, event_id)
VALUES ($1, $2)
ON CONFLICT (user_id, event_id) DO NOTHING
`, params.UserID, params.EventID)
	if err != nil {
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

func (r *EventRepository) ListJoined(ctx context.Context, userID int64) ([]events.Event, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT `+eventColumns+`
  FROM events
 WHERE id IN (SELECT event_id FROM event_members WHERE user_id = $1)
`, userID)
	if err != nil {
		return nil, fmt.Errorf("list joined events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]events.Event, error) {
	items := make([]events.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		items = append(items, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return items, nil
}

func scanEvent(row pgx.Row) (*events.Event, error) {
	var event events.Event
	if err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Datetime,
		&event.ChannelID,
		&event.Location,
		&event.Description,
	); err != nil {
		return nil, err
	}
	return &event, nil
}
