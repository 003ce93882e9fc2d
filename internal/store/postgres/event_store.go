package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/axionlabs/axion-backend/internal/query"
	"github.com/axionlabs/axion-backend/internal/store"
	"github.com/axionlabs/axion-backend/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const eventColumns = "id, title, description, image, date, time, location, event_type, max_attendees, registration_link, created_at, updated_at"

// EventStore implements store.ResourceStore for events.
type EventStore struct {
	db DB
}

func NewEventStore(db DB) *EventStore {
	return &EventStore{db: db}
}

func scanEvent(row pgx.Row) (*types.Event, error) {
	e := &types.Event{}
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.Image,
		&e.Date,
		&e.Time,
		&e.Location,
		&e.EventType,
		&e.MaxAttendees,
		&e.RegistrationLink,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventStore) List(ctx context.Context, q query.Query) ([]*types.Event, error) {
	rows, err := s.db.Query(ctx, "SELECT "+eventColumns+" FROM events"+q.SQL(), q.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*types.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *EventStore) Get(ctx context.Context, id string) (*types.Event, error) {
	row := s.db.QueryRow(ctx, "SELECT "+eventColumns+" FROM events WHERE id = $1", id)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *EventStore) Create(ctx context.Context, e *types.Event) error {
	e.Stamp(uuid.New().String(), time.Now().UTC())
	_, err := s.db.Exec(ctx, `
		INSERT INTO events (id, title, description, image, date, time, location, event_type, max_attendees, registration_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		e.ID, e.Title, e.Description, e.Image, e.Date, e.Time, e.Location,
		e.EventType, e.MaxAttendees, e.RegistrationLink, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (s *EventStore) Update(ctx context.Context, e *types.Event) error {
	e.Touch(time.Now().UTC())
	tag, err := s.db.Exec(ctx, `
		UPDATE events
		SET title = $2, description = $3, image = $4, date = $5, time = $6, location = $7,
			event_type = $8, max_attendees = $9, registration_link = $10, updated_at = $11
		WHERE id = $1`,
		e.ID, e.Title, e.Description, e.Image, e.Date, e.Time, e.Location,
		e.EventType, e.MaxAttendees, e.RegistrationLink, e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *EventStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
